package rental

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"attirerental/model"
	receiptrepo "attirerental/repository/receipt"
	rrepo "attirerental/repository/rental"
	"attirerental/service/billing"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrAttireNotFound ErrCode = "ATTIRE_NOT_FOUND"
	ErrAttireUnavail  ErrCode = "ATTIRE_NOT_AVAILABLE"
	ErrNotActive      ErrCode = "NOT_ACTIVE"
	ErrNotReturned    ErrCode = "NOT_RETURNED"
	ErrDateOrder      ErrCode = "DATE_ORDER"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

type CreateReq struct {
	AttireID           int64
	CustomerName       string
	CustomerPhone      string
	CustomerEmail      string
	CustomerAddress    string
	IDType             model.IDType
	IDImage            string
	RentalDate         time.Time
	ExpectedReturnDate time.Time
}

// Row is one record with its live figures attached for display.
type Row struct {
	model.Rental
	Breakdown billing.Breakdown `json:"breakdown"`
	Overdue   bool              `json:"overdue"`
}

type ReturnResult struct {
	Record     model.Rental      `json:"record"`
	Breakdown  billing.Breakdown `json:"breakdown"`
	ReceiptURL string            `json:"receipt_url,omitempty"`
}

type Repo = rrepo.Repo

// AttireReader is the read-only view of the catalog the record flow
// needs: price and name snapshots plus the Available check.
type AttireReader interface {
	Detail(ctx context.Context, id int64) (*model.Attire, error)
}

type Service interface {
	// Create validates and stores a new active record, snapshotting the
	// attire's name and price.
	Create(ctx context.Context, req CreateReq) (*model.Rental, error)

	// List applies the filter selection and attaches live figures.
	List(ctx context.Context, q billing.Query) ([]Row, error)

	Detail(ctx context.Context, id int64) (*Row, error)

	// MarkReturned freezes the final amount and closes the record.
	MarkReturned(ctx context.Context, id int64) (*ReturnResult, error)

	// Delete removes a record; only returned records may be deleted.
	Delete(ctx context.Context, id int64) error

	Stats(ctx context.Context) (billing.Stats, error)
}

// ----- Service implementation -----

type service struct {
	r        Repo
	attires  AttireReader
	receipts receiptrepo.Repo // nil disables receipt generation
	clock    billing.Clock
	log      *slog.Logger
}

func New(r Repo, attires AttireReader, receipts receiptrepo.Repo, clock billing.Clock, log *slog.Logger) Service {
	if clock == nil {
		clock = billing.SystemClock{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &service{r: r, attires: attires, receipts: receipts, clock: clock, log: log}
}

func (s *service) Create(ctx context.Context, req CreateReq) (*model.Rental, error) {
	if req.RentalDate.IsZero() || req.ExpectedReturnDate.IsZero() {
		return nil, makeErr(ErrDateOrder)
	}
	if billing.Day(req.ExpectedReturnDate).Before(billing.Day(req.RentalDate)) {
		return nil, makeErr(ErrDateOrder)
	}

	attire, err := s.attires.Detail(ctx, req.AttireID)
	if err != nil {
		return nil, err
	}
	if attire == nil {
		return nil, makeErr(ErrAttireNotFound)
	}
	if attire.Status != model.AttireAvailable {
		return nil, makeErr(ErrAttireUnavail)
	}

	rec := &model.Rental{
		AttireID:           attire.ID,
		AttireName:         attire.Name,
		CustomerName:       req.CustomerName,
		CustomerPhone:      req.CustomerPhone,
		CustomerEmail:      req.CustomerEmail,
		CustomerAddress:    req.CustomerAddress,
		IDType:             req.IDType,
		IDImage:            req.IDImage,
		Price:              attire.Price,
		RentalDate:         billing.Day(req.RentalDate),
		ExpectedReturnDate: billing.Day(req.ExpectedReturnDate),
		RentalStatus:       model.RentalActive,
		// provisional; active totals are recomputed on every read
		TotalAmount: attire.Price,
	}
	if _, err := s.r.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) List(ctx context.Context, q billing.Query) ([]Row, error) {
	records, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	today := s.clock.Now()
	filtered := billing.Filter(records, q, today)

	rows := make([]Row, 0, len(filtered))
	for _, rec := range filtered {
		rows = append(rows, s.row(rec, today))
	}
	return rows, nil
}

func (s *service) Detail(ctx context.Context, id int64) (*Row, error) {
	rec, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, makeErr(ErrNotFound)
	}
	row := s.row(*rec, s.clock.Now())
	return &row, nil
}

// MarkReturned performs the one legal transition. The amount write and
// the status write are two independent store calls; if the second fails
// the record stays active and its stale stored total is harmless, since
// active totals are always recomputed live.
func (s *service) MarkReturned(ctx context.Context, id int64) (*ReturnResult, error) {
	rec, err := s.r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, makeErr(ErrNotFound)
	}
	if !rec.IsActive() {
		return nil, makeErr(ErrNotActive)
	}

	today := s.clock.Now()
	breakdown := billing.Resolve(*rec, today)
	finalAmount := breakdown.TotalAmount

	// write #1
	if err := s.r.UpdateTotalAmount(ctx, id, finalAmount); err != nil {
		return nil, err
	}
	// write #2
	if err := s.r.UpdateStatus(ctx, id, model.RentalReturned); err != nil {
		return nil, fmt.Errorf("amount persisted but status update failed: %w", err)
	}

	rec.TotalAmount = finalAmount
	rec.RentalStatus = model.RentalReturned

	out := &ReturnResult{Record: *rec, Breakdown: breakdown}
	if s.receipts != nil {
		if resp, err := s.receipts.Generate(receiptrepo.GenerateReq{
			RecordID:           rec.ID,
			CustomerName:       rec.CustomerName,
			CustomerEmail:      rec.CustomerEmail,
			AttireID:           rec.AttireID,
			AttireName:         rec.AttireName,
			RentalDate:         rec.RentalDate.Format(time.DateOnly),
			ExpectedReturnDate: rec.ExpectedReturnDate.Format(time.DateOnly),
			BasePrice:          rec.Price,
			ExtraDays:          breakdown.ExtraDays,
			ExtraCharge:        breakdown.ExtraCharge,
			OverdueDays:        breakdown.OverdueDays,
			OverdueCharge:      breakdown.OverdueCharge,
			TotalAmount:        finalAmount,
		}); err != nil {
			// best effort: the return already committed
			s.log.Error("receipt generation failed", "rental_id", rec.ID, "err", err)
		} else {
			out.ReceiptURL = resp.ReceiptURL
		}
	}
	return out, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rec, err := s.r.Get(ctx, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return makeErr(ErrNotFound)
	}
	if !rec.IsReturned() {
		return makeErr(ErrNotReturned)
	}
	return s.r.Delete(ctx, id)
}

func (s *service) Stats(ctx context.Context) (billing.Stats, error) {
	records, err := s.r.List(ctx)
	if err != nil {
		return billing.Stats{}, err
	}
	return billing.Summarize(records, s.clock.Now()), nil
}

func (s *service) row(rec model.Rental, today time.Time) Row {
	display := rec
	display.TotalAmount = billing.TotalAmount(rec, today)
	return Row{
		Rental:    display,
		Breakdown: billing.Resolve(rec, today),
		Overdue:   billing.IsOverdue(rec, today),
	}
}
