package rental

import (
	"context"
	"log/slog"

	"attirerental/service/billing"
)

// Scanner is the daily pass that reports how many active rentals have
// slipped past their expected return date.
type Scanner interface {
	ScanOverdue(ctx context.Context) (int, error)
}

type scanner struct {
	r     Repo
	clock billing.Clock
	log   *slog.Logger
}

func NewScanner(r Repo, clock billing.Clock, log *slog.Logger) Scanner {
	if clock == nil {
		clock = billing.SystemClock{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &scanner{r: r, clock: clock, log: log}
}

func (s *scanner) ScanOverdue(ctx context.Context) (int, error) {
	records, err := s.r.List(ctx)
	if err != nil {
		return 0, err
	}
	today := s.clock.Now()
	n := 0
	for _, rec := range records {
		if billing.IsOverdue(rec, today) {
			n++
		}
	}
	if n > 0 {
		s.log.Warn("overdue rentals", "count", n, "date", today.Format("2006-01-02"))
	}
	return n, nil
}
