// repository/rental/rentalRepository.go
package rentalrepo

import (
	"context"
	"database/sql"
	"errors"

	"attirerental/model"
)

// Repo is the record store. UpdateTotalAmount and UpdateStatus are
// deliberately independent, non-transactional calls: the return flow
// issues them in sequence and reasons about partial failure itself.
type Repo interface {
	Insert(ctx context.Context, rec *model.Rental) (int64, error)
	List(ctx context.Context) ([]model.Rental, error)
	Get(ctx context.Context, id int64) (*model.Rental, error)
	UpdateTotalAmount(ctx context.Context, id int64, amount float64) error
	UpdateStatus(ctx context.Context, id int64, status model.RentalStatus) error
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

const rentalCols = `
	id, attire_id, attire_name, customer_name, customer_phone, customer_email,
	customer_address, id_type, id_image, price, rental_date,
	expected_return_date, rental_status, total_amount, created_at`

func (r *repo) Insert(ctx context.Context, rec *model.Rental) (int64, error) {
	const q = `
INSERT INTO rentals (
	attire_id, attire_name, customer_name, customer_phone, customer_email,
	customer_address, id_type, id_image, price, rental_date,
	expected_return_date, rental_status, total_amount)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, q,
		rec.AttireID, rec.AttireName, rec.CustomerName, rec.CustomerPhone,
		rec.CustomerEmail, rec.CustomerAddress, rec.IDType, rec.IDImage,
		rec.Price, rec.RentalDate, rec.ExpectedReturnDate,
		rec.RentalStatus, rec.TotalAmount,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return 0, err
	}
	return rec.ID, nil
}

func (r *repo) List(ctx context.Context) ([]model.Rental, error) {
	const q = `
SELECT ` + rentalCols + `
FROM rentals
ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rental
	for rows.Next() {
		rec, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Rental, error) {
	const q = `
SELECT ` + rentalCols + `
FROM rentals
WHERE id = $1`
	row := r.db.QueryRowContext(ctx, q, id)
	rec, err := scanRental(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repo) UpdateTotalAmount(ctx context.Context, id int64, amount float64) error {
	const q = `
UPDATE rentals
SET total_amount = $2
WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, amount)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) UpdateStatus(ctx context.Context, id int64, status model.RentalStatus) error {
	const q = `
UPDATE rentals
SET rental_status = $2
WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id, status)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRental(s scanner) (model.Rental, error) {
	var rec model.Rental
	var rentalDate, expectedReturn sql.NullTime
	err := s.Scan(
		&rec.ID, &rec.AttireID, &rec.AttireName, &rec.CustomerName,
		&rec.CustomerPhone, &rec.CustomerEmail, &rec.CustomerAddress,
		&rec.IDType, &rec.IDImage, &rec.Price, &rentalDate,
		&expectedReturn, &rec.RentalStatus, &rec.TotalAmount, &rec.CreatedAt,
	)
	if err != nil {
		return model.Rental{}, err
	}
	if rentalDate.Valid {
		rec.RentalDate = rentalDate.Time
	}
	if expectedReturn.Valid {
		rec.ExpectedReturnDate = expectedReturn.Time
	}
	return rec, nil
}
