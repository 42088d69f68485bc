package inventoryrepo

import (
	"context"
	"database/sql"
	"errors"

	"attirerental/model"
)

type Repo interface {
	Create(ctx context.Context, a *model.Attire) (int64, error)
	List(ctx context.Context, status string) ([]model.Attire, error)
	Detail(ctx context.Context, id int64) (*model.Attire, error)
	Update(ctx context.Context, a *model.Attire) error
	Delete(ctx context.Context, id int64) error
}

type repo struct{ db *sql.DB }

func New(db *sql.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, a *model.Attire) (int64, error) {
	const q = `
INSERT INTO attires (name, category, gender, size, color, material, price, status, description, image)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id, date_added`
	err := r.db.QueryRowContext(ctx, q,
		a.Name, a.Category, a.Gender, a.Size, a.Color, a.Material,
		a.Price, a.Status, a.Description, a.Image,
	).Scan(&a.ID, &a.DateAdded)
	if err != nil {
		return 0, err
	}
	return a.ID, nil
}

func (r *repo) List(ctx context.Context, status string) ([]model.Attire, error) {
	q := `
SELECT id, name, category, gender, size, color, material, price, status, description, image, date_added
FROM attires`
	args := []any{}
	if status != "" {
		q += ` WHERE status = $1`
		args = append(args, status)
	}
	q += ` ORDER BY id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Attire
	for rows.Next() {
		var a model.Attire
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Category, &a.Gender, &a.Size, &a.Color,
			&a.Material, &a.Price, &a.Status, &a.Description, &a.Image, &a.DateAdded,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *repo) Detail(ctx context.Context, id int64) (*model.Attire, error) {
	const q = `
SELECT id, name, category, gender, size, color, material, price, status, description, image, date_added
FROM attires
WHERE id = $1`
	var a model.Attire
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&a.ID, &a.Name, &a.Category, &a.Gender, &a.Size, &a.Color,
		&a.Material, &a.Price, &a.Status, &a.Description, &a.Image, &a.DateAdded,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repo) Update(ctx context.Context, a *model.Attire) error {
	const q = `
UPDATE attires
SET name = $2, category = $3, gender = $4, size = $5, color = $6,
	material = $7, price = $8, status = $9, description = $10, image = $11
WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q,
		a.ID, a.Name, a.Category, a.Gender, a.Size, a.Color,
		a.Material, a.Price, a.Status, a.Description, a.Image,
	)
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
	res, err := r.db.ExecContext(ctx, `DELETE FROM attires WHERE id = $1`, id)
	if err != nil {
		return err
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}
