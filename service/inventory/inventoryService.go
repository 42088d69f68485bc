package inventorysvc

import (
	"context"
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

type Service interface {
	Create(ctx context.Context, a *model.Attire) (int64, error)
	List(ctx context.Context, status string) ([]model.Attire, error)
	Detail(ctx context.Context, id int64) (*model.Attire, error)
	Update(ctx context.Context, a *model.Attire) error
	Delete(ctx context.Context, id int64) error
	StockAlerts(ctx context.Context) ([]model.StockAlert, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, a *model.Attire) (int64, error) {
	if a.Name == "" || a.Category == "" || a.Price < 0 {
		return 0, errors.New("invalid payload")
	}
	if a.Status == "" {
		a.Status = model.AttireAvailable
	}
	return s.r.Create(ctx, a)
}

func (s *service) List(ctx context.Context, status string) ([]model.Attire, error) {
	return s.r.List(ctx, status)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Attire, error) {
	return s.r.Detail(ctx, id)
}

func (s *service) Update(ctx context.Context, a *model.Attire) error {
	if a.Name == "" || a.Category == "" || a.Price < 0 {
		return errors.New("invalid payload")
	}
	return s.r.Update(ctx, a)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.r.Delete(ctx, id)
}

// StockAlerts summarizes available stock per category for the analysis
// screen. Thresholds: 0 no stock, under 4 low, over 10 overstock.
func (s *service) StockAlerts(ctx context.Context) ([]model.StockAlert, error) {
	items, err := s.r.List(ctx, string(model.AttireAvailable))
	if err != nil {
		return nil, err
	}
	counts := map[string]int64{}
	order := []string{}
	for _, it := range items {
		if _, seen := counts[it.Category]; !seen {
			order = append(order, it.Category)
		}
		counts[it.Category]++
	}

	out := make([]model.StockAlert, 0, len(order))
	for _, cat := range order {
		n := counts[cat]
		alert := ""
		switch {
		case n == 0:
			alert = "No Stock"
		case n < 4:
			alert = "Low Stock"
		case n > 10:
			alert = "Overstock"
		}
		out = append(out, model.StockAlert{Category: cat, Count: n, Alert: alert})
	}
	return out, nil
}
