package inventory

type AttireReq struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Gender      string  `json:"gender"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Material    string  `json:"material"`
	Price       float64 `json:"price" validate:"gte=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=Available Rented Maintenance"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
