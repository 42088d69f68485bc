// model/attire.go
package model

import "time"

type AttireStatus string

const (
	AttireAvailable   AttireStatus = "Available"
	AttireRented      AttireStatus = "Rented"
	AttireMaintenance AttireStatus = "Maintenance"
)

type Attire struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Gender      string       `json:"gender"`
	Size        string       `json:"size"`
	Color       string       `json:"color"`
	Material    string       `json:"material"`
	Price       float64      `json:"price"`
	Status      AttireStatus `json:"status"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	DateAdded   time.Time    `json:"date_added"`
}

// StockAlert is the per-category availability summary shown on the
// admin analysis screen.
type StockAlert struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
	Alert    string `json:"alert"` // "No Stock" | "Low Stock" | "Overstock" | ""
}
