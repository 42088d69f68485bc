// model/rental.go
package model

import (
	"strings"
	"time"
)

type RentalStatus string

const (
	RentalActive   RentalStatus = "active"
	RentalReturned RentalStatus = "returned"
)

type IDType string

const (
	IDPassport      IDType = "Passport"
	IDDriverLicense IDType = "Driver's License"
	IDNational      IDType = "National ID"
	IDStudent       IDType = "Student ID"
	IDOther         IDType = "Other"
)

// Rental is one rental transaction. AttireName and Price are snapshots
// of the catalog item at creation time and are never refreshed.
// TotalAmount is only authoritative once the status is "returned";
// while active it is recomputed from dates on every read.
type Rental struct {
	ID                 int64        `json:"id"`
	AttireID           int64        `json:"attire_id"`
	AttireName         string       `json:"attire_name"`
	CustomerName       string       `json:"customer_name"`
	CustomerPhone      string       `json:"customer_phone"`
	CustomerEmail      string       `json:"customer_email"`
	CustomerAddress    string       `json:"customer_address"`
	IDType             IDType       `json:"id_type"`
	IDImage            string       `json:"id_image,omitempty"`
	Price              float64      `json:"price"`
	RentalDate         time.Time    `json:"rental_date"`
	ExpectedReturnDate time.Time    `json:"expected_return_date"`
	RentalStatus       RentalStatus `json:"rental_status"`
	TotalAmount        float64      `json:"total_amount"`
	CreatedAt          time.Time    `json:"created_at"`
}

// ValidIDType reports whether s is one of the accepted identity
// document kinds.
func ValidIDType(s string) bool {
	switch IDType(s) {
	case IDPassport, IDDriverLicense, IDNational, IDStudent, IDOther:
		return true
	}
	return false
}

// Status matching is case-insensitive everywhere.
func (r Rental) IsReturned() bool {
	return strings.EqualFold(string(r.RentalStatus), string(RentalReturned))
}

func (r Rental) IsActive() bool {
	return strings.EqualFold(string(r.RentalStatus), string(RentalActive))
}
