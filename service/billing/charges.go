// Package billing holds the rental billing rules: extra-day and overdue
// charges, the live/frozen total resolution, and record filtering. All
// functions are pure; "today" is always an argument.
package billing

import (
	"math"
	"time"

	"attirerental/model"
)

const (
	// BaseRentalDays is covered by the flat base price.
	BaseRentalDays = 3
	// ExtraDayRate bills days agreed beyond the base period.
	ExtraDayRate = 200
	// OverdueDayRate bills days past the expected return date.
	OverdueDayRate = 250
)

type Charges struct {
	TotalDays   int     `json:"total_days"`
	ExtraDays   int     `json:"extra_days"`
	ExtraCharge float64 `json:"extra_charge"`
}

type Overdue struct {
	OverdueDays   int     `json:"overdue_days"`
	OverdueCharge float64 `json:"overdue_charge"`
}

// Breakdown is the full figure set handed to receipts and list views.
type Breakdown struct {
	Charges
	Overdue
	TotalAmount float64 `json:"total_amount"`
}

// ExtraDayCharge computes the agreed-duration charge. A same-day or
// inverted range floors to one day; absent dates produce a zero result.
func ExtraDayCharge(rentalDate, expectedReturn time.Time) Charges {
	if rentalDate.IsZero() || expectedReturn.IsZero() {
		return Charges{}
	}
	totalDays := daysBetween(rentalDate, expectedReturn)
	if totalDays < 1 {
		totalDays = 1
	}
	extraDays := totalDays - BaseRentalDays
	if extraDays < 0 {
		extraDays = 0
	}
	return Charges{
		TotalDays:   totalDays,
		ExtraDays:   extraDays,
		ExtraCharge: float64(extraDays * ExtraDayRate),
	}
}

// IsOverdue reports whether an active rental has passed its expected
// return date. The due date itself is not overdue; the record becomes
// overdue the day after.
func IsOverdue(rec model.Rental, today time.Time) bool {
	if rec.IsReturned() {
		return false
	}
	if rec.ExpectedReturnDate.IsZero() {
		return false
	}
	return daysBetween(rec.ExpectedReturnDate, today) >= 1
}

// OverdueCharge computes the overdue figures. For active records this is
// live against today. For returned records the rental already closed, so
// the charge is reconstructed from the frozen total: whatever the total
// holds beyond base price plus extra charge must have been overdue fees.
func OverdueCharge(rec model.Rental, today time.Time) Overdue {
	if rec.IsReturned() {
		if rec.TotalAmount == 0 {
			return Overdue{}
		}
		extra := ExtraDayCharge(rec.RentalDate, rec.ExpectedReturnDate)
		charge := rec.TotalAmount - (rec.Price + extra.ExtraCharge)
		if charge < 0 {
			charge = 0
		}
		return Overdue{
			OverdueDays:   int(math.Ceil(charge / OverdueDayRate)),
			OverdueCharge: charge,
		}
	}

	if rec.ExpectedReturnDate.IsZero() {
		return Overdue{}
	}
	days := daysBetween(rec.ExpectedReturnDate, today)
	if days < 0 {
		days = 0
	}
	return Overdue{
		OverdueDays:   days,
		OverdueCharge: float64(days * OverdueDayRate),
	}
}

// TotalAmount resolves the display total: frozen and authoritative once
// returned, otherwise recomputed live from dates. Stored totals on
// active records are never trusted.
func TotalAmount(rec model.Rental, today time.Time) float64 {
	if rec.IsReturned() {
		return rec.TotalAmount
	}
	extra := ExtraDayCharge(rec.RentalDate, rec.ExpectedReturnDate)
	over := OverdueCharge(rec, today)
	return rec.Price + extra.ExtraCharge + over.OverdueCharge
}

// Resolve bundles every figure for one record.
func Resolve(rec model.Rental, today time.Time) Breakdown {
	return Breakdown{
		Charges:     ExtraDayCharge(rec.RentalDate, rec.ExpectedReturnDate),
		Overdue:     OverdueCharge(rec, today),
		TotalAmount: TotalAmount(rec, today),
	}
}
