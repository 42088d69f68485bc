package billing

import (
	"testing"
	"time"

	"attirerental/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtraDayCharge_SameDay(t *testing.T) {
	c := ExtraDayCharge(date(2024, 1, 1), date(2024, 1, 1))
	if c.TotalDays != 1 || c.ExtraDays != 0 || c.ExtraCharge != 0 {
		t.Fatalf("got %+v; want totalDays=1 extraDays=0 extraCharge=0", c)
	}
}

func TestExtraDayCharge_WithinBasePeriod(t *testing.T) {
	for d := 1; d <= 3; d++ {
		c := ExtraDayCharge(date(2024, 1, 1), date(2024, 1, 1+d))
		if c.ExtraCharge != 0 {
			t.Fatalf("diff=%d days: extraCharge=%v; want 0", d, c.ExtraCharge)
		}
	}
}

func TestExtraDayCharge_BeyondBasePeriod(t *testing.T) {
	for k := 0; k <= 5; k++ {
		c := ExtraDayCharge(date(2024, 1, 1), date(2024, 1, 4+k))
		if c.ExtraDays != k || c.ExtraCharge != float64(k*200) {
			t.Fatalf("k=%d: got %+v; want extraDays=%d extraCharge=%d", k, c, k, k*200)
		}
	}
}

func TestExtraDayCharge_FiveDayRental(t *testing.T) {
	c := ExtraDayCharge(date(2024, 1, 1), date(2024, 1, 6))
	if c.TotalDays != 5 || c.ExtraDays != 2 || c.ExtraCharge != 400 {
		t.Fatalf("got %+v; want totalDays=5 extraDays=2 extraCharge=400", c)
	}
}

func TestExtraDayCharge_MissingDates(t *testing.T) {
	if c := ExtraDayCharge(time.Time{}, date(2024, 1, 6)); c != (Charges{}) {
		t.Fatalf("missing rental date: got %+v; want zero", c)
	}
	if c := ExtraDayCharge(date(2024, 1, 1), time.Time{}); c != (Charges{}) {
		t.Fatalf("missing expected date: got %+v; want zero", c)
	}
}

func TestExtraDayCharge_InvertedRangeFloorsToOneDay(t *testing.T) {
	c := ExtraDayCharge(date(2024, 1, 10), date(2024, 1, 5))
	if c.TotalDays != 1 || c.ExtraCharge != 0 {
		t.Fatalf("got %+v; want totalDays=1 extraCharge=0", c)
	}
}

func TestExtraDayCharge_IgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, 1, 6, 0, 1, 0, 0, time.UTC)
	c := ExtraDayCharge(late, early)
	if c.TotalDays != 5 {
		t.Fatalf("totalDays=%d; want 5", c.TotalDays)
	}
}

func activeRec(rental, expected time.Time, price float64) model.Rental {
	return model.Rental{
		Price:              price,
		RentalDate:         rental,
		ExpectedReturnDate: expected,
		RentalStatus:       model.RentalActive,
	}
}

func TestIsOverdue_Boundary(t *testing.T) {
	rec := activeRec(date(2024, 1, 1), date(2024, 1, 6), 500)

	if IsOverdue(rec, date(2024, 1, 6)) {
		t.Fatal("due date itself must not be overdue")
	}
	if !IsOverdue(rec, date(2024, 1, 7)) {
		t.Fatal("day after due date must be overdue")
	}
}

func TestIsOverdue_ReturnedNeverOverdue(t *testing.T) {
	rec := activeRec(date(2024, 1, 1), date(2024, 1, 6), 500)
	rec.RentalStatus = model.RentalReturned
	if IsOverdue(rec, date(2030, 1, 1)) {
		t.Fatal("returned record reported overdue")
	}
}

func TestIsOverdue_MissingExpectedDate(t *testing.T) {
	rec := activeRec(date(2024, 1, 1), time.Time{}, 500)
	if IsOverdue(rec, date(2030, 1, 1)) {
		t.Fatal("record without expected date reported overdue")
	}
}

func TestOverdueCharge_Active(t *testing.T) {
	rec := activeRec(date(2024, 1, 1), date(2024, 1, 6), 500)

	o := OverdueCharge(rec, date(2024, 1, 9))
	if o.OverdueDays != 3 || o.OverdueCharge != 750 {
		t.Fatalf("got %+v; want overdueDays=3 overdueCharge=750", o)
	}

	// Not yet due: clamps to zero.
	o = OverdueCharge(rec, date(2024, 1, 4))
	if o.OverdueDays != 0 || o.OverdueCharge != 0 {
		t.Fatalf("got %+v; want zero", o)
	}
}

func TestOverdueCharge_ReturnedReconstruction(t *testing.T) {
	rec := model.Rental{
		Price:              500,
		RentalDate:         date(2024, 1, 1),
		ExpectedReturnDate: date(2024, 1, 6), // extraCharge 400
		RentalStatus:       model.RentalReturned,
		TotalAmount:        1650,
	}
	o := OverdueCharge(rec, date(2030, 6, 1))
	if o.OverdueCharge != 750 || o.OverdueDays != 3 {
		t.Fatalf("got %+v; want overdueCharge=750 overdueDays=3", o)
	}
}

func TestOverdueCharge_ReturnedClampsNegative(t *testing.T) {
	rec := model.Rental{
		Price:              500,
		RentalDate:         date(2024, 1, 1),
		ExpectedReturnDate: date(2024, 1, 6),
		RentalStatus:       model.RentalReturned,
		TotalAmount:        600, // below base+extra: nothing overdue
	}
	o := OverdueCharge(rec, date(2024, 2, 1))
	if o.OverdueCharge != 0 || o.OverdueDays != 0 {
		t.Fatalf("got %+v; want zero", o)
	}
}

func TestOverdueCharge_ReturnedZeroTotal(t *testing.T) {
	rec := model.Rental{
		Price:        500,
		RentalStatus: model.RentalReturned,
	}
	if o := OverdueCharge(rec, date(2024, 2, 1)); o != (Overdue{}) {
		t.Fatalf("got %+v; want zero", o)
	}
}

func TestTotalAmount_LiveIsMonotonic(t *testing.T) {
	rec := activeRec(date(2024, 1, 1), date(2024, 1, 6), 500)
	prev := float64(-1)
	for d := 0; d < 30; d++ {
		total := TotalAmount(rec, date(2024, 1, 1+d))
		if total < prev {
			t.Fatalf("total decreased from %v to %v at day %d", prev, total, d)
		}
		prev = total
	}
}

func TestTotalAmount_FrozenIgnoresToday(t *testing.T) {
	rec := model.Rental{
		Price:              500,
		RentalDate:         date(2024, 1, 1),
		ExpectedReturnDate: date(2024, 1, 6),
		RentalStatus:       model.RentalReturned,
		TotalAmount:        1650,
	}
	for _, today := range []time.Time{date(2024, 1, 1), date(2025, 7, 15), date(2030, 12, 31)} {
		if got := TotalAmount(rec, today); got != 1650 {
			t.Fatalf("today=%v: got %v; want frozen 1650", today, got)
		}
	}
}

func TestTotalAmount_ActiveIgnoresStoredValue(t *testing.T) {
	rec := activeRec(date(2024, 1, 1), date(2024, 1, 6), 500)
	rec.TotalAmount = 99999 // stale stored value must not leak through
	if got := TotalAmount(rec, date(2024, 1, 6)); got != 900 {
		t.Fatalf("got %v; want 900 (500 base + 400 extra)", got)
	}
}

func TestResolve_Breakdown(t *testing.T) {
	rec := activeRec(date(2024, 1, 1), date(2024, 1, 6), 500)
	b := Resolve(rec, date(2024, 1, 9))
	if b.TotalDays != 5 || b.ExtraCharge != 400 || b.OverdueCharge != 750 || b.TotalAmount != 1650 {
		t.Fatalf("got %+v", b)
	}
}
