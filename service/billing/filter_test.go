package billing

import (
	"testing"
	"time"

	"attirerental/model"
)

func sampleRecords() []model.Rental {
	return []model.Rental{
		{ID: 1, AttireID: 10, AttireName: "Barong Tagalog", CustomerName: "Ana Cruz",
			RentalDate: date(2024, 1, 5), ExpectedReturnDate: date(2024, 1, 8),
			RentalStatus: model.RentalActive},
		{ID: 2, AttireID: 11, AttireName: "Evening Gown", CustomerName: "Ben Reyes",
			RentalDate: date(2024, 2, 10), ExpectedReturnDate: date(2024, 2, 12),
			RentalStatus: model.RentalActive},
		{ID: 3, AttireID: 12, AttireName: "Tuxedo", CustomerName: "Carla Santos",
			RentalDate: date(2023, 12, 1), ExpectedReturnDate: date(2023, 12, 4),
			RentalStatus: model.RentalReturned, TotalAmount: 700},
		{ID: 4, AttireID: 13, AttireName: "Terno", CustomerName: "Dan Lim",
			RentalDate: date(2024, 2, 1), RentalStatus: model.RentalActive},
	}
}

func TestFilter_StatusTabOnly(t *testing.T) {
	recs := sampleRecords()
	got := Filter(recs, Query{Status: "Active"}, date(2024, 2, 11))
	if len(got) != 3 {
		t.Fatalf("got %d records; want 3", len(got))
	}
	for _, r := range got {
		if !r.IsActive() {
			t.Fatalf("non-active record %d in active tab", r.ID)
		}
	}

	got = Filter(recs, Query{Status: "returned"}, date(2024, 2, 11))
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("returned tab got %+v", got)
	}
}

func TestFilter_SearchMatchesAnyIdentifier(t *testing.T) {
	recs := sampleRecords()
	today := date(2024, 2, 11)

	cases := []struct {
		search string
		wantID int64
	}{
		{"ana", 1},      // customer name, case-insensitive
		{"gown", 2},     // attire name
		{"12", 3},       // attire id stringified
		{"4", 4},        // record id stringified
	}
	for _, tc := range cases {
		got := Filter(recs, Query{Search: tc.search}, today)
		found := false
		for _, r := range got {
			if r.ID == tc.wantID {
				found = true
			}
		}
		if !found {
			t.Fatalf("search %q did not match record %d", tc.search, tc.wantID)
		}
	}

	if got := Filter(recs, Query{Search: "zzz"}, today); len(got) != 0 {
		t.Fatalf("search zzz matched %d records", len(got))
	}
}

func TestFilter_YearMonth(t *testing.T) {
	recs := sampleRecords()
	today := date(2024, 2, 11)

	got := Filter(recs, Query{Year: 2024}, today)
	if len(got) != 3 {
		t.Fatalf("year 2024: got %d; want 3", len(got))
	}
	got = Filter(recs, Query{Year: 2024, Month: 2}, today)
	if len(got) != 2 {
		t.Fatalf("2024-02: got %d; want 2", len(got))
	}
}

func TestFilter_DueBuckets(t *testing.T) {
	today := date(2024, 2, 11)
	recs := sampleRecords()

	got := Filter(recs, Query{Status: "Active", Due: BucketUpcoming}, today)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("upcoming: got %+v", got)
	}

	got = Filter(recs, Query{Status: "Active", Due: BucketDueToday}, date(2024, 2, 12))
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("due-today: got %+v", got)
	}

	got = Filter(recs, Query{Status: "Active", Due: BucketOverdue}, today)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("overdue: got %+v", got)
	}
}

func TestFilter_NoExpectedDateNeverBuckets(t *testing.T) {
	recs := sampleRecords()
	for _, b := range []DueBucket{BucketUpcoming, BucketDueToday, BucketOverdue} {
		got := Filter(recs, Query{Status: "Active", Due: b}, date(2024, 2, 11))
		for _, r := range got {
			if r.ID == 4 {
				t.Fatalf("record without expected date matched bucket %s", b)
			}
		}
	}
}

func TestFilter_MonotonicNarrowing(t *testing.T) {
	recs := sampleRecords()
	today := date(2024, 2, 11)

	base := Filter(recs, Query{Status: "Active"}, today)
	narrowed := Filter(recs, Query{Status: "Active", Search: "ana", Year: 2024}, today)
	if len(narrowed) > len(base) {
		t.Fatalf("narrowing grew the result: %d > %d", len(narrowed), len(base))
	}
}

func TestFilter_PureAndOrderPreserving(t *testing.T) {
	recs := sampleRecords()
	today := date(2024, 2, 11)

	before := make([]model.Rental, len(recs))
	copy(before, recs)

	a := Filter(recs, Query{Status: "Active"}, today)
	b := Filter(recs, Query{Status: "Active"}, today)

	for i := range recs {
		if recs[i] != before[i] {
			t.Fatal("filter mutated its input")
		}
	}
	if len(a) != len(b) {
		t.Fatal("filter is not idempotent")
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatal("filter output order unstable")
		}
	}
	for i := 1; i < len(a); i++ {
		if a[i-1].ID > a[i].ID {
			// input was id-ordered; output must keep it
			t.Fatal("filter reordered records")
		}
	}
}

func TestSummarize(t *testing.T) {
	recs := sampleRecords()
	s := Summarize(recs, date(2024, 2, 11))
	if s.TotalActive != 3 {
		t.Fatalf("totalActive=%d; want 3", s.TotalActive)
	}
	if s.TotalOverdue != 1 {
		t.Fatalf("totalOverdue=%d; want 1 (record 1 past Jan 8)", s.TotalOverdue)
	}
}

func TestBucket_Classification(t *testing.T) {
	rec := model.Rental{ExpectedReturnDate: date(2024, 2, 12), RentalStatus: model.RentalActive}

	cases := []struct {
		today time.Time
		want  DueBucket
		ok    bool
	}{
		{date(2024, 2, 11), BucketUpcoming, true},
		{date(2024, 2, 12), BucketDueToday, true},
		{date(2024, 2, 13), BucketOverdue, true},
		{date(2024, 2, 9), "", false}, // three days out: no bucket
	}
	for _, tc := range cases {
		b, ok := Bucket(rec, tc.today)
		if b != tc.want || ok != tc.ok {
			t.Fatalf("today=%v: got (%q,%v); want (%q,%v)", tc.today, b, ok, tc.want, tc.ok)
		}
	}
}
