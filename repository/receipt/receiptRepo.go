package receiptrepo

// GenerateReq carries the full, internally consistent charge breakdown
// for one closed rental. The generator renders it; we never format.
type GenerateReq struct {
	RecordID           int64
	CustomerName       string
	CustomerEmail      string
	AttireID           int64
	AttireName         string
	RentalDate         string
	ExpectedReturnDate string
	BasePrice          float64
	ExtraDays          int
	ExtraCharge        float64
	OverdueDays        int
	OverdueCharge      float64
	TotalAmount        float64
}

type GenerateResp struct {
	ReceiptID  string
	ReceiptURL string
}

type Repo interface {
	Generate(req GenerateReq) (*GenerateResp, error)
}
