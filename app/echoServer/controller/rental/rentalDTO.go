package rental

// CreateRecordReq arrives as multipart form data; the ID image file is
// read separately from the form fields.
type CreateRecordReq struct {
	AttireID           int64  `form:"attire_id" validate:"required,gt=0"`
	CustomerName       string `form:"customer_name" validate:"required"`
	CustomerPhone      string `form:"customer_phone" validate:"required,len=11,numeric"`
	CustomerEmail      string `form:"customer_email" validate:"required,email"`
	CustomerAddress    string `form:"customer_address" validate:"required"`
	IDType             string `form:"id_type" validate:"required"`
	RentalDate         string `form:"rental_date" validate:"required,datetime=2006-01-02"`
	ExpectedReturnDate string `form:"expected_return_date" validate:"required,datetime=2006-01-02"`
}
