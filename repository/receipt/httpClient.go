package receiptrepo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"attirerental/util/httpx"
)

type httpRepo struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTP(baseURL, apiKey string) Repo {
	return &httpRepo{baseURL: baseURL, apiKey: apiKey, client: httpx.Client()}
}

func (r *httpRepo) Generate(req GenerateReq) (*GenerateResp, error) {
	body := map[string]any{
		"record_id":            req.RecordID,
		"customer_name":        req.CustomerName,
		"customer_email":       req.CustomerEmail,
		"attire_id":            req.AttireID,
		"attire_name":          req.AttireName,
		"rental_date":          req.RentalDate,
		"expected_return_date": req.ExpectedReturnDate,
		"base_price":           req.BasePrice,
		"extra_days":           req.ExtraDays,
		"extra_charge":         req.ExtraCharge,
		"overdue_days":         req.OverdueDays,
		"overdue_charge":       req.OverdueCharge,
		"total_amount":         req.TotalAmount,
	}
	b, _ := json.Marshal(body)
	httpReq, _ := http.NewRequest("POST", r.baseURL+"/receipts", bytes.NewReader(b))
	httpReq.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("receipt generate failed: %s", resp.Status)
	}

	var out struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.ID == "" {
		return nil, errors.New("receipt: empty receipt id")
	}

	return &GenerateResp{ReceiptID: out.ID, ReceiptURL: out.URL}, nil
}
