package models

import "time"

// Transaction records one successful charge against the payment processor.
// Rows are only ever written by the payment path; the API exposes them
// read-only.
type Transaction struct {
	ID             int       `json:"id"`
	UserID         int       `json:"user_id"`
	Amount         float64   `json:"amount"`
	Timestamp      time.Time `json:"timestamp"`
	StripeChargeID string    `json:"stripe_charge_id"`
	Description    string    `json:"description"`
	Paid           bool      `json:"paid"`
}
