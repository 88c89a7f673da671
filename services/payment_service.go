package services

import (
	"fmt"
	"log"
	"math"
	"time"

	"pizza-shop/models"
)

// PaymentError is any failure reported by the payment processor: declined
// card, bad token, network trouble. The reason is safe to show to the caller.
type PaymentError struct {
	Reason string
}

func (e *PaymentError) Error() string {
	return e.Reason
}

// ChargeClient submits one charge to the external processor and returns its
// charge id. Implementations must return *PaymentError for anything the user
// should see.
type ChargeClient interface {
	CreateCharge(amountCents int64, currency, token, description string) (string, error)
}

// TransactionStore persists charge outcomes. Nothing is written for a failed
// charge.
type TransactionStore interface {
	CreateTransaction(t *models.Transaction) error
	OrderBelongsTo(orderID, userID int) (bool, error)
	MarkOrderPaid(orderID, userID int) error
}

type PaymentService struct {
	charges ChargeClient
	store   TransactionStore
	email   *models.EmailService
}

func NewPaymentService(charges ChargeClient, store TransactionStore, email *models.EmailService) *PaymentService {
	return &PaymentService{charges: charges, store: store, email: email}
}

// Charge submits the payment and, only on success, records exactly one paid
// Transaction for the caller. When the request names one of the caller's
// orders, that order moves to status "paid".
func (s *PaymentService) Charge(userID int, userEmail string, req models.ChargeRequest) (*models.Transaction, error) {
	if req.OrderID != nil {
		owned, err := s.store.OrderBelongsTo(*req.OrderID, userID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, ErrNotFound
		}
	}

	description := fmt.Sprintf("Pizza Shop payment by user %d", userID)
	if req.OrderID != nil {
		description = fmt.Sprintf("Pizza Shop payment for order %d", *req.OrderID)
	}

	amountCents := int64(math.Round(req.Amount * 100))
	chargeID, err := s.charges.CreateCharge(amountCents, "usd", req.Token, description)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:         userID,
		Amount:         req.Amount,
		Timestamp:      time.Now(),
		StripeChargeID: chargeID,
		Description:    description,
		Paid:           true,
	}

	if err := s.store.CreateTransaction(transaction); err != nil {
		return nil, err
	}

	if req.OrderID != nil {
		if err := s.store.MarkOrderPaid(*req.OrderID, userID); err != nil {
			log.Printf("charge %s captured but order %d not marked paid: %v",
				chargeID, *req.OrderID, err)
		}
	}

	if s.email != nil && userEmail != "" {
		if err := s.email.SendReceiptEmail(userEmail, *transaction); err != nil {
			log.Printf("receipt email to %s failed: %v", userEmail, err)
		}
	}

	return transaction, nil
}
