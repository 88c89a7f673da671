package services

import (
	"errors"
	"testing"

	"pizza-shop/models"
)

type fakeChargeClient struct {
	err        error
	chargeID   string
	calls      int
	lastAmount int64
}

func (f *fakeChargeClient) CreateCharge(amountCents int64, currency, token, description string) (string, error) {
	f.calls++
	f.lastAmount = amountCents
	if f.err != nil {
		return "", f.err
	}
	return f.chargeID, nil
}

type fakeTransactionStore struct {
	transactions []models.Transaction
	ownedOrders  map[int]int // order id -> owner
	paidOrders   []int
}

func (f *fakeTransactionStore) CreateTransaction(t *models.Transaction) error {
	t.ID = len(f.transactions) + 1
	f.transactions = append(f.transactions, *t)
	return nil
}

func (f *fakeTransactionStore) OrderBelongsTo(orderID, userID int) (bool, error) {
	return f.ownedOrders[orderID] == userID, nil
}

func (f *fakeTransactionStore) MarkOrderPaid(orderID, userID int) error {
	f.paidOrders = append(f.paidOrders, orderID)
	return nil
}

func TestChargeSuccessWritesOneTransaction(t *testing.T) {
	client := &fakeChargeClient{chargeID: "ch_1ABC"}
	store := &fakeTransactionStore{ownedOrders: map[int]int{}}
	svc := NewPaymentService(client, store, nil)

	tx, err := svc.Charge(7, "a@x.com", models.ChargeRequest{Amount: 12.50, Token: "tok_visa"})
	if err != nil {
		t.Fatalf("charge: %v", err)
	}

	if len(store.transactions) != 1 {
		t.Fatalf("transactions written = %d, want exactly 1", len(store.transactions))
	}
	got := store.transactions[0]
	if !got.Paid {
		t.Error("transaction not marked paid")
	}
	if got.StripeChargeID != "ch_1ABC" {
		t.Errorf("charge id = %q, want ch_1ABC", got.StripeChargeID)
	}
	if got.UserID != 7 || got.Amount != 12.50 {
		t.Errorf("transaction user/amount = %d/%.2f, want 7/12.50", got.UserID, got.Amount)
	}
	if client.lastAmount != 1250 {
		t.Errorf("amount sent to processor = %d cents, want 1250", client.lastAmount)
	}
	if tx.Description == "" {
		t.Error("expected server-generated description")
	}
}

func TestChargeFailureWritesNothing(t *testing.T) {
	client := &fakeChargeClient{err: &PaymentError{Reason: "Your card was declined."}}
	store := &fakeTransactionStore{ownedOrders: map[int]int{}}
	svc := NewPaymentService(client, store, nil)

	_, err := svc.Charge(7, "a@x.com", models.ChargeRequest{Amount: 12.50, Token: "tok_chargeDeclined"})

	var pe *PaymentError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PaymentError, got %v", err)
	}
	if pe.Reason != "Your card was declined." {
		t.Errorf("reason = %q", pe.Reason)
	}
	if len(store.transactions) != 0 {
		t.Errorf("transactions written after failed charge = %d, want 0", len(store.transactions))
	}
}

func TestChargeMarksLinkedOrderPaid(t *testing.T) {
	client := &fakeChargeClient{chargeID: "ch_2DEF"}
	store := &fakeTransactionStore{ownedOrders: map[int]int{5: 7}}
	svc := NewPaymentService(client, store, nil)

	_, err := svc.Charge(7, "", models.ChargeRequest{Amount: 20, Token: "tok_visa", OrderID: intPtr(5)})
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	if len(store.paidOrders) != 1 || store.paidOrders[0] != 5 {
		t.Errorf("paid orders = %v, want [5]", store.paidOrders)
	}
}

func TestChargeRejectsForeignOrderBeforeCharging(t *testing.T) {
	client := &fakeChargeClient{chargeID: "ch_3GHI"}
	store := &fakeTransactionStore{ownedOrders: map[int]int{5: 99}}
	svc := NewPaymentService(client, store, nil)

	_, err := svc.Charge(7, "", models.ChargeRequest{Amount: 20, Token: "tok_visa", OrderID: intPtr(5)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if client.calls != 0 {
		t.Errorf("processor called %d times for a foreign order, want 0", client.calls)
	}
	if len(store.transactions) != 0 {
		t.Errorf("transactions written = %d, want 0", len(store.transactions))
	}
}
