package repositories

import (
	"context"
	"time"

	"pizza-shop/config"
	"pizza-shop/models"
)

type TransactionRepository struct{}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

func (r *TransactionRepository) CreateTransaction(t *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, amount, timestamp, stripe_charge_id, description, paid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return config.DB.QueryRow(context.Background(), query,
		t.UserID, t.Amount, t.Timestamp, t.StripeChargeID, t.Description, t.Paid,
	).Scan(&t.ID)
}

func (r *TransactionRepository) ListByUser(userID int) ([]models.Transaction, error) {
	query := `SELECT id, user_id, amount, timestamp, stripe_charge_id, description, paid
	          FROM transactions WHERE user_id = $1 ORDER BY timestamp DESC`

	rows, err := config.DB.Query(context.Background(), query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Timestamp,
			&t.StripeChargeID, &t.Description, &t.Paid); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) OrderBelongsTo(orderID, userID int) (bool, error) {
	var count int
	err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders WHERE id = $1 AND user_id = $2",
		orderID, userID).Scan(&count)
	return count > 0, err
}

func (r *TransactionRepository) MarkOrderPaid(orderID, userID int) error {
	_, err := config.DB.Exec(context.Background(),
		"UPDATE orders SET status = 'paid', updated_at = $1 WHERE id = $2 AND user_id = $3",
		time.Now(), orderID, userID)
	return err
}
