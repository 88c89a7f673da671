package models

import "time"

type Order struct {
	ID         int         `json:"id"`
	UserID     int         `json:"user_id"`
	Status     string      `json:"status"`
	TotalPrice float64     `json:"total_price"`
	Items      []OrderItem `json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID       int       `json:"id"`
	OrderID  int       `json:"order_id"`
	ItemID   int       `json:"item_id"`
	Size     string    `json:"size"`
	Quantity int       `json:"quantity"`
	Toppings []Topping `json:"toppings"`
}
