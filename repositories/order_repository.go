package repositories

import (
	"context"
	"time"

	"pizza-shop/config"
	"pizza-shop/models"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) CreateOrder(o *models.Order) error {
	query := `
		INSERT INTO orders (user_id, status, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		o.UserID, o.Status, o.TotalPrice, now, now,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *OrderRepository) GetOrder(id int) (*models.Order, error) {
	query := `SELECT id, user_id, status, total_price, created_at, updated_at
	          FROM orders WHERE id = $1`

	var o models.Order
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.UserID, &o.Status, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	o.Items, err = r.ListOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersByUser(userID, limit, offset int) ([]models.Order, int, error) {
	var total int
	err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM orders WHERE user_id = $1", userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT id, user_id, status, total_price, created_at, updated_at
	          FROM orders WHERE user_id = $1
	          ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := config.DB.Query(context.Background(), query, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalPrice,
			&o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range orders {
		orders[i].Items, err = r.ListOrderItems(orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
	}
	return orders, total, nil
}

func (r *OrderRepository) SaveOrder(o *models.Order) error {
	o.UpdatedAt = time.Now()
	_, err := config.DB.Exec(context.Background(),
		"UPDATE orders SET status = $1, total_price = $2, updated_at = $3 WHERE id = $4",
		o.Status, o.TotalPrice, o.UpdatedAt, o.ID)
	return err
}

func (r *OrderRepository) ListOrderItems(orderID int) ([]models.OrderItem, error) {
	query := `SELECT id, order_id, item_id, size, quantity
	          FROM order_items WHERE order_id = $1 ORDER BY id`

	rows, err := config.DB.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var it models.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ItemID, &it.Size, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Toppings, err = r.itemToppings(items[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (r *OrderRepository) GetOrderItem(id int) (*models.OrderItem, error) {
	query := `SELECT id, order_id, item_id, size, quantity
	          FROM order_items WHERE id = $1`

	var it models.OrderItem
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&it.ID, &it.OrderID, &it.ItemID, &it.Size, &it.Quantity,
	)
	if err != nil {
		return nil, err
	}

	it.Toppings, err = r.itemToppings(it.ID)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *OrderRepository) itemToppings(orderItemID int) ([]models.Topping, error) {
	query := `SELECT t.id, t.name, t.price
	          FROM toppings t
	          JOIN order_item_toppings oit ON oit.topping_id = t.id
	          WHERE oit.order_item_id = $1
	          ORDER BY t.name`

	rows, err := config.DB.Query(context.Background(), query, orderItemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	toppings := []models.Topping{}
	for rows.Next() {
		var t models.Topping
		if err := rows.Scan(&t.ID, &t.Name, &t.Price); err != nil {
			return nil, err
		}
		toppings = append(toppings, t)
	}
	return toppings, rows.Err()
}

// CreateOrderItem inserts the line and its topping links in one transaction,
// so a half-written line can never be observed.
func (r *OrderRepository) CreateOrderItem(it *models.OrderItem, toppingIDs []int) error {
	ctx := context.Background()
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		"INSERT INTO order_items (order_id, item_id, size, quantity) VALUES ($1,$2,$3,$4) RETURNING id",
		it.OrderID, it.ItemID, it.Size, it.Quantity,
	).Scan(&it.ID)
	if err != nil {
		return err
	}

	for _, tid := range toppingIDs {
		if _, err = tx.Exec(ctx,
			"INSERT INTO order_item_toppings (order_item_id, topping_id) VALUES ($1,$2) ON CONFLICT DO NOTHING",
			it.ID, tid); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// UpdateOrderItem writes size/quantity and, when toppingIDs is non-nil,
// replaces the topping set wholesale.
func (r *OrderRepository) UpdateOrderItem(it *models.OrderItem, toppingIDs *[]int) error {
	ctx := context.Background()
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		"UPDATE order_items SET size = $1, quantity = $2 WHERE id = $3",
		it.Size, it.Quantity, it.ID)
	if err != nil {
		return err
	}

	if toppingIDs != nil {
		if _, err = tx.Exec(ctx,
			"DELETE FROM order_item_toppings WHERE order_item_id = $1", it.ID); err != nil {
			return err
		}
		for _, tid := range *toppingIDs {
			if _, err = tx.Exec(ctx,
				"INSERT INTO order_item_toppings (order_item_id, topping_id) VALUES ($1,$2) ON CONFLICT DO NOTHING",
				it.ID, tid); err != nil {
				return err
			}
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) DeleteOrderItem(id int) error {
	ctx := context.Background()
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx,
		"DELETE FROM order_item_toppings WHERE order_item_id = $1", id); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, "DELETE FROM order_items WHERE id = $1", id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetMenuItem(id int) (*models.MenuItem, error) {
	query := `SELECT id, name, price_small, price_large, category, image, description
	          FROM menu_items WHERE id = $1`

	var m models.MenuItem
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.PriceSmall, &m.PriceLarge, &m.Category, &m.Image, &m.Description,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *OrderRepository) GetToppings(ids []int) ([]models.Topping, error) {
	if len(ids) == 0 {
		return []models.Topping{}, nil
	}

	rows, err := config.DB.Query(context.Background(),
		"SELECT id, name, price FROM toppings WHERE id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	toppings := []models.Topping{}
	for rows.Next() {
		var t models.Topping
		if err := rows.Scan(&t.ID, &t.Name, &t.Price); err != nil {
			return nil, err
		}
		toppings = append(toppings, t)
	}
	return toppings, rows.Err()
}
