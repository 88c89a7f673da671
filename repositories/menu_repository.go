package repositories

import (
	"context"

	"pizza-shop/config"
	"pizza-shop/models"
)

type MenuRepository struct{}

func NewMenuRepository() *MenuRepository {
	return &MenuRepository{}
}

func (r *MenuRepository) GetAllMenuItems(category string) ([]models.MenuItem, error) {
	query := `SELECT id, name, price_small, price_large, category, image, description
	          FROM menu_items`
	args := []interface{}{}

	if category != "" && category != "All" {
		query += " WHERE category = $1"
		args = append(args, category)
	}
	query += " ORDER BY category, name"

	rows, err := config.DB.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.PriceSmall, &m.PriceLarge,
			&m.Category, &m.Image, &m.Description); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *MenuRepository) GetMenuItemByID(id int) (*models.MenuItem, error) {
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

func (r *MenuRepository) CreateMenuItem(m *models.MenuItem) error {
	query := `
		INSERT INTO menu_items (name, price_small, price_large, category, image, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return config.DB.QueryRow(context.Background(), query,
		m.Name, m.PriceSmall, m.PriceLarge, m.Category, m.Image, m.Description,
	).Scan(&m.ID)
}

func (r *MenuRepository) UpdateMenuItem(m *models.MenuItem) error {
	query := `UPDATE menu_items SET name = $1, price_small = $2, price_large = $3,
	          category = $4, image = $5, description = $6 WHERE id = $7`
	_, err := config.DB.Exec(context.Background(), query,
		m.Name, m.PriceSmall, m.PriceLarge, m.Category, m.Image, m.Description, m.ID,
	)
	return err
}

func (r *MenuRepository) DeleteMenuItem(id int) error {
	_, err := config.DB.Exec(context.Background(), "DELETE FROM menu_items WHERE id = $1", id)
	return err
}

func (r *MenuRepository) GetAllToppings() ([]models.Topping, error) {
	rows, err := config.DB.Query(context.Background(),
		"SELECT id, name, price FROM toppings ORDER BY name")
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

func (r *MenuRepository) GetToppingByID(id int) (*models.Topping, error) {
	var t models.Topping
	err := config.DB.QueryRow(context.Background(),
		"SELECT id, name, price FROM toppings WHERE id = $1", id).Scan(&t.ID, &t.Name, &t.Price)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *MenuRepository) CreateTopping(t *models.Topping) error {
	return config.DB.QueryRow(context.Background(),
		"INSERT INTO toppings (name, price) VALUES ($1, $2) RETURNING id",
		t.Name, t.Price,
	).Scan(&t.ID)
}

func (r *MenuRepository) UpdateTopping(t *models.Topping) error {
	_, err := config.DB.Exec(context.Background(),
		"UPDATE toppings SET name = $1, price = $2 WHERE id = $3", t.Name, t.Price, t.ID)
	return err
}

func (r *MenuRepository) DeleteTopping(id int) error {
	_, err := config.DB.Exec(context.Background(), "DELETE FROM toppings WHERE id = $1", id)
	return err
}
