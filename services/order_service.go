package services

import (
	"errors"

	"pizza-shop/models"
)

// ErrNotFound covers both missing rows and rows owned by someone else. A
// caller probing another user's order learns nothing beyond "not found".
var ErrNotFound = errors.New("not found")

// OrderStore is the persistence surface the order service needs. The pgx
// implementation lives in repositories.OrderRepository.
type OrderStore interface {
	CreateOrder(o *models.Order) error
	GetOrder(id int) (*models.Order, error)
	ListOrdersByUser(userID, limit, offset int) ([]models.Order, int, error)
	SaveOrder(o *models.Order) error
	ListOrderItems(orderID int) ([]models.OrderItem, error)
	GetOrderItem(id int) (*models.OrderItem, error)
	CreateOrderItem(it *models.OrderItem, toppingIDs []int) error
	UpdateOrderItem(it *models.OrderItem, toppingIDs *[]int) error
	DeleteOrderItem(id int) error
	GetMenuItem(id int) (*models.MenuItem, error)
	GetToppings(ids []int) ([]models.Topping, error)
}

type OrderService struct {
	store OrderStore
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store}
}

// CreateOrder force-assigns the authenticated caller as owner. Any user id
// in the request body never reaches this point.
func (s *OrderService) CreateOrder(ownerID int, req models.CreateOrderRequest) (*models.Order, error) {
	status := req.Status
	if status == "" {
		status = "pending"
	}

	order := &models.Order{
		UserID:     ownerID,
		Status:     status,
		TotalPrice: req.TotalPrice,
		Items:      []models.OrderItem{},
	}

	if err := s.store.CreateOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) GetOrder(id, callerID int) (*models.Order, error) {
	order, err := s.store.GetOrder(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if order.UserID != callerID {
		return nil, ErrNotFound
	}
	return order, nil
}

func (s *OrderService) ListOrders(callerID, page, limit int) ([]models.Order, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.store.ListOrdersByUser(callerID, limit, offset)
}

// UpdateOrder applies a partial update: status keeps its stored value when
// omitted. The total is always recomputed from the line items, never taken
// from the client.
func (s *OrderService) UpdateOrder(id, callerID int, req models.UpdateOrderRequest) (*models.Order, error) {
	order, err := s.GetOrder(id, callerID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		order.Status = *req.Status
	}

	order.TotalPrice, err = s.computeTotal(order.ID)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveOrder(order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) AddItem(callerID int, req models.CreateOrderItemRequest) (*models.OrderItem, error) {
	if _, err := s.GetOrder(req.OrderID, callerID); err != nil {
		return nil, err
	}

	if _, err := s.store.GetMenuItem(req.ItemID); err != nil {
		return nil, ErrNotFound
	}

	req.Toppings = dedupeIDs(req.Toppings)
	if err := s.checkToppings(req.Toppings); err != nil {
		return nil, err
	}

	item := &models.OrderItem{
		OrderID:  req.OrderID,
		ItemID:   req.ItemID,
		Size:     req.Size,
		Quantity: req.Quantity,
	}

	if err := s.store.CreateOrderItem(item, req.Toppings); err != nil {
		return nil, err
	}

	if err := s.refreshTotal(req.OrderID); err != nil {
		return nil, err
	}
	return s.store.GetOrderItem(item.ID)
}

func (s *OrderService) GetItem(id, callerID int) (*models.OrderItem, error) {
	item, err := s.store.GetOrderItem(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := s.GetOrder(item.OrderID, callerID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *OrderService) ListItems(orderID, callerID int) ([]models.OrderItem, error) {
	if _, err := s.GetOrder(orderID, callerID); err != nil {
		return nil, err
	}
	return s.store.ListOrderItems(orderID)
}

// UpdateItem applies partial-update semantics: omitted quantity and size keep
// their stored values; a supplied topping list replaces the stored set
// entirely, including the empty list clearing it.
func (s *OrderService) UpdateItem(id, callerID int, req models.UpdateOrderItemRequest) (*models.OrderItem, error) {
	item, err := s.GetItem(id, callerID)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Size != nil {
		item.Size = *req.Size
	}
	if req.Toppings != nil {
		deduped := dedupeIDs(*req.Toppings)
		req.Toppings = &deduped
		if err := s.checkToppings(deduped); err != nil {
			return nil, err
		}
	}

	if err := s.store.UpdateOrderItem(item, req.Toppings); err != nil {
		return nil, err
	}

	if err := s.refreshTotal(item.OrderID); err != nil {
		return nil, err
	}
	return s.store.GetOrderItem(item.ID)
}

func (s *OrderService) DeleteItem(id, callerID int) error {
	item, err := s.GetItem(id, callerID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteOrderItem(id); err != nil {
		return err
	}
	return s.refreshTotal(item.OrderID)
}

// dedupeIDs drops repeated ids while keeping first-seen order, so a
// request listing the same topping twice stores a single link row.
func dedupeIDs(ids []int) []int {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[int]bool, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func (s *OrderService) checkToppings(ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.store.GetToppings(ids)
	if err != nil {
		return err
	}
	seen := map[int]bool{}
	for _, t := range found {
		seen[t.ID] = true
	}
	for _, id := range ids {
		if !seen[id] {
			return ErrNotFound
		}
	}
	return nil
}

func (s *OrderService) computeTotal(orderID int) (float64, error) {
	items, err := s.store.ListOrderItems(orderID)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for _, it := range items {
		menuItem, err := s.store.GetMenuItem(it.ItemID)
		if err != nil {
			return 0, err
		}
		total += LineTotal(*menuItem, it.Size, it.Toppings, it.Quantity)
	}
	return total, nil
}

func (s *OrderService) refreshTotal(orderID int) error {
	order, err := s.store.GetOrder(orderID)
	if err != nil {
		return err
	}
	order.TotalPrice, err = s.computeTotal(orderID)
	if err != nil {
		return err
	}
	return s.store.SaveOrder(order)
}
