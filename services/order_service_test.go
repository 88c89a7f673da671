package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"pizza-shop/models"
)

// memOrderStore is an in-memory OrderStore for exercising the service logic
// without Postgres.
type memOrderStore struct {
	orders       map[int]*models.Order
	items        map[int]*models.OrderItem
	itemToppings map[int][]int
	menu         map[int]models.MenuItem
	toppings     map[int]models.Topping
	nextOrderID  int
	nextItemID   int
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{
		orders:       map[int]*models.Order{},
		items:        map[int]*models.OrderItem{},
		itemToppings: map[int][]int{},
		menu: map[int]models.MenuItem{
			1: {ID: 1, Name: "Margherita", PriceSmall: 8.00, PriceLarge: 12.00, Category: "Pizza"},
			2: {ID: 2, Name: "Garlic Bread", PriceSmall: 4.50, PriceLarge: 6.50, Category: "Breads"},
		},
		toppings: map[int]models.Topping{
			1: {ID: 1, Name: "Mushrooms", Price: 1.00},
			2: {ID: 2, Name: "Olives", Price: 0.75},
			3: {ID: 3, Name: "Pepperoni", Price: 1.50},
		},
		nextOrderID: 1,
		nextItemID:  1,
	}
}

func (m *memOrderStore) CreateOrder(o *models.Order) error {
	o.ID = m.nextOrderID
	m.nextOrderID++
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	saved := *o
	m.orders[o.ID] = &saved
	return nil
}

func (m *memOrderStore) GetOrder(id int) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	out := *o
	out.Items, _ = m.ListOrderItems(id)
	return &out, nil
}

func (m *memOrderStore) ListOrdersByUser(userID, limit, offset int) ([]models.Order, int, error) {
	orders := []models.Order{}
	for _, o := range m.orders {
		if o.UserID == userID {
			out := *o
			out.Items, _ = m.ListOrderItems(o.ID)
			orders = append(orders, out)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, len(orders), nil
}

func (m *memOrderStore) SaveOrder(o *models.Order) error {
	stored, ok := m.orders[o.ID]
	if !ok {
		return errors.New("no rows")
	}
	stored.Status = o.Status
	stored.TotalPrice = o.TotalPrice
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *memOrderStore) ListOrderItems(orderID int) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	for _, it := range m.items {
		if it.OrderID == orderID {
			out := *it
			out.Toppings = m.resolveToppings(it.ID)
			items = append(items, out)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *memOrderStore) GetOrderItem(id int) (*models.OrderItem, error) {
	it, ok := m.items[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	out := *it
	out.Toppings = m.resolveToppings(id)
	return &out, nil
}

func (m *memOrderStore) CreateOrderItem(it *models.OrderItem, toppingIDs []int) error {
	it.ID = m.nextItemID
	m.nextItemID++
	saved := *it
	m.items[it.ID] = &saved
	m.itemToppings[it.ID] = append([]int{}, toppingIDs...)
	return nil
}

func (m *memOrderStore) UpdateOrderItem(it *models.OrderItem, toppingIDs *[]int) error {
	stored, ok := m.items[it.ID]
	if !ok {
		return errors.New("no rows")
	}
	stored.Size = it.Size
	stored.Quantity = it.Quantity
	if toppingIDs != nil {
		m.itemToppings[it.ID] = append([]int{}, (*toppingIDs)...)
	}
	return nil
}

func (m *memOrderStore) DeleteOrderItem(id int) error {
	delete(m.items, id)
	delete(m.itemToppings, id)
	return nil
}

func (m *memOrderStore) GetMenuItem(id int) (*models.MenuItem, error) {
	mi, ok := m.menu[id]
	if !ok {
		return nil, errors.New("no rows")
	}
	return &mi, nil
}

func (m *memOrderStore) GetToppings(ids []int) ([]models.Topping, error) {
	found := []models.Topping{}
	for _, id := range ids {
		if t, ok := m.toppings[id]; ok {
			found = append(found, t)
		}
	}
	return found, nil
}

func (m *memOrderStore) resolveToppings(itemID int) []models.Topping {
	toppings := []models.Topping{}
	for _, tid := range m.itemToppings[itemID] {
		toppings = append(toppings, m.toppings[tid])
	}
	return toppings
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
func idsPtr(v []int) *[]int   { return &v }

func TestCreateOrderAssignsOwner(t *testing.T) {
	store := newMemOrderStore()
	svc := NewOrderService(store)

	// The request carries no user field at all; whatever user id a client
	// sends in the body never reaches the service.
	order, err := svc.CreateOrder(7, models.CreateOrderRequest{Status: "pending", TotalPrice: 12.50})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.UserID != 7 {
		t.Errorf("order owner = %d, want 7", order.UserID)
	}

	stored, _ := store.GetOrder(order.ID)
	if stored.UserID != 7 {
		t.Errorf("persisted owner = %d, want 7", stored.UserID)
	}
}

func TestGetOrderHidesOtherUsersOrders(t *testing.T) {
	store := newMemOrderStore()
	svc := NewOrderService(store)

	order, _ := svc.CreateOrder(7, models.CreateOrderRequest{})

	if _, err := svc.GetOrder(order.ID, 7); err != nil {
		t.Errorf("owner read failed: %v", err)
	}
	if _, err := svc.GetOrder(order.ID, 8); !errors.Is(err, ErrNotFound) {
		t.Errorf("non-owner read: got %v, want ErrNotFound", err)
	}
}

func TestAddItemRejectsUnknownReferences(t *testing.T) {
	store := newMemOrderStore()
	svc := NewOrderService(store)
	order, _ := svc.CreateOrder(7, models.CreateOrderRequest{})

	tests := []struct {
		name string
		req  models.CreateOrderItemRequest
	}{
		{"unknown order", models.CreateOrderItemRequest{OrderID: 999, ItemID: 1, Size: "Small", Quantity: 1}},
		{"unknown menu item", models.CreateOrderItemRequest{OrderID: order.ID, ItemID: 999, Size: "Small", Quantity: 1}},
		{"unknown topping", models.CreateOrderItemRequest{OrderID: order.ID, ItemID: 1, Size: "Small", Quantity: 1, Toppings: []int{999}}},
	}
	for _, tt := range tests {
		if _, err := svc.AddItem(7, tt.req); !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: got %v, want ErrNotFound", tt.name, err)
		}
	}
}

func TestUpdateItemPartialSemantics(t *testing.T) {
	store := newMemOrderStore()
	svc := NewOrderService(store)
	order, _ := svc.CreateOrder(7, models.CreateOrderRequest{})

	item, err := svc.AddItem(7, models.CreateOrderItemRequest{
		OrderID:  order.ID,
		ItemID:   1,
		Size:     "Small",
		Quantity: 2,
		Toppings: []int{1, 2},
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	// Omitting quantity and size leaves them untouched; supplying an empty
	// toppings list clears the set rather than keeping it.
	updated, err := svc.UpdateItem(item.ID, 7, models.UpdateOrderItemRequest{Toppings: idsPtr([]int{})})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if updated.Quantity != 2 || updated.Size != "Small" {
		t.Errorf("quantity/size changed: got %d/%s, want 2/Small", updated.Quantity, updated.Size)
	}
	if len(updated.Toppings) != 0 {
		t.Errorf("toppings not cleared: %v", updated.Toppings)
	}

	// A supplied set replaces, not merges.
	updated, err = svc.UpdateItem(item.ID, 7, models.UpdateOrderItemRequest{
		Quantity: intPtr(5),
		Toppings: idsPtr([]int{3}),
	})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if updated.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", updated.Quantity)
	}
	if len(updated.Toppings) != 1 || updated.Toppings[0].ID != 3 {
		t.Errorf("toppings = %v, want just Pepperoni", updated.Toppings)
	}

	// Omitting toppings keeps the stored set.
	updated, err = svc.UpdateItem(item.ID, 7, models.UpdateOrderItemRequest{Size: strPtr("Large")})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if updated.Size != "Large" || len(updated.Toppings) != 1 {
		t.Errorf("got size=%s toppings=%v, want Large with one topping", updated.Size, updated.Toppings)
	}
}

func TestUpdateItemDeniedForNonOwner(t *testing.T) {
	store := newMemOrderStore()
	svc := NewOrderService(store)
	order, _ := svc.CreateOrder(7, models.CreateOrderRequest{})
	item, _ := svc.AddItem(7, models.CreateOrderItemRequest{
		OrderID: order.ID, ItemID: 1, Size: "Small", Quantity: 1,
	})

	_, err := svc.UpdateItem(item.ID, 8, models.UpdateOrderItemRequest{Quantity: intPtr(3)})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("non-owner update: got %v, want ErrNotFound", err)
	}
}

func TestOrderTotalRecomputedFromItems(t *testing.T) {
	store := newMemOrderStore()
	svc := NewOrderService(store)
	order, _ := svc.CreateOrder(7, models.CreateOrderRequest{})

	// Small Margherita x2 with mushrooms and olives: (8.00+1.00+0.75)*2 = 19.50
	item, err := svc.AddItem(7, models.CreateOrderItemRequest{
		OrderID: order.ID, ItemID: 1, Size: "Small", Quantity: 2, Toppings: []int{1, 2},
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	got, _ := svc.GetOrder(order.ID, 7)
	if got.TotalPrice != 19.50 {
		t.Errorf("total after add = %.2f, want 19.50", got.TotalPrice)
	}

	// Large Garlic Bread x1: 6.50 -> 26.00
	if _, err := svc.AddItem(7, models.CreateOrderItemRequest{
		OrderID: order.ID, ItemID: 2, Size: "Large", Quantity: 1,
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	got, _ = svc.GetOrder(order.ID, 7)
	if got.TotalPrice != 26.00 {
		t.Errorf("total after second add = %.2f, want 26.00", got.TotalPrice)
	}

	// Dropping the first line leaves just the bread.
	if err := svc.DeleteItem(item.ID, 7); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	got, _ = svc.GetOrder(order.ID, 7)
	if got.TotalPrice != 6.50 {
		t.Errorf("total after delete = %.2f, want 6.50", got.TotalPrice)
	}
}

func TestUpdateOrderKeepsStatusWhenOmitted(t *testing.T) {
	store := newMemOrderStore()
	svc := NewOrderService(store)
	order, _ := svc.CreateOrder(7, models.CreateOrderRequest{Status: "pending"})

	updated, err := svc.UpdateOrder(order.ID, 7, models.UpdateOrderRequest{})
	if err != nil {
		t.Fatalf("update order: %v", err)
	}
	if updated.Status != "pending" {
		t.Errorf("status = %q, want pending", updated.Status)
	}

	updated, err = svc.UpdateOrder(order.ID, 7, models.UpdateOrderRequest{Status: strPtr("delivered")})
	if err != nil {
		t.Fatalf("update order: %v", err)
	}
	if updated.Status != "delivered" {
		t.Errorf("status = %q, want delivered", updated.Status)
	}
}

// A topping listed twice counts once, both in storage and in the total.
func TestRepeatedToppingIDsCollapse(t *testing.T) {
	store := newMemOrderStore()
	svc := NewOrderService(store)
	order, _ := svc.CreateOrder(7, models.CreateOrderRequest{})

	item, err := svc.AddItem(7, models.CreateOrderItemRequest{
		OrderID: order.ID, ItemID: 1, Size: "Small", Quantity: 1, Toppings: []int{1, 1},
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	if got := store.itemToppings[item.ID]; len(got) != 1 || got[0] != 1 {
		t.Errorf("stored topping ids = %v, want [1]", got)
	}

	// Small Margherita 8.00 plus one Mushrooms 1.00, not two.
	got, _ := svc.GetOrder(order.ID, 7)
	if got.TotalPrice != 9.00 {
		t.Errorf("total = %.2f, want 9.00", got.TotalPrice)
	}

	updated, err := svc.UpdateItem(item.ID, 7, models.UpdateOrderItemRequest{
		Toppings: idsPtr([]int{2, 3, 2}),
	})
	if err != nil {
		t.Fatalf("update item: %v", err)
	}
	if len(updated.Toppings) != 2 {
		t.Errorf("toppings after update = %v, want Olives and Pepperoni once each", updated.Toppings)
	}
	if got := store.itemToppings[item.ID]; len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("stored topping ids = %v, want [2 3]", got)
	}
}
