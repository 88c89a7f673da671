package models

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CreateOrderRequest deliberately has no user field: the owner always comes
// from the authenticated context, and any user id in the body is ignored.
type CreateOrderRequest struct {
	Status     string  `json:"status" binding:"omitempty"`
	TotalPrice float64 `json:"total_price" binding:"omitempty,gte=0"`
}

type UpdateOrderRequest struct {
	Status *string `json:"status"`
}

type CreateOrderItemRequest struct {
	OrderID  int    `json:"order" binding:"required"`
	ItemID   int    `json:"item" binding:"required"`
	Size     string `json:"size" binding:"required,oneof=Small Large"`
	Quantity int    `json:"quantity" binding:"required,gte=1"`
	Toppings []int  `json:"toppings"`
}

// UpdateOrderItemRequest uses pointers so an omitted field can be told apart
// from a zero value. A present toppings list fully replaces the stored set;
// an omitted one leaves it untouched.
type UpdateOrderItemRequest struct {
	Size     *string `json:"size" binding:"omitempty,oneof=Small Large"`
	Quantity *int    `json:"quantity" binding:"omitempty,gte=1"`
	Toppings *[]int  `json:"toppings"`
}

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	PriceSmall  float64 `json:"price_small" binding:"required,gt=0"`
	PriceLarge  float64 `json:"price_large" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,oneof=Pizza Breads Deserts"`
	Image       *string `json:"image"`
	Description string  `json:"description"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	PriceSmall  *float64 `json:"price_small" binding:"omitempty,gt=0"`
	PriceLarge  *float64 `json:"price_large" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,oneof=Pizza Breads Deserts"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

type CreateToppingRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,gt=0"`
}

type UpdateToppingRequest struct {
	Name  *string  `json:"name" binding:"omitempty,min=1"`
	Price *float64 `json:"price" binding:"omitempty,gt=0"`
}

type ChargeRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Token       string  `json:"token" binding:"required"`
	Description string  `json:"description"`
	OrderID     *int    `json:"order_id"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type MetaData struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    MetaData    `json:"meta"`
}
