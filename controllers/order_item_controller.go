package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pizza-shop/models"
	"pizza-shop/repositories"
	"pizza-shop/services"
)

type OrderItemController struct {
	orderService *services.OrderService
}

func NewOrderItemController() *OrderItemController {
	return &OrderItemController{
		orderService: services.NewOrderService(repositories.NewOrderRepository()),
	}
}

func (ctrl *OrderItemController) respondError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Not found",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: fallback,
	})
}

// GetOrderItems godoc
// @Summary List order items
// @Description Get all items of one of the authenticated user's orders
// @Tags Order Items
// @Security BearerAuth
// @Produce json
// @Param order_id query int true "Order ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orderitems [get]
func (ctrl *OrderItemController) GetOrderItems(c *gin.Context) {
	userID := c.GetInt("user_id")
	orderID, err := strconv.Atoi(c.Query("order_id"))
	if err != nil || orderID <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "order_id query parameter is required",
		})
		return
	}

	items, err := ctrl.orderService.ListItems(orderID, userID)
	if err != nil {
		ctrl.respondError(c, err, "Failed to retrieve order items")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order items retrieved successfully",
		Data:    items,
	})
}

// GetOrderItemByID godoc
// @Summary Get order item
// @Description Get one order line by id
// @Tags Order Items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orderitems/{id} [get]
func (ctrl *OrderItemController) GetOrderItemByID(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctrl.orderService.GetItem(id, userID)
	if err != nil {
		ctrl.respondError(c, err, "Failed to retrieve order item")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order item retrieved successfully",
		Data:    item,
	})
}

// CreateOrderItem godoc
// @Summary Add order item
// @Description Add a line (item, size, quantity, toppings) to one of the user's orders
// @Tags Order Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.CreateOrderItemRequest true "Order item"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orderitems [post]
func (ctrl *OrderItemController) CreateOrderItem(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.orderService.AddItem(userID, req)
	if err != nil {
		ctrl.respondError(c, err, "Failed to create order item")
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order item created successfully",
		Data:    item,
	})
}

// UpdateOrderItem godoc
// @Summary Update order item
// @Description Partial update: omitted quantity/size keep their stored values;
// @Description a supplied toppings list replaces the stored set entirely
// @Tags Order Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Order item ID"
// @Param item body models.UpdateOrderItemRequest true "Fields to update"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orderitems/{id} [patch]
func (ctrl *OrderItemController) UpdateOrderItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.orderService.UpdateItem(id, userID, req)
	if err != nil {
		ctrl.respondError(c, err, "Failed to update order item")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order item updated successfully",
		Data:    item,
	})
}

// DeleteOrderItem godoc
// @Summary Delete order item
// @Description Remove a line from one of the user's orders
// @Tags Order Items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Order item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /orderitems/{id} [delete]
func (ctrl *OrderItemController) DeleteOrderItem(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	if err := ctrl.orderService.DeleteItem(id, userID); err != nil {
		ctrl.respondError(c, err, "Failed to delete order item")
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order item deleted successfully",
	})
}
