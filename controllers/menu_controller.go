package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pizza-shop/config"
	"pizza-shop/models"
	"pizza-shop/repositories"
)

type MenuController struct {
	menuRepo *repositories.MenuRepository
}

func NewMenuController() *MenuController {
	return &MenuController{
		menuRepo: repositories.NewMenuRepository(),
	}
}

func (ctrl *MenuController) invalidateMenuCache() {
	if models.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := models.RedisClient.Scan(ctx, 0, "menuitems_*", 0).Iterator()
	for iter.Next(ctx) {
		models.RedisClient.Del(ctx, iter.Val())
	}
}

// GetAllMenuItems godoc
// @Summary List menu items
// @Description Get all menu items, optionally filtered by category
// @Tags Menu
// @Produce json
// @Param category query string false "Filter by category"
// @Success 200 {object} models.Response
// @Router /menuitems [get]
func (ctrl *MenuController) GetAllMenuItems(c *gin.Context) {
	category := c.Query("category")
	ctx := context.Background()
	cacheKey := fmt.Sprintf("menuitems_%s", category)

	if models.RedisClient != nil {
		cached, err := models.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			items := []models.MenuItem{}
			if json.Unmarshal([]byte(cached), &items) == nil {
				c.JSON(http.StatusOK, models.Response{
					Success: true,
					Message: "Menu items retrieved successfully",
					Data:    items,
				})
				return
			}
		}
	}

	items, err := ctrl.menuRepo.GetAllMenuItems(category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve menu items",
		})
		return
	}

	for i := range items {
		items[i].ResolveImageURL(config.AppConfig.BaseURL)
	}

	if models.RedisClient != nil {
		if jsonData, err := json.Marshal(items); err == nil {
			models.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu items retrieved successfully",
		Data:    items,
	})
}

// GetMenuItemByID godoc
// @Summary Get menu item
// @Description Get one menu item by id
// @Tags Menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /menuitems/{id} [get]
func (ctrl *MenuController) GetMenuItemByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	item, err := ctrl.menuRepo.GetMenuItemByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Menu item not found",
		})
		return
	}

	item.ResolveImageURL(config.AppConfig.BaseURL)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu item retrieved successfully",
		Data:    item,
	})
}

// GetAllToppings godoc
// @Summary List toppings
// @Description Get all available toppings
// @Tags Menu
// @Produce json
// @Success 200 {object} models.Response
// @Router /toppings [get]
func (ctrl *MenuController) GetAllToppings(c *gin.Context) {
	toppings, err := ctrl.menuRepo.GetAllToppings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve toppings",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Toppings retrieved successfully",
		Data:    toppings,
	})
}

// GetToppingByID godoc
// @Summary Get topping
// @Description Get one topping by id
// @Tags Menu
// @Produce json
// @Param id path int true "Topping ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /toppings/{id} [get]
func (ctrl *MenuController) GetToppingByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	topping, err := ctrl.menuRepo.GetToppingByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Topping not found",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Topping retrieved successfully",
		Data:    topping,
	})
}

// CreateMenuItem godoc
// @Summary Create menu item
// @Description Create a new menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} models.Response
// @Router /admin/menuitems [post]
func (ctrl *MenuController) CreateMenuItem(c *gin.Context) {
	var req models.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		PriceSmall:  req.PriceSmall,
		PriceLarge:  req.PriceLarge,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
	}

	if err := ctrl.menuRepo.CreateMenuItem(&item); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create menu item",
		})
		return
	}

	ctrl.invalidateMenuCache()
	item.ResolveImageURL(config.AppConfig.BaseURL)

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Menu item created successfully",
		Data:    item,
	})
}

// UpdateMenuItem godoc
// @Summary Update menu item
// @Description Update a menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param item body models.UpdateMenuItemRequest true "Menu item"
// @Success 200 {object} models.Response
// @Router /admin/menuitems/{id} [patch]
func (ctrl *MenuController) UpdateMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.menuRepo.GetMenuItemByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Menu item not found",
		})
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.PriceSmall != nil {
		item.PriceSmall = *req.PriceSmall
	}
	if req.PriceLarge != nil {
		item.PriceLarge = *req.PriceLarge
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Image != nil {
		item.Image = req.Image
	}
	if req.Description != nil {
		item.Description = *req.Description
	}

	if err := ctrl.menuRepo.UpdateMenuItem(item); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update menu item",
		})
		return
	}

	ctrl.invalidateMenuCache()
	item.ResolveImageURL(config.AppConfig.BaseURL)

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu item updated successfully",
		Data:    item,
	})
}

// DeleteMenuItem godoc
// @Summary Delete menu item
// @Description Delete a menu item (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.Response
// @Router /admin/menuitems/{id} [delete]
func (ctrl *MenuController) DeleteMenuItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := ctrl.menuRepo.GetMenuItemByID(id); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Menu item not found",
		})
		return
	}

	if err := ctrl.menuRepo.DeleteMenuItem(id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete menu item",
		})
		return
	}

	ctrl.invalidateMenuCache()

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Menu item deleted successfully",
	})
}

// CreateTopping godoc
// @Summary Create topping
// @Description Create a new topping (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param topping body models.CreateToppingRequest true "Topping"
// @Success 201 {object} models.Response
// @Router /admin/toppings [post]
func (ctrl *MenuController) CreateTopping(c *gin.Context) {
	var req models.CreateToppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	topping := models.Topping{Name: req.Name, Price: req.Price}

	if err := ctrl.menuRepo.CreateTopping(&topping); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create topping",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Topping created successfully",
		Data:    topping,
	})
}

// UpdateTopping godoc
// @Summary Update topping
// @Description Update a topping (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Topping ID"
// @Param topping body models.UpdateToppingRequest true "Topping"
// @Success 200 {object} models.Response
// @Router /admin/toppings/{id} [patch]
func (ctrl *MenuController) UpdateTopping(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req models.UpdateToppingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	topping, err := ctrl.menuRepo.GetToppingByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Topping not found",
		})
		return
	}

	if req.Name != nil {
		topping.Name = *req.Name
	}
	if req.Price != nil {
		topping.Price = *req.Price
	}

	if err := ctrl.menuRepo.UpdateTopping(topping); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to update topping",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Topping updated successfully",
		Data:    topping,
	})
}

// DeleteTopping godoc
// @Summary Delete topping
// @Description Delete a topping (Admin)
// @Tags Admin - Menu
// @Security BearerAuth
// @Produce json
// @Param id path int true "Topping ID"
// @Success 200 {object} models.Response
// @Router /admin/toppings/{id} [delete]
func (ctrl *MenuController) DeleteTopping(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if _, err := ctrl.menuRepo.GetToppingByID(id); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Topping not found",
		})
		return
	}

	if err := ctrl.menuRepo.DeleteTopping(id); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to delete topping",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Topping deleted successfully",
	})
}
