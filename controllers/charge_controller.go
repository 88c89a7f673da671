package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pizza-shop/config"
	"pizza-shop/models"
	"pizza-shop/repositories"
	"pizza-shop/services"
)

type ChargeController struct {
	paymentService  *services.PaymentService
	transactionRepo *repositories.TransactionRepository
}

func NewChargeController() *ChargeController {
	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
		emailService = nil
	}

	transactionRepo := repositories.NewTransactionRepository()
	return &ChargeController{
		paymentService: services.NewPaymentService(
			services.NewStripeChargeClient(config.AppConfig.StripeSecretKey),
			transactionRepo,
			emailService,
		),
		transactionRepo: transactionRepo,
	}
}

// Charge godoc
// @Summary Submit a charge
// @Description Charge the given amount against a payment token. On success a
// @Description transaction is recorded; a declined or failed charge writes nothing.
// @Tags Payments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.ChargeRequest true "Charge Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /charge [post]
func (ctrl *ChargeController) Charge(c *gin.Context) {
	userID := c.GetInt("user_id")
	userEmail := c.GetString("user_email")

	var req models.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	transaction, err := ctrl.paymentService.Charge(userID, userEmail, req)
	if err != nil {
		var paymentErr *services.PaymentError
		if errors.As(err, &paymentErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Payment failed",
				Error:   paymentErr.Reason,
			})
			return
		}
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Message: "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to record payment",
		})
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Payment successful",
		Data:    transaction,
	})
}

// GetTransactions godoc
// @Summary List transactions
// @Description Get the authenticated user's payment transactions
// @Tags Payments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /transactions [get]
func (ctrl *ChargeController) GetTransactions(c *gin.Context) {
	userID := c.GetInt("user_id")

	transactions, err := ctrl.transactionRepo.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve transactions",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Transactions retrieved successfully",
		Data:    transactions,
	})
}
