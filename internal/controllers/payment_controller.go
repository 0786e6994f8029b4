package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"prom_map/internal/models"
)

// PaymentStore reads the YooKassa payment mirror.
type PaymentStore interface {
	List(ctx context.Context) ([]models.YookassaPayment, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*models.YookassaPayment, error)
}

// PaymentController exposes the payment mirror read-only.
type PaymentController struct {
	Store PaymentStore
}

func NewPaymentController(store PaymentStore) *PaymentController {
	return &PaymentController{Store: store}
}

const paymentNotFound = "Payment not found"

func (pc *PaymentController) List(c *gin.Context) {
	payments, err := pc.Store.List(c.Request.Context())
	if err != nil {
		respondError(c, paymentNotFound, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Get looks a payment up by the gateway's payment id.
func (pc *PaymentController) Get(c *gin.Context) {
	payment, err := pc.Store.GetByPaymentID(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		respondError(c, paymentNotFound, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}
