package services

import (
	"context"

	"gorm.io/gorm"

	"prom_map/internal/models"
)

// PaymentService reads the local YooKassa payment mirror. Rows are written by
// the gateway webhook owner, never by this service.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// List returns mirrored payments, newest first.
func (s *PaymentService) List(ctx context.Context) ([]models.YookassaPayment, error) {
	payments := make([]models.YookassaPayment, 0)
	if err := s.DB.WithContext(ctx).Order("id DESC").Find(&payments).Error; err != nil {
		return nil, translate("list payments", err)
	}
	return payments, nil
}

// GetByPaymentID looks a payment up by the gateway's identifier.
func (s *PaymentService) GetByPaymentID(ctx context.Context, paymentID string) (*models.YookassaPayment, error) {
	var payment models.YookassaPayment
	if err := s.DB.WithContext(ctx).Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
		return nil, translate("get payment", err)
	}
	return &payment, nil
}
