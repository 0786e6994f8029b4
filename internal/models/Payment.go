package models

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentStatus mirrors the gateway's payment state.
type PaymentStatus string

const (
	PaymentPending           PaymentStatus = "pending"
	PaymentWaitingForCapture PaymentStatus = "waiting_for_capture"
	PaymentSucceeded         PaymentStatus = "succeeded"
	PaymentCanceled          PaymentStatus = "canceled"
	PaymentRefunded          PaymentStatus = "refunded"
	PaymentPartialRefunded   PaymentStatus = "partial_refunded"
)

// RefundStatus mirrors the gateway's refund state.
type RefundStatus string

const (
	NotRefunded     RefundStatus = "not_refunded"
	Refunded        RefundStatus = "refunded"
	PartialRefunded RefundStatus = "partial_refunded"
)

// YookassaPayment is a local copy of a payment owned by the YooKassa gateway.
// The gateway is the source of truth; nothing in this service writes these rows.
type YookassaPayment struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	UserID             *uint          `json:"user_id"`
	PaymentID          string         `gorm:"uniqueIndex;not null" json:"payment_id"`
	OrderID            string         `gorm:"not null" json:"order_id"`
	PaidAt             *time.Time     `json:"paid_at"`
	ConfirmationURL    *string        `json:"confirmation_url"`
	Status             *PaymentStatus `gorm:"type:varchar(32)" json:"status"`
	StatusRefund       RefundStatus   `gorm:"type:varchar(32);not null;default:'not_refunded'" json:"status_refund"`
	Amount             float64        `gorm:"not null;check:amount >= 0" json:"amount"`
	RefundAmount       float64        `gorm:"not null;default:0;check:refund_amount >= 0" json:"refund_amount"`
	Currency           string         `gorm:"not null" json:"currency"`
	Description        *string        `json:"description"`
	Metadata           datatypes.JSON `json:"metadata"`
	RecipientAccountID *uint          `json:"recipient_account_id"`
	RecipientGatewayID *uint          `json:"recipient_gateway_id"`
	IsRefundable       bool           `gorm:"not null;default:false" json:"is_refundable"`
	IsTest             bool           `gorm:"not null;default:false" json:"is_test"`
	IsPaid             bool           `gorm:"not null;default:false" json:"is_paid"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (YookassaPayment) TableName() string { return "yookassa_payments" }
