package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "daily_sales"
	EntityName = "daily sale"

	FieldID                = "id"
	FieldSaleDate          = "sale_date"
	FieldCustomerName      = "customer_name"
	FieldRoomNumber        = "room_number"
	FieldRoomCharges       = "room_charges"
	FieldAdditionalCharges = "additional_charges"
	FieldDiscountAmount    = "discount_amount"
	FieldAdvanceAmount     = "advance_amount"
	FieldTotalAmount       = "total_amount"
	FieldPaymentMethod     = "payment_method"
)

// DailySale is an immutable checkout receipt. Rows are only ever inserted;
// financial reports treat them as the sole source of room revenue.
type DailySale struct {
	ID                string    `db:"id"`
	SaleDate          time.Time `db:"sale_date"`
	CustomerName      string    `db:"customer_name"`
	RoomNumber        string    `db:"room_number"`
	RoomCharges       float64   `db:"room_charges"`
	AdditionalCharges float64   `db:"additional_charges"`
	DiscountAmount    float64   `db:"discount_amount"`
	AdvanceAmount     float64   `db:"advance_amount"`
	TotalAmount       float64   `db:"total_amount"`
	PaymentMethod     string    `db:"payment_method"`
	model.Metadata
}
