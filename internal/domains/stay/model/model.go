package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID                = "id"
	FieldBookingID         = "booking_id"
	FieldName              = "name"
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldCurrentRoom       = "current_room"
	FieldCheckInDate       = "check_in_date"
	FieldCheckOutDate      = "check_out_date"
	FieldAdvanceAmount     = "advance_amount"
	FieldNotes             = "notes"
	FieldRoomCharges       = "room_charges"
	FieldAdditionalCharges = "additional_charges"
	FieldDiscountAmount    = "discount_amount"
	FieldTotalAmount       = "total_amount"
)

// Customer is an in-house guest. A row exists only for the duration of the
// physical stay; checkout removes it after the Daily Sale snapshot is taken.
// RoomCharges is copied verbatim from the booking quote at check-in and is
// never recomputed.
type Customer struct {
	ID                string    `db:"id"`
	BookingID         string    `db:"booking_id"`
	Name              string    `db:"name"`
	Email             string    `db:"email"`
	Phone             string    `db:"phone"`
	CurrentRoom       string    `db:"current_room"`
	CheckInDate       time.Time `db:"check_in_date"`
	CheckOutDate      time.Time `db:"check_out_date"`
	AdvanceAmount     float64   `db:"advance_amount"`
	Notes             string    `db:"notes"`
	RoomCharges       float64   `db:"room_charges"`
	AdditionalCharges float64   `db:"additional_charges"`
	DiscountAmount    float64   `db:"discount_amount"`
	TotalAmount       float64   `db:"total_amount"`
	model.Metadata
}
