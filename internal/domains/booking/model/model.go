package model

import (
	"time"

	"frontdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldGuestIDNumber   = "guest_id_number"
	FieldGuestCountry    = "guest_country"
	FieldRoomNumber      = "room_number"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldStayType        = "stay_type"
	FieldBookingAmount   = "booking_amount"
	FieldStatus          = "status"
	FieldAdditionalNotes = "additional_notes"
)

const (
	StatusUpcoming  = "Upcoming"
	StatusCheckedIn = "Checked-in"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

const (
	StayTypeNight = "Night Stay"
	StayTypeShort = "Short Time"
)

type Booking struct {
	ID              string    `db:"id"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      string    `db:"guest_phone"`
	GuestIDNumber   string    `db:"guest_id_number"`
	GuestCountry    string    `db:"guest_country"`
	RoomNumber      string    `db:"room_number"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckOutDate    time.Time `db:"check_out_date"`
	StayType        string    `db:"stay_type"`
	BookingAmount   float64   `db:"booking_amount"`
	Status          string    `db:"status"`
	AdditionalNotes string    `db:"additional_notes"`
	model.Metadata
}
