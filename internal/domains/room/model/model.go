package model

import (
	"database/sql"

	"frontdesk/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldRoomType      = "room_type"
	FieldStatus        = "status"
	FieldCurrentGuest  = "current_guest"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldPricePerNight = "price_per_night"
	FieldMaxOccupancy  = "max_occupancy"
	FieldAmenities     = "amenities"
)

const (
	StatusAvailable = "Available"
	StatusOccupied  = "Occupied"
	StatusReserved  = "Reserved"
)

const (
	TypeSuite  = "Suite"
	TypeDouble = "Double"
	TypeTriple = "Triple"
)

type Room struct {
	ID            string         `db:"id"`
	RoomNumber    string         `db:"room_number"`
	RoomType      string         `db:"room_type"`
	Status        string         `db:"status"`
	CurrentGuest  sql.NullString `db:"current_guest"`
	CheckInDate   sql.NullTime   `db:"check_in_date"`
	CheckOutDate  sql.NullTime   `db:"check_out_date"`
	PricePerNight float64        `db:"price_per_night"`
	MaxOccupancy  int            `db:"max_occupancy"`
	Amenities     pq.StringArray `db:"amenities"`
	model.Metadata
}
