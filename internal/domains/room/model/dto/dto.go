package dto

import (
	"frontdesk/internal/domains/room/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	RoomNumber    string   `json:"room_number"     validate:"required,max=20"`
	RoomType      string   `json:"room_type"       validate:"required,oneof=Suite Double Triple"`
	Status        string   `json:"status"          validate:"omitempty,oneof=Available Occupied Reserved"`
	PricePerNight float64  `json:"price_per_night" validate:"omitempty,min=0"`
	MaxOccupancy  int      `json:"max_occupancy"   validate:"omitempty,min=0"`
	Amenities     []string `json:"amenities"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == constant.Empty {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    c.RoomNumber,
		RoomType:      c.RoomType,
		Status:        status,
		PricePerNight: c.PricePerNight,
		MaxOccupancy:  c.MaxOccupancy,
		Amenities:     pq.StringArray(c.Amenities),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomType      string         `db:"room_type"       json:"room_type"       validate:"omitempty,oneof=Suite Double Triple"`
	PricePerNight *float64       `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=0"`
	MaxOccupancy  *int           `db:"max_occupancy"   json:"max_occupancy"   validate:"omitempty,min=0"`
	Amenities     pq.StringArray `db:"amenities"       json:"amenities"       validate:"omitempty"`
}

type UpdateRoomStatusRequest struct {
	Status       string `json:"status"         validate:"omitempty,oneof=Available Occupied Reserved"`
	CurrentGuest string `json:"current_guest"  validate:"omitempty,max=100"`
	CheckInDate  string `json:"check_in_date"  validate:"omitempty,dateonly"`
	CheckOutDate string `json:"check_out_date" validate:"omitempty,dateonly"`
}

type RoomResponse struct {
	ID            string   `json:"id"`
	RoomNumber    string   `json:"room_number"`
	RoomType      string   `json:"room_type"`
	Status        string   `json:"status"`
	CurrentGuest  *string  `json:"current_guest,omitempty"`
	CheckInDate   *string  `json:"check_in_date,omitempty"`
	CheckOutDate  *string  `json:"check_out_date,omitempty"`
	PricePerNight float64  `json:"price_per_night"`
	MaxOccupancy  int      `json:"max_occupancy"`
	Amenities     []string `json:"amenities"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Status = model.Status
	r.PricePerNight = model.PricePerNight
	r.MaxOccupancy = model.MaxOccupancy
	r.Amenities = model.Amenities

	if model.CurrentGuest.Valid {
		guest := model.CurrentGuest.String
		r.CurrentGuest = &guest
	}

	if model.CheckInDate.Valid {
		checkIn := timezone.Format(model.CheckInDate.Time, constant.DateOnlyFormat)
		r.CheckInDate = &checkIn
	}

	if model.CheckOutDate.Valid {
		checkOut := timezone.Format(model.CheckOutDate.Time, constant.DateOnlyFormat)
		r.CheckOutDate = &checkOut
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
