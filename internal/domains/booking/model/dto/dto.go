package dto

import (
	"frontdesk/internal/domains/booking/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	GuestName       string  `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string  `json:"guest_email"      validate:"required,email"`
	GuestPhone      string  `json:"guest_phone"      validate:"omitempty,max=30"`
	GuestIDNumber   string  `json:"guest_id_number"  validate:"omitempty,max=50"`
	GuestCountry    string  `json:"guest_country"    validate:"omitempty,max=60"`
	RoomNumber      string  `json:"room_number"      validate:"required,max=20"`
	CheckInDate     string  `json:"check_in_date"    validate:"required,dateonly"`
	CheckOutDate    string  `json:"check_out_date"   validate:"omitempty,dateonly"`
	StayType        string  `json:"stay_type"        validate:"omitempty,oneof='Night Stay' 'Short Time'"`
	BookingAmount   float64 `json:"booking_amount"   validate:"omitempty,min=0"`
	AdditionalNotes string  `json:"additional_notes" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	checkIn = timezone.Midnight(checkIn)

	stayType := c.StayType
	if stayType == constant.Empty {
		stayType = model.StayTypeNight
	}

	// Short Time stays never span a night; a missing checkout date collapses
	// to the check-in date as well.
	checkOut := checkIn

	if stayType != model.StayTypeShort && c.CheckOutDate != constant.Empty {
		parsed, err := timezone.Parse(constant.DateOnlyFormat, c.CheckOutDate)
		if err != nil {
			return model.Booking{}, failure.BadRequest(err) //nolint:wrapcheck
		}

		checkOut = timezone.Midnight(parsed)
	}

	return model.Booking{
		ID:              uuid.NewString(),
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		GuestIDNumber:   c.GuestIDNumber,
		GuestCountry:    c.GuestCountry,
		RoomNumber:      c.RoomNumber,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		StayType:        stayType,
		BookingAmount:   c.BookingAmount,
		Status:          model.StatusUpcoming,
		AdditionalNotes: c.AdditionalNotes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	GuestName       string   `db:"guest_name"       json:"guest_name"       validate:"omitempty,max=100"`
	GuestEmail      string   `db:"guest_email"      json:"guest_email"      validate:"omitempty,email"`
	GuestPhone      string   `db:"guest_phone"      json:"guest_phone"      validate:"omitempty,max=30"`
	GuestIDNumber   string   `db:"guest_id_number"  json:"guest_id_number"  validate:"omitempty,max=50"`
	GuestCountry    string   `db:"guest_country"    json:"guest_country"    validate:"omitempty,max=60"`
	RoomNumber      string   `db:"room_number"      json:"room_number"      validate:"omitempty,max=20"`
	CheckInDate     string   `json:"check_in_date"  validate:"omitempty,dateonly"`
	CheckOutDate    string   `json:"check_out_date" validate:"omitempty,dateonly"`
	StayType        string   `db:"stay_type"        json:"stay_type"        validate:"omitempty,oneof='Night Stay' 'Short Time'"`
	BookingAmount   *float64 `db:"booking_amount"   json:"booking_amount"   validate:"omitempty,min=0"`
	AdditionalNotes string   `db:"additional_notes" json:"additional_notes" validate:"omitempty"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone"`
	GuestIDNumber   string  `json:"guest_id_number"`
	GuestCountry    string  `json:"guest_country"`
	RoomNumber      string  `json:"room_number"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	StayType        string  `json:"stay_type"`
	BookingAmount   float64 `json:"booking_amount"`
	Status          string  `json:"status"`
	AdditionalNotes string  `json:"additional_notes"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.GuestName = model.GuestName
	b.GuestEmail = model.GuestEmail
	b.GuestPhone = model.GuestPhone
	b.GuestIDNumber = model.GuestIDNumber
	b.GuestCountry = model.GuestCountry
	b.RoomNumber = model.RoomNumber
	b.CheckInDate = timezone.Format(model.CheckInDate, constant.DateOnlyFormat)
	b.CheckOutDate = timezone.Format(model.CheckOutDate, constant.DateOnlyFormat)
	b.StayType = model.StayType
	b.BookingAmount = model.BookingAmount
	b.Status = model.Status
	b.AdditionalNotes = model.AdditionalNotes
	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (b *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	b.TotalData = totalData
	b.TotalPage = shared.CalculateTotalPage(totalData, limit)

	b.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		b.Bookings[i].FromModel(mod)
	}
}

type GuestResponse struct {
	GuestName     string            `json:"guest_name"`
	GuestEmail    string            `json:"guest_email"`
	GuestPhone    string            `json:"guest_phone"`
	GuestCountry  string            `json:"guest_country"`
	TotalBookings int               `json:"total_bookings"`
	TotalSpent    float64           `json:"total_spent"`
	Bookings      []BookingResponse `json:"bookings"`
}

type GetGuestsResponse struct {
	Guests     []GuestResponse `json:"guests"`
	TotalGuest int             `json:"total_guest"`
}

// FromModels groups bookings by guest email. Guest identity fields come from
// the most recent booking of each guest; models are expected newest first.
func (g *GetGuestsResponse) FromModels(models []model.Booking) {
	index := map[string]int{}
	g.Guests = []GuestResponse{}

	for _, mod := range models {
		i, ok := index[mod.GuestEmail]
		if !ok {
			i = len(g.Guests)
			index[mod.GuestEmail] = i

			g.Guests = append(g.Guests, GuestResponse{
				GuestName:    mod.GuestName,
				GuestEmail:   mod.GuestEmail,
				GuestPhone:   mod.GuestPhone,
				GuestCountry: mod.GuestCountry,
			})
		}

		booking := BookingResponse{}
		booking.FromModel(mod)

		g.Guests[i].Bookings = append(g.Guests[i].Bookings, booking)
		g.Guests[i].TotalBookings++
		g.Guests[i].TotalSpent += mod.BookingAmount
	}

	g.TotalGuest = len(g.Guests)
}
