package dto

import (
	"frontdesk/internal/domains/stay/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/timezone"
)

type CheckInRequest struct {
	BookingID     string  `json:"booking_id"     validate:"required"`
	AdvanceAmount float64 `json:"advance_amount" validate:"omitempty,min=0"`
	Notes         string  `json:"notes"          validate:"omitempty,max=500"`
}

type CheckoutRequest struct {
	CustomerID       string  `json:"customer_id"       validate:"required"`
	AdditionalAmount float64 `json:"additional_amount" validate:"omitempty,min=0"`
	DiscountAmount   float64 `json:"discount_amount"   validate:"omitempty,min=0"`
	PaymentMethod    string  `json:"payment_method"    validate:"omitempty,max=50"`
}

type CustomerResponse struct {
	ID                string  `json:"id"`
	BookingID         string  `json:"booking_id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	CurrentRoom       string  `json:"current_room"`
	CheckInDate       string  `json:"check_in_date"`
	CheckOutDate      string  `json:"check_out_date"`
	AdvanceAmount     float64 `json:"advance_amount"`
	Notes             string  `json:"notes"`
	RoomCharges       float64 `json:"room_charges"`
	AdditionalCharges float64 `json:"additional_charges"`
	DiscountAmount    float64 `json:"discount_amount"`
	TotalAmount       float64 `json:"total_amount"`
	gDto.Metadata
}

func (c *CustomerResponse) FromModel(model model.Customer) {
	c.ID = model.ID
	c.BookingID = model.BookingID
	c.Name = model.Name
	c.Email = model.Email
	c.Phone = model.Phone
	c.CurrentRoom = model.CurrentRoom
	c.CheckInDate = timezone.Format(model.CheckInDate, constant.DateOnlyFormat)
	c.CheckOutDate = timezone.Format(model.CheckOutDate, constant.DateOnlyFormat)
	c.AdvanceAmount = model.AdvanceAmount
	c.Notes = model.Notes
	c.RoomCharges = model.RoomCharges
	c.AdditionalCharges = model.AdditionalCharges
	c.DiscountAmount = model.DiscountAmount
	c.TotalAmount = model.TotalAmount
	c.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		g.Customers[i].FromModel(mod)
	}
}

type BillingDetails struct {
	RoomCharges       float64 `json:"room_charges"`
	AdvanceAmount     float64 `json:"advance_amount"`
	AdditionalCharges float64 `json:"additional_charges"`
	DiscountAmount    float64 `json:"discount_amount"`
	TotalAmount       float64 `json:"total_amount"`
}

type CheckoutResponse struct {
	CustomerName   string         `json:"customer_name"`
	RoomNumber     string         `json:"room_number"`
	PaymentMethod  string         `json:"payment_method"`
	CheckoutDate   string         `json:"checkout_date"`
	BillingDetails BillingDetails `json:"billing_details"`
}
