package dto

import (
	"fmt"

	"grandplaza/internal/domains/booking/model"
	"grandplaza/shared"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	gModel "grandplaza/shared/model"
	"grandplaza/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	GuestName       string          `json:"guest_name"       validate:"required,max=100"`
	GuestEmail      string          `json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      string          `json:"guest_phone"      validate:"omitempty,max=20"`
	RoomNumber      string          `json:"room_number"      validate:"required,max=10"`
	RoomType        string          `json:"room_type"        validate:"omitempty,max=50"`
	CheckIn         string          `json:"check_in"         validate:"required,datetime=2006-01-02"`
	CheckOut        string          `json:"check_out"        validate:"required,datetime=2006-01-02,date_after=CheckIn"`
	Guests          int             `json:"guests"           validate:"required,min=1"`
	TotalAmount     decimal.Decimal `json:"total_amount"     validate:"gte=0"`
	SpecialRequests string          `json:"special_requests" validate:"omitempty"`
}

// ToModel builds a pending, unpaid booking dated now.
func (c *CreateBookingRequest) ToModel(id, operator string) (model.Booking, error) {
	checkIn, err := timezone.Parse(constant.DayFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check_in: %w", err)
	}

	checkOut, err := timezone.Parse(constant.DayFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, fmt.Errorf("invalid check_out: %w", err)
	}

	now := timezone.Now()

	return model.Booking{
		ID:              id,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      c.GuestPhone,
		RoomNumber:      c.RoomNumber,
		RoomType:        c.RoomType,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          c.Guests,
		TotalAmount:     c.TotalAmount,
		PaidAmount:      decimal.Zero,
		Status:          model.StatusPending,
		PaymentStatus:   model.PaymentPending,
		BookingDate:     now,
		SpecialRequests: c.SpecialRequests,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}, nil
}

type UpdateBookingRequest struct {
	GuestName       string           `db:"guest_name"       json:"guest_name"       validate:"omitempty,max=100"`
	GuestEmail      string           `db:"guest_email"      json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      string           `db:"guest_phone"      json:"guest_phone"      validate:"omitempty,max=20"`
	RoomNumber      string           `db:"room_number"      json:"room_number"      validate:"omitempty,max=10"`
	RoomType        string           `db:"room_type"        json:"room_type"        validate:"omitempty,max=50"`
	CheckIn         string           `db:"check_in"         json:"check_in"         validate:"omitempty,datetime=2006-01-02"`
	CheckOut        string           `db:"check_out"        json:"check_out"        validate:"omitempty,datetime=2006-01-02"`
	Guests          *int             `db:"guests"           json:"guests"           validate:"omitempty,min=1"`
	TotalAmount     *decimal.Decimal `db:"total_amount"     json:"total_amount"     validate:"omitempty,gte=0"`
	PaidAmount      *decimal.Decimal `db:"paid_amount"      json:"paid_amount"      validate:"omitempty,gte=0"`
	Status          string           `db:"status"           json:"status"           validate:"omitempty,oneof=pending confirmed checked-in checked-out cancelled"`
	PaymentStatus   string           `db:"payment_status"   json:"payment_status"   validate:"omitempty,oneof=pending partial paid refunded"`
	SpecialRequests string           `db:"special_requests" json:"special_requests" validate:"omitempty"`
}

type BookingResponse struct {
	ID              string          `json:"id"`
	GuestName       string          `json:"guest_name"`
	GuestEmail      string          `json:"guest_email"`
	GuestPhone      string          `json:"guest_phone"`
	RoomNumber      string          `json:"room_number"`
	RoomType        string          `json:"room_type"`
	CheckIn         string          `json:"check_in"`
	CheckOut        string          `json:"check_out"`
	Nights          int             `json:"nights"`
	Guests          int             `json:"guests"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	Status          string          `json:"status"`
	PaymentStatus   string          `json:"payment_status"`
	BookingDate     string          `json:"booking_date"`
	SpecialRequests string          `json:"special_requests"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.GuestName = m.GuestName
	r.GuestEmail = m.GuestEmail
	r.GuestPhone = m.GuestPhone
	r.RoomNumber = m.RoomNumber
	r.RoomType = m.RoomType
	r.CheckIn = timezone.Format(m.CheckIn, constant.DayFormat)
	r.CheckOut = timezone.Format(m.CheckOut, constant.DayFormat)
	r.Nights = m.Nights()
	r.Guests = m.Guests
	r.TotalAmount = m.TotalAmount
	r.PaidAmount = m.PaidAmount
	r.Status = m.Status
	r.PaymentStatus = m.PaymentStatus
	r.BookingDate = timezone.Format(m.BookingDate, constant.DayFormat)
	r.SpecialRequests = m.SpecialRequests
	r.Metadata.FromModel(m.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
