package model

import (
	"time"

	"grandplaza/shared/model"
	"grandplaza/shared/stats"

	"github.com/shopspring/decimal"
)

const (
	TableName   = "bookings"
	EntityName  = "booking"
	CachePrefix = "booking"
	IDPrefix    = "BK"
)

const (
	FieldID              = "id"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldRoomNumber      = "room_number"
	FieldRoomType        = "room_type"
	FieldCheckIn         = "check_in"
	FieldCheckOut        = "check_out"
	FieldGuests          = "guests"
	FieldTotalAmount     = "total_amount"
	FieldPaidAmount      = "paid_amount"
	FieldStatus          = "status"
	FieldPaymentStatus   = "payment_status"
	FieldBookingDate     = "booking_date"
	FieldSpecialRequests = "special_requests"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked-in"
	StatusCheckedOut = "checked-out"
	StatusCancelled  = "cancelled"
)

const (
	PaymentPending  = "pending"
	PaymentPartial  = "partial"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Statuses lists the booking statuses in the order the board shows them.
var Statuses = []string{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

type Booking struct {
	ID              string          `db:"id"`
	GuestName       string          `db:"guest_name"`
	GuestEmail      string          `db:"guest_email"`
	GuestPhone      string          `db:"guest_phone"`
	RoomNumber      string          `db:"room_number"`
	RoomType        string          `db:"room_type"`
	CheckIn         time.Time       `db:"check_in"`
	CheckOut        time.Time       `db:"check_out"`
	Guests          int             `db:"guests"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	PaidAmount      decimal.Decimal `db:"paid_amount"`
	Status          string          `db:"status"`
	PaymentStatus   string          `db:"payment_status"`
	BookingDate     time.Time       `db:"booking_date"`
	SpecialRequests string          `db:"special_requests"`
	model.Metadata
}

// Nights is the number of nights between check-in and check-out.
func (b Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

type Summary struct {
	Total       int             `json:"total"`
	Pending     int             `json:"pending"`
	Confirmed   int             `json:"confirmed"`
	CheckedIn   int             `json:"checked_in"`
	CheckedOut  int             `json:"checked_out"`
	Cancelled   int             `json:"cancelled"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
}

func Summarize(bookings []Booking) Summary {
	byStatus := stats.CountBy(bookings, func(b Booking) string { return b.Status })

	return Summary{
		Total:       len(bookings),
		Pending:     byStatus[StatusPending],
		Confirmed:   byStatus[StatusConfirmed],
		CheckedIn:   byStatus[StatusCheckedIn],
		CheckedOut:  byStatus[StatusCheckedOut],
		Cancelled:   byStatus[StatusCancelled],
		TotalAmount: stats.Sum(bookings, func(b Booking) decimal.Decimal { return b.TotalAmount }),
		PaidAmount:  stats.Sum(bookings, func(b Booking) decimal.Decimal { return b.PaidAmount }),
	}
}
