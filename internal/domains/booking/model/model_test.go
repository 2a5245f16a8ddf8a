package model_test

import (
	"testing"
	"time"

	"grandplaza/internal/domains/booking/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	bookings := []model.Booking{
		{Status: model.StatusConfirmed, TotalAmount: decimal.NewFromInt(450), PaidAmount: decimal.NewFromInt(450)},
		{Status: model.StatusPending, TotalAmount: decimal.NewFromInt(680), PaidAmount: decimal.NewFromInt(200)},
		{Status: model.StatusCancelled, TotalAmount: decimal.NewFromInt(890), PaidAmount: decimal.Zero},
		{Status: model.StatusCheckedIn, TotalAmount: decimal.NewFromInt(300), PaidAmount: decimal.NewFromInt(300)},
	}

	got := model.Summarize(bookings)

	assert.Equal(t, 4, got.Total)
	assert.Equal(t, 1, got.Pending)
	assert.Equal(t, 1, got.Confirmed)
	assert.Equal(t, 1, got.CheckedIn)
	assert.Equal(t, 0, got.CheckedOut)
	assert.Equal(t, 1, got.Cancelled)
	assert.True(t, decimal.NewFromInt(2320).Equal(got.TotalAmount))
	assert.True(t, decimal.NewFromInt(950).Equal(got.PaidAmount))
}

func TestSummarize_Empty(t *testing.T) {
	got := model.Summarize(nil)

	assert.Equal(t, 0, got.Total)
	assert.True(t, got.TotalAmount.IsZero())
	assert.True(t, got.PaidAmount.IsZero())
}

func TestBooking_Nights(t *testing.T) {
	b := model.Booking{
		CheckIn:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, 3, b.Nights())
}
