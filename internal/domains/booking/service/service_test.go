package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"grandplaza/config"
	"grandplaza/infras/otel/mocks"
	bookingMocks "grandplaza/internal/domains/booking/mocks"
	"grandplaza/internal/domains/booking/model"
	"grandplaza/internal/domains/booking/model/dto"
	"grandplaza/internal/domains/booking/service"
	roomMocks "grandplaza/internal/domains/room/mocks"
	roomModel "grandplaza/internal/domains/room/model"
	cacheMocks "grandplaza/shared/cache/mocks"
	gDto "grandplaza/shared/dto"
	"grandplaza/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *bookingMocks.MockBooking
	rooms *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
	svc   service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:  bookingMocks.NewMockBooking(ctrl),
		rooms: roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.rooms, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func sampleBooking() model.Booking {
	return model.Booking{
		ID:          "BK001",
		GuestName:   "John Smith",
		RoomNumber:  "101",
		CheckIn:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
		TotalAmount: decimal.NewFromInt(600),
		PaidAmount:  decimal.NewFromInt(300),
		Status:      model.StatusConfirmed,
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateBookingRequest
		mock     func(f fixture)
		wantID   string
		wantType string
		wantCode int
	}{
		{
			name: "room type copied from the room",
			req: dto.CreateBookingRequest{
				GuestName: "Sarah Johnson", RoomNumber: "205", CheckIn: "2024-03-15", CheckOut: "2024-03-18",
				Guests: 2, TotalAmount: decimal.NewFromInt(900),
			},
			mock: func(f fixture) {
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any(), roomModel.FieldID, roomModel.FieldType).
					Return(roomModel.Room{ID: "RM002", Type: "Deluxe"}, nil)
				f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return([]string{"BK001", "BK002"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
					assert.Equal(t, model.StatusPending, b.Status)
					assert.Equal(t, model.PaymentPending, b.PaymentStatus)
					assert.True(t, b.PaidAmount.IsZero())

					return nil
				})
			},
			wantID:   "BK003",
			wantType: "Deluxe",
		},
		{
			name: "explicit room type skips the lookup",
			req: dto.CreateBookingRequest{
				GuestName: "Mike Wilson", RoomNumber: "999", RoomType: "Suite", CheckIn: "2024-04-01", CheckOut: "2024-04-02",
				Guests: 1,
			},
			mock: func(f fixture) {
				f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantID:   "BK001",
			wantType: "Suite",
		},
		{
			name: "id taken concurrently",
			req: dto.CreateBookingRequest{
				GuestName: "Mike Wilson", RoomNumber: "101", RoomType: "Standard", CheckIn: "2024-04-01", CheckOut: "2024-04-02",
				Guests: 1,
			},
			mock: func(f fixture) {
				f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return([]string{"BK001"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Conflict("booking already exists"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unparseable date",
			req: dto.CreateBookingRequest{
				GuestName: "Mike Wilson", RoomNumber: "101", RoomType: "Standard", CheckIn: "01/04/2024", CheckOut: "2024-04-02",
				Guests: 1,
			},
			mock: func(f fixture) {
				f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return(nil, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mock(f)

			res, err := f.svc.Create(context.Background(), tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, tt.wantType, res.RoomType)
		})
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		mock     func(f fixture)
		wantCode int
	}{
		{
			name: "cache hit",
			mock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "booking:get:BK001", gomock.Any()).Return(nil)
			},
		},
		{
			name: "loaded from repository",
			mock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleBooking(), nil)
			},
		},
		{
			name: "not found",
			mock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mock(f)

			_, err := f.svc.Get(context.Background(), "BK001")
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestGetNights(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleBooking(), nil)

	res, err := f.svc.Get(context.Background(), "BK001")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Nights)
	assert.Equal(t, "2024-03-10", res.CheckIn)
}

func TestUpdate(t *testing.T) {
	paid := decimal.NewFromInt(700)
	total := decimal.NewFromInt(800)

	tests := []struct {
		name     string
		req      dto.UpdateBookingRequest
		mock     func(f fixture)
		wantCode int
	}{
		{
			name:     "empty request",
			mock:     func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateBookingRequest{Status: model.StatusCheckedIn},
			mock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "check-out moved before check-in",
			req:  dto.UpdateBookingRequest{CheckOut: "2024-03-09"},
			mock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleBooking(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "overpaid",
			req:  dto.UpdateBookingRequest{PaidAmount: &paid},
			mock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleBooking(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "paid within the new total",
			req:  dto.UpdateBookingRequest{PaidAmount: &paid, TotalAmount: &total, PaymentStatus: model.PaymentPartial},
			mock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sampleBooking(), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, paid, fields[model.FieldPaidAmount])
						assert.Equal(t, model.PaymentPartial, fields[model.FieldPaymentStatus])
						assert.NotContains(t, fields, model.FieldStatus)

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mock(f)

			err := f.svc.Update(context.Background(), tt.req, "BK001")
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Get(gomock.Any(), "booking:summary", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{
		sampleBooking(),
		{ID: "BK002", Status: model.StatusPending, TotalAmount: decimal.NewFromInt(400)},
	}, nil)

	res, err := f.svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Pending)
	assert.Equal(t, 1, res.Confirmed)
	assert.True(t, decimal.NewFromInt(1000).Equal(res.TotalAmount))
	assert.True(t, decimal.NewFromInt(300).Equal(res.PaidAmount))
}
