package service_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"grandplaza/config"
	"grandplaza/infras/otel/mocks"
	bookingMocks "grandplaza/internal/domains/booking/mocks"
	bookingModel "grandplaza/internal/domains/booking/model"
	guestMocks "grandplaza/internal/domains/guest/mocks"
	guestModel "grandplaza/internal/domains/guest/model"
	"grandplaza/internal/domains/report/service"
	roomMocks "grandplaza/internal/domains/room/mocks"
	roomModel "grandplaza/internal/domains/room/model"
	cacheMocks "grandplaza/shared/cache/mocks"
	"grandplaza/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	rooms    *roomMocks.MockRoom
	guests   *guestMocks.MockGuest
	bookings *bookingMocks.MockBooking
	cache    *cacheMocks.MockRedisCache
	svc      service.Report
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		rooms:    roomMocks.NewMockRoom(ctrl),
		guests:   guestMocks.NewMockGuest(ctrl),
		bookings: bookingMocks.NewMockBooking(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.rooms, f.guests, f.bookings, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f fixture) expectScan() {
	f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{
			{ID: "RM001", Number: "101", Type: "Standard", Status: roomModel.StatusOccupied},
			{ID: "RM002", Number: "102", Type: "Standard", Status: roomModel.StatusAvailable},
		}, nil)
	f.guests.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]guestModel.Guest{{ID: "G001", VIPStatus: guestModel.TierSilver}}, nil)
	f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{{ID: "BK001", Status: bookingModel.StatusPending}}, nil)
}

func TestDashboard(t *testing.T) {
	t.Run("computed on a cache miss", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, key string, _ any) error {
			assert.True(t, strings.HasPrefix(key, "report:dashboard:"), key)

			return errors.New("cache miss")
		})
		f.expectScan()

		res, err := f.svc.Dashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalRooms)
		assert.InDelta(t, 50.0, res.OccupancyRate, 0.001)
		assert.Equal(t, 1, res.TotalGuests)
		assert.Equal(t, 1, res.PendingBookings)
	})

	t.Run("served from cache", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Dashboard(context.Background())
		require.NoError(t, err)
	})

	t.Run("scan fails", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.rooms.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := f.svc.Dashboard(context.Background())
		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestCharts(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.expectScan()

	res, err := f.svc.Charts(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.MonthlyRevenue, 6)
	require.Len(t, res.RoomTypes, 1)
	assert.Equal(t, "Standard", res.RoomTypes[0].Label)
	assert.Equal(t, 2.0, res.RoomTypes[0].Value)
	assert.Equal(t, 1.0, res.GuestTiers[1].Value)
}
