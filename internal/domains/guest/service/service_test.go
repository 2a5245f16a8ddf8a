package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"grandplaza/config"
	"grandplaza/infras/otel/mocks"
	guestMocks "grandplaza/internal/domains/guest/mocks"
	"grandplaza/internal/domains/guest/model"
	"grandplaza/internal/domains/guest/model/dto"
	"grandplaza/internal/domains/guest/service"
	cacheMocks "grandplaza/shared/cache/mocks"
	gDto "grandplaza/shared/dto"
	"grandplaza/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *guestMocks.MockGuest
	cache *cacheMocks.MockRedisCache
	svc   service.Guest
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:  guestMocks.NewMockGuest(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateGuestRequest
		mock     func(f fixture)
		wantID   string
		wantCode int
	}{
		{
			name: "new bronze guest",
			req:  dto.CreateGuestRequest{FirstName: "Emma", LastName: "Davis", Email: "emma@example.com", DateOfBirth: "1990-05-12"},
			mock: func(f fixture) {
				f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return([]string{"G001", "G009"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, g model.Guest) error {
					assert.Equal(t, model.TierBronze, g.VIPStatus)
					assert.Zero(t, g.TotalBookings)
					assert.Nil(t, g.LastVisit)

					return nil
				})
			},
			wantID: "G010",
		},
		{
			name: "bad birth date",
			req:  dto.CreateGuestRequest{FirstName: "Emma", LastName: "Davis", Email: "emma@example.com", DateOfBirth: "12-05-1990"},
			mock: func(f fixture) {
				f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return(nil, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "pluck fails",
			req:  dto.CreateGuestRequest{FirstName: "Emma", LastName: "Davis", Email: "emma@example.com"},
			mock: func(f fixture) {
				f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
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
			assert.Equal(t, "Emma Davis", res.FullName)
			require.NotNil(t, res.DateOfBirth)
			assert.Equal(t, "1990-05-12", *res.DateOfBirth)
		})
	}
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Get(gomock.Any(), "guest:get:G404", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

	_, err := f.svc.Get(context.Background(), "G404")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestUpdate(t *testing.T) {
	bookings := 0

	tests := []struct {
		name     string
		req      dto.UpdateGuestRequest
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
			req:  dto.UpdateGuestRequest{VIPStatus: model.TierGold},
			mock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "promoted with counters reset",
			req:  dto.UpdateGuestRequest{VIPStatus: model.TierGold, TotalBookings: &bookings},
			mock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.TierGold, fields[model.FieldVIPStatus])
						assert.Equal(t, 0, fields[model.FieldTotalBookings])

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mock(f)

			err := f.svc.Update(context.Background(), tt.req, "G001")
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
	f.cache.EXPECT().Get(gomock.Any(), "guest:summary", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(),
		gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Guest{
		{ID: "G001", VIPStatus: model.TierGold, TotalBookings: 5, TotalSpent: decimal.NewFromInt(2500)},
		{ID: "G002", VIPStatus: model.TierBronze, TotalBookings: 1, TotalSpent: decimal.NewFromInt(300)},
	}, nil)

	res, err := f.svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.VIP)
	assert.Equal(t, 1, res.Returning)
	assert.True(t, decimal.NewFromInt(2800).Equal(res.TotalSpent))
}
