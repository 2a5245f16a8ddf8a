package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"grandplaza/config"
	"grandplaza/infras/otel/mocks"
	roomMocks "grandplaza/internal/domains/room/mocks"
	"grandplaza/internal/domains/room/model"
	"grandplaza/internal/domains/room/model/dto"
	"grandplaza/internal/domains/room/service"
	cacheMocks "grandplaza/shared/cache/mocks"
	gDto "grandplaza/shared/dto"
	"grandplaza/shared/failure"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
	svc   service.Room
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func TestCreate(t *testing.T) {
	req := dto.CreateRoomRequest{
		Number:    "305",
		Type:      "Deluxe Suite",
		Capacity:  3,
		Price:     decimal.NewFromInt(450),
		Amenities: []string{"WiFi", "Mini Bar"},
		BedType:   "King",
	}

	tests := []struct {
		name     string
		mock     func(f fixture)
		wantID   string
		wantCode int
	}{
		{
			name: "next id after the highest",
			mock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return([]string{"RM001", "RM004"}, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) error {
					assert.Equal(t, model.StatusAvailable, room.Status)
					assert.Equal(t, pq.StringArray{"WiFi", "Mini Bar"}, room.Amenities)

					return nil
				})
			},
			wantID: "RM005",
		},
		{
			name: "number taken",
			mock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "insert fails",
			mock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return(nil, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mock(f)

			res, err := f.svc.Create(context.Background(), req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, "305", res.Number)
		})
	}
}

func TestGet(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "room:get:RM009", gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), "RM009")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("loaded from repository", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{
			ID:     "RM001",
			Number: "101",
			Status: model.StatusOccupied,
		}, nil)

		res, err := f.svc.Get(context.Background(), "RM001")
		require.NoError(t, err)
		assert.Equal(t, "101", res.Number)
		assert.Equal(t, []string{}, res.Amenities)
	})
}

func TestUpdate(t *testing.T) {
	capacity := 4

	tests := []struct {
		name     string
		req      dto.UpdateRoomRequest
		mock     func(f fixture)
		wantCode int
	}{
		{
			name:     "empty request",
			req:      dto.UpdateRoomRequest{},
			mock:     func(fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateRoomRequest{Status: model.StatusCleaning},
			mock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "renumbered onto a taken number",
			req:  dto.UpdateRoomRequest{Number: "102"},
			mock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{ID: "RM001", Number: "101"}, nil)
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "same number skips the check",
			req:  dto.UpdateRoomRequest{Number: "101", Capacity: &capacity},
			mock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{ID: "RM001", Number: "101"}, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 4, fields[model.FieldCapacity])
						assert.Equal(t, "101", fields[model.FieldNumber])

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mock(f)

			err := f.svc.Update(context.Background(), tt.req, "RM001")
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name     string
		mock     func(f fixture)
		wantCode int
	}{
		{
			name: "deleted",
			mock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "not found",
			mock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete fails",
			mock: func(f fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mock(f)

			err := f.svc.Delete(context.Background(), "RM001")
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
	f.cache.EXPECT().Get(gomock.Any(), "room:summary", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Room{
		{ID: "RM001", Status: model.StatusOccupied},
		{ID: "RM002", Status: model.StatusAvailable},
	}, nil)

	res, err := f.svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.InDelta(t, 50.0, res.OccupancyRate, 0.001)
}
