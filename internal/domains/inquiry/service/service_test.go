package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"grandplaza/config"
	"grandplaza/infras/otel/mocks"
	postgresMocks "grandplaza/infras/postgres/mocks"
	inquiryMocks "grandplaza/internal/domains/inquiry/mocks"
	"grandplaza/internal/domains/inquiry/model"
	"grandplaza/internal/domains/inquiry/model/dto"
	"grandplaza/internal/domains/inquiry/service"
	workflowMocks "grandplaza/internal/domains/workflow/mocks"
	workflowModel "grandplaza/internal/domains/workflow/model"
	workflowDto "grandplaza/internal/domains/workflow/model/dto"
	cacheMocks "grandplaza/shared/cache/mocks"
	gDto "grandplaza/shared/dto"
	"grandplaza/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo     *inquiryMocks.MockInquiry
	workflow *workflowMocks.MockWorkflowService
	cache    *cacheMocks.MockRedisCache
	svc      service.Inquiry
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:     inquiryMocks.NewMockInquiry(ctrl),
		workflow: workflowMocks.NewMockWorkflowService(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.workflow, postgresMocks.NewTransactor(), cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func validCreateRequest() dto.CreateInquiryRequest {
	return dto.CreateInquiryRequest{
		ClientName:     "Global Finance",
		ContactPerson:  "Maria Lopez",
		Email:          "maria@globalfinance.com",
		EventType:      "Annual Summit",
		ExpectedGuests: 120,
		CheckInDate:    "2024-04-10",
		CheckOutDate:   "2024-04-12",
		RoomsRequired:  60,
	}
}

func TestInquiryService_Create(t *testing.T) {
	tests := []struct {
		name      string
		existing  []string
		setupMock func(f fixture)
		wantID    string
		wantCode  int
	}{
		{
			name:     "next id after the highest existing one",
			existing: []string{"INQ001", "INQ003", "INQ002"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.workflow.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req workflowDto.TrackRequest) error {
						if req.Kind != workflowModel.KindInquiry || req.SubjectID != "INQ004" || req.Status != workflowModel.InquiryPending {
							return errors.New("unexpected track request")
						}

						return nil
					})
			},
			wantID: "INQ004",
		},
		{
			name:     "first inquiry",
			existing: []string{},
			setupMock: func(f fixture) {
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.workflow.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantID: "INQ001",
		},
		{
			name:     "id collision",
			existing: []string{"INQ001"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure.Conflict("inquiry already exists"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name:     "board card fails",
			existing: []string{"INQ001"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.workflow.EXPECT().Track(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return(tt.existing, nil)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), validCreateRequest())

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
			assert.Equal(t, workflowModel.InquiryPending, res.Status)
			assert.Equal(t, "Pending Review", res.StatusLabel)
			assert.Equal(t, 25, res.Progress)
			assert.Equal(t, model.PriorityMedium, res.Priority)
			assert.Equal(t, model.DefaultAssignee, res.AssignedTo)
			assert.True(t, res.EstimatedRevenue.IsZero())
		})
	}
}

func TestInquiryService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "cache hit",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "inquiry:get:INQ001", gomock.Any()).Return(nil)
			},
		},
		{
			name: "loaded from the repository",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{ID: "INQ001", Status: workflowModel.InquiryQuoted}, nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Get(context.Background(), "INQ001")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInquiryService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Inquiry{{ID: "INQ012"}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 2, Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Inquiries, 1)
}

func TestInquiryService_Update(t *testing.T) {
	current := model.Inquiry{
		ID:           "INQ001",
		CheckInDate:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		req       dto.UpdateInquiryRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "empty request",
			req:       dto.UpdateInquiryRequest{},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  dto.UpdateInquiryRequest{Notes: "VIP client"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Inquiry{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "check-out moved before check-in",
			req:  dto.UpdateInquiryRequest{CheckOutDate: "2024-03-14"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "edit bumps last_updated",
			req:  dto.UpdateInquiryRequest{ExpectedGuests: 180, CheckOutDate: "2024-03-18"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
						if req[model.FieldExpectedGuests] != 180 || req[model.FieldLastUpdated] == nil {
							return errors.New("unexpected changes")
						}

						return nil
					})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(context.Background(), tt.req, "INQ001")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInquiryService_Summary(t *testing.T) {
	tests := []struct {
		name      string
		inquiries []model.Inquiry
		want      model.Summary
	}{
		{
			name:      "no inquiries yields a zero average",
			inquiries: []model.Inquiry{},
			want:      model.Summary{TotalEstimatedRevenue: decimal.Zero, AverageDealSize: decimal.Zero},
		},
		{
			name: "counts and revenue",
			inquiries: []model.Inquiry{
				{Status: workflowModel.InquiryPending, EstimatedRevenue: decimal.NewFromInt(45000)},
				{Status: workflowModel.InquiryConfirmed, EstimatedRevenue: decimal.NewFromInt(25000)},
				{Status: workflowModel.InquiryQuoted, EstimatedRevenue: decimal.NewFromInt(35000)},
			},
			want: model.Summary{
				Total:                 3,
				Pending:               1,
				Confirmed:             1,
				TotalEstimatedRevenue: decimal.NewFromInt(105000),
				AverageDealSize:       decimal.NewFromInt(35000),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.cache.EXPECT().Get(gomock.Any(), "inquiry:summary", gomock.Any()).Return(errors.New("cache miss"))
			f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.inquiries, nil)

			res, err := f.svc.Summary(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want.Total, res.Total)
			assert.Equal(t, tt.want.Pending, res.Pending)
			assert.Equal(t, tt.want.Confirmed, res.Confirmed)
			assert.True(t, tt.want.TotalEstimatedRevenue.Equal(res.TotalEstimatedRevenue))
			assert.True(t, tt.want.AverageDealSize.Equal(res.AverageDealSize))
		})
	}
}
