package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"grandplaza/config"
	kafkaMocks "grandplaza/infras/kafka/mocks"
	"grandplaza/infras/otel/mocks"
	postgresMocks "grandplaza/infras/postgres/mocks"
	inquiryMocks "grandplaza/internal/domains/inquiry/mocks"
	inquiryModel "grandplaza/internal/domains/inquiry/model"
	invoiceMocks "grandplaza/internal/domains/invoice/mocks"
	invoiceModel "grandplaza/internal/domains/invoice/model"
	workflowMocks "grandplaza/internal/domains/workflow/mocks"
	"grandplaza/internal/domains/workflow/model"
	"grandplaza/internal/domains/workflow/model/dto"
	"grandplaza/internal/domains/workflow/service"
	cacheMocks "grandplaza/shared/cache/mocks"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	"grandplaza/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo        *workflowMocks.MockWorkflow
	inquiryRepo *inquiryMocks.MockInquiry
	invoiceRepo *invoiceMocks.MockInvoice
	kafka       *kafkaMocks.MockClient
	cache       *cacheMocks.MockRedisCache
	svc         service.Workflow
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.StatusChanged = "workflow.status_changed"

	f := fixture{
		repo:        workflowMocks.NewMockWorkflow(ctrl),
		inquiryRepo: inquiryMocks.NewMockInquiry(ctrl),
		invoiceRepo: invoiceMocks.NewMockInvoice(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.repo, f.inquiryRepo, f.invoiceRepo, postgresMocks.NewTransactor(), f.kafka, cfg, f.cache, mocks.NewOtel())

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func operatorContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyOperator, "sarah.manager")
}

func TestWorkflowService_SetStatus_AnyVocabularyValue(t *testing.T) {
	tests := []struct {
		kind     model.Kind
		current  string
		status   string
		progress int
	}{
		{kind: model.KindInquiry, current: model.InquiryCancelled, status: model.InquiryPending, progress: 25},
		{kind: model.KindInquiry, current: model.InquiryCancelled, status: model.InquiryQuoted, progress: 50},
		{kind: model.KindInquiry, current: model.InquiryCancelled, status: model.InquiryConfirmed, progress: 100},
		{kind: model.KindInquiry, current: model.InquiryConfirmed, status: model.InquiryRejected, progress: 0},
		{kind: model.KindInquiry, current: model.InquiryRejected, status: model.InquiryCancelled, progress: 0},
		{kind: model.KindInvoice, current: model.InvoicePaid, status: model.InvoicePending, progress: 25},
		{kind: model.KindInvoice, current: model.InvoiceCancelled, status: model.InvoicePartial, progress: 50},
		{kind: model.KindInvoice, current: model.InvoiceOverdue, status: model.InvoicePaid, progress: 100},
		{kind: model.KindInvoice, current: model.InvoicePaid, status: model.InvoiceOverdue, progress: 25},
		{kind: model.KindInvoice, current: model.InvoicePending, status: model.InvoiceCancelled, progress: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+" "+tt.current+" to "+tt.status, func(t *testing.T) {
			f := newFixture(t)

			var subjectID string

			switch tt.kind {
			case model.KindInquiry:
				subjectID = "INQ001"
				f.inquiryRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(inquiryModel.Inquiry{ID: subjectID, Status: tt.current}, nil)
				f.inquiryRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			case model.KindInvoice:
				subjectID = "INV002"
				f.invoiceRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(invoiceModel.Invoice{ID: subjectID, Status: tt.current}, nil)
				f.invoiceRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			var itemChanges map[string]any

			f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
					itemChanges = req

					return nil
				})
			f.kafka.EXPECT().SendMessages(gomock.Any(), "workflow.status_changed", gomock.Any()).Return(nil)

			res, err := f.svc.SetStatus(operatorContext(), tt.kind, subjectID, tt.status)

			require.NoError(t, err)
			assert.Equal(t, tt.current, res.PreviousStatus)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.progress, res.Progress)
			assert.Equal(t, model.Label(tt.kind, tt.status), res.Label)
			assert.Equal(t, tt.status, itemChanges[model.FieldStatus])
			assert.Equal(t, tt.progress, itemChanges[model.FieldProgress])
			assert.Equal(t, "sarah.manager", itemChanges[constant.FieldModifiedBy])
		})
	}
}

func TestWorkflowService_SetStatus_SubjectTimestamps(t *testing.T) {
	t.Run("inquiry records last_updated", func(t *testing.T) {
		f := newFixture(t)

		var changes map[string]any

		f.inquiryRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(inquiryModel.Inquiry{ID: "INQ001", Status: model.InquiryPending}, nil)
		f.inquiryRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				changes = req

				return nil
			})
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.SetStatus(operatorContext(), model.KindInquiry, "INQ001", model.InquiryQuoted)

		require.NoError(t, err)
		assert.Equal(t, model.InquiryQuoted, changes[inquiryModel.FieldStatus])
		assert.Contains(t, changes, inquiryModel.FieldLastUpdated)
	})

	t.Run("invoice only changes status", func(t *testing.T) {
		f := newFixture(t)

		var changes map[string]any

		f.invoiceRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invoiceModel.Invoice{ID: "INV001", Status: model.InvoicePending}, nil)
		f.invoiceRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, req map[string]any, _ gDto.FilterGroup) error {
				changes = req

				return nil
			})
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.SetStatus(operatorContext(), model.KindInvoice, "INV001", model.InvoiceOverdue)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{invoiceModel.FieldStatus: model.InvoiceOverdue}, changes)
	})
}

func TestWorkflowService_SetStatus_Errors(t *testing.T) {
	tests := []struct {
		name      string
		kind      model.Kind
		subjectID string
		status    string
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "status outside the vocabulary",
			kind:      model.KindInquiry,
			subjectID: "INQ001",
			status:    model.InvoicePartial,
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown kind",
			kind:      model.Kind("booking"),
			subjectID: "BK001",
			status:    "confirmed",
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "inquiry not found",
			kind:      model.KindInquiry,
			subjectID: "INQ404",
			status:    model.InquiryQuoted,
			setupMock: func(f fixture) {
				f.inquiryRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(inquiryModel.Inquiry{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "invoice lookup fails",
			kind:      model.KindInvoice,
			subjectID: "INV001",
			status:    model.InvoicePaid,
			setupMock: func(f fixture) {
				f.invoiceRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(invoiceModel.Invoice{}, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:      "board update fails",
			kind:      model.KindInvoice,
			subjectID: "INV001",
			status:    model.InvoicePaid,
			setupMock: func(f fixture) {
				f.invoiceRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(invoiceModel.Invoice{ID: "INV001"}, nil)
				f.invoiceRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("deadlock detected"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.SetStatus(context.Background(), tt.kind, tt.subjectID, tt.status)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

type txTransactor struct {
	tx *sqlx.Tx
}

func (t txTransactor) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(t.tx)
}

func TestWorkflowService_SetStatus_ReadsSubjectInTransaction(t *testing.T) {
	f := newFixture(t)
	tx := &sqlx.Tx{}

	cfg := &config.Config{}
	cfg.Kafka.Topics.StatusChanged = "workflow.status_changed"

	svc := service.New(f.repo, f.inquiryRepo, f.invoiceRepo, txTransactor{tx: tx}, f.kafka, cfg, f.cache, mocks.NewOtel())

	gomock.InOrder(
		f.invoiceRepo.EXPECT().GetForUpdateTx(gomock.Any(), tx, gomock.Any()).
			Return(invoiceModel.Invoice{ID: "INV001", Status: model.InvoicePartial}, nil),
		f.invoiceRepo.EXPECT().UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).Return(nil),
		f.repo.EXPECT().UpdateTx(gomock.Any(), tx, gomock.Any(), gomock.Any()).Return(nil),
	)
	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.SetStatus(context.Background(), model.KindInvoice, "INV001", model.InvoicePaid)

	require.NoError(t, err)
	assert.Equal(t, model.InvoicePartial, res.PreviousStatus)
}

func TestWorkflowService_SetStatusTx(t *testing.T) {
	t.Run("writes without announcing", func(t *testing.T) {
		f := newFixture(t)

		f.invoiceRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(invoiceModel.Invoice{ID: "INV002", Status: model.InvoicePending}, nil)
		f.invoiceRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		event, err := f.svc.SetStatusTx(operatorContext(), nil, model.KindInvoice, "INV002", model.InvoicePaid)

		require.NoError(t, err)
		assert.Equal(t, model.InvoicePending, event.From)
		assert.Equal(t, model.InvoicePaid, event.To)
		assert.Equal(t, "sarah.manager", event.ChangedBy)
	})

	t.Run("rejects status outside the vocabulary", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SetStatusTx(context.Background(), nil, model.KindInvoice, "INV002", model.InquiryQuoted)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestWorkflowService_SetStatus_PublishFailureIsNotFatal(t *testing.T) {
	f := newFixture(t)

	f.inquiryRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(inquiryModel.Inquiry{ID: "INQ003", Status: model.InquiryQuoted}, nil)
	f.inquiryRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker unavailable"))

	res, err := f.svc.SetStatus(context.Background(), model.KindInquiry, "INQ003", model.InquiryConfirmed)

	require.NoError(t, err)
	assert.Equal(t, 100, res.Progress)
}

func TestWorkflowService_SetItemStatus(t *testing.T) {
	t.Run("delegates to the subject", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Item{ID: "WF002", Kind: model.KindInvoice, SubjectID: "INV002", Status: model.InvoicePartial}, nil)
		f.invoiceRepo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(invoiceModel.Invoice{ID: "INV002", Status: model.InvoicePartial}, nil)
		f.invoiceRepo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.kafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.SetItemStatus(context.Background(), "WF002", model.InvoicePaid)

		require.NoError(t, err)
		assert.Equal(t, "INV002", res.SubjectID)
		assert.Equal(t, model.KindInvoice, res.Kind)
		assert.Equal(t, 100, res.Progress)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Item{}, nil)

		_, err := f.svc.SetItemStatus(context.Background(), "WF404", model.InquiryQuoted)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestWorkflowService_Track(t *testing.T) {
	f := newFixture(t)

	var inserted model.Item

	f.repo.EXPECT().Pluck(gomock.Any(), model.FieldID, gomock.Any()).Return([]string{"WF001", "WF003", "WF002"}, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, item model.Item) error {
			inserted = item

			return nil
		})

	err := f.svc.Track(operatorContext(), nil, dto.TrackRequest{
		Kind:      model.KindInquiry,
		SubjectID: "INQ004",
		Title:     "Global Finance Summit",
		Client:    "Global Finance",
		Status:    model.InquiryPending,
		Priority:  model.PriorityHigh,
	})

	require.NoError(t, err)
	assert.Equal(t, "WF004", inserted.ID)
	assert.Equal(t, 25, inserted.Progress)
	assert.Equal(t, model.NextAction(model.KindInquiry, model.InquiryPending), inserted.NextAction)
	assert.Equal(t, "sarah.manager", inserted.CreatedBy)
}

func TestWorkflowService_Summary(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Item{
			{Status: model.InquiryPending, Priority: model.PriorityHigh},
			{Status: model.InvoicePartial, Priority: model.PriorityMedium},
			{Status: model.InquiryQuoted, Priority: model.PriorityHigh},
			{Status: model.InvoicePaid, Priority: model.PriorityLow},
		}, nil)

	res, err := f.svc.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, model.Summary{Total: 4, Pending: 1, InProgress: 2, Completed: 1, HighPriority: 2}, res)
}

func TestWorkflowService_Get(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "workflow:get:WF001", gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(model.Item{ID: "WF001", Kind: model.KindInquiry, Status: model.InquiryQuoted, Progress: 10}, nil)

	res, err := f.svc.Get(context.Background(), "WF001")

	require.NoError(t, err)
	assert.Equal(t, 50, res.Progress)
	assert.Equal(t, "Quote Sent", res.StatusLabel)
	assert.Equal(t, string(model.CategoryInfo), res.StatusCategory)
}

func TestWorkflowService_Vocabulary(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Vocabulary(context.Background(), "invoice")

	require.NoError(t, err)
	assert.Equal(t, model.KindInvoice, res.Kind)
	assert.Equal(t, []string{"pending", "partial", "paid", "overdue", "cancelled"}, statusValues(res.Statuses))

	_, err = f.svc.Vocabulary(context.Background(), "guest")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func statusValues(options []model.StatusOption) []string {
	values := make([]string, len(options))
	for i, option := range options {
		values[i] = option.Value
	}

	return values
}

func TestWorkflowService_GetAll(t *testing.T) {
	board := []model.Item{
		{ID: "WF001", Kind: model.KindInquiry, SubjectID: "INQ001", Title: "Annual Conference", Client: "Tech Corp", Status: model.InquiryPending},
		{ID: "WF002", Kind: model.KindInvoice, SubjectID: "INV001", Title: "Invoice 2024-001", Client: "Tech Corp", Status: model.InvoicePartial},
		{ID: "WF003", Kind: model.KindInquiry, SubjectID: "INQ002", Title: "Wedding Reception", Client: "Smith Family", Status: model.InquiryQuoted},
	}

	tests := []struct {
		name      string
		req       gDto.QueryParams
		kind      string
		wantIDs   []string
		wantTotal int
		wantPages int
	}{
		{name: "first page", req: gDto.QueryParams{Page: 1, Limit: 2}, wantIDs: []string{"WF001", "WF002"}, wantTotal: 3, wantPages: 2},
		{name: "second page", req: gDto.QueryParams{Page: 2, Limit: 2}, wantIDs: []string{"WF003"}, wantTotal: 3, wantPages: 2},
		{name: "search and kind", req: gDto.QueryParams{Page: 1, Limit: 10, Search: "tech"}, kind: "invoice", wantIDs: []string{"WF002"}, wantTotal: 1, wantPages: 1},
		{name: "page past the end", req: gDto.QueryParams{Page: 5, Limit: 10}, wantIDs: []string{}, wantTotal: 3, wantPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.cache.EXPECT().Get(gomock.Any(), "workflow:board::", gomock.Any()).Return(errors.New("cache miss"))
			f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(board, nil)

			res, err := f.svc.GetAll(context.Background(), tt.req, tt.kind)

			require.NoError(t, err)

			ids := []string{}
			for _, item := range res.Items {
				ids = append(ids, item.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Equal(t, tt.wantPages, res.TotalPage)
		})
	}
}

func TestWorkflowService_GetAll_RepositoryError(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, "")

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
