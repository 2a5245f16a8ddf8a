package dto

import (
	"time"

	"grandplaza/internal/domains/workflow/model"
	"grandplaza/shared"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	gModel "grandplaza/shared/model"
	"grandplaza/shared/timezone"
)

type StatusRequest struct {
	Status string `json:"status" validate:"required,max=30"`
}

type StatusChangeResponse struct {
	Kind           model.Kind `json:"kind"`
	SubjectID      string     `json:"subject_id"`
	PreviousStatus string     `json:"previous_status"`
	Status         string     `json:"status"`
	Label          string     `json:"label"`
	Category       string     `json:"category"`
	Progress       int        `json:"progress"`
	ChangedAt      string     `json:"changed_at"`
}

func (r *StatusChangeResponse) FromEvent(event model.StatusChanged) {
	option := model.Describe(event.Kind, event.To)

	r.Kind = event.Kind
	r.SubjectID = event.SubjectID
	r.PreviousStatus = event.From
	r.Status = event.To
	r.Label = option.Label
	r.Category = string(option.Category)
	r.Progress = option.Progress
	r.ChangedAt = timezone.Format(event.ChangedAt, constant.DateFormat)
}

type VocabularyResponse struct {
	Kind     model.Kind           `json:"kind"`
	Statuses []model.StatusOption `json:"statuses"`
}

// TrackRequest opens a board card for a newly created inquiry or invoice.
type TrackRequest struct {
	Kind       model.Kind
	SubjectID  string
	Title      string
	Client     string
	Status     string
	DueDate    *time.Time
	AssignedTo string
	Priority   string
}

func (t *TrackRequest) ToModel(id, operator string) model.Item {
	now := timezone.Now()

	priority := t.Priority
	if priority == constant.Empty {
		priority = model.PriorityMedium
	}

	return model.Item{
		ID:          id,
		Kind:        t.Kind,
		SubjectID:   t.SubjectID,
		Title:       t.Title,
		Client:      t.Client,
		Status:      t.Status,
		Progress:    model.Progress(t.Kind, t.Status),
		DueDate:     t.DueDate,
		AssignedTo:  t.AssignedTo,
		Priority:    priority,
		NextAction:  model.NextAction(t.Kind, t.Status),
		LastChanged: &now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}
}

type ItemResponse struct {
	ID             string     `json:"id"`
	Kind           model.Kind `json:"kind"`
	SubjectID      string     `json:"subject_id"`
	Title          string     `json:"title"`
	Client         string     `json:"client"`
	Status         string     `json:"status"`
	StatusLabel    string     `json:"status_label"`
	StatusCategory string     `json:"status_category"`
	Progress       int        `json:"progress"`
	DueDate        *string    `json:"due_date"`
	AssignedTo     string     `json:"assigned_to"`
	Priority       string     `json:"priority"`
	NextAction     string     `json:"next_action"`
	LastChanged    *string    `json:"last_changed"`
	gDto.Metadata
}

func formatOptional(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, layout)

	return &formatted
}

// FromModel reports the progress of the stored status, so a card never disagrees with the lookup table.
func (r *ItemResponse) FromModel(m model.Item) {
	option := model.Describe(m.Kind, m.Status)

	r.ID = m.ID
	r.Kind = m.Kind
	r.SubjectID = m.SubjectID
	r.Title = m.Title
	r.Client = m.Client
	r.Status = m.Status
	r.StatusLabel = option.Label
	r.StatusCategory = string(option.Category)
	r.Progress = option.Progress
	r.DueDate = formatOptional(m.DueDate, constant.DayFormat)
	r.AssignedTo = m.AssignedTo
	r.Priority = m.Priority
	r.NextAction = m.NextAction
	r.LastChanged = formatOptional(m.LastChanged, constant.DateFormat)
	r.Metadata.FromModel(m.Metadata)
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetItemsResponse) FromModels(models []model.Item, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]ItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
