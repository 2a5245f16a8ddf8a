package dto

import (
	"fmt"

	"grandplaza/internal/domains/inquiry/model"
	workflow "grandplaza/internal/domains/workflow/model"
	"grandplaza/shared"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	gModel "grandplaza/shared/model"
	"grandplaza/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateInquiryRequest struct {
	ClientName          string          `json:"client_name"          validate:"required,max=150"`
	ContactPerson       string          `json:"contact_person"       validate:"required,max=100"`
	Email               string          `json:"email"                validate:"required,email,max=100"`
	Phone               string          `json:"phone"                validate:"omitempty,max=30"`
	Company             string          `json:"company"              validate:"omitempty,max=150"`
	EventType           string          `json:"event_type"           validate:"required,max=100"`
	ExpectedGuests      int             `json:"expected_guests"      validate:"required,gt=0"`
	CheckInDate         string          `json:"check_in_date"        validate:"required,datetime=2006-01-02"`
	CheckOutDate        string          `json:"check_out_date"       validate:"required,datetime=2006-01-02,date_after=CheckInDate"`
	RoomsRequired       int             `json:"rooms_required"       validate:"gte=0"`
	BudgetRange         string          `json:"budget_range"         validate:"omitempty,max=50"`
	SpecialRequirements string          `json:"special_requirements" validate:"omitempty"`
	Priority            string          `json:"priority"             validate:"omitempty,oneof=high medium low"`
	AssignedTo          string          `json:"assigned_to"          validate:"omitempty,max=100"`
	EstimatedRevenue    decimal.Decimal `json:"estimated_revenue"    validate:"gte=0"`
	Notes               string          `json:"notes"                validate:"omitempty"`
}

// ToModel builds a pending inquiry. Priority defaults to medium and the assignee to the placeholder user.
func (c *CreateInquiryRequest) ToModel(id, operator string) (model.Inquiry, error) {
	checkIn, err := timezone.Parse(constant.DayFormat, c.CheckInDate)
	if err != nil {
		return model.Inquiry{}, fmt.Errorf("invalid check_in_date: %w", err)
	}

	checkOut, err := timezone.Parse(constant.DayFormat, c.CheckOutDate)
	if err != nil {
		return model.Inquiry{}, fmt.Errorf("invalid check_out_date: %w", err)
	}

	priority := c.Priority
	if priority == constant.Empty {
		priority = model.PriorityMedium
	}

	assignee := c.AssignedTo
	if assignee == constant.Empty {
		assignee = model.DefaultAssignee
	}

	now := timezone.Now()

	return model.Inquiry{
		ID:                  id,
		ClientName:          c.ClientName,
		ContactPerson:       c.ContactPerson,
		Email:               c.Email,
		Phone:               c.Phone,
		Company:             c.Company,
		EventType:           c.EventType,
		ExpectedGuests:      c.ExpectedGuests,
		CheckInDate:         checkIn,
		CheckOutDate:        checkOut,
		RoomsRequired:       c.RoomsRequired,
		BudgetRange:         c.BudgetRange,
		SpecialRequirements: c.SpecialRequirements,
		Status:              workflow.InquiryPending,
		Priority:            priority,
		AssignedTo:          assignee,
		EstimatedRevenue:    c.EstimatedRevenue,
		Notes:               c.Notes,
		LastUpdated:         now,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}, nil
}

// UpdateInquiryRequest edits everything except the status, which only changes through the workflow.
type UpdateInquiryRequest struct {
	ClientName          string           `db:"client_name"          json:"client_name"          validate:"omitempty,max=150"`
	ContactPerson       string           `db:"contact_person"       json:"contact_person"       validate:"omitempty,max=100"`
	Email               string           `db:"email"                json:"email"                validate:"omitempty,email,max=100"`
	Phone               string           `db:"phone"                json:"phone"                validate:"omitempty,max=30"`
	Company             string           `db:"company"              json:"company"              validate:"omitempty,max=150"`
	EventType           string           `db:"event_type"           json:"event_type"           validate:"omitempty,max=100"`
	ExpectedGuests      int              `db:"expected_guests"      json:"expected_guests"      validate:"omitempty,gt=0"`
	CheckInDate         string           `db:"check_in_date"        json:"check_in_date"        validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate        string           `db:"check_out_date"       json:"check_out_date"       validate:"omitempty,datetime=2006-01-02"`
	RoomsRequired       *int             `db:"rooms_required"       json:"rooms_required"       validate:"omitempty,gte=0"`
	BudgetRange         string           `db:"budget_range"         json:"budget_range"         validate:"omitempty,max=50"`
	SpecialRequirements string           `db:"special_requirements" json:"special_requirements" validate:"omitempty"`
	Priority            string           `db:"priority"             json:"priority"             validate:"omitempty,oneof=high medium low"`
	AssignedTo          string           `db:"assigned_to"          json:"assigned_to"          validate:"omitempty,max=100"`
	EstimatedRevenue    *decimal.Decimal `db:"estimated_revenue"    json:"estimated_revenue"    validate:"omitempty"`
	Notes               string           `db:"notes"                json:"notes"                validate:"omitempty"`
}

// Changes returns the column updates. last_updated is bumped with every edit.
func (u *UpdateInquiryRequest) Changes(operator string) map[string]any {
	fields := shared.TransformFields(*u, operator)
	fields[model.FieldLastUpdated] = fields[constant.FieldModifiedAt]

	return fields
}

type InquiryResponse struct {
	ID                  string          `json:"id"`
	ClientName          string          `json:"client_name"`
	ContactPerson       string          `json:"contact_person"`
	Email               string          `json:"email"`
	Phone               string          `json:"phone"`
	Company             string          `json:"company"`
	EventType           string          `json:"event_type"`
	ExpectedGuests      int             `json:"expected_guests"`
	CheckInDate         string          `json:"check_in_date"`
	CheckOutDate        string          `json:"check_out_date"`
	RoomsRequired       int             `json:"rooms_required"`
	BudgetRange         string          `json:"budget_range"`
	SpecialRequirements string          `json:"special_requirements"`
	Status              string          `json:"status"`
	StatusLabel         string          `json:"status_label"`
	StatusCategory      string          `json:"status_category"`
	Progress            int             `json:"progress"`
	Priority            string          `json:"priority"`
	AssignedTo          string          `json:"assigned_to"`
	EstimatedRevenue    decimal.Decimal `json:"estimated_revenue"`
	Notes               string          `json:"notes"`
	LastUpdated         string          `json:"last_updated"`
	gDto.Metadata
}

func (r *InquiryResponse) FromModel(m model.Inquiry) {
	status := workflow.Describe(workflow.KindInquiry, m.Status)

	r.ID = m.ID
	r.ClientName = m.ClientName
	r.ContactPerson = m.ContactPerson
	r.Email = m.Email
	r.Phone = m.Phone
	r.Company = m.Company
	r.EventType = m.EventType
	r.ExpectedGuests = m.ExpectedGuests
	r.CheckInDate = timezone.Format(m.CheckInDate, constant.DayFormat)
	r.CheckOutDate = timezone.Format(m.CheckOutDate, constant.DayFormat)
	r.RoomsRequired = m.RoomsRequired
	r.BudgetRange = m.BudgetRange
	r.SpecialRequirements = m.SpecialRequirements
	r.Status = m.Status
	r.StatusLabel = status.Label
	r.StatusCategory = string(status.Category)
	r.Progress = status.Progress
	r.Priority = m.Priority
	r.AssignedTo = m.AssignedTo
	r.EstimatedRevenue = m.EstimatedRevenue
	r.Notes = m.Notes
	r.LastUpdated = timezone.Format(m.LastUpdated, constant.DateFormat)
	r.Metadata.FromModel(m.Metadata)
}

type GetInquiriesResponse struct {
	Inquiries []InquiryResponse `json:"inquiries"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInquiriesResponse) FromModels(models []model.Inquiry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Inquiries = make([]InquiryResponse, len(models))
	for i, mod := range models {
		r.Inquiries[i].FromModel(mod)
	}
}
