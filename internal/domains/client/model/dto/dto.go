package dto

import (
	"grandplaza/internal/domains/client/model"
	"grandplaza/shared"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	gModel "grandplaza/shared/model"
	"grandplaza/shared/timezone"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateClientRequest struct {
	Name          string `json:"name"           validate:"required,max=150"`
	ContactPerson string `json:"contact_person" validate:"required,max=100"`
	Email         string `json:"email"          validate:"required,email,max=100"`
	Phone         string `json:"phone"          validate:"omitempty,max=20"`
	Company       string `json:"company"        validate:"omitempty,max=150"`
	Industry      string `json:"industry"       validate:"omitempty,max=100"`
	Status        string `json:"status"         validate:"omitempty,oneof=active prospect inactive"`
	Notes         string `json:"notes"          validate:"omitempty"`
}

// ToModel defaults the status to prospect and the company to the client name.
func (c *CreateClientRequest) ToModel(id, operator string) model.Client {
	now := timezone.Now()

	status := model.StatusProspect
	if c.Status != constant.Empty {
		status = c.Status
	}

	company := c.Company
	if company == constant.Empty {
		company = c.Name
	}

	return model.Client{
		ID:            id,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Phone:         c.Phone,
		Company:       company,
		Industry:      c.Industry,
		Status:        status,
		TotalRevenue:  decimal.Zero,
		LastContact:   now,
		InquiryIDs:    pq.StringArray{},
		InvoiceIDs:    pq.StringArray{},
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}
}

type UpdateClientRequest struct {
	Name           string           `db:"name"            json:"name"            validate:"omitempty,max=150"`
	ContactPerson  string           `db:"contact_person"  json:"contact_person"  validate:"omitempty,max=100"`
	Email          string           `db:"email"           json:"email"           validate:"omitempty,email,max=100"`
	Phone          string           `db:"phone"           json:"phone"           validate:"omitempty,max=20"`
	Company        string           `db:"company"         json:"company"         validate:"omitempty,max=150"`
	Industry       string           `db:"industry"        json:"industry"        validate:"omitempty,max=100"`
	Status         string           `db:"status"          json:"status"          validate:"omitempty,oneof=active prospect inactive"`
	TotalInquiries *int             `db:"total_inquiries" json:"total_inquiries" validate:"omitempty,min=0"`
	TotalRevenue   *decimal.Decimal `db:"total_revenue"   json:"total_revenue"   validate:"omitempty,gte=0"`
	LastContact    string           `db:"last_contact"    json:"last_contact"    validate:"omitempty,datetime=2006-01-02"`
	InquiryIDs     *pq.StringArray  `db:"inquiry_ids"     json:"inquiry_ids"     validate:"omitempty,dive,max=20"`
	InvoiceIDs     *pq.StringArray  `db:"invoice_ids"     json:"invoice_ids"     validate:"omitempty,dive,max=20"`
	Notes          string           `db:"notes"           json:"notes"           validate:"omitempty"`
}

type ClientResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	ContactPerson  string          `json:"contact_person"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Company        string          `json:"company"`
	Industry       string          `json:"industry"`
	Status         string          `json:"status"`
	TotalInquiries int             `json:"total_inquiries"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	LastContact    string          `json:"last_contact"`
	InquiryIDs     []string        `json:"inquiry_ids"`
	InvoiceIDs     []string        `json:"invoice_ids"`
	Notes          string          `json:"notes"`
	gDto.Metadata
}

func (r *ClientResponse) FromModel(m model.Client) {
	r.ID = m.ID
	r.Name = m.Name
	r.ContactPerson = m.ContactPerson
	r.Email = m.Email
	r.Phone = m.Phone
	r.Company = m.Company
	r.Industry = m.Industry
	r.Status = m.Status
	r.TotalInquiries = m.TotalInquiries
	r.TotalRevenue = m.TotalRevenue
	r.LastContact = timezone.Format(m.LastContact, constant.DayFormat)
	r.InquiryIDs = append([]string{}, m.InquiryIDs...)
	r.InvoiceIDs = append([]string{}, m.InvoiceIDs...)
	r.Notes = m.Notes
	r.Metadata.FromModel(m.Metadata)
}

type GetClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetClientsResponse) FromModels(models []model.Client, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Clients = make([]ClientResponse, len(models))
	for i, mod := range models {
		r.Clients[i].FromModel(mod)
	}
}
