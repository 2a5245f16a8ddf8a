package dto

import (
	"fmt"
	"time"

	"grandplaza/internal/domains/guest/model"
	"grandplaza/shared"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	gModel "grandplaza/shared/model"
	"grandplaza/shared/timezone"

	"github.com/shopspring/decimal"
)

type CreateGuestRequest struct {
	FirstName   string `json:"first_name"    validate:"required,max=100"`
	LastName    string `json:"last_name"     validate:"required,max=100"`
	Email       string `json:"email"         validate:"required,email,max=100"`
	Phone       string `json:"phone"         validate:"omitempty,max=20"`
	Address     string `json:"address"       validate:"omitempty,max=255"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Nationality string `json:"nationality"   validate:"omitempty,max=50"`
	IDType      string `json:"id_type"       validate:"omitempty,max=50"`
	IDNumber    string `json:"id_number"     validate:"omitempty,max=50"`
	Preferences string `json:"preferences"   validate:"omitempty"`
	Notes       string `json:"notes"         validate:"omitempty"`
}

// ToModel registers a Bronze guest with no stays yet.
func (c *CreateGuestRequest) ToModel(id, operator string) (model.Guest, error) {
	var dateOfBirth *time.Time

	if c.DateOfBirth != constant.Empty {
		parsed, err := timezone.Parse(constant.DayFormat, c.DateOfBirth)
		if err != nil {
			return model.Guest{}, fmt.Errorf("invalid date_of_birth: %w", err)
		}

		dateOfBirth = &parsed
	}

	now := timezone.Now()

	return model.Guest{
		ID:            id,
		FirstName:     c.FirstName,
		LastName:      c.LastName,
		Email:         c.Email,
		Phone:         c.Phone,
		Address:       c.Address,
		DateOfBirth:   dateOfBirth,
		Nationality:   c.Nationality,
		IDType:        c.IDType,
		IDNumber:      c.IDNumber,
		VIPStatus:     model.TierBronze,
		TotalBookings: 0,
		TotalSpent:    decimal.Zero,
		Preferences:   c.Preferences,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}, nil
}

type UpdateGuestRequest struct {
	FirstName     string           `db:"first_name"     json:"first_name"     validate:"omitempty,max=100"`
	LastName      string           `db:"last_name"      json:"last_name"      validate:"omitempty,max=100"`
	Email         string           `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	Phone         string           `db:"phone"          json:"phone"          validate:"omitempty,max=20"`
	Address       string           `db:"address"        json:"address"        validate:"omitempty,max=255"`
	DateOfBirth   string           `db:"date_of_birth"  json:"date_of_birth"  validate:"omitempty,datetime=2006-01-02"`
	Nationality   string           `db:"nationality"    json:"nationality"    validate:"omitempty,max=50"`
	IDType        string           `db:"id_type"        json:"id_type"        validate:"omitempty,max=50"`
	IDNumber      string           `db:"id_number"      json:"id_number"      validate:"omitempty,max=50"`
	VIPStatus     string           `db:"vip_status"     json:"vip_status"     validate:"omitempty,oneof=Bronze Silver Gold Platinum"`
	TotalBookings *int             `db:"total_bookings" json:"total_bookings" validate:"omitempty,min=0"`
	TotalSpent    *decimal.Decimal `db:"total_spent"    json:"total_spent"    validate:"omitempty,gte=0"`
	LastVisit     string           `db:"last_visit"     json:"last_visit"     validate:"omitempty,datetime=2006-01-02"`
	Preferences   string           `db:"preferences"    json:"preferences"    validate:"omitempty"`
	Notes         string           `db:"notes"          json:"notes"          validate:"omitempty"`
}

type GuestResponse struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	FullName      string          `json:"full_name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	DateOfBirth   *string         `json:"date_of_birth"`
	Nationality   string          `json:"nationality"`
	IDType        string          `json:"id_type"`
	IDNumber      string          `json:"id_number"`
	VIPStatus     string          `json:"vip_status"`
	TotalBookings int             `json:"total_bookings"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LastVisit     *string         `json:"last_visit"`
	Preferences   string          `json:"preferences"`
	Notes         string          `json:"notes"`
	gDto.Metadata
}

func formatDay(t *time.Time) *string {
	if t == nil {
		return nil
	}

	day := timezone.Format(*t, constant.DayFormat)

	return &day
}

func (r *GuestResponse) FromModel(m model.Guest) {
	r.ID = m.ID
	r.FirstName = m.FirstName
	r.LastName = m.LastName
	r.FullName = m.FullName()
	r.Email = m.Email
	r.Phone = m.Phone
	r.Address = m.Address
	r.DateOfBirth = formatDay(m.DateOfBirth)
	r.Nationality = m.Nationality
	r.IDType = m.IDType
	r.IDNumber = m.IDNumber
	r.VIPStatus = m.VIPStatus
	r.TotalBookings = m.TotalBookings
	r.TotalSpent = m.TotalSpent
	r.LastVisit = formatDay(m.LastVisit)
	r.Preferences = m.Preferences
	r.Notes = m.Notes
	r.Metadata.FromModel(m.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
