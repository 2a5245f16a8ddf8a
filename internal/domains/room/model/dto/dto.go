package dto

import (
	"grandplaza/internal/domains/room/model"
	"grandplaza/shared"
	"grandplaza/shared/constant"
	gDto "grandplaza/shared/dto"
	gModel "grandplaza/shared/model"
	"grandplaza/shared/timezone"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	Number      string          `json:"number"      validate:"required,max=10"`
	Type        string          `json:"type"        validate:"required,max=50"`
	Capacity    int             `json:"capacity"    validate:"required,min=1"`
	Price       decimal.Decimal `json:"price"       validate:"gte=0"`
	Status      string          `json:"status"      validate:"omitempty,oneof=available occupied maintenance cleaning"`
	Amenities   []string        `json:"amenities"   validate:"omitempty,dive,max=30"`
	Description string          `json:"description" validate:"omitempty"`
	Size        int             `json:"size"        validate:"omitempty,min=0"`
	BedType     string          `json:"bed_type"    validate:"omitempty,max=50"`
}

// ToModel defaults the status to available.
func (c *CreateRoomRequest) ToModel(id, operator string) model.Room {
	now := timezone.Now()

	status := model.StatusAvailable
	if c.Status != constant.Empty {
		status = c.Status
	}

	amenities := pq.StringArray{}
	if c.Amenities != nil {
		amenities = c.Amenities
	}

	return model.Room{
		ID:          id,
		Number:      c.Number,
		Type:        c.Type,
		Capacity:    c.Capacity,
		Price:       c.Price,
		Status:      status,
		Amenities:   amenities,
		Description: c.Description,
		Size:        c.Size,
		BedType:     c.BedType,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}
}

type UpdateRoomRequest struct {
	Number      string           `db:"number"      json:"number"      validate:"omitempty,max=10"`
	Type        string           `db:"type"        json:"type"        validate:"omitempty,max=50"`
	Capacity    *int             `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	Price       *decimal.Decimal `db:"price"       json:"price"       validate:"omitempty,gte=0"`
	Status      string           `db:"status"      json:"status"      validate:"omitempty,oneof=available occupied maintenance cleaning"`
	Amenities   *pq.StringArray  `db:"amenities"   json:"amenities"   validate:"omitempty,dive,max=30"`
	Description string           `db:"description" json:"description" validate:"omitempty"`
	Size        *int             `db:"size"        json:"size"        validate:"omitempty,min=0"`
	BedType     string           `db:"bed_type"    json:"bed_type"    validate:"omitempty,max=50"`
}

type RoomResponse struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"`
	Type        string          `json:"type"`
	Capacity    int             `json:"capacity"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Amenities   []string        `json:"amenities"`
	Description string          `json:"description"`
	Size        int             `json:"size"`
	BedType     string          `json:"bed_type"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.Number = m.Number
	r.Type = m.Type
	r.Capacity = m.Capacity
	r.Price = m.Price
	r.Status = m.Status
	r.Amenities = append([]string{}, m.Amenities...)
	r.Description = m.Description
	r.Size = m.Size
	r.BedType = m.BedType
	r.Metadata.FromModel(m.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
