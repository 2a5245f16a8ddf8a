package model

import (
	"grandplaza/shared/model"
	"grandplaza/shared/stats"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName   = "rooms"
	EntityName  = "room"
	CachePrefix = "room"
	IDPrefix    = "RM"
)

const (
	FieldID          = "id"
	FieldNumber      = "number"
	FieldType        = "type"
	FieldCapacity    = "capacity"
	FieldPrice       = "price"
	FieldStatus      = "status"
	FieldAmenities   = "amenities"
	FieldDescription = "description"
	FieldSize        = "size"
	FieldBedType     = "bed_type"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusMaintenance = "maintenance"
	StatusCleaning    = "cleaning"
)

type Room struct {
	ID          string          `db:"id"`
	Number      string          `db:"number"`
	Type        string          `db:"type"`
	Capacity    int             `db:"capacity"`
	Price       decimal.Decimal `db:"price"`
	Status      string          `db:"status"`
	Amenities   pq.StringArray  `db:"amenities"`
	Description string          `db:"description"`
	Size        int             `db:"size"`
	BedType     string          `db:"bed_type"`
	model.Metadata
}

type Summary struct {
	Total         int     `json:"total"`
	Available     int     `json:"available"`
	Occupied      int     `json:"occupied"`
	Maintenance   int     `json:"maintenance"`
	Cleaning      int     `json:"cleaning"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

// Summarize reports the occupancy rate as a percentage of all rooms, zero when there are none.
func Summarize(rooms []Room) Summary {
	byStatus := stats.CountBy(rooms, func(r Room) string { return r.Status })

	return Summary{
		Total:         len(rooms),
		Available:     byStatus[StatusAvailable],
		Occupied:      byStatus[StatusOccupied],
		Maintenance:   byStatus[StatusMaintenance],
		Cleaning:      byStatus[StatusCleaning],
		OccupancyRate: stats.Percentage(byStatus[StatusOccupied], len(rooms)),
	}
}
