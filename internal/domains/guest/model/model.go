package model

import (
	"strings"
	"time"

	"grandplaza/shared/model"
	"grandplaza/shared/stats"

	"github.com/shopspring/decimal"
)

const (
	TableName   = "guests"
	EntityName  = "guest"
	CachePrefix = "guest"
	IDPrefix    = "G"
)

const (
	FieldID            = "id"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldAddress       = "address"
	FieldDateOfBirth   = "date_of_birth"
	FieldNationality   = "nationality"
	FieldIDType        = "id_type"
	FieldIDNumber      = "id_number"
	FieldVIPStatus     = "vip_status"
	FieldTotalBookings = "total_bookings"
	FieldTotalSpent    = "total_spent"
	FieldLastVisit     = "last_visit"
	FieldPreferences   = "preferences"
	FieldNotes         = "notes"
)

const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

// Tiers lists the loyalty tiers from lowest to highest.
var Tiers = []string{TierBronze, TierSilver, TierGold, TierPlatinum}

// CanonicalTier maps a tier name in any letter case onto its stored spelling. Unknown names are returned as given.
func CanonicalTier(name string) string {
	for _, tier := range Tiers {
		if strings.EqualFold(tier, name) {
			return tier
		}
	}

	return name
}

type Guest struct {
	ID            string          `db:"id"`
	FirstName     string          `db:"first_name"`
	LastName      string          `db:"last_name"`
	Email         string          `db:"email"`
	Phone         string          `db:"phone"`
	Address       string          `db:"address"`
	DateOfBirth   *time.Time      `db:"date_of_birth"`
	Nationality   string          `db:"nationality"`
	IDType        string          `db:"id_type"`
	IDNumber      string          `db:"id_number"`
	VIPStatus     string          `db:"vip_status"`
	TotalBookings int             `db:"total_bookings"`
	TotalSpent    decimal.Decimal `db:"total_spent"`
	LastVisit     *time.Time      `db:"last_visit"`
	Preferences   string          `db:"preferences"`
	Notes         string          `db:"notes"`
	model.Metadata
}

func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}

// IsVIP is true for Gold and Platinum guests.
func (g Guest) IsVIP() bool {
	return g.VIPStatus == TierGold || g.VIPStatus == TierPlatinum
}

type Summary struct {
	Total      int             `json:"total"`
	VIP        int             `json:"vip"`
	Returning  int             `json:"returning"`
	Bronze     int             `json:"bronze"`
	Silver     int             `json:"silver"`
	Gold       int             `json:"gold"`
	Platinum   int             `json:"platinum"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// Summarize counts returning guests as those with more than one booking.
func Summarize(guests []Guest) Summary {
	byTier := stats.CountBy(guests, func(g Guest) string { return g.VIPStatus })

	return Summary{
		Total:      len(guests),
		VIP:        stats.Count(guests, Guest.IsVIP),
		Returning:  stats.Count(guests, func(g Guest) bool { return g.TotalBookings > 1 }),
		Bronze:     byTier[TierBronze],
		Silver:     byTier[TierSilver],
		Gold:       byTier[TierGold],
		Platinum:   byTier[TierPlatinum],
		TotalSpent: stats.Sum(guests, func(g Guest) decimal.Decimal { return g.TotalSpent }),
	}
}
