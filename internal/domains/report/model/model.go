// Package model derives the dashboard cards and chart series from full scans of rooms, guests and bookings.
package model

import (
	"cmp"
	"slices"
	"time"

	bookingModel "grandplaza/internal/domains/booking/model"
	guestModel "grandplaza/internal/domains/guest/model"
	roomModel "grandplaza/internal/domains/room/model"
	"grandplaza/shared/stats"
	"grandplaza/shared/timezone"

	"github.com/shopspring/decimal"
)

const (
	// TrendMonths is how many months the monthly series cover, the current one included.
	TrendMonths    = 6
	RecentBookings = 4
	TopRooms       = 5
)

type Dashboard struct {
	TotalRooms      int             `json:"total_rooms"`
	OccupiedRooms   int             `json:"occupied_rooms"`
	OccupancyRate   float64         `json:"occupancy_rate"`
	TotalGuests     int             `json:"total_guests"`
	PendingBookings int             `json:"pending_bookings"`
	CheckInsToday   int             `json:"check_ins_today"`
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	AvgDailyRate    decimal.Decimal `json:"avg_daily_rate"`
	RecentBookings  []RecentBooking `json:"recent_bookings"`
}

type RecentBooking struct {
	ID       string          `json:"id"`
	Guest    string          `json:"guest"`
	Room     string          `json:"room"`
	CheckIn  time.Time       `json:"check_in"`
	CheckOut time.Time       `json:"check_out"`
	Status   string          `json:"status"`
	Amount   decimal.Decimal `json:"amount"`
}

type RoomPerformance struct {
	Room     string          `json:"room"`
	Type     string          `json:"type"`
	Bookings int             `json:"bookings"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type Charts struct {
	MonthlyRevenue  []stats.Point     `json:"monthly_revenue"`
	MonthlyBookings []stats.Point     `json:"monthly_bookings"`
	RoomTypes       []stats.Point     `json:"room_types"`
	BookingStatus   []stats.Point     `json:"booking_status"`
	GuestTiers      []stats.Point     `json:"guest_tiers"`
	TopRooms        []RoomPerformance `json:"top_rooms"`
}

func billable(b bookingModel.Booking) bool {
	return b.Status != bookingModel.StatusCancelled
}

// BuildDashboard computes the dashboard as of now. Revenue and the average daily rate cover the
// billable bookings checking in during the current month.
func BuildDashboard(rooms []roomModel.Room, guests []guestModel.Guest, bookings []bookingModel.Booking, now time.Time) Dashboard {
	monthStart := timezone.StartOfMonth(now)

	var (
		revenue decimal.Decimal
		nights  int
	)

	for _, b := range bookings {
		if !billable(b) || !timezone.StartOfMonth(b.CheckIn).Equal(monthStart) {
			continue
		}

		revenue = revenue.Add(b.TotalAmount)
		nights += b.Nights()
	}

	occupied := stats.Count(rooms, func(r roomModel.Room) bool { return r.Status == roomModel.StatusOccupied })

	return Dashboard{
		TotalRooms:      len(rooms),
		OccupiedRooms:   occupied,
		OccupancyRate:   stats.Percentage(occupied, len(rooms)),
		TotalGuests:     len(guests),
		PendingBookings: stats.Count(bookings, func(b bookingModel.Booking) bool { return b.Status == bookingModel.StatusPending }),
		CheckInsToday: stats.Count(bookings, func(b bookingModel.Booking) bool {
			return billable(b) && timezone.SameDay(b.CheckIn, now)
		}),
		MonthlyRevenue: revenue,
		AvgDailyRate:   stats.Average(revenue, nights),
		RecentBookings: recent(bookings),
	}
}

func recent(bookings []bookingModel.Booking) []RecentBooking {
	sorted := slices.Clone(bookings)
	slices.SortStableFunc(sorted, func(a, b bookingModel.Booking) int {
		return b.BookingDate.Compare(a.BookingDate)
	})

	res := make([]RecentBooking, 0, RecentBookings)
	for _, b := range sorted[:min(len(sorted), RecentBookings)] {
		res = append(res, RecentBooking{
			ID:       b.ID,
			Guest:    b.GuestName,
			Room:     b.RoomNumber,
			CheckIn:  b.CheckIn,
			CheckOut: b.CheckOut,
			Status:   b.Status,
			Amount:   b.TotalAmount,
		})
	}

	return res
}

// BuildCharts computes every chart series. Monthly series end at the month of now and are
// keyed by check-in month, cancelled bookings excluded.
func BuildCharts(rooms []roomModel.Room, guests []guestModel.Guest, bookings []bookingModel.Booking, now time.Time) Charts {
	current := timezone.StartOfMonth(now)

	months := make([]time.Time, TrendMonths)
	for i := range months {
		months[i] = current.AddDate(0, i-TrendMonths+1, 0)
	}

	revenue := make(map[time.Time]decimal.Decimal, TrendMonths)
	counts := make(map[time.Time]int, TrendMonths)

	for _, b := range bookings {
		if !billable(b) {
			continue
		}

		month := timezone.StartOfMonth(b.CheckIn)
		revenue[month] = revenue[month].Add(b.TotalAmount)
		counts[month]++
	}

	charts := Charts{
		MonthlyRevenue:  make([]stats.Point, 0, TrendMonths),
		MonthlyBookings: make([]stats.Point, 0, TrendMonths),
		BookingStatus:   stats.Series(bookingModel.Statuses, stats.CountBy(bookings, func(b bookingModel.Booking) string { return b.Status })),
		GuestTiers:      stats.Series(guestModel.Tiers, stats.CountBy(guests, func(g guestModel.Guest) string { return g.VIPStatus })),
		TopRooms:        topRooms(rooms, bookings),
	}

	for _, month := range months {
		label := month.Format("Jan")
		amount, _ := revenue[month].Float64()

		charts.MonthlyRevenue = append(charts.MonthlyRevenue, stats.Point{Label: label, Value: amount})
		charts.MonthlyBookings = append(charts.MonthlyBookings, stats.Point{Label: label, Value: float64(counts[month])})
	}

	byType := stats.CountBy(rooms, func(r roomModel.Room) string { return r.Type })
	types := make([]string, 0, len(byType))

	for t := range byType {
		types = append(types, t)
	}

	slices.Sort(types)
	charts.RoomTypes = stats.Series(types, byType)

	return charts
}

func topRooms(rooms []roomModel.Room, bookings []bookingModel.Booking) []RoomPerformance {
	types := make(map[string]string, len(rooms))
	for _, r := range rooms {
		types[r.Number] = r.Type
	}

	index := make(map[string]int)
	perf := make([]RoomPerformance, 0)

	for _, b := range bookings {
		if !billable(b) {
			continue
		}

		i, ok := index[b.RoomNumber]
		if !ok {
			roomType := types[b.RoomNumber]
			if roomType == "" {
				roomType = b.RoomType
			}

			i = len(perf)
			index[b.RoomNumber] = i
			perf = append(perf, RoomPerformance{Room: b.RoomNumber, Type: roomType, Revenue: decimal.Zero})
		}

		perf[i].Bookings++
		perf[i].Revenue = perf[i].Revenue.Add(b.TotalAmount)
	}

	slices.SortStableFunc(perf, func(a, b RoomPerformance) int {
		if c := b.Revenue.Cmp(a.Revenue); c != 0 {
			return c
		}

		return cmp.Compare(a.Room, b.Room)
	})

	return perf[:min(len(perf), TopRooms)]
}
