package domain

// BookingStats aggregates confirmed and paid bookings for the admin
// dashboard. Revenue counts paid bookings only.
type BookingStats struct {
	TotalBookings   int64                `json:"totalBookings"`
	TotalRevenue    float64              `json:"totalRevenue"`
	BookingsByMonth []MonthlyBookingStat `json:"bookingsByMonth"`
}

type MonthlyBookingStat struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// TourStat ranks a tour by booking volume.
type TourStat struct {
	TourID       string  `json:"tourId"`
	TourName     string  `json:"tourName"`
	BookingCount int64   `json:"bookingCount"`
	TotalRevenue float64 `json:"totalRevenue"`
}
