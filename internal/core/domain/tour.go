package domain

import (
	"time"

	"github.com/google/uuid"
)

type TourStatus string

const (
	TourActive   TourStatus = "active"
	TourInactive TourStatus = "inactive"
	TourDraft    TourStatus = "draft"
)

type Tour struct {
	ID             uuid.UUID  `json:"id"`
	Code           string     `json:"tourId"`
	Name           string     `json:"tourName"`
	Departure      string     `json:"departure"`
	Destination    string     `json:"destination"`
	Category       string     `json:"category"`
	Country        string     `json:"country"`
	Itinerary      string     `json:"itinerary"`
	StartDate      time.Time  `json:"startDate"`
	EndDate        time.Time  `json:"endDate"`
	Duration       int        `json:"duration"`
	Transportation string     `json:"transportation"`
	Price          float64    `json:"price"`
	AvailableSlots int        `json:"availableSlots"`
	TotalSlots     int        `json:"totalSlots"`
	Images         []string   `json:"images"`
	Status         TourStatus `json:"status"`
	Featured       bool       `json:"featured"`
	Rating         float64    `json:"rating"`
	ReviewCount    int        `json:"reviewCount"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// TourFilter narrows the public catalog listing. SortBy takes one of the
// catalog sort keys (price-asc, price-desc, date-asc, date-desc, name-asc,
// name-desc, rating-desc, featured); anything else falls back to newest
// first.
type TourFilter struct {
	Destination string
	Category    string
	StartDate   *time.Time
	EndDate     *time.Time
	MinPrice    *float64
	MaxPrice    *float64
	SortBy      string
	Page        int
	Limit       int
}

// RecommendationFilter narrows the suggestion feed. Only bookable tours
// (active, slots left) are ever recommended.
type RecommendationFilter struct {
	Category string
	MaxPrice *float64
	Limit    int
}

// DestinationStat summarizes one destination across its bookable tours, for
// the popular-destinations suggestions.
type DestinationStat struct {
	Destination  string  `json:"destination"`
	Country      string  `json:"country"`
	TourCount    int64   `json:"tourCount"`
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
	AvgPrice     float64 `json:"avgPrice"`
	AvgRating    float64 `json:"avgRating"`
	TotalReviews int64   `json:"totalReviews"`
	SampleImage  string  `json:"sampleImage,omitempty"`
}
