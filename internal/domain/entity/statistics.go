package entity

import "time"

// RestaurantStats is the dashboard summary shown to a restaurant.
type RestaurantStats struct {
	ActiveDonations  int64   `json:"active_donations"`
	TotalDonations   int     `json:"total_donations"`
	TotalFoodSavedKg float64 `json:"total_food_saved_kg"`
	ImpactScore      int     `json:"impact_score"`
}

// NGOStats is the dashboard summary shown to an NGO.
type NGOStats struct {
	ActiveClaims int64 `json:"active_claims"`
	TotalClaims  int   `json:"total_claims"`
	PeopleServed int   `json:"people_served"`
}

// PlatformTotals are the platform-wide counts on the admin dashboard.
type PlatformTotals struct {
	TotalRestaurants     int64   `json:"total_restaurants"`
	TotalNGOs            int64   `json:"total_ngos"`
	TotalDonations       int64   `json:"total_donations"`
	ActiveDonations      int64   `json:"active_donations"`
	CompletedDonations   int64   `json:"completed_donations"`
	TotalFoodSavedKg     float64 `json:"total_food_saved_kg"`
	PendingVerifications int64   `json:"pending_verifications"`
}

// MonthlyTrend is one bucket of the donation histogram.
type MonthlyTrend struct {
	Month       time.Time `json:"month"`
	Donations   int64     `json:"donations"`
	FoodSavedKg float64   `json:"food_saved_kg"`
}

// Dashboard aggregates everything the admin landing page shows.
type Dashboard struct {
	Stats           PlatformTotals `json:"stats"`
	RecentDonations []*Donation    `json:"recent_donations"`
	MonthlyTrends   []MonthlyTrend `json:"monthly_trends"`
}
