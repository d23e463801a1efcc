package models

// DashboardSummary holds the seller's aggregate stats. Zero values are valid
// and are what a failed or malformed summary fetch degrades to.
type DashboardSummary struct {
	TotalStores   int     `json:"totalStores"`
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// StoreBreakdown is one per-store row of the dashboard breakdown.
type StoreBreakdown struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Products int    `json:"products"`
	Orders   int    `json:"orders"`
}
