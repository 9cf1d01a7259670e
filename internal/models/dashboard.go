package models

type DashboardStats struct {
	ActiveMemberships int64   `json:"active_memberships"`
	BookingsToday     int64   `json:"bookings_today"`
	UpcomingEvents    int64   `json:"upcoming_events"`
	OpenInquiries     int64   `json:"open_inquiries"`
	RevenueThisMonth  float64 `json:"revenue_this_month"`
}
