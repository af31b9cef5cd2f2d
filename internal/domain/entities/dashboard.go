package entities

type ExecutiveCounts struct {
	Total   int64 `json:"total"`
	Visible int64 `json:"visible"`
}

type SponsorCounts struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

// RecentCounts pairs an all-time total with the trailing-7-day count.
type RecentCounts struct {
	Total  int64 `json:"total"`
	Recent int64 `json:"recent"`
}

type DashboardStats struct {
	Executives          ExecutiveCounts `json:"executives"`
	Sponsors            SponsorCounts   `json:"sponsors"`
	InterestSubmissions RecentCounts    `json:"interestSubmissions"`
	SponsorInquiries    RecentCounts    `json:"sponsorInquiries"`
}
