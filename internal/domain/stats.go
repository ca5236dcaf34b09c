package domain

type CategoryCount struct {
	Category Category `json:"category"`
	Count    int64    `json:"count"`
}

type DashboardStats struct {
	TotalRequests     int64           `json:"total_requests"`
	PendingRequests   int64           `json:"pending_requests"`
	AcceptedRequests  int64           `json:"accepted_requests"`
	CompletedRequests int64           `json:"completed_requests"`
	ByCategory        []CategoryCount `json:"by_category"`
	Donations         DonationTotals  `json:"donations"`
}
