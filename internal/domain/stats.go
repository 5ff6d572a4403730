package domain

type TicketTypeStats struct {
	Type    TicketType `json:"type"`
	Count   int        `json:"count"`
	Revenue int        `json:"revenue"`
}

type DashboardStats struct {
	TotalUsers         int               `json:"total_users"`
	TotalTickets       int               `json:"total_tickets"`
	TotalRevenue       int               `json:"total_revenue"`
	TotalConferences   int               `json:"total_conferences"`
	TotalRegistrations int               `json:"total_registrations"`
	TicketsByType      []TicketTypeStats `json:"tickets_by_type"`
}
