package admin

import "estateportal/internal/domain"

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BulkStatusRequest struct {
	IDs    []int64 `json:"ids"`
	Action string  `json:"action"`
}

// PartnerDetail is a partner profile joined with its account.
type PartnerDetail struct {
	Partner *domain.ChannelPartner `json:"partner"`
	Name    string                 `json:"name"`
	Email   string                 `json:"email"`
}

type PartnerListFilter struct {
	Status string
}

type StatisticsResponse struct {
	TotalPartners      int `json:"total_partners"`
	PendingPartners    int `json:"pending_partners"`
	ApprovedPartners   int `json:"approved_partners"`
	VerifiedEmails     int `json:"verified_emails"`
	TotalProperties    int `json:"total_properties"`
	TodayRegistrations int `json:"today_registrations"`
}
