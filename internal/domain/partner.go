package domain

import "time"

type PartnerStatus string

const (
	StatusPending   PartnerStatus = "pending"
	StatusApproved  PartnerStatus = "approved"
	StatusRejected  PartnerStatus = "rejected"
	StatusSuspended PartnerStatus = "suspended"
)

// ParsePartnerStatus accepts only the statuses an admin may set.
// "pending" is the initial state and cannot be re-entered.
func ParsePartnerStatus(v string) (PartnerStatus, bool) {
	switch PartnerStatus(v) {
	case StatusApproved, StatusRejected, StatusSuspended:
		return PartnerStatus(v), true
	}
	return "", false
}

type ChannelPartner struct {
	ID             int64         `json:"id"`
	UserID         int64         `json:"user_id"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	CompanyName    string        `json:"company_name,omitempty"`
	Phone          string        `json:"phone"`
	City           string        `json:"city"`
	State          string        `json:"state"`
	RERANumber     string        `json:"rera_number,omitempty"`
	EmailVerified  bool          `json:"email_verified"`
	EmailOTP       *string       `json:"-"`
	EmailOTPExpiry *time.Time    `json:"-"`
	Status         PartnerStatus `json:"status"`
	ApprovedAt     *time.Time    `json:"approved_at,omitempty"`
	RejectedAt     *time.Time    `json:"rejected_at,omitempty"`
	SuspendedAt    *time.Time    `json:"suspended_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// ApplyStatus sets the target status and stamps the timestamp that
// belongs to it. Earlier stamps are left as they are, so a partner that
// went approved -> suspended keeps both times. Transitions are
// unconditional: any status may follow any other.
func (p *ChannelPartner) ApplyStatus(target PartnerStatus, now time.Time) {
	p.Status = target
	switch target {
	case StatusApproved:
		p.ApprovedAt = &now
	case StatusRejected:
		p.RejectedAt = &now
	case StatusSuspended:
		p.SuspendedAt = &now
	}
}

// StatusStampColumn maps a target status to the column ApplyStatus
// would stamp. Bulk updates use it to build the same per-record effect
// in one UPDATE.
func StatusStampColumn(target PartnerStatus) string {
	switch target {
	case StatusApproved:
		return "approved_at"
	case StatusRejected:
		return "rejected_at"
	case StatusSuspended:
		return "suspended_at"
	}
	return ""
}

// PendingPartnerRow is a flattened row for the admin moderation list.
type PendingPartnerRow struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	CompanyName string        `json:"company_name,omitempty"`
	Email       string        `json:"email"`
	City        string        `json:"city"`
	Status      PartnerStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
