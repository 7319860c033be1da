package repository

import (
	"context"
	"time"

	"estateportal/internal/domain"

	"gorm.io/gorm"
)

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) DB() *gorm.DB {
	return r.db
}

type partnerModel struct {
	ID             int64      `gorm:"column:id;primaryKey"`
	UserID         int64      `gorm:"column:user_id;uniqueIndex"`
	FirstName      string     `gorm:"column:first_name"`
	LastName       string     `gorm:"column:last_name"`
	CompanyName    *string    `gorm:"column:company_name"`
	Phone          string     `gorm:"column:phone"`
	City           string     `gorm:"column:city"`
	State          string     `gorm:"column:state"`
	RERANumber     *string    `gorm:"column:rera_number"`
	EmailVerified  bool       `gorm:"column:email_verified"`
	EmailOTP       *string    `gorm:"column:email_otp"`
	EmailOTPExpiry *time.Time `gorm:"column:email_otp_expiry"`
	Status         string     `gorm:"column:status"`
	ApprovedAt     *time.Time `gorm:"column:approved_at"`
	RejectedAt     *time.Time `gorm:"column:rejected_at"`
	SuspendedAt    *time.Time `gorm:"column:suspended_at"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (partnerModel) TableName() string { return "channel_partners" }

func toDomainPartner(m partnerModel) *domain.ChannelPartner {
	var company, rera string
	if m.CompanyName != nil {
		company = *m.CompanyName
	}
	if m.RERANumber != nil {
		rera = *m.RERANumber
	}

	return &domain.ChannelPartner{
		ID:             m.ID,
		UserID:         m.UserID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		CompanyName:    company,
		Phone:          m.Phone,
		City:           m.City,
		State:          m.State,
		RERANumber:     rera,
		EmailVerified:  m.EmailVerified,
		EmailOTP:       m.EmailOTP,
		EmailOTPExpiry: m.EmailOTPExpiry,
		Status:         domain.PartnerStatus(m.Status),
		ApprovedAt:     m.ApprovedAt,
		RejectedAt:     m.RejectedAt,
		SuspendedAt:    m.SuspendedAt,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toPartnerModel(p *domain.ChannelPartner) partnerModel {
	var company, rera *string
	if p.CompanyName != "" {
		v := p.CompanyName
		company = &v
	}
	if p.RERANumber != "" {
		v := p.RERANumber
		rera = &v
	}

	return partnerModel{
		ID:             p.ID,
		UserID:         p.UserID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		CompanyName:    company,
		Phone:          p.Phone,
		City:           p.City,
		State:          p.State,
		RERANumber:     rera,
		EmailVerified:  p.EmailVerified,
		EmailOTP:       p.EmailOTP,
		EmailOTPExpiry: p.EmailOTPExpiry,
		Status:         string(p.Status),
		ApprovedAt:     p.ApprovedAt,
		RejectedAt:     p.RejectedAt,
		SuspendedAt:    p.SuspendedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func (r *PartnerRepository) GetByID(ctx context.Context, id int64) (*domain.ChannelPartner, error) {
	var m partnerModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainPartner(m), nil
}

func (r *PartnerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.ChannelPartner, error) {
	var m partnerModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, err
	}
	return toDomainPartner(m), nil
}

// MarkEmailVerified flips the verified flag and clears both OTP columns
// in one update, so the otp/expiry pair never goes out of step.
func (r *PartnerRepository) MarkEmailVerified(ctx context.Context, partnerID int64) error {
	return r.db.WithContext(ctx).
		Model(&partnerModel{}).
		Where("id = ?", partnerID).
		Updates(map[string]any{
			"email_verified":   true,
			"email_otp":        nil,
			"email_otp_expiry": nil,
			"updated_at":       time.Now(),
		}).Error
}

// UpdateStatus writes the target status and only the timestamp column
// that belongs to it.
func (r *PartnerRepository) UpdateStatus(ctx context.Context, partnerID int64, target domain.PartnerStatus, now time.Time) error {
	updates := map[string]any{
		"status":     string(target),
		"updated_at": now,
	}
	if col := domain.StatusStampColumn(target); col != "" {
		updates[col] = now
	}
	res := r.db.WithContext(ctx).
		Model(&partnerModel{}).
		Where("id = ?", partnerID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// BulkUpdateStatus applies the same status + stamp to every id in one
// UPDATE and reports how many rows it touched.
func (r *PartnerRepository) BulkUpdateStatus(ctx context.Context, ids []int64, target domain.PartnerStatus, now time.Time) (int64, error) {
	updates := map[string]any{
		"status":     string(target),
		"updated_at": now,
	}
	if col := domain.StatusStampColumn(target); col != "" {
		updates[col] = now
	}
	res := r.db.WithContext(ctx).
		Model(&partnerModel{}).
		Where("id IN ?", ids).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// GetWithUser returns the partner joined with the owning account's
// name and email.
func (r *PartnerRepository) GetWithUser(ctx context.Context, partnerID int64) (*domain.ChannelPartner, *domain.User, error) {
	p, err := r.GetByID(ctx, partnerID)
	if err != nil {
		return nil, nil, err
	}

	var um userModel
	if err := r.db.WithContext(ctx).First(&um, p.UserID).Error; err != nil {
		return nil, nil, err
	}
	return p, toDomainUser(um), nil
}

// FindByStatusPaginated returns partner rows for moderation, newest
// first. Empty status means all.
func (r *PartnerRepository) FindByStatusPaginated(ctx context.Context, status domain.PartnerStatus, offset, limit int) ([]domain.PendingPartnerRow, int64, error) {
	q := r.db.WithContext(ctx).
		Table("channel_partners cp").
		Joins("JOIN users u ON u.id = cp.user_id")
	if status != "" {
		q = q.Where("cp.status = ?", string(status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []domain.PendingPartnerRow
	if err := q.
		Select("cp.id, cp.user_id, cp.first_name, cp.last_name, cp.company_name, u.email, cp.city, cp.status, cp.created_at").
		Order("cp.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

// ListAll streams every partner joined with its account, for CSV export.
func (r *PartnerRepository) ListAll(ctx context.Context) ([]domain.PendingPartnerRow, error) {
	var rows []domain.PendingPartnerRow
	err := r.db.WithContext(ctx).
		Table("channel_partners cp").
		Select("cp.id, cp.user_id, cp.first_name, cp.last_name, cp.company_name, u.email, cp.city, cp.status, cp.created_at").
		Joins("JOIN users u ON u.id = cp.user_id").
		Order("cp.id").
		Scan(&rows).Error
	return rows, err
}
