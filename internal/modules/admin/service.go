package admin

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"time"

	"estateportal/internal/domain"

	"gorm.io/gorm"
)

var (
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidAction   = errors.New("invalid action")
	ErrEmptyIDs        = errors.New("ids must be a non-empty list")
	ErrPartnerNotFound = errors.New("channel partner not found")
)

// actionStatus maps a bulk action to the status it writes. Single and
// bulk updates share the status set, so both go through
// domain.ParsePartnerStatus / this table.
var actionStatus = map[string]domain.PartnerStatus{
	"approve": domain.StatusApproved,
	"reject":  domain.StatusRejected,
	"suspend": domain.StatusSuspended,
}

type Service struct {
	partnerRepo  PartnerRepository
	userRepo     UserRepository
	propertyRepo PropertyRepository
}

func NewService(
	partnerRepo PartnerRepository,
	userRepo UserRepository,
	propertyRepo PropertyRepository,
) *Service {
	return &Service{
		partnerRepo:  partnerRepo,
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
	}
}

// -------------------- Partner moderation --------------------

// UpdatePartnerStatus sets the target status on one partner and stamps
// the matching timestamp. Transitions are unconditional: re-approving
// an approved partner just re-stamps approved_at.
func (s *Service) UpdatePartnerStatus(ctx context.Context, partnerID int64, target string) (*PartnerDetail, error) {
	status, ok := domain.ParsePartnerStatus(target)
	if !ok {
		return nil, ErrInvalidStatus
	}

	if err := s.partnerRepo.UpdateStatus(ctx, partnerID, status, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}

	partner, user, err := s.partnerRepo.GetWithUser(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	return &PartnerDetail{Partner: partner, Name: user.Name, Email: user.Email}, nil
}

// BulkUpdateStatus applies one action to every id in a single batch
// update and reports the affected count. Nothing is written when the
// input is invalid.
func (s *Service) BulkUpdateStatus(ctx context.Context, ids []int64, action string) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrEmptyIDs
	}
	status, ok := actionStatus[action]
	if !ok {
		return 0, ErrInvalidAction
	}

	return s.partnerRepo.BulkUpdateStatus(ctx, ids, status, time.Now())
}

// ListPartners supports a status filter + pagination
func (s *Service) ListPartners(ctx context.Context, filter PartnerListFilter, page, limit int) ([]domain.PendingPartnerRow, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var status domain.PartnerStatus
	if filter.Status != "" {
		status = domain.PartnerStatus(filter.Status)
	}

	rows, total, err := s.partnerRepo.FindByStatusPaginated(ctx, status, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return rows, int(total), nil
}

// GetPartner returns one partner joined with its account.
func (s *Service) GetPartner(ctx context.Context, partnerID int64) (*PartnerDetail, error) {
	partner, user, err := s.partnerRepo.GetWithUser(ctx, partnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartnerNotFound
		}
		return nil, err
	}
	return &PartnerDetail{Partner: partner, Name: user.Name, Email: user.Email}, nil
}

// ExportPartnersCSV streams every partner row as CSV.
func (s *Service) ExportPartnersCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.partnerRepo.ListAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "first_name", "last_name", "company", "email", "city", "status", "registered_at"}); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatInt(r.ID, 10),
			r.FirstName,
			r.LastName,
			r.CompanyName,
			r.Email,
			r.City,
			string(r.Status),
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// -------------------- Statistics --------------------

func (s *Service) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	var totalPartners int64
	if err := s.partnerRepo.DB().WithContext(ctx).Table("channel_partners").Count(&totalPartners).Error; err != nil {
		return nil, err
	}

	var pendingPartners int64
	if err := s.partnerRepo.DB().WithContext(ctx).
		Table("channel_partners").
		Where("status = ?", domain.StatusPending).
		Count(&pendingPartners).Error; err != nil {
		return nil, err
	}

	var approvedPartners int64
	if err := s.partnerRepo.DB().WithContext(ctx).
		Table("channel_partners").
		Where("status = ?", domain.StatusApproved).
		Count(&approvedPartners).Error; err != nil {
		return nil, err
	}

	var verifiedEmails int64
	if err := s.partnerRepo.DB().WithContext(ctx).
		Table("channel_partners").
		Where("email_verified = ?", true).
		Count(&verifiedEmails).Error; err != nil {
		return nil, err
	}

	var totalProperties int64
	if err := s.propertyRepo.DB().WithContext(ctx).Table("properties").Count(&totalProperties).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	var todayRegistrations int64
	if err := s.partnerRepo.DB().WithContext(ctx).
		Table("channel_partners").
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&todayRegistrations).Error; err != nil {
		return nil, err
	}

	return &StatisticsResponse{
		TotalPartners:      int(totalPartners),
		PendingPartners:    int(pendingPartners),
		ApprovedPartners:   int(approvedPartners),
		VerifiedEmails:     int(verifiedEmails),
		TotalProperties:    int(totalProperties),
		TodayRegistrations: int(todayRegistrations),
	}, nil
}
