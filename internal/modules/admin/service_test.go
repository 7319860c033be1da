package admin

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"estateportal/internal/domain"

	"gorm.io/gorm"
)

type memPartnerRepo struct {
	partners map[int64]*domain.ChannelPartner
	users    map[int64]*domain.User
}

func newMemPartnerRepo() *memPartnerRepo {
	return &memPartnerRepo{
		partners: map[int64]*domain.ChannelPartner{},
		users:    map[int64]*domain.User{},
	}
}

func (m *memPartnerRepo) DB() *gorm.DB { return nil }

func (m *memPartnerRepo) GetByID(ctx context.Context, id int64) (*domain.ChannelPartner, error) {
	p, ok := m.partners[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (m *memPartnerRepo) GetWithUser(ctx context.Context, id int64) (*domain.ChannelPartner, *domain.User, error) {
	p, ok := m.partners[id]
	if !ok {
		return nil, nil, gorm.ErrRecordNotFound
	}
	u, ok := m.users[p.UserID]
	if !ok {
		return nil, nil, gorm.ErrRecordNotFound
	}
	return p, u, nil
}

func (m *memPartnerRepo) UpdateStatus(ctx context.Context, id int64, target domain.PartnerStatus, now time.Time) error {
	p, ok := m.partners[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.ApplyStatus(target, now)
	return nil
}

func (m *memPartnerRepo) BulkUpdateStatus(ctx context.Context, ids []int64, target domain.PartnerStatus, now time.Time) (int64, error) {
	var count int64
	for _, id := range ids {
		if p, ok := m.partners[id]; ok {
			p.ApplyStatus(target, now)
			count++
		}
	}
	return count, nil
}

func (m *memPartnerRepo) FindByStatusPaginated(ctx context.Context, status domain.PartnerStatus, offset, limit int) ([]domain.PendingPartnerRow, int64, error) {
	return nil, 0, nil
}

func (m *memPartnerRepo) ListAll(ctx context.Context) ([]domain.PendingPartnerRow, error) {
	var rows []domain.PendingPartnerRow
	for id, p := range m.partners {
		u := m.users[p.UserID]
		rows = append(rows, domain.PendingPartnerRow{
			ID:          id,
			UserID:      p.UserID,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			CompanyName: p.CompanyName,
			Email:       u.Email,
			City:        p.City,
			Status:      p.Status,
			CreatedAt:   p.CreatedAt,
		})
	}
	return rows, nil
}

func seedRepo(ids ...int64) *memPartnerRepo {
	repo := newMemPartnerRepo()
	for _, id := range ids {
		userID := id + 100
		repo.partners[id] = &domain.ChannelPartner{
			ID:        id,
			UserID:    userID,
			FirstName: "Partner",
			LastName:  "Test",
			City:      "Pune",
			Status:    domain.StatusPending,
			CreatedAt: time.Now(),
		}
		repo.users[userID] = &domain.User{
			ID:    userID,
			Name:  "Partner Test",
			Email: "partner@test.in",
			Role:  domain.RoleChannelPartner,
		}
	}
	return repo
}

func TestUpdatePartnerStatus_ApproveThenSuspend(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(10)
	svc := NewService(repo, nil, nil)

	detail, err := svc.UpdatePartnerStatus(ctx, 10, "approved")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if detail.Partner.Status != domain.StatusApproved {
		t.Fatalf("expected status approved, got %v", detail.Partner.Status)
	}
	if detail.Partner.ApprovedAt == nil {
		t.Fatalf("expected approved_at to be set")
	}
	if detail.Partner.SuspendedAt != nil || detail.Partner.RejectedAt != nil {
		t.Fatalf("expected only approved_at stamped")
	}
	if detail.Name != "Partner Test" || detail.Email != "partner@test.in" {
		t.Fatalf("expected joined account name/email, got %q / %q", detail.Name, detail.Email)
	}

	detail, err = svc.UpdatePartnerStatus(ctx, 10, "suspended")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if detail.Partner.Status != domain.StatusSuspended {
		t.Fatalf("expected status suspended, got %v", detail.Partner.Status)
	}
	// The earlier approval stamp survives a later suspension.
	if detail.Partner.ApprovedAt == nil || detail.Partner.SuspendedAt == nil {
		t.Fatalf("expected both approved_at and suspended_at to be set")
	}
}

func TestUpdatePartnerStatus_RejectedThenApproved(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(10)
	svc := NewService(repo, nil, nil)

	if _, err := svc.UpdatePartnerStatus(ctx, 10, "rejected"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	// Transitions are unconditional: a rejected partner can be approved.
	detail, err := svc.UpdatePartnerStatus(ctx, 10, "approved")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if detail.Partner.Status != domain.StatusApproved {
		t.Fatalf("expected status approved, got %v", detail.Partner.Status)
	}
	if detail.Partner.RejectedAt == nil || detail.Partner.ApprovedAt == nil {
		t.Fatalf("expected both stamps to remain")
	}
}

func TestUpdatePartnerStatus_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(10)
	svc := NewService(repo, nil, nil)

	for _, status := range []string{"pending", "blocked", ""} {
		if _, err := svc.UpdatePartnerStatus(ctx, 10, status); err != ErrInvalidStatus {
			t.Fatalf("status %q: expected ErrInvalidStatus, got %v", status, err)
		}
	}

	if repo.partners[10].Status != domain.StatusPending {
		t.Fatalf("expected partner untouched, got %v", repo.partners[10].Status)
	}
}

func TestUpdatePartnerStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemPartnerRepo(), nil, nil)

	if _, err := svc.UpdatePartnerStatus(ctx, 99, "approved"); err != ErrPartnerNotFound {
		t.Fatalf("expected ErrPartnerNotFound, got %v", err)
	}
}

func TestBulkUpdateStatus_Suspend(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(1, 2, 3)
	svc := NewService(repo, nil, nil)

	count, err := svc.BulkUpdateStatus(ctx, []int64{1, 2, 3}, "suspend")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if count != 3 {
		t.Fatalf("expected count = 3, got %d", count)
	}
	for _, id := range []int64{1, 2, 3} {
		p := repo.partners[id]
		if p.Status != domain.StatusSuspended {
			t.Fatalf("partner %d: expected suspended, got %v", id, p.Status)
		}
		if p.SuspendedAt == nil {
			t.Fatalf("partner %d: expected suspended_at to be set", id)
		}
	}
}

func TestBulkUpdateStatus_EmptyIDs(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(1)
	svc := NewService(repo, nil, nil)

	if _, err := svc.BulkUpdateStatus(ctx, nil, "approve"); err != ErrEmptyIDs {
		t.Fatalf("expected ErrEmptyIDs, got %v", err)
	}
	if repo.partners[1].Status != domain.StatusPending {
		t.Fatalf("expected partner untouched, got %v", repo.partners[1].Status)
	}
}

func TestBulkUpdateStatus_InvalidAction(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(1)
	svc := NewService(repo, nil, nil)

	if _, err := svc.BulkUpdateStatus(ctx, []int64{1}, "ban"); err != ErrInvalidAction {
		t.Fatalf("expected ErrInvalidAction, got %v", err)
	}
	if repo.partners[1].Status != domain.StatusPending {
		t.Fatalf("expected partner untouched, got %v", repo.partners[1].Status)
	}
}

func TestExportPartnersCSV(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(5)
	repo.partners[5].CompanyName = `Homes, "Villas" & Plots`
	svc := NewService(repo, nil, nil)

	var buf bytes.Buffer
	if err := svc.ExportPartnersCSV(ctx, &buf); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "id,first_name,last_name,company,email,city,status,registered_at") {
		t.Fatalf("unexpected header: %q", out)
	}
	// Commas and quotes in the company name must be escaped.
	if !strings.Contains(out, `"Homes, ""Villas"" & Plots"`) {
		t.Fatalf("expected quoted company field, got %q", out)
	}
}
