package admin

import (
	"context"
	"time"

	"estateportal/internal/domain"

	"gorm.io/gorm"
)

type PartnerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ChannelPartner, error)
	GetWithUser(ctx context.Context, id int64) (*domain.ChannelPartner, *domain.User, error)
	UpdateStatus(ctx context.Context, id int64, target domain.PartnerStatus, now time.Time) error
	BulkUpdateStatus(ctx context.Context, ids []int64, target domain.PartnerStatus, now time.Time) (int64, error)
	FindByStatusPaginated(ctx context.Context, status domain.PartnerStatus, offset, limit int) ([]domain.PendingPartnerRow, int64, error)
	ListAll(ctx context.Context) ([]domain.PendingPartnerRow, error)
	DB() *gorm.DB
}

type UserRepository interface {
	DB() *gorm.DB
}

type PropertyRepository interface {
	DB() *gorm.DB
}
