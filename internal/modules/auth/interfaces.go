package auth

import (
	"context"

	"estateportal/internal/domain"
)

// UserRepositoryInterface — only the methods auth service uses
type UserRepositoryInterface interface {
	CreateWithPartner(ctx context.Context, u *domain.User, p *domain.ChannelPartner) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// PartnerRepositoryInterface — profile lookups and the verification flip
type PartnerRepositoryInterface interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.ChannelPartner, error)
	MarkEmailVerified(ctx context.Context, partnerID int64) error
}
