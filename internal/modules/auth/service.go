package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"estateportal/internal/domain"
	"estateportal/internal/mailer"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains the registration, verification and login logic for
// channel partners.
type Service struct {
	users    UserRepositoryInterface
	partners PartnerRepositoryInterface
	jwt      jwtService
	mailer   mailer.Mailer
	otpTTL   time.Duration
}

func NewService(
	users UserRepositoryInterface,
	partners PartnerRepositoryInterface,
	jwt jwtService,
	m mailer.Mailer,
	otpTTL time.Duration,
) *Service {
	return &Service{
		users:    users,
		partners: partners,
		jwt:      jwt,
		mailer:   m,
		otpTTL:   otpTTL,
	}
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

// RegisterPartner creates the account and its profile in one
// transaction, issues a verification OTP and tries to mail it. A failed
// mail send is logged and swallowed: the account stays registered and
// the caller still gets a success.
func (s *Service) RegisterPartner(ctx context.Context, req RegisterPartnerRequest) (*domain.User, *domain.ChannelPartner, error) {
	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, nil, err
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	code, err := generateOTP()
	if err != nil {
		return nil, nil, err
	}
	expiry := time.Now().Add(s.otpTTL)

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hashedPassword,
		Name:         strings.TrimSpace(req.FirstName + " " + req.LastName),
		Role:         domain.RoleChannelPartner,
	}
	partner := &domain.ChannelPartner{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		CompanyName:    req.CompanyName,
		Phone:          req.Phone,
		City:           req.City,
		State:          req.State,
		RERANumber:     req.RERANumber,
		EmailVerified:  false,
		EmailOTP:       &code,
		EmailOTPExpiry: &expiry,
		Status:         domain.StatusPending,
	}

	if err := s.users.CreateWithPartner(ctx, user, partner); err != nil {
		return nil, nil, err
	}

	if mailErr := s.mailer.Send(ctx, user.Email, "Verify your email", otpEmailBody(req.FirstName, code, s.otpTTL)); mailErr != nil {
		log.Printf("register: otp email failed user_id=%d err=%v", user.ID, mailErr)
	}

	user.PasswordHash = ""
	return user, partner, nil
}

// VerifyEmail checks the submitted OTP against the stored one, then its
// expiry, and on success flips email_verified and clears both OTP
// fields. The partner's approval status is not touched.
func (s *Service) VerifyEmail(ctx context.Context, userID int64, code string) error {
	partner, err := s.partners.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPartnerNotFound
		}
		return err
	}

	if partner.EmailOTP == nil || *partner.EmailOTP != code {
		return ErrInvalidOTP
	}
	if partner.EmailOTPExpiry == nil || partner.EmailOTPExpiry.Before(time.Now()) {
		return ErrOTPExpired
	}

	return s.partners.MarkEmailVerified(ctx, partner.ID)
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Channel partners must verify their email before signing in.
	if user.Role == domain.RoleChannelPartner {
		partner, err := s.partners.GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if !partner.EmailVerified {
			return nil, ErrEmailNotVerified
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, AccessToken: token}, nil
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyExists
	}
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func otpEmailBody(firstName, code string, ttl time.Duration) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>Your verification code is <b>%s</b>. It expires in %d minutes.</p>",
		firstName, code, int(ttl.Minutes()),
	)
}
