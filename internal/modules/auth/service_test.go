package auth

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"estateportal/internal/domain"
)

var otpPattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) CreateWithPartner(ctx context.Context, u *domain.User, p *domain.ChannelPartner) error {
	args := m.Called(ctx, u, p)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// Mock Partner Repository
type mockPartnerRepo struct {
	mock.Mock
}

func (m *mockPartnerRepo) GetByUserID(ctx context.Context, userID int64) (*domain.ChannelPartner, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChannelPartner), args.Error(1)
}

func (m *mockPartnerRepo) MarkEmailVerified(ctx context.Context, partnerID int64) error {
	args := m.Called(ctx, partnerID)
	return args.Error(0)
}

// Mock JWT service
type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

// Mock mailer
type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, to, subject, html string) error {
	args := m.Called(ctx, to, subject, html)
	return args.Error(0)
}

func validRegisterRequest() RegisterPartnerRequest {
	return RegisterPartnerRequest{
		FirstName: "Rahul",
		LastName:  "Sharma",
		Email:     "rahul@brokers.in",
		Password:  "securepass123",
		Phone:     "+91 98765 43210",
		City:      "Mumbai",
		State:     "Maharashtra",
	}
}

func TestService_RegisterPartner_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	partnerRepo := new(mockPartnerRepo)
	jwtSvc := new(mockJWTService)
	m := new(mockMailer)

	userRepo.On("ExistsByEmail", mock.Anything, "rahul@brokers.in").Return(false, nil)
	userRepo.On("CreateWithPartner", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			p := args.Get(2).(*domain.ChannelPartner)
			u.ID = 42
			p.ID = 7
			p.UserID = 42
		}).
		Return(nil)
	m.On("Send", mock.Anything, "rahul@brokers.in", mock.Anything, mock.Anything).Return(nil)

	service := NewService(userRepo, partnerRepo, jwtSvc, m, 10*time.Minute)

	before := time.Now()
	user, partner, err := service.RegisterPartner(context.Background(), validRegisterRequest())

	assert.NoError(t, err)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, domain.RoleChannelPartner, user.Role)
	assert.Empty(t, user.PasswordHash)

	assert.Equal(t, domain.StatusPending, partner.Status)
	assert.False(t, partner.EmailVerified)
	if assert.NotNil(t, partner.EmailOTP) {
		assert.Regexp(t, otpPattern, *partner.EmailOTP)
	}
	if assert.NotNil(t, partner.EmailOTPExpiry) {
		expiry := *partner.EmailOTPExpiry
		assert.WithinDuration(t, before.Add(10*time.Minute), expiry, 5*time.Second)
	}

	userRepo.AssertExpectations(t)
	m.AssertExpectations(t)
}

func TestService_RegisterPartner_EmailExists(t *testing.T) {
	userRepo := new(mockUserRepo)
	partnerRepo := new(mockPartnerRepo)
	jwtSvc := new(mockJWTService)
	m := new(mockMailer)

	userRepo.On("ExistsByEmail", mock.Anything, "rahul@brokers.in").Return(true, nil)

	service := NewService(userRepo, partnerRepo, jwtSvc, m, 10*time.Minute)

	_, _, err := service.RegisterPartner(context.Background(), validRegisterRequest())

	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	userRepo.AssertNotCalled(t, "CreateWithPartner", mock.Anything, mock.Anything, mock.Anything)
	m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_RegisterPartner_MailFailureStillSucceeds(t *testing.T) {
	userRepo := new(mockUserRepo)
	partnerRepo := new(mockPartnerRepo)
	jwtSvc := new(mockJWTService)
	m := new(mockMailer)

	userRepo.On("ExistsByEmail", mock.Anything, "rahul@brokers.in").Return(false, nil)
	userRepo.On("CreateWithPartner", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	m.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp: connection refused"))

	service := NewService(userRepo, partnerRepo, jwtSvc, m, 10*time.Minute)

	user, partner, err := service.RegisterPartner(context.Background(), validRegisterRequest())

	// The account must persist even though the OTP email never left.
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, domain.StatusPending, partner.Status)
	assert.NotNil(t, partner.EmailOTP)
	userRepo.AssertExpectations(t)
	m.AssertExpectations(t)
}

func testPartner(code string, expiry time.Time) *domain.ChannelPartner {
	return &domain.ChannelPartner{
		ID:             7,
		UserID:         42,
		FirstName:      "Rahul",
		LastName:       "Sharma",
		EmailOTP:       &code,
		EmailOTPExpiry: &expiry,
		Status:         domain.StatusPending,
	}
}

func TestService_VerifyEmail_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	partnerRepo := new(mockPartnerRepo)

	partnerRepo.On("GetByUserID", mock.Anything, int64(42)).
		Return(testPartner("654321", time.Now().Add(5*time.Minute)), nil)
	partnerRepo.On("MarkEmailVerified", mock.Anything, int64(7)).Return(nil)

	service := NewService(userRepo, partnerRepo, nil, nil, 10*time.Minute)

	err := service.VerifyEmail(context.Background(), 42, "654321")

	assert.NoError(t, err)
	partnerRepo.AssertExpectations(t)
}

func TestService_VerifyEmail_WrongCode(t *testing.T) {
	userRepo := new(mockUserRepo)
	partnerRepo := new(mockPartnerRepo)

	partnerRepo.On("GetByUserID", mock.Anything, int64(42)).
		Return(testPartner("654321", time.Now().Add(5*time.Minute)), nil)

	service := NewService(userRepo, partnerRepo, nil, nil, 10*time.Minute)

	err := service.VerifyEmail(context.Background(), 42, "111111")

	assert.ErrorIs(t, err, ErrInvalidOTP)
	partnerRepo.AssertNotCalled(t, "MarkEmailVerified", mock.Anything, mock.Anything)
}

func TestService_VerifyEmail_AlreadyCleared(t *testing.T) {
	userRepo := new(mockUserRepo)
	partnerRepo := new(mockPartnerRepo)

	// Second verification attempt: OTP fields were nulled by the first.
	partner := &domain.ChannelPartner{ID: 7, UserID: 42, EmailVerified: true, Status: domain.StatusPending}
	partnerRepo.On("GetByUserID", mock.Anything, int64(42)).Return(partner, nil)

	service := NewService(userRepo, partnerRepo, nil, nil, 10*time.Minute)

	err := service.VerifyEmail(context.Background(), 42, "654321")

	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestService_VerifyEmail_ExpiredCode(t *testing.T) {
	userRepo := new(mockUserRepo)
	partnerRepo := new(mockPartnerRepo)

	partner := testPartner("654321", time.Now().Add(-time.Minute))
	partnerRepo.On("GetByUserID", mock.Anything, int64(42)).Return(partner, nil)

	service := NewService(userRepo, partnerRepo, nil, nil, 10*time.Minute)

	// Correct code, stale expiry: rejected, nothing mutated.
	err := service.VerifyEmail(context.Background(), 42, "654321")

	assert.ErrorIs(t, err, ErrOTPExpired)
	assert.False(t, partner.EmailVerified)
	assert.NotNil(t, partner.EmailOTP)
	assert.NotNil(t, partner.EmailOTPExpiry)
	partnerRepo.AssertNotCalled(t, "MarkEmailVerified", mock.Anything, mock.Anything)
}

func TestService_VerifyEmail_NotFound(t *testing.T) {
	userRepo := new(mockUserRepo)
	partnerRepo := new(mockPartnerRepo)

	partnerRepo.On("GetByUserID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewService(userRepo, partnerRepo, nil, nil, 10*time.Minute)

	err := service.VerifyEmail(context.Background(), 99, "654321")

	assert.ErrorIs(t, err, ErrPartnerNotFound)
}

func TestService_Login_UnverifiedPartner(t *testing.T) {
	userRepo := new(mockUserRepo)
	partnerRepo := new(mockPartnerRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", mock.Anything, "rahul@brokers.in").Return(&domain.User{
		ID:           42,
		Email:        "rahul@brokers.in",
		PasswordHash: string(hashed),
		Role:         domain.RoleChannelPartner,
	}, nil)
	partnerRepo.On("GetByUserID", mock.Anything, int64(42)).
		Return(&domain.ChannelPartner{ID: 7, UserID: 42, EmailVerified: false}, nil)

	service := NewService(userRepo, partnerRepo, jwtSvc, nil, 10*time.Minute)

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "rahul@brokers.in",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrEmailNotVerified)
	jwtSvc.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}

func TestService_Login_AdminSuccess(t *testing.T) {
	userRepo := new(mockUserRepo)
	partnerRepo := new(mockPartnerRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", mock.Anything, "admin@estateportal.in").Return(&domain.User{
		ID:           1,
		Email:        "admin@estateportal.in",
		PasswordHash: string(hashed),
		Role:         domain.RoleAdmin,
	}, nil)
	jwtSvc.On("GenerateToken", int64(1), "admin").Return("admin-token", nil)

	service := NewService(userRepo, partnerRepo, jwtSvc, nil, 10*time.Minute)

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "admin@estateportal.in",
		Password: "admin123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "admin-token", result.AccessToken)
	assert.Empty(t, result.User.PasswordHash)
}
