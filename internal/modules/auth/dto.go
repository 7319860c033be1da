package auth

type RegisterPartnerRequest struct {
	FirstName   string `json:"firstName" binding:"required" validate:"required"`
	LastName    string `json:"lastName" binding:"required" validate:"required"`
	Email       string `json:"email" binding:"required,email" validate:"required,email"`
	Password    string `json:"password" binding:"required,min=6" validate:"required,min=6"`
	Phone       string `json:"phone" binding:"required" validate:"required"`
	City        string `json:"city" binding:"required" validate:"required"`
	State       string `json:"state" binding:"required" validate:"required"`
	CompanyName string `json:"companyName,omitempty"`
	RERANumber  string `json:"reraNumber,omitempty"`
}

type VerifyOTPRequest struct {
	UserID int64  `json:"userId" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
