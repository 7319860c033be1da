package auth

import (
	"errors"
	"net/http"

	"estateportal/internal/pkg/response"
	"estateportal/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.RegisterPartner)
		authGroup.POST("/verify-otp", h.VerifyOTP)
		authGroup.POST("/login", h.Login)
	}
}

// RegisterPartner creates a channel partner account in pending status
// and mails a verification OTP.
func (h *Handler) RegisterPartner(c *gin.Context) {
	var req RegisterPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if details := validator.Validate(req); details != nil {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", details)
			return
		}
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, partner, err := h.service.RegisterPartner(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusBadRequest, "EMAIL_EXISTS", "This email is already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Registration successful. Please check your email for the verification OTP.",
		"userId":  user.ID,
		"status":  partner.Status,
	})
}

// VerifyOTP confirms email ownership with the code sent at registration.
func (h *Handler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.VerifyEmail(c.Request.Context(), req.UserID, req.OTP); err != nil {
		switch {
		case errors.Is(err, ErrPartnerNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Channel partner not found")
		case errors.Is(err, ErrInvalidOTP):
			response.Error(c, http.StatusBadRequest, "INVALID_OTP", "Invalid OTP")
		case errors.Is(err, ErrOTPExpired):
			response.Error(c, http.StatusBadRequest, "OTP_EXPIRED", "OTP has expired")
		default:
			response.Error(c, http.StatusInternalServerError, "VERIFICATION_FAILED", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Email verified successfully",
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
		case errors.Is(err, ErrEmailNotVerified):
			response.Error(c, http.StatusForbidden, "EMAIL_NOT_VERIFIED", "Please verify your email first")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":    result.User.ID,
			"email": result.User.Email,
			"name":  result.User.Name,
			"role":  result.User.Role,
		},
		"token": result.AccessToken,
	})
}
