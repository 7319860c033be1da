package listing

import (
	"errors"
	"net/http"
	"strconv"

	"estateportal/internal/pkg/response"
	"estateportal/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the browse endpoints.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	props := v1.Group("/properties")
	{
		props.GET("", h.Browse)
		props.GET("/:id", h.GetProperty)
	}
}

// RegisterAdminRoutes exposes listing management; the group must carry
// JWTAuth + AdminOnly.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	props := admin.Group("/properties")
	{
		props.POST("", h.CreateProperty)
		props.PUT("/:id", h.UpdateProperty)
		props.DELETE("/:id", h.DeleteProperty)
	}
}

func (h *Handler) Browse(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	minPrice, _ := strconv.ParseFloat(c.Query("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.Query("max_price"), 64)
	bedrooms, _ := strconv.Atoi(c.Query("bedrooms"))

	f := repository.PropertyFilters{
		City:     c.Query("city"),
		Category: c.Query("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Bedrooms: bedrooms,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	properties, total, err := h.service.Browse(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "BROWSE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"properties": properties,
		"total":      total,
		"page":       page,
	})
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	property, err := h.service.GetProperty(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": property})
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	property, err := h.service.CreateProperty(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"property": property})
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	property, err := h.service.UpdateProperty(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"property": property})
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	if err := h.service.DeleteProperty(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Property deleted"})
}
