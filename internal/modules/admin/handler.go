package admin

import (
	"errors"
	"net/http"
	"strconv"

	"estateportal/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the admin moderation endpoints. The group is
// expected to carry JWTAuth + AdminOnly already.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	partners := admin.Group("/partners")
	{
		partners.GET("", h.ListPartners)
		partners.GET("/export", h.ExportPartners)
		partners.GET("/:id", h.GetPartner)
		partners.PUT("/:id/status", h.UpdateStatus)
		partners.POST("/bulk-status", h.BulkUpdateStatus)
	}
	admin.GET("/statistics", h.Statistics)
}

func (h *Handler) ListPartners(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	filter := PartnerListFilter{Status: c.Query("status")}

	rows, total, err := h.service.ListPartners(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"partners": rows,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

func (h *Handler) GetPartner(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid partner ID")
		return
	}

	detail, err := h.service.GetPartner(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrPartnerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Channel partner not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "GET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// UpdateStatus moves one partner to approved/rejected/suspended.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid partner ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	detail, err := h.service.UpdatePartnerStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Status must be approved, rejected or suspended")
		case errors.Is(err, ErrPartnerNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Channel partner not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// BulkUpdateStatus applies one action to a list of partner ids.
func (h *Handler) BulkUpdateStatus(c *gin.Context) {
	var req BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	count, err := h.service.BulkUpdateStatus(c.Request.Context(), req.IDs, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyIDs):
			response.Error(c, http.StatusBadRequest, "EMPTY_IDS", "ids must be a non-empty list")
		case errors.Is(err, ErrInvalidAction):
			response.Error(c, http.StatusBadRequest, "INVALID_ACTION", "Action must be approve, reject or suspend")
		default:
			response.Error(c, http.StatusInternalServerError, "BULK_UPDATE_FAILED", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Status updated",
		"count":   count,
	})
}

// ExportPartners streams all partners as a CSV attachment.
func (h *Handler) ExportPartners(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="channel_partners.csv"`)

	if err := h.service.ExportPartnersCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers may already be out; log through gin's error list.
		_ = c.Error(err)
	}
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATS_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}
