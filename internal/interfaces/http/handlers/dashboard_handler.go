package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"club-site.backend/internal/domain/entities"
	"club-site.backend/internal/interfaces/http/response"
	"club-site.backend/internal/usecases"
)

type dashboardService interface {
	Stats(ctx context.Context) (*entities.DashboardStats, error)
}

type DashboardHandler struct {
	service dashboardService
}

func NewDashboardHandler(service *usecases.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GET /api/admin/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
