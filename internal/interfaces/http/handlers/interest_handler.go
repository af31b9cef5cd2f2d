package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"club-site.backend/internal/domain/entities"
	"club-site.backend/internal/interfaces/http/response"
	"club-site.backend/internal/usecases"
	"club-site.backend/pkg/utils"
)

type interestService interface {
	Submit(ctx context.Context, input entities.CreateInterestSubmissionInput) (*entities.InterestSubmission, error)
	List(ctx context.Context, p utils.PaginationParams) (utils.Page[*entities.InterestSubmission], error)
	Stats(ctx context.Context) (*entities.InterestStats, error)
}

type InterestHandler struct {
	service interestService
}

func NewInterestHandler(service *usecases.InterestUsecase) *InterestHandler {
	return &InterestHandler{service: service}
}

// Submit records a public interest form.
// POST /api/interest
func (h *InterestHandler) Submit(c *gin.Context) {
	var input entities.CreateInterestSubmissionInput
	if !bindInput(c, &input) {
		return
	}
	submission, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, submission, "Interest form submitted successfully!")
}

// GET /api/interest/admin
func (h *InterestHandler) List(c *gin.Context) {
	p, ok := pagination(c)
	if !ok {
		return
	}
	page, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, page)
}

// GET /api/interest/admin/stats
func (h *InterestHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
