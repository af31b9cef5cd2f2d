package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"club-site.backend/internal/domain/entities"
	"club-site.backend/internal/interfaces/http/response"
	"club-site.backend/internal/usecases"
	"club-site.backend/pkg/utils"
)

type sponsorService interface {
	GetActive(ctx context.Context) (*entities.Sponsor, error)
	List(ctx context.Context, p utils.PaginationParams) (utils.Page[*entities.Sponsor], error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Sponsor, error)
	Create(ctx context.Context, input entities.CreateSponsorInput) (*entities.Sponsor, error)
	Update(ctx context.Context, id uuid.UUID, input entities.UpdateSponsorInput) (*entities.Sponsor, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*entities.Sponsor, error)
}

type SponsorHandler struct {
	service sponsorService
}

func NewSponsorHandler(service *usecases.SponsorUsecase) *SponsorHandler {
	return &SponsorHandler{service: service}
}

// GetActive returns the featured sponsor, or null when none is active.
// GET /api/sponsors/active
func (h *SponsorHandler) GetActive(c *gin.Context) {
	sponsor, err := h.service.GetActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sponsor)
}

// GET /api/sponsors/admin
func (h *SponsorHandler) List(c *gin.Context) {
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

// GET /api/sponsors/admin/:id
func (h *SponsorHandler) Get(c *gin.Context) {
	id, ok := pathID(c, msgSponsorNotFound)
	if !ok {
		return
	}
	sponsor, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sponsor)
}

// POST /api/sponsors/admin
func (h *SponsorHandler) Create(c *gin.Context) {
	var input entities.CreateSponsorInput
	if !bindInput(c, &input) {
		return
	}
	sponsor, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sponsor)
}

// PUT /api/sponsors/admin/:id
func (h *SponsorHandler) Update(c *gin.Context) {
	id, ok := pathID(c, msgSponsorNotFound)
	if !ok {
		return
	}
	var input entities.UpdateSponsorInput
	if !bindInput(c, &input) {
		return
	}
	sponsor, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, sponsor)
}

// DELETE /api/sponsors/admin/:id
func (h *SponsorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, msgSponsorNotFound)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Sponsor deleted successfully")
}

// Activate makes the sponsor the only active one.
// POST /api/sponsors/admin/:id/activate
func (h *SponsorHandler) Activate(c *gin.Context) {
	id, ok := pathID(c, msgSponsorNotFound)
	if !ok {
		return
	}
	sponsor, err := h.service.Activate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, sponsor, "Sponsor activated successfully")
}
