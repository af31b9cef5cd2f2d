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

type executiveService interface {
	ListVisible(ctx context.Context) ([]*entities.Executive, error)
	List(ctx context.Context, p utils.PaginationParams) (utils.Page[*entities.Executive], error)
	Get(ctx context.Context, id uuid.UUID) (*entities.Executive, error)
	Create(ctx context.Context, input entities.CreateExecutiveInput) (*entities.Executive, error)
	Update(ctx context.Context, id uuid.UUID, input entities.UpdateExecutiveInput) (*entities.Executive, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExecutiveHandler struct {
	service executiveService
}

func NewExecutiveHandler(service *usecases.ExecutiveUsecase) *ExecutiveHandler {
	return &ExecutiveHandler{service: service}
}

// ListVisible returns the public team page.
// GET /api/execs
func (h *ExecutiveHandler) ListVisible(c *gin.Context) {
	items, err := h.service.ListVisible(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// List returns every executive, paginated.
// GET /api/execs/admin
func (h *ExecutiveHandler) List(c *gin.Context) {
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

// GET /api/execs/admin/:id
func (h *ExecutiveHandler) Get(c *gin.Context) {
	id, ok := pathID(c, msgExecutiveNotFound)
	if !ok {
		return
	}
	exec, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, exec)
}

// POST /api/execs/admin
func (h *ExecutiveHandler) Create(c *gin.Context) {
	var input entities.CreateExecutiveInput
	if !bindInput(c, &input) {
		return
	}
	exec, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, exec)
}

// PUT /api/execs/admin/:id
func (h *ExecutiveHandler) Update(c *gin.Context) {
	id, ok := pathID(c, msgExecutiveNotFound)
	if !ok {
		return
	}
	var input entities.UpdateExecutiveInput
	if !bindInput(c, &input) {
		return
	}
	exec, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, exec)
}

// DELETE /api/execs/admin/:id
func (h *ExecutiveHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, msgExecutiveNotFound)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Executive deleted successfully")
}
