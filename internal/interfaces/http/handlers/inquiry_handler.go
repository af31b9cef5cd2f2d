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

type inquiryService interface {
	Submit(ctx context.Context, input entities.CreateSponsorInquiryInput) (*entities.SponsorInquiry, error)
	List(ctx context.Context, p utils.PaginationParams) (utils.Page[*entities.SponsorInquiry], error)
}

type InquiryHandler struct {
	service inquiryService
}

func NewInquiryHandler(service *usecases.InquiryUsecase) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// POST /api/sponsors/inquiry
func (h *InquiryHandler) Submit(c *gin.Context) {
	var input entities.CreateSponsorInquiryInput
	if !bindInput(c, &input) {
		return
	}
	inquiry, err := h.service.Submit(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusCreated, inquiry,
		"Sponsor inquiry submitted successfully! We will get back to you soon.")
}

// GET /api/sponsors/admin/inquiries
func (h *InquiryHandler) List(c *gin.Context) {
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
