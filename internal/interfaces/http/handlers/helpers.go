package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerrors "club-site.backend/internal/domain/errors"
	"club-site.backend/internal/interfaces/http/response"
	"club-site.backend/pkg/utils"
	"club-site.backend/pkg/validation"
)

const (
	msgExecutiveNotFound = "Executive not found"
	msgSponsorNotFound   = "Sponsor not found"
)

type normalizer interface {
	Normalize()
}

// bindInput decodes the JSON body into dst, trims it and validates it. On
// failure the error response is already written.
func bindInput(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, validation.DecodeError(err))
		return false
	}
	if n, ok := dst.(normalizer); ok {
		n.Normalize()
	}
	if err := validation.Struct(dst); err != nil {
		response.Error(c, err)
		return false
	}
	return true
}

// pathID parses the :id param. A malformed id cannot name a record, so it
// is reported as not found.
func pathID(c *gin.Context, notFound string) (uuid.UUID, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, domainerrors.NotFound(notFound))
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (utils.PaginationParams, bool) {
	p, err := validation.Pagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		response.Error(c, err)
		return utils.PaginationParams{}, false
	}
	return p, true
}
