package validation

import (
	"strconv"

	"club-site.backend/pkg/utils"
)

type paginationQuery struct {
	Page  string `label:"Page" validate:"omitempty,digits,positive,maxnum=1000000"`
	Limit string `label:"Limit" validate:"omitempty,digits,positive,maxnum=100"`
}

// Pagination checks raw page/limit query values. Empty values take the
// defaults (page 1, limit 10); page stops at utils.MaxPage.
func Pagination(page, limit string) (utils.PaginationParams, error) {
	q := paginationQuery{Page: page, Limit: limit}
	if err := Struct(q); err != nil {
		return utils.PaginationParams{}, err
	}

	p := utils.PaginationParams{Page: utils.DefaultPage, Limit: utils.DefaultLimit}
	if q.Page != "" {
		p.Page, _ = strconv.Atoi(q.Page)
	}
	if q.Limit != "" {
		p.Limit, _ = strconv.Atoi(q.Limit)
	}
	return p, nil
}
