package dto

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"grandplaza/shared/constant"
	"grandplaza/shared/failure"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
	Search  string `json:"q"        validate:"omitempty"`
	Status  string `json:"status"   validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request.
// Call it with `defaultRequest` set to true for paginated lists:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
//
// Page and Limit fall back to their defaults when absent or invalid.
// With `defaultRequest` false only the fields present in the request are set.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	q.Search = strings.TrimSpace(queryParams.Get(constant.RequestParamSearch))

	if status := strings.TrimSpace(queryParams.Get(constant.RequestParamStatus)); status != constant.FilterValueAll {
		q.Status = status
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// ValidateSort rejects sort columns outside the allowed set. An empty SortBy is always valid.
func (q *QueryParams) ValidateSort(allowed ...string) error {
	if q.SortBy == "" {
		return nil
	}

	if !slices.Contains(allowed, q.SortBy) {
		return failure.InvalidSortParam
	}

	return nil
}
