package http

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"steeldash/internal/dataset"
	apierrors "steeldash/internal/errors"
)

// FilterRequest is the query-string form of the filter parameters.
// Absent parameters mean "no filter" for that dimension; an empty
// owner or region value is rejected rather than silently matching
// nothing.
type FilterRequest struct {
	Owners      []string `validate:"omitempty,dive,min=1"`
	Regions     []string `validate:"omitempty,dive,min=1"`
	MinCapacity *float64 `validate:"omitempty"`
	MaxCapacity *float64 `validate:"omitempty"`
}

// Params converts the request into the dataset filter parameters.
func (f FilterRequest) Params() dataset.Params {
	return dataset.Params{
		Owners:      f.Owners,
		Regions:     f.Regions,
		MinCapacity: f.MinCapacity,
		MaxCapacity: f.MaxCapacity,
	}
}

// parseFilterRequest binds and validates the filter query parameters:
// repeatable "owner" and "region" values plus the inclusive
// "min_capacity"/"max_capacity" bounds.
func parseFilterRequest(r *http.Request, validate *validator.Validate) (FilterRequest, *apierrors.APIError) {
	var req FilterRequest
	q := r.URL.Query()

	if owners, ok := q["owner"]; ok {
		req.Owners = owners
	}
	if regions, ok := q["region"]; ok {
		req.Regions = regions
	}

	var apiErr *apierrors.APIError
	req.MinCapacity, apiErr = parseCapacityParam(q.Get("min_capacity"), "min_capacity")
	if apiErr != nil {
		return req, apiErr
	}
	req.MaxCapacity, apiErr = parseCapacityParam(q.Get("max_capacity"), "max_capacity")
	if apiErr != nil {
		return req, apiErr
	}

	if err := validate.Struct(req); err != nil {
		return req, apierrors.NewWithDetails(http.StatusBadRequest, "VALIDATION_FAILED",
			"Request validation failed", err.Error())
	}
	if req.MinCapacity != nil && req.MaxCapacity != nil && *req.MinCapacity > *req.MaxCapacity {
		return req, apierrors.ErrValidation("max_capacity", "must not be less than min_capacity")
	}
	return req, nil
}

func parseCapacityParam(raw, name string) (*float64, *apierrors.APIError) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apierrors.ErrValidation(name, "must be a number")
	}
	return &v, nil
}
