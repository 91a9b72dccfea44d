package handler

import (
	"math"
	"strconv"
	"strings"

	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func invalidParam(name, problem string) error {
	return domainerrors.ErrValidationFailed.WithDetails(name + ": " + problem)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, invalidParam("id", "must be a valid UUID")
	}

	return id, nil
}

func optionalFloat(name, raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, invalidParam(name, "must be a number")
	}

	return &v, nil
}

func optionalInt(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalidParam(name, "must be an integer")
	}

	return v, nil
}

func optionalBool(name, raw string) (*bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, invalidParam(name, "must be true or false")
	}

	return &v, nil
}

// pageInput reads ?page= and ?limit=. Missing values are filled in by the use case.
func pageInput(c echo.Context) (usecase.PageInput, error) {
	page, err := optionalInt("page", c.QueryParam("page"))
	if err != nil {
		return usecase.PageInput{}, err
	}

	limit, err := optionalInt("limit", c.QueryParam("limit"))
	if err != nil {
		return usecase.PageInput{}, err
	}

	return usecase.PageInput{Page: page, Limit: limit}, nil
}
