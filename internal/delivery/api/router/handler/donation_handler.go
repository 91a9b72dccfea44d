package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"foodbridge/internal/delivery/api/middleware"
	"foodbridge/internal/delivery/api/response"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DonationHandlerParams holds dependencies for DonationHandler, injected by Fx.
type DonationHandlerParams struct {
	fx.In

	DonationUC usecase.DonationUsecase
	Logger     *slog.Logger
}

// DonationHandler serves the donation lifecycle and listings.
type DonationHandler struct {
	donationUC usecase.DonationUsecase
	logger     *slog.Logger
}

// NewDonationHandler is the constructor for DonationHandler
func NewDonationHandler(params DonationHandlerParams) *DonationHandler {
	return &DonationHandler{
		donationUC: params.DonationUC,
		logger:     params.Logger,
	}
}

// CreateDonationRequest is the JSON body of a new listing. Multipart uploads send the same
// names as form fields plus an "image" file part.
type CreateDonationRequest struct {
	FoodType     string   `json:"foodType" validate:"required"`
	FoodCategory string   `json:"foodCategory"`
	Quantity     string   `json:"quantity" validate:"required"`
	QuantityKg   *float64 `json:"quantityKg" validate:"omitempty,gte=0"`
	ExpiryHours  int      `json:"expiryHours" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,longitude"`
	Notes        string   `json:"notes"`
}

// ClaimRequest represents the optional body of a claim
type ClaimRequest struct {
	ScheduledPickupTime *time.Time `json:"scheduledPickupTime"`
}

// CompleteRequest represents the body of a completion
type CompleteRequest struct {
	Rating   *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Feedback string `json:"feedback" validate:"max=2000"`
}

// Create handles POST /api/donations with a JSON or multipart body.
func (h *DonationHandler) Create(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var (
		req   CreateDonationRequest
		image *usecase.ImageUpload
	)
	if isMultipart(c) {
		file, upload, err := h.bindMultipart(c, &req)
		if err != nil {
			return response.HandleAppError(c, err)
		}
		if file != nil {
			defer file.Close()
		}
		image = upload
	} else if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	donation, err := h.donationUC.Create(c.Request().Context(), caller, usecase.CreateDonationInput{
		FoodType:     req.FoodType,
		FoodCategory: req.FoodCategory,
		Quantity:     req.Quantity,
		QuantityKg:   req.QuantityKg,
		ExpiryHours:  req.ExpiryHours,
		Location:     req.Location,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Notes:        req.Notes,
		Image:        image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, "Donation created successfully", donation)
}

// bindMultipart fills req from form fields and opens the optional image part.
// The returned file must be closed by the caller.
func (h *DonationHandler) bindMultipart(c echo.Context, req *CreateDonationRequest) (multipart.File, *usecase.ImageUpload, error) {
	var err error

	req.FoodType = c.FormValue("foodType")
	req.FoodCategory = c.FormValue("foodCategory")
	req.Quantity = c.FormValue("quantity")
	req.Location = c.FormValue("location")
	req.Notes = c.FormValue("notes")
	if req.QuantityKg, err = optionalFloat("quantityKg", c.FormValue("quantityKg")); err != nil {
		return nil, nil, err
	}
	if req.ExpiryHours, err = optionalInt("expiryHours", c.FormValue("expiryHours")); err != nil {
		return nil, nil, err
	}
	if req.Latitude, err = optionalFloat("latitude", c.FormValue("latitude")); err != nil {
		return nil, nil, err
	}
	if req.Longitude, err = optionalFloat("longitude", c.FormValue("longitude")); err != nil {
		return nil, nil, err
	}

	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, invalidParam("image", "could not read upload")
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open uploaded image")
	}

	return file, &usecase.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Content:     file,
	}, nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// Browse handles GET /api/donations
func (h *DonationHandler) Browse(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	input := usecase.BrowseInput{
		Status:   c.QueryParam("status"),
		FoodType: c.QueryParam("foodType"),
	}

	var err error
	if input.Latitude, err = optionalFloat("latitude", c.QueryParam("latitude")); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.Longitude, err = optionalFloat("longitude", c.QueryParam("longitude")); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.MaxDistanceKm, err = optionalFloat("maxDistance", c.QueryParam("maxDistance")); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.Limit, err = optionalInt("limit", c.QueryParam("limit")); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.Offset, err = optionalInt("offset", c.QueryParam("offset")); err != nil {
		return response.HandleAppError(c, err)
	}

	donations, err := h.donationUC.Browse(c.Request().Context(), caller, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donations)
}

// MyDonations handles GET /api/donations/my-donations
func (h *DonationHandler) MyDonations(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	donations, err := h.donationUC.MyDonations(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donations)
}

// ClaimedDonations handles GET /api/donations/claimed
func (h *DonationHandler) ClaimedDonations(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	donations, err := h.donationUC.ClaimedDonations(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donations)
}

// Stats handles GET /api/donations/stats
func (h *DonationHandler) Stats(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	stats, err := h.donationUC.Stats(c.Request().Context(), caller)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// Claim handles POST /api/donations/:id/claim
func (h *DonationHandler) Claim(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	donationID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ClaimRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid claim input")
	}

	out, err := h.donationUC.Claim(c.Request().Context(), caller, donationID, usecase.ClaimInput{
		ScheduledPickupTime: req.ScheduledPickupTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Donation claimed successfully", out)
}

// Complete handles PUT /api/donations/:id/complete
func (h *DonationHandler) Complete(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	donationID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CompleteRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid completion input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	donation, err := h.donationUC.Complete(c.Request().Context(), caller, donationID, usecase.CompleteInput{
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Donation marked as completed", donation)
}

// Cancel handles DELETE /api/donations/:id
func (h *DonationHandler) Cancel(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	donationID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	donation, err := h.donationUC.Cancel(c.Request().Context(), caller, donationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithMessage(c, http.StatusOK, "Donation cancelled successfully", donation)
}

// PickupQRCode handles GET /api/donations/:id/pickup/qr
func (h *DonationHandler) PickupQRCode(c echo.Context) error {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	donationID, err := pathID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.donationUC.PickupQRCode(c.Request().Context(), caller, donationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}

// Image handles GET /uploads/* and streams a stored donation image.
func (h *DonationHandler) Image(c echo.Context) error {
	object, err := h.donationUC.OpenImage(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer object.Body.Close()

	contentType := object.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Stream(http.StatusOK, contentType, object.Body)
}
