package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/service"
	mockUsecase "foodbridge/internal/mocks/usecase"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var donationID = uuid.MustParse("3a7b9c1d-2e4f-4a6b-8c0d-1e2f3a4b5c6d")

func newDonationHandler(t *testing.T) (*DonationHandler, *mockUsecase.MockDonationUsecase) {
	donationUC := mockUsecase.NewMockDonationUsecase(t)

	return NewDonationHandler(DonationHandlerParams{DonationUC: donationUC, Logger: discardLogger()}), donationUC
}

func TestDonationHandler_Create_JSON(t *testing.T) {
	t.Run("passes the listing to the use case", func(t *testing.T) {
		h, donationUC := newDonationHandler(t)
		donationUC.EXPECT().
			Create(mock.Anything, restaurant, mock.Anything).
			RunAndReturn(func(_ context.Context, _ entity.Caller, in usecase.CreateDonationInput) (*entity.Donation, error) {
				assert.Equal(t, "Rice", in.FoodType)
				require.NotNil(t, in.QuantityKg)
				assert.InDelta(t, 10.0, *in.QuantityKg, 1e-9)
				assert.Equal(t, 4, in.ExpiryHours)
				assert.Nil(t, in.Image)

				return &entity.Donation{ID: donationID, FoodType: in.FoodType, Status: entity.DonationStatusActive}, nil
			})

		c, rec := newTestContext(http.MethodPost, "/api/donations", "application/json",
			jsonBody(`{"foodType":"Rice","quantity":"10 kg","quantityKg":10,"expiryHours":4,"location":"MG Road"}`), &restaurant)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var donation entity.Donation
		body := decodeSuccess(t, rec, &donation)
		assert.Equal(t, entity.DonationStatusActive, donation.Status)
		assert.Equal(t, "Donation created successfully", body.Message)
	})

	t.Run("missing fields never reach the use case", func(t *testing.T) {
		h, _ := newDonationHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/donations", "application/json",
			jsonBody(`{"foodType":"Rice","expiryHours":4}`), &restaurant)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Code)
		assert.Contains(t, body.Details, "quantity: is required")
		assert.Contains(t, body.Details, "location: is required")
	})

	t.Run("range errors come back from the use case", func(t *testing.T) {
		h, donationUC := newDonationHandler(t)
		donationUC.EXPECT().Create(mock.Anything, restaurant, mock.Anything).
			Return(nil, domainerrors.ErrValidationFailed.WithDetails("expiryHours: must be between 1 and 48"))

		c, rec := newTestContext(http.MethodPost, "/api/donations", "application/json",
			jsonBody(`{"foodType":"Rice","quantity":"1 tray","expiryHours":49,"location":"MG Road"}`), &restaurant)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "expiryHours: must be between 1 and 48", decodeError(t, rec).Details)
	})
}

func TestDonationHandler_Create_Multipart(t *testing.T) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("foodType", "Bread"))
	require.NoError(t, form.WriteField("quantity", "20 loaves"))
	require.NoError(t, form.WriteField("quantityKg", "8.5"))
	require.NoError(t, form.WriteField("expiryHours", "12"))
	require.NoError(t, form.WriteField("location", "Bakery Lane"))
	require.NoError(t, form.WriteField("latitude", "12.9716"))
	require.NoError(t, form.WriteField("longitude", "77.5946"))
	part, err := form.CreateFormFile("image", "bread.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\npixels"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	h, donationUC := newDonationHandler(t)
	donationUC.EXPECT().
		Create(mock.Anything, restaurant, mock.Anything).
		RunAndReturn(func(_ context.Context, _ entity.Caller, in usecase.CreateDonationInput) (*entity.Donation, error) {
			require.NotNil(t, in.Image)
			assert.Equal(t, "bread.png", in.Image.Filename)
			content, err := io.ReadAll(in.Image.Content)
			require.NoError(t, err)
			assert.Equal(t, "\x89PNG\r\n\x1a\npixels", string(content))
			assert.InDelta(t, 8.5, *in.QuantityKg, 1e-9)
			assert.InDelta(t, 77.5946, *in.Longitude, 1e-9)
			assert.Equal(t, 12, in.ExpiryHours)

			return &entity.Donation{ID: donationID, ImageURL: "/uploads/donations/2026/03/x.png"}, nil
		})

	c, rec := newTestContext(http.MethodPost, "/api/donations", form.FormDataContentType(), &buf, &restaurant)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDonationHandler_Browse(t *testing.T) {
	t.Run("parses the distance filter", func(t *testing.T) {
		h, donationUC := newDonationHandler(t)
		dist := 3.2
		donationUC.EXPECT().
			Browse(mock.Anything, ngo, mock.MatchedBy(func(in usecase.BrowseInput) bool {
				return in.Status == "active" && in.FoodType == "Rice" &&
					*in.Latitude == 12.9 && *in.Longitude == 77.6 && *in.MaxDistanceKm == 5 &&
					in.Limit == 10 && in.Offset == 20
			})).
			Return([]*entity.Donation{{ID: donationID, DistanceKm: &dist}}, nil)

		c, rec := newTestContext(http.MethodGet,
			"/api/donations?status=active&foodType=Rice&latitude=12.9&longitude=77.6&maxDistance=5&limit=10&offset=20", "", nil, &ngo)

		require.NoError(t, h.Browse(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var donations []*entity.Donation
		decodeSuccess(t, rec, &donations)
		require.Len(t, donations, 1)
		assert.InDelta(t, 3.2, *donations[0].DistanceKm, 1e-9)
	})

	t.Run("rejects a non numeric coordinate", func(t *testing.T) {
		h, _ := newDonationHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/donations?latitude=north", "", nil, &ngo)

		require.NoError(t, h.Browse(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "latitude: must be a number", decodeError(t, rec).Details)
	})

	for _, raw := range []string{"NaN", "Inf", "-Infinity"} {
		t.Run("rejects non finite max distance "+raw, func(t *testing.T) {
			h, _ := newDonationHandler(t)
			c, rec := newTestContext(http.MethodGet,
				"/api/donations?latitude=12.9&longitude=77.6&maxDistance="+raw, "", nil, &ngo)

			require.NoError(t, h.Browse(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "maxDistance: must be a number", decodeError(t, rec).Details)
		})
	}
}

func TestDonationHandler_Claim(t *testing.T) {
	t.Run("with a scheduled pickup", func(t *testing.T) {
		h, donationUC := newDonationHandler(t)
		pickupAt := time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC)
		donationUC.EXPECT().
			Claim(mock.Anything, ngo, donationID, mock.MatchedBy(func(in usecase.ClaimInput) bool {
				return in.ScheduledPickupTime != nil && in.ScheduledPickupTime.Equal(pickupAt)
			})).
			Return(&usecase.ClaimOutput{
				Donation: &entity.Donation{ID: donationID, Status: entity.DonationStatusClaimed, ClaimedBy: &ngo.UserID},
				Pickup:   &entity.DonationPickup{DonationID: donationID, NGOID: ngo.UserID, Status: entity.PickupStatusScheduled},
			}, nil)

		c, rec := newTestContext(http.MethodPost, "/api/donations/"+donationID.String()+"/claim", "application/json",
			jsonBody(`{"scheduledPickupTime":"2026-03-14T18:00:00Z"}`), &ngo)
		c.SetParamNames("id")
		c.SetParamValues(donationID.String())

		require.NoError(t, h.Claim(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var out usecase.ClaimOutput
		decodeSuccess(t, rec, &out)
		assert.Equal(t, entity.PickupStatusScheduled, out.Pickup.Status)
	})

	t.Run("already claimed", func(t *testing.T) {
		h, donationUC := newDonationHandler(t)
		donationUC.EXPECT().Claim(mock.Anything, ngo, donationID, usecase.ClaimInput{}).
			Return(nil, domainerrors.ErrDonationUnavailable)

		c, rec := newTestContext(http.MethodPost, "/api/donations/"+donationID.String()+"/claim", "", nil, &ngo)
		c.SetParamNames("id")
		c.SetParamValues(donationID.String())

		require.NoError(t, h.Claim(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "DONATION_UNAVAILABLE", decodeError(t, rec).Code)
	})

	t.Run("bad id", func(t *testing.T) {
		h, _ := newDonationHandler(t)
		c, rec := newTestContext(http.MethodPost, "/api/donations/42/claim", "", nil, &ngo)
		c.SetParamNames("id")
		c.SetParamValues("42")

		require.NoError(t, h.Claim(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDonationHandler_Complete(t *testing.T) {
	t.Run("out of range rating", func(t *testing.T) {
		h, _ := newDonationHandler(t)
		c, rec := newTestContext(http.MethodPut, "/", "application/json", jsonBody(`{"rating":6}`), &ngo)
		c.SetParamNames("id")
		c.SetParamValues(donationID.String())

		require.NoError(t, h.Complete(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "rating: must be less than or equal to 5", decodeError(t, rec).Details)
	})

	t.Run("rates the pickup", func(t *testing.T) {
		h, donationUC := newDonationHandler(t)
		donationUC.EXPECT().
			Complete(mock.Anything, ngo, donationID, mock.MatchedBy(func(in usecase.CompleteInput) bool {
				return in.Rating != nil && *in.Rating == 4 && in.Feedback == "On time"
			})).
			Return(&entity.Donation{ID: donationID, Status: entity.DonationStatusCompleted}, nil)

		c, rec := newTestContext(http.MethodPut, "/", "application/json", jsonBody(`{"rating":4,"feedback":"On time"}`), &ngo)
		c.SetParamNames("id")
		c.SetParamValues(donationID.String())

		require.NoError(t, h.Complete(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDonationHandler_Cancel(t *testing.T) {
	h, donationUC := newDonationHandler(t)
	donationUC.EXPECT().Cancel(mock.Anything, restaurant, donationID).Return(nil, domainerrors.ErrDonationAlreadyClaimed)

	c, rec := newTestContext(http.MethodDelete, "/", "", nil, &restaurant)
	c.SetParamNames("id")
	c.SetParamValues(donationID.String())

	require.NoError(t, h.Cancel(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Cannot cancel claimed donation. Please contact the NGO first", decodeError(t, rec).Error)
}

func TestDonationHandler_PickupQRCode(t *testing.T) {
	h, donationUC := newDonationHandler(t)
	png := []byte("\x89PNG\r\n\x1a\nqr")
	donationUC.EXPECT().PickupQRCode(mock.Anything, ngo, donationID).Return(png, nil)

	c, rec := newTestContext(http.MethodGet, "/", "", nil, &ngo)
	c.SetParamNames("id")
	c.SetParamValues(donationID.String())

	require.NoError(t, h.PickupQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestDonationHandler_Image(t *testing.T) {
	t.Run("streams the object", func(t *testing.T) {
		h, donationUC := newDonationHandler(t)
		donationUC.EXPECT().OpenImage(mock.Anything, "donations/2026/03/a.webp").Return(&service.StoredObject{
			Body:        io.NopCloser(bytes.NewReader([]byte("RIFFxxxxWEBP"))),
			ContentType: "image/webp",
			Size:        12,
		}, nil)

		c, rec := newTestContext(http.MethodGet, "/uploads/donations/2026/03/a.webp", "", nil, nil)
		c.SetParamNames("*")
		c.SetParamValues("donations/2026/03/a.webp")

		require.NoError(t, h.Image(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/webp", rec.Header().Get("Content-Type"))
		assert.Equal(t, "RIFFxxxxWEBP", rec.Body.String())
	})

	t.Run("missing object", func(t *testing.T) {
		h, donationUC := newDonationHandler(t)
		donationUC.EXPECT().OpenImage(mock.Anything, "../etc/passwd").Return(nil, domainerrors.ErrObjectNotFound)

		c, rec := newTestContext(http.MethodGet, "/", "", nil, nil)
		c.SetParamNames("*")
		c.SetParamValues("../etc/passwd")

		require.NoError(t, h.Image(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
