package handler

import (
	"net/http"
	"testing"

	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	mockUsecase "foodbridge/internal/mocks/usecase"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *mockUsecase.MockAdminUsecase) {
	adminUC := mockUsecase.NewMockAdminUsecase(t)

	return NewAdminHandler(AdminHandlerParams{AdminUC: adminUC, Logger: discardLogger()}), adminUC
}

func TestAdminHandler_ListUsers(t *testing.T) {
	t.Run("forwards filters and paging", func(t *testing.T) {
		h, adminUC := newAdminHandler(t)
		adminUC.EXPECT().
			ListUsers(mock.Anything, admin, mock.MatchedBy(func(in usecase.ListUsersInput) bool {
				return in.Role != nil && *in.Role == entity.RoleNGO &&
					in.Verified != nil && !*in.Verified &&
					in.Page == 2 && in.Limit == 0
			})).
			Return(&usecase.Page[*entity.User]{Items: []*entity.User{{Name: "Food Rescue"}}, Total: 21, Page: 2, Limit: 20, TotalPages: 2}, nil)

		c, rec := newTestContext(http.MethodGet, "/api/admin/users?role=NGO&verified=false&page=2", "", nil, &admin)

		require.NoError(t, h.ListUsers(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var page usecase.Page[*entity.User]
		decodeSuccess(t, rec, &page)
		assert.Equal(t, int64(21), page.Total)
		assert.Equal(t, "Food Rescue", page.Items[0].Name)
	})

	t.Run("unknown role", func(t *testing.T) {
		h, _ := newAdminHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/admin/users?role=chef", "", nil, &admin)

		require.NoError(t, h.ListUsers(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad verified flag", func(t *testing.T) {
		h, _ := newAdminHandler(t)
		c, rec := newTestContext(http.MethodGet, "/api/admin/users?verified=maybe", "", nil, &admin)

		require.NoError(t, h.ListUsers(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "verified: must be true or false", decodeError(t, rec).Details)
	})
}

func TestAdminHandler_ToggleStatus(t *testing.T) {
	userID := uuid.New()

	t.Run("requires isActive", func(t *testing.T) {
		h, _ := newAdminHandler(t)
		c, rec := newTestContext(http.MethodPut, "/", "application/json", jsonBody(`{}`), &admin)
		c.SetParamNames("id")
		c.SetParamValues(userID.String())

		require.NoError(t, h.ToggleStatus(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "isActive: is required", decodeError(t, rec).Details)
	})

	t.Run("deactivates", func(t *testing.T) {
		h, adminUC := newAdminHandler(t)
		adminUC.EXPECT().SetUserActive(mock.Anything, admin, userID, false).Return(nil)

		c, rec := newTestContext(http.MethodPut, "/", "application/json", jsonBody(`{"isActive":false}`), &admin)
		c.SetParamNames("id")
		c.SetParamValues(userID.String())

		require.NoError(t, h.ToggleStatus(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User deactivated successfully", decodeSuccess(t, rec, nil).Message)
	})
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "owns active donations", err: domainerrors.ErrUserHasActiveDonations, wantStatus: http.StatusConflict},
		{name: "admin account", err: domainerrors.ErrAdminImmutable, wantStatus: http.StatusForbidden},
		{name: "missing", err: domainerrors.ErrUserNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, adminUC := newAdminHandler(t)
			adminUC.EXPECT().DeleteUser(mock.Anything, admin, userID).Return(tt.err)

			c, rec := newTestContext(http.MethodDelete, "/", "", nil, &admin)
			c.SetParamNames("id")
			c.SetParamValues(userID.String())

			require.NoError(t, h.DeleteUser(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminHandler_ListDonations(t *testing.T) {
	h, adminUC := newAdminHandler(t)
	adminUC.EXPECT().
		ListDonations(mock.Anything, admin, mock.MatchedBy(func(in usecase.ListDonationsInput) bool {
			return in.Status != nil && *in.Status == entity.DonationStatusClaimed && in.Limit == 5
		})).
		Return(&usecase.Page[*entity.Donation]{Items: []*entity.Donation{}, Page: 1, Limit: 5}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/admin/donations?status=claimed&limit=5", "", nil, &admin)

	require.NoError(t, h.ListDonations(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_Dashboard(t *testing.T) {
	h, adminUC := newAdminHandler(t)
	adminUC.EXPECT().Dashboard(mock.Anything, admin).Return(&entity.Dashboard{
		Stats:           entity.PlatformTotals{TotalRestaurants: 3, CompletedDonations: 7, TotalFoodSavedKg: 42.5},
		RecentDonations: []*entity.Donation{},
		MonthlyTrends:   make([]entity.MonthlyTrend, 6),
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/admin/dashboard", "", nil, &admin)

	require.NoError(t, h.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var dashboard entity.Dashboard
	decodeSuccess(t, rec, &dashboard)
	assert.Equal(t, int64(3), dashboard.Stats.TotalRestaurants)
	assert.Len(t, dashboard.MonthlyTrends, 6)
}
