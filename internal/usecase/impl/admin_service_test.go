package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	mockSvc "foodbridge/internal/mocks/service"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service *adminService
	repos   *repoFixtures
	mailer  *mockSvc.MockMailer
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	repos := newRepoFixtures(t)
	mailer := mockSvc.NewMockMailer(t)

	srv := NewAdminService(AdminServiceParams{
		TxManager:       repos.txManager,
		UserRepo:        repos.users,
		DonationRepo:    repos.donations,
		ImpactRepo:      repos.impact,
		ActivityLogRepo: repos.activity,
		Mailer:          mailer,
		Logger:          newDiscardLogger(),
	}).(*adminService)
	srv.now = func() time.Time { return fixedNow }

	return adminServiceFixtures{service: srv, repos: repos, mailer: mailer}
}

func TestBuildMonthlyTrend_ZeroFillsSixMonths(t *testing.T) {
	rows := []repository.MonthlyDonationRow{
		{Month: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), Donations: 4, FoodSavedKg: 12.5},
		{Month: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), Donations: 1, FoodSavedKg: 3},
	}

	trend := buildMonthlyTrend(fixedNow, 6, rows)

	require.Len(t, trend, 6)
	assert.Equal(t, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC), trend[0].Month)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), trend[5].Month)
	assert.Equal(t, int64(0), trend[0].Donations)
	assert.Equal(t, int64(4), trend[3].Donations)
	assert.InDelta(t, 12.5, trend[3].FoodSavedKg, 1e-9)
	assert.Equal(t, int64(1), trend[5].Donations)
}

func TestTrendStart_CrossesYearBoundary(t *testing.T) {
	now := time.Date(2026, time.February, 27, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), trendStart(now, 6))
}

func TestAdminService_Dashboard(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	totals := &entity.PlatformTotals{TotalRestaurants: 3, TotalNGOs: 2, PendingVerifications: 1}

	fx.repos.impact.EXPECT().PlatformTotals(ctx).Return(totals, nil)
	fx.repos.impact.EXPECT().RecentDonations(ctx, constants.RecentDonationsLimit).Return(nil, nil)
	fx.repos.impact.EXPECT().
		MonthlyDonations(ctx, time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC)).
		Return(nil, nil)

	dashboard, err := fx.service.Dashboard(ctx, adminCaller())

	require.NoError(t, err)
	assert.Equal(t, *totals, dashboard.Stats)
	assert.NotNil(t, dashboard.RecentDonations)
	assert.Len(t, dashboard.MonthlyTrends, constants.TrendMonths)
}

func TestAdminService_RequiresAdmin(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	_, err := fx.service.Dashboard(ctx, restaurantCaller())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.service.DeleteUser(ctx, ngoCaller(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.ListActivityLogs(ctx, ngoCaller(), usecase.PageInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_ListUsers(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	role := entity.RoleNGO
	users := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.repos.users.EXPECT().
		List(ctx, repository.UserFilter{Role: &role, Limit: 20, Offset: 20}).
		Return(users, int64(42), nil)

	page, err := fx.service.ListUsers(ctx, adminCaller(), usecase.ListUsersInput{
		PageInput: usecase.PageInput{Page: 2},
		Role:      &role,
	})

	require.NoError(t, err)
	assert.Equal(t, users, page.Items)
	assert.Equal(t, int64(42), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestAdminService_ListUsers_RejectsAdminFilter(t *testing.T) {
	fx := createTestAdminService(t)
	role := entity.RoleAdmin

	_, err := fx.service.ListUsers(context.Background(), adminCaller(), usecase.ListUsersInput{Role: &role})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_VerifyUser(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	caller := adminCaller()
	target := &entity.User{ID: uuid.New(), Email: "ngo@example.com", Name: "Soup & Co", Role: entity.RoleNGO}

	fx.repos.users.EXPECT().FindByID(ctx, target.ID).Return(target, nil)
	fx.repos.onExecute(ctx)
	fx.repos.users.EXPECT().SetVerified(ctx, target.ID).Return(nil)
	fx.repos.notifications.EXPECT().
		Create(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == target.ID && n.Type == entity.NotificationTypeVerification && n.Title == "Account Verified"
		})).
		Return(nil)
	fx.repos.activity.EXPECT().
		Create(ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool {
			return l.Action == entity.ActionUserVerified && *l.UserID == caller.UserID && *l.EntityID == target.ID
		})).
		Return(nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(e service.Email) bool {
			return e.To == "ngo@example.com" && strings.Contains(e.Body, "Soup &amp; Co")
		})).
		Return(errors.New("smtp unavailable"))

	err := fx.service.VerifyUser(ctx, caller, target.ID)

	require.NoError(t, err)
}

func TestAdminService_VerifyUser_AdminImmutable(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	adminID := uuid.New()

	fx.repos.users.EXPECT().FindByID(ctx, adminID).Return(&entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)

	err := fx.service.VerifyUser(ctx, adminCaller(), adminID)

	assert.ErrorIs(t, err, domainerrors.ErrAdminImmutable)
}

func TestAdminService_SetUserActive(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.repos.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleRestaurant}, nil)
	fx.repos.onExecute(ctx)
	fx.repos.users.EXPECT().SetActive(ctx, userID, false).Return(nil)
	fx.repos.activity.EXPECT().
		Create(ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool { return l.Action == entity.ActionUserDeactivated })).
		Return(nil)

	err := fx.service.SetUserActive(ctx, adminCaller(), userID, false)

	require.NoError(t, err)
}

func TestAdminService_DeleteUser(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.repos.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleRestaurant}, nil)
		fx.repos.onExecute(ctx)
		fx.repos.users.EXPECT().DeleteUnlessActiveDonations(ctx, userID).Return(nil)
		fx.repos.activity.EXPECT().
			Create(ctx, mock.MatchedBy(func(l *entity.ActivityLog) bool { return l.Action == entity.ActionUserDeleted })).
			Return(nil)

		require.NoError(t, fx.service.DeleteUser(ctx, adminCaller(), userID))
	})

	t.Run("owns an active donation", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.repos.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleRestaurant}, nil)
		fx.repos.onExecute(ctx)
		fx.repos.users.EXPECT().DeleteUnlessActiveDonations(ctx, userID).Return(domainerrors.ErrUserHasActiveDonations)

		err := fx.service.DeleteUser(ctx, adminCaller(), userID)

		assert.ErrorIs(t, err, domainerrors.ErrUserHasActiveDonations)
	})

	t.Run("missing user", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.repos.users.EXPECT().FindByID(ctx, userID).Return(nil, domainerrors.ErrUserNotFound)

		err := fx.service.DeleteUser(ctx, adminCaller(), userID)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("admin account", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.repos.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleAdmin}, nil)

		err := fx.service.DeleteUser(ctx, adminCaller(), userID)

		assert.ErrorIs(t, err, domainerrors.ErrAdminImmutable)
	})
}

func TestAdminService_ListDonations(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	status := entity.DonationStatusCompleted

	fx.repos.donations.EXPECT().
		ListAll(ctx, repository.DonationFilter{Status: &status, Limit: 20, Offset: 0}).
		Return([]*entity.Donation{}, int64(0), nil)

	page, err := fx.service.ListDonations(ctx, adminCaller(), usecase.ListDonationsInput{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 0, page.TotalPages)
}

func TestAdminService_ListDonations_UnknownStatus(t *testing.T) {
	fx := createTestAdminService(t)
	status := entity.DonationStatus("lost")

	_, err := fx.service.ListDonations(context.Background(), adminCaller(), usecase.ListDonationsInput{Status: &status})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAdminService_ListActivityLogs_DefaultsToFifty(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.repos.activity.EXPECT().List(ctx, 50, 0).Return(nil, int64(0), nil)

	page, err := fx.service.ListActivityLogs(ctx, adminCaller(), usecase.PageInput{})

	require.NoError(t, err)
	assert.Equal(t, 50, page.Limit)
	assert.Empty(t, page.Items)
}
