package impl

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	logs "foodbridge/internal/infra/log"
	"foodbridge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	donationRepo    repository.DonationRepository
	impactRepo      repository.ImpactRepository
	activityLogRepo repository.ActivityLogRepository
	mailer          service.Mailer
	logger          *slog.Logger
	now             func() time.Time
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	DonationRepo    repository.DonationRepository
	ImpactRepo      repository.ImpactRepository
	ActivityLogRepo repository.ActivityLogRepository
	Mailer          service.Mailer
	Logger          *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		donationRepo:    params.DonationRepo,
		impactRepo:      params.ImpactRepo,
		activityLogRepo: params.ActivityLogRepo,
		mailer:          params.Mailer,
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

// Dashboard gathers platform totals, the latest donations and the monthly histogram.
func (srv *adminService) Dashboard(ctx context.Context, caller entity.Caller) (*entity.Dashboard, error) {
	if err := requireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	totals, err := srv.impactRepo.PlatformTotals(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform totals")
	}

	recent, err := srv.impactRepo.RecentDonations(ctx, constants.RecentDonationsLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load recent donations")
	}

	now := srv.now().UTC()
	rows, err := srv.impactRepo.MonthlyDonations(ctx, trendStart(now, constants.TrendMonths))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load monthly donations")
	}

	if recent == nil {
		recent = []*entity.Donation{}
	}

	return &entity.Dashboard{
		Stats:           *totals,
		RecentDonations: recent,
		MonthlyTrends:   buildMonthlyTrend(now, constants.TrendMonths, rows),
	}, nil
}

// trendStart is the first instant of the oldest month in a window of months ending with now's month.
func trendStart(now time.Time, months int) time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	return first.AddDate(0, -(months - 1), 0)
}

// buildMonthlyTrend returns one bucket per month, oldest first, with missing months zero-filled.
func buildMonthlyTrend(now time.Time, months int, rows []repository.MonthlyDonationRow) []entity.MonthlyTrend {
	byMonth := make(map[time.Time]repository.MonthlyDonationRow, len(rows))
	for _, row := range rows {
		month := row.Month.UTC()
		byMonth[time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)] = row
	}

	start := trendStart(now.UTC(), months)
	trend := make([]entity.MonthlyTrend, 0, months)
	for i := range months {
		month := start.AddDate(0, i, 0)
		bucket := entity.MonthlyTrend{Month: month}
		if row, ok := byMonth[month]; ok {
			bucket.Donations = row.Donations
			bucket.FoodSavedKg = row.FoodSavedKg
		}
		trend = append(trend, bucket)
	}

	return trend
}

// ListUsers pages through restaurant and NGO accounts.
func (srv *adminService) ListUsers(ctx context.Context, caller entity.Caller, input usecase.ListUsersInput) (*usecase.Page[*entity.User], error) {
	if err := requireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if input.Role != nil && !input.Role.IsRegistrable() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user type must be restaurant or ngo")
	}

	page := input.PageInput.Normalize(constants.DefaultPageSize)
	users, total, err := srv.userRepo.List(ctx, repository.UserFilter{
		Role:     input.Role,
		Verified: input.Verified,
		Limit:    page.Limit,
		Offset:   page.Offset(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return usecase.NewPage(users, total, page), nil
}

// VerifyUser marks an account verified, notifies it in-app and then by e-mail.
func (srv *adminService) VerifyUser(ctx context.Context, caller entity.Caller, userID uuid.UUID) error {
	if err := requireRole(caller, entity.RoleAdmin); err != nil {
		return err
	}

	target, err := srv.mutableUser(ctx, userID)
	if err != nil {
		return err
	}

	now := srv.now().UTC()
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().SetVerified(ctx, userID); err != nil {
			return err
		}

		err := repoFactory.NewNotificationRepository().Create(ctx, &entity.Notification{
			ID:          uuid.New(),
			UserID:      userID,
			Title:       "Account Verified",
			Message:     "Your account has been verified! You can now use all features.",
			Type:        entity.NotificationTypeVerification,
			ReferenceID: &userID,
			CreatedAt:   now,
		})
		if err != nil {
			return err
		}

		return repoFactory.NewActivityLogRepository().Create(ctx, newActivityLog(
			caller.UserID, entity.ActionUserVerified, entity.EntityTypeUser, userID, target.Email, now,
		))
	})
	if err != nil {
		return errors.Wrap(err, "failed to verify user")
	}

	srv.log(ctx).Info("User verified", slog.String("user_id", userID.String()))
	srv.sendVerificationEmail(ctx, target)

	return nil
}

func (srv *adminService) sendVerificationEmail(ctx context.Context, user *entity.User) {
	if srv.mailer == nil {
		return
	}

	email := service.Email{
		To:      user.Email,
		Subject: "Your FoodBridge account has been verified",
		Body: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your account has been verified! You can now use all features.</p>",
			html.EscapeString(user.Name),
		),
	}
	if err := srv.mailer.Send(ctx, email); err != nil {
		srv.log(ctx).Warn("Failed to send verification e-mail",
			slog.String("user_id", user.ID.String()),
			slog.Any("error", err),
		)
	}
}

// SetUserActive activates or deactivates a non-admin account.
func (srv *adminService) SetUserActive(ctx context.Context, caller entity.Caller, userID uuid.UUID, active bool) error {
	if err := requireRole(caller, entity.RoleAdmin); err != nil {
		return err
	}
	if _, err := srv.mutableUser(ctx, userID); err != nil {
		return err
	}

	action := entity.ActionUserDeactivated
	if active {
		action = entity.ActionUserActivated
	}

	now := srv.now().UTC()
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().SetActive(ctx, userID, active); err != nil {
			return err
		}

		return repoFactory.NewActivityLogRepository().Create(ctx, newActivityLog(
			caller.UserID, action, entity.EntityTypeUser, userID, "", now,
		))
	})
	if err != nil {
		return errors.Wrap(err, "failed to update user status")
	}

	srv.log(ctx).Info("User status changed", slog.String("user_id", userID.String()), slog.Bool("active", active))

	return nil
}

// DeleteUser removes an account that owns no active donation and holds no open claim.
func (srv *adminService) DeleteUser(ctx context.Context, caller entity.Caller, userID uuid.UUID) error {
	if err := requireRole(caller, entity.RoleAdmin); err != nil {
		return err
	}

	target, err := srv.mutableUser(ctx, userID)
	if err != nil {
		return err
	}

	now := srv.now().UTC()
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().DeleteUnlessActiveDonations(ctx, userID); err != nil {
			return err
		}

		return repoFactory.NewActivityLogRepository().Create(ctx, newActivityLog(
			caller.UserID, entity.ActionUserDeleted, entity.EntityTypeUser, userID, target.Email, now,
		))
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.String("user_id", userID.String()))

	return nil
}

// mutableUser loads a user that admin actions may change.
func (srv *adminService) mutableUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}
	if user.Role == entity.RoleAdmin {
		return nil, domainerrors.ErrAdminImmutable
	}

	return user, nil
}

// ListDonations pages through every donation with both parties' names.
func (srv *adminService) ListDonations(ctx context.Context, caller entity.Caller, input usecase.ListDonationsInput) (*usecase.Page[*entity.Donation], error) {
	if err := requireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + input.Status.String())
	}

	page := input.PageInput.Normalize(constants.DefaultPageSize)
	donations, total, err := srv.donationRepo.ListAll(ctx, repository.DonationFilter{
		Status: input.Status,
		Limit:  page.Limit,
		Offset: page.Offset(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations")
	}

	return usecase.NewPage(donations, total, page), nil
}

// ListActivityLogs pages through the audit trail, newest first.
func (srv *adminService) ListActivityLogs(ctx context.Context, caller entity.Caller, input usecase.PageInput) (*usecase.Page[*entity.ActivityLog], error) {
	if err := requireRole(caller, entity.RoleAdmin); err != nil {
		return nil, err
	}

	page := input.Normalize(constants.DefaultActivityPageSize)
	entries, total, err := srv.activityLogRepo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activity logs")
	}

	return usecase.NewPage(entries, total, page), nil
}
