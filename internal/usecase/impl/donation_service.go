package impl

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"foodbridge/config"
	"foodbridge/internal/domain/constants"
	"foodbridge/internal/domain/entity"
	domainerrors "foodbridge/internal/domain/errors"
	"foodbridge/internal/domain/geo"
	"foodbridge/internal/domain/repository"
	"foodbridge/internal/domain/service"
	"foodbridge/internal/domain/statemachine"
	logs "foodbridge/internal/infra/log"
	"foodbridge/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	allowedImageExtensions = []string{"jpeg", "jpg", "png", "gif", "webp"}
	allowedImageMIMEs      = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
)

var transitionEventTypes = map[statemachine.Event]string{
	statemachine.EventClaim:    constants.EventDonationClaimed,
	statemachine.EventComplete: constants.EventDonationCompleted,
	statemachine.EventCancel:   constants.EventDonationCancelled,
}

// donationService implements the DonationUsecase interface.
type donationService struct {
	txManager     repository.TransactionManager
	donationRepo  repository.DonationRepository
	pickupRepo    repository.PickupRepository
	userRepo      repository.UserRepository
	impactRepo    repository.ImpactRepository
	storage       service.ImageStorage
	publisher     service.EventPublisher
	qrCodeService service.QRCodeService
	metrics       service.MetricsRecorder
	maxImageBytes int64
	logger        *slog.Logger
	now           func() time.Time
}

// DonationServiceParams holds dependencies for DonationService, injected by Fx.
type DonationServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	DonationRepo  repository.DonationRepository
	PickupRepo    repository.PickupRepository
	UserRepo      repository.UserRepository
	ImpactRepo    repository.ImpactRepository
	Storage       service.ImageStorage
	Publisher     service.EventPublisher
	QRCodeService service.QRCodeService
	Metrics       service.MetricsRecorder
	Config        *config.Config
	Logger        *slog.Logger
}

// NewDonationService is the constructor for donationService.
func NewDonationService(params DonationServiceParams) usecase.DonationUsecase {
	maxImageBytes := int64(constants.DefaultMaxImageBytes)
	if params.Config != nil && params.Config.Upload != nil && params.Config.Upload.MaxSizeBytes > 0 {
		maxImageBytes = params.Config.Upload.MaxSizeBytes
	}

	return &donationService{
		txManager:     params.TxManager,
		donationRepo:  params.DonationRepo,
		pickupRepo:    params.PickupRepo,
		userRepo:      params.UserRepo,
		impactRepo:    params.ImpactRepo,
		storage:       params.Storage,
		publisher:     params.Publisher,
		qrCodeService: params.QRCodeService,
		metrics:       params.Metrics,
		maxImageBytes: maxImageBytes,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *donationService) log(ctx context.Context) *slog.Logger {
	return logs.FromContext(ctx, srv.logger)
}

// Create lists a new donation and announces it to every active NGO in the same transaction.
func (srv *donationService) Create(ctx context.Context, caller entity.Caller, input usecase.CreateDonationInput) (*entity.Donation, error) {
	if err := requireRole(caller, entity.RoleRestaurant); err != nil {
		return nil, err
	}
	if err := requireVerified(ctx, srv.userRepo, caller); err != nil {
		return nil, err
	}

	input = trimDonationInput(input)
	if err := validateDonationInput(input); err != nil {
		return nil, err
	}

	var imageKey string
	if input.Image != nil {
		key, err := srv.storeImage(ctx, input.Image)
		if err != nil {
			return nil, err
		}
		imageKey = key
	}

	now := srv.now().UTC()
	donation := &entity.Donation{
		ID:           uuid.New(),
		RestaurantID: caller.UserID,
		FoodType:     input.FoodType,
		FoodCategory: input.FoodCategory,
		Quantity:     input.Quantity,
		QuantityKg:   input.QuantityKg,
		ExpiryHours:  input.ExpiryHours,
		ExpiryTime:   now.Add(time.Duration(input.ExpiryHours) * time.Hour),
		Location:     input.Location,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Notes:        input.Notes,
		Status:       entity.DonationStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if imageKey != "" {
		donation.ImageURL = srv.storage.PublicURL(imageKey)
	}

	var notified int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewDonationRepository().Create(ctx, donation); err != nil {
			return err
		}
		if err := repoFactory.NewImpactRepository().RecordDonation(ctx, caller.UserID, donation.FoodSavedKg()); err != nil {
			return err
		}

		count, err := repoFactory.NewNotificationRepository().BroadcastToRole(ctx, entity.RoleNGO, &entity.Notification{
			Title:       "New Donation Available",
			Message:     fmt.Sprintf("A new %s donation is available!", donation.FoodType),
			Type:        entity.NotificationTypeNewDonation,
			ReferenceID: &donation.ID,
			CreatedAt:   now,
		})
		if err != nil {
			return err
		}
		notified = count

		return repoFactory.NewActivityLogRepository().Create(ctx, newActivityLog(
			caller.UserID, entity.ActionDonationCreated, entity.EntityTypeDonation, donation.ID,
			fmt.Sprintf("Created %s donation (%s)", donation.FoodType, donation.Quantity), now,
		))
	})
	if err != nil {
		if imageKey != "" {
			srv.discardImage(ctx, imageKey)
		}

		return nil, errors.Wrap(err, "failed to create donation")
	}

	srv.log(ctx).Info("Donation created",
		slog.String("donation_id", donation.ID.String()),
		slog.String("restaurant_id", caller.UserID.String()),
		slog.Int64("ngos_notified", notified),
	)
	srv.publish(ctx, constants.EventDonationCreated, donation)

	return donation, nil
}

func trimDonationInput(input usecase.CreateDonationInput) usecase.CreateDonationInput {
	input.FoodType = strings.TrimSpace(input.FoodType)
	input.FoodCategory = strings.TrimSpace(input.FoodCategory)
	input.Quantity = strings.TrimSpace(input.Quantity)
	input.Location = strings.TrimSpace(input.Location)
	input.Notes = strings.TrimSpace(input.Notes)

	return input
}

func validateDonationInput(input usecase.CreateDonationInput) error {
	switch {
	case input.FoodType == "":
		return domainerrors.ErrValidationFailed.WithDetails("food type is required")
	case input.Quantity == "":
		return domainerrors.ErrValidationFailed.WithDetails("quantity is required")
	case input.Location == "":
		return domainerrors.ErrValidationFailed.WithDetails("location is required")
	case input.ExpiryHours < entity.MinExpiryHours || input.ExpiryHours > entity.MaxExpiryHours:
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("expiry hours must be between %d and %d", entity.MinExpiryHours, entity.MaxExpiryHours))
	case input.QuantityKg != nil && *input.QuantityKg < 0:
		return domainerrors.ErrValidationFailed.WithDetails("quantity kg cannot be negative")
	}

	return validateCoordinates(input.Latitude, input.Longitude)
}

// storeImage checks the upload by extension and by its content, then saves it.
func (srv *donationService) storeImage(ctx context.Context, image *usecase.ImageUpload) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(image.Filename), "."))
	if !slices.Contains(allowedImageExtensions, ext) {
		return "", domainerrors.ErrInvalidImage
	}
	if image.Size > srv.maxImageBytes {
		return "", domainerrors.ErrImageTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(image.Content, srv.maxImageBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read image")
	}
	if int64(len(data)) > srv.maxImageBytes {
		return "", domainerrors.ErrImageTooLarge
	}

	detected := mimetype.Detect(data)
	if !slices.ContainsFunc(allowedImageMIMEs, detected.Is) {
		return "", domainerrors.ErrInvalidImage.WithDetails("content is " + detected.String())
	}

	key, err := srv.storage.Save(ctx, ext, detected.String(), bytes.NewReader(data))
	if err != nil {
		return "", errors.Wrap(err, "failed to store image")
	}

	return key, nil
}

func (srv *donationService) discardImage(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to remove orphaned image", slog.String("key", key), slog.Any("error", err))
	}
}

// Browse lists donations for any signed-in user. With a distance filter the rows are
// annotated with their distance and ordered nearest first.
func (srv *donationService) Browse(ctx context.Context, _ entity.Caller, input usecase.BrowseInput) ([]*entity.Donation, error) {
	status := entity.DonationStatusActive
	if raw := strings.TrimSpace(input.Status); raw != "" {
		status = entity.DonationStatus(strings.ToLower(raw))
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status " + raw)
		}
	}
	if input.Limit < 0 || input.Offset < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("limit and offset cannot be negative")
	}

	filter := repository.DonationFilter{
		Status:   &status,
		FoodType: strings.TrimSpace(input.FoodType),
		Limit:    input.Limit,
		Offset:   input.Offset,
	}

	withDistance := input.Latitude != nil && input.Longitude != nil && input.MaxDistanceKm != nil
	if withDistance {
		if !geo.IsValidCoordinate(*input.Latitude, *input.Longitude) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates out of range")
		}
		if maxKm := *input.MaxDistanceKm; maxKm < 0 || math.IsNaN(maxKm) || math.IsInf(maxKm, 0) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("max distance must be a non-negative number")
		}
		filter.Distance = &repository.DistanceFilter{
			Latitude:      *input.Latitude,
			Longitude:     *input.Longitude,
			MaxDistanceKm: *input.MaxDistanceKm,
		}
	}

	donations, err := srv.donationRepo.Browse(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to browse donations")
	}

	if withDistance {
		origin := geo.Point(*input.Latitude, *input.Longitude)
		for _, donation := range donations {
			if !donation.HasCoordinates() {
				continue
			}
			distance := geo.DistanceKm(origin, geo.Point(*donation.Latitude, *donation.Longitude))
			donation.DistanceKm = &distance
		}
		slices.SortStableFunc(donations, func(a, b *entity.Donation) int {
			return cmp.Compare(distanceOrMax(a), distanceOrMax(b))
		})
	}

	return donations, nil
}

func distanceOrMax(donation *entity.Donation) float64 {
	if donation.DistanceKm == nil {
		return math.MaxFloat64
	}

	return *donation.DistanceKm
}

// MyDonations lists the calling restaurant's own donations.
func (srv *donationService) MyDonations(ctx context.Context, caller entity.Caller) ([]*entity.Donation, error) {
	if err := requireRole(caller, entity.RoleRestaurant); err != nil {
		return nil, err
	}

	donations, err := srv.donationRepo.ListByRestaurant(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list restaurant donations")
	}

	return donations, nil
}

// ClaimedDonations lists what the calling NGO has claimed.
func (srv *donationService) ClaimedDonations(ctx context.Context, caller entity.Caller) ([]*entity.Donation, error) {
	if err := requireRole(caller, entity.RoleNGO); err != nil {
		return nil, err
	}

	donations, err := srv.donationRepo.ListClaimedBy(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list claimed donations")
	}

	return donations, nil
}

// Stats returns the caller's dashboard numbers. Admins get an empty result.
func (srv *donationService) Stats(ctx context.Context, caller entity.Caller) (*usecase.DonationStats, error) {
	stats := &usecase.DonationStats{}

	switch caller.Role {
	case entity.RoleRestaurant:
		restaurant, err := srv.impactRepo.RestaurantStats(ctx, caller.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load restaurant stats")
		}
		stats.Restaurant = restaurant
	case entity.RoleNGO:
		ngo, err := srv.impactRepo.NGOStats(ctx, caller.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load ngo stats")
		}
		stats.NGO = ngo
	}

	return stats, nil
}

// Claim takes an active donation for the calling NGO and opens its pickup.
func (srv *donationService) Claim(ctx context.Context, caller entity.Caller, donationID uuid.UUID, input usecase.ClaimInput) (*usecase.ClaimOutput, error) {
	if err := requireRole(caller, entity.RoleNGO); err != nil {
		return nil, err
	}
	if err := requireVerified(ctx, srv.userRepo, caller); err != nil {
		return nil, err
	}

	result, err := srv.transition(ctx, caller, donationID, statemachine.EventClaim, transitionInput{
		scheduledPickup: input.ScheduledPickupTime,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.ClaimOutput{Donation: result.donation, Pickup: result.pickup}, nil
}

// Complete closes the caller's claim; a missing rating counts as the maximum.
func (srv *donationService) Complete(ctx context.Context, caller entity.Caller, donationID uuid.UUID, input usecase.CompleteInput) (*entity.Donation, error) {
	if err := requireRole(caller, entity.RoleNGO); err != nil {
		return nil, err
	}

	rating := entity.DefaultPickupRating
	if input.Rating != nil {
		rating = *input.Rating
	}
	if rating < entity.MinPickupRating || rating > entity.MaxPickupRating {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("rating must be between %d and %d", entity.MinPickupRating, entity.MaxPickupRating))
	}

	result, err := srv.transition(ctx, caller, donationID, statemachine.EventComplete, transitionInput{
		rating:   rating,
		feedback: strings.TrimSpace(input.Feedback),
	})
	if err != nil {
		return nil, err
	}

	return result.donation, nil
}

// Cancel withdraws one of the caller's active donations.
func (srv *donationService) Cancel(ctx context.Context, caller entity.Caller, donationID uuid.UUID) (*entity.Donation, error) {
	if err := requireRole(caller, entity.RoleRestaurant); err != nil {
		return nil, err
	}

	result, err := srv.transition(ctx, caller, donationID, statemachine.EventCancel, transitionInput{})
	if err != nil {
		return nil, err
	}

	return result.donation, nil
}

// PickupQRCode renders the pickup ticket. Donations the caller is not party to read as missing.
func (srv *donationService) PickupQRCode(ctx context.Context, caller entity.Caller, donationID uuid.UUID) ([]byte, error) {
	if err := requireRole(caller, entity.RoleRestaurant, entity.RoleNGO); err != nil {
		return nil, err
	}

	donation, err := srv.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load donation")
	}
	if !isParty(caller, donation) {
		return nil, domainerrors.ErrDonationNotFound
	}

	pickup, err := srv.pickupRepo.FindByDonationID(ctx, donationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pickup")
	}

	png, err := srv.qrCodeService.GeneratePickupQR(service.PickupTicket{
		PickupID:   pickup.ID,
		DonationID: donation.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pickup QR code")
	}

	return png, nil
}

func isParty(caller entity.Caller, donation *entity.Donation) bool {
	switch caller.Role {
	case entity.RoleRestaurant:
		return donation.RestaurantID == caller.UserID
	case entity.RoleNGO:
		return donation.ClaimedBy != nil && *donation.ClaimedBy == caller.UserID
	default:
		return false
	}
}

// OpenImage streams a stored donation image.
func (srv *donationService) OpenImage(ctx context.Context, key string) (*service.StoredObject, error) {
	object, err := srv.storage.Open(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}

	return object, nil
}

func (srv *donationService) publish(ctx context.Context, eventType string, donation *entity.Donation) {
	if srv.publisher == nil {
		return
	}

	event := &service.DonationEvent{
		RequestID:    logs.RequestID(ctx),
		EventType:    eventType,
		DonationID:   donation.ID.String(),
		RestaurantID: donation.RestaurantID.String(),
		FoodType:     donation.FoodType,
		Quantity:     donation.Quantity,
		Location:     donation.Location,
		Status:       donation.Status.String(),
		OccurredAt:   srv.now().Unix(),
	}
	if donation.ClaimedBy != nil {
		event.NGOID = donation.ClaimedBy.String()
	}

	if err := srv.publisher.PublishDonationEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish donation event",
			slog.String("event_type", eventType),
			slog.String("donation_id", event.DonationID),
			slog.Any("error", err),
		)
	}
}
