package impl

import (
	"context"
	"log/slog"
	"strconv"

	deliverycontext "medisupply/internal/delivery/context"
	"medisupply/internal/domain/entity"
	domainerrors "medisupply/internal/domain/errors"
	"medisupply/internal/domain/repository"
	"medisupply/internal/domain/service"
	"medisupply/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	activityRepo repository.ActivityRepository
	quoteRepo    repository.QuoteRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for ActivityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	ActivityRepo repository.ActivityRepository
	QuoteRepo    repository.QuoteRepository
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		activityRepo: params.ActivityRepo,
		quoteRepo:    params.QuoteRepo,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

func (srv *activityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LogActivity appends one entry to a user's activity log and fans it out to
// the event bus for downstream analytics.
func (srv *activityService) LogActivity(ctx context.Context, input *usecase.LogActivityInput) (*entity.Activity, error) {
	activityType := entity.ActivityType(input.Type)
	if !activityType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown activity type")
	}

	activity := &entity.Activity{
		UserID:     input.UserID,
		Type:       activityType,
		MedicineID: input.MedicineID,
		Quantity:   input.Quantity,
	}

	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		srv.log(ctx).Error("Failed to log activity", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to log activity")
	}

	srv.publishActivityEvent(ctx, activity)

	return activity, nil
}

// ListActivities returns a user's log, optionally filtered by type.
func (srv *activityService) ListActivities(ctx context.Context, userID uuid.UUID, activityType string) ([]*entity.Activity, error) {
	filter := entity.ActivityType(activityType)
	if activityType != "" && !filter.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown activity type filter")
	}

	activities, err := srv.activityRepo.ListByUser(ctx, userID, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list activities", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

// CreateQuoteRequest records a bulk-quote request and mirrors it into the
// activity log so sales can see the full customer trail in one place.
func (srv *activityService) CreateQuoteRequest(ctx context.Context, input *usecase.QuoteRequestInput) (*entity.QuoteRequest, error) {
	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quote quantity must be at least 1")
	}

	quote := &entity.QuoteRequest{
		UserID:     input.UserID,
		MedicineID: input.MedicineID,
		Quantity:   input.Quantity,
		Message:    input.Message,
	}

	if err := srv.quoteRepo.Create(ctx, quote); err != nil {
		srv.log(ctx).Error("Failed to create quote request", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create quote request")
	}

	activity := &entity.Activity{
		UserID:     input.UserID,
		Type:       entity.ActivityRequestQuote,
		MedicineID: input.MedicineID,
		Quantity:   input.Quantity,
	}
	// The quote itself is already saved; the mirrored log entry is best effort.
	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		srv.log(ctx).Warn("Failed to mirror quote request into activity log", slog.Any("userID", input.UserID), slog.Any("error", err))
	} else {
		srv.publishActivityEvent(ctx, activity)
	}

	return quote, nil
}

// ListQuoteRequests returns a user's quote requests, newest first.
func (srv *activityService) ListQuoteRequests(ctx context.Context, userID uuid.UUID) ([]*entity.QuoteRequest, error) {
	quotes, err := srv.quoteRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list quote requests", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list quote requests")
	}

	return quotes, nil
}

func (srv *activityService) publishActivityEvent(ctx context.Context, activity *entity.Activity) {
	event := &service.Event{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		Type:      service.EventTypeUserActivity,
		SubjectID: activity.UserID.String(),
		Data: map[string]string{
			"activity_type": activity.Type.String(),
			"medicine_id":   activity.MedicineID.String(),
			"quantity":      strconv.Itoa(activity.Quantity),
		},
	}

	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish activity event", slog.Any("userID", activity.UserID), slog.Any("error", err))
	}
}
