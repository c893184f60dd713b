package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/diet-service/internal/domain/model"
	"github.com/guttosm/diet-service/internal/middleware"
	"github.com/guttosm/diet-service/internal/repository"
)

// ActivityRecorder persists staff actions to the activity log. Recording is
// best-effort: a failed write is logged and never fails the action itself.
type ActivityRecorder struct {
	repo   repository.ActivityRepository
	logger zerolog.Logger
}

// NewActivityRecorder creates an ActivityRecorder. A nil repo disables
// persistence entirely.
func NewActivityRecorder(repo repository.ActivityRepository, logger zerolog.Logger) *ActivityRecorder {
	return &ActivityRecorder{repo: repo, logger: logger}
}

// Record writes one action entry, picking the request id up from ctx.
func (r *ActivityRecorder) Record(ctx context.Context, actionType, entityID, message string) {
	if r == nil || r.repo == nil {
		return
	}
	entry := &model.ActivityEntry{
		Timestamp:  time.Now().UTC(),
		Level:      "info",
		Message:    message,
		RequestID:  middleware.RequestIDFromContext(ctx),
		ActionType: actionType,
		EntityID:   entityID,
	}
	if err := r.repo.Create(ctx, entry); err != nil {
		r.logger.Warn().Err(err).Str("action_type", actionType).Msg("failed to record activity")
	}
}
