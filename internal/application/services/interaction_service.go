package services

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quickpick/storefront/internal/domain/entities"
	"github.com/quickpick/storefront/internal/domain/providers"
	"github.com/quickpick/storefront/internal/domain/repositories"
	"github.com/quickpick/storefront/internal/infrastructure/observability"
	apperrors "github.com/quickpick/storefront/pkg/errors"
)

const recordTimeout = 5 * time.Second

// InteractionService records user interaction events (impressions, clicks,
// add-to-cart). Recording requires an identified session: for an anonymous
// session every call is a silent no-op, by design rather than by error.
type InteractionService struct {
	repo    repositories.InteractionRepository
	bus     providers.EventBus
	metrics *observability.Metrics
}

// NewInteractionService creates a new interaction service. bus and metrics
// may be nil.
func NewInteractionService(repo repositories.InteractionRepository, bus providers.EventBus, metrics *observability.Metrics) *InteractionService {
	return &InteractionService{
		repo:    repo,
		bus:     bus,
		metrics: metrics,
	}
}

// Record persists a single interaction event. The ctr field is derived from
// the action (1 for click, 0 otherwise), never taken from the caller. When
// the session is anonymous nothing is recorded and nil is returned.
func (s *InteractionService) Record(ctx context.Context, sess *entities.UserSession, productID string, action entities.InteractionAction) error {
	if sess.Anonymous() {
		if s.metrics != nil {
			s.metrics.SuppressedCount.Add(ctx, 1)
		}
		return nil
	}
	if productID == "" {
		return apperrors.NewValidationError("product_id is required")
	}
	if !action.Valid() {
		return apperrors.NewValidationError("unknown interaction action: " + string(action))
	}

	event := &entities.InteractionEvent{
		UserID:    sess.UserID,
		ProductID: productID,
		Action:    action,
		CTR:       action.CTR(),
	}
	if err := s.repo.LogEvent(ctx, event); err != nil {
		return err
	}

	if s.metrics != nil && action == entities.ActionImpression {
		s.metrics.ImpressionCount.Add(ctx, 1)
	}
	s.publish(ctx, event)
	return nil
}

// RecordImpressions emits one impression per product without blocking the
// caller. Each submission builds its own batch, so a product appears at most
// once per call. Failures are logged and swallowed; the triggering search is
// never delayed or failed by impression recording.
func (s *InteractionService) RecordImpressions(sess *entities.UserSession, products []*entities.Product) {
	if sess.Anonymous() || len(products) == 0 {
		return
	}

	// Detach from the request context so in-flight impressions survive the
	// response being written.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		var wg sync.WaitGroup
		for _, p := range products {
			wg.Add(1)
			go func(p *entities.Product) {
				defer wg.Done()
				if err := s.Record(ctx, sess, p.ID, entities.ActionImpression); err != nil {
					log.Warn().Err(err).
						Str("user_id", sess.UserID).
						Str("product_id", p.ID).
						Msg("failed to record impression")
				}
			}(p)
		}
		wg.Wait()
	}()
}

// ListByUser returns the recorded events for a user, newest first.
func (s *InteractionService) ListByUser(ctx context.Context, userID string, limit int) ([]*entities.InteractionEvent, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

// publish broadcasts the event to live consumers. Delivery is best-effort;
// persistence has already succeeded by the time this runs.
func (s *InteractionService) publish(ctx context.Context, event *entities.InteractionEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, providers.EventChannelInteractions, event); err != nil {
		log.Debug().Err(err).Str("event_id", event.ID).Msg("failed to publish interaction event")
		return
	}
	if err := s.bus.Publish(ctx, providers.GetActionChannel(event.Action), event); err != nil {
		log.Debug().Err(err).Str("event_id", event.ID).Msg("failed to publish interaction event to action channel")
	}
}
