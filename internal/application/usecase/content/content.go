// Package content holds the per-entity CRUD use cases behind the protected
// API surface. Every write invalidates the profile cache and emits a
// portfolio event for downstream consumers.
package content

import (
	"context"

	"go.uber.org/zap"

	"github.com/rahulladumor/portfolio-api/adapters/event"
	"github.com/rahulladumor/portfolio-api/internal/application/service"
	"github.com/rahulladumor/portfolio-api/pkg/logger"
)

type ChangeNotifier struct {
	cache       service.ProfileCache
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewChangeNotifier(cache service.ProfileCache, kClient *event.KafkaProducerClient, log logger.Logger) *ChangeNotifier {
	return &ChangeNotifier{cache: cache, kafkaClient: kClient, logger: log}
}

// Changed marks an entity collection as dirty. Cache invalidation is
// synchronous, event publishing is not.
func (n *ChangeNotifier) Changed(ctx context.Context, entity string) {
	if n == nil {
		return
	}
	if n.cache != nil {
		n.cache.Invalidate(ctx)
	}
	if n.kafkaClient != nil {
		go func() {
			err := n.kafkaClient.PublishPortfolioEvent(context.Background(), event.PortfolioEventPayload{
				EventType: event.PortfolioEventTypeUpdated,
				Entity:    entity,
			})
			if err != nil {
				n.logger.Error("Failed to publish portfolio updated event", err, zap.String("entity", entity))
			}
		}()
	}
}
