package events

import (
	"context"
	"encoding/json"
	"time"

	gcppubsub "cloud.google.com/go/pubsub/v2"

	"github.com/voicecartlabs/voicecart-backend/pkg/logger"
)

const publishTimeout = 10 * time.Second

// PubSubPublisher ships events to the configured Pub/Sub topic. Delivery is
// asynchronous; failures are logged and dropped.
type PubSubPublisher struct {
	publisher *gcppubsub.Publisher
	logg      *logger.Logger
}

// NewPubSubPublisher wraps a topic publisher handle.
func NewPubSubPublisher(publisher *gcppubsub.Publisher, logg *logger.Logger) *PubSubPublisher {
	return &PubSubPublisher{publisher: publisher, logg: logg}
}

func (p *PubSubPublisher) Publish(ctx context.Context, event any) {
	if p == nil || p.publisher == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		if p.logg != nil {
			p.logg.Error(ctx, "marshaling event", err)
		}
		return
	}

	// Detach from the request context so in-flight publishes survive the
	// response being written.
	go func() {
		pubCtx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		result := p.publisher.Publish(pubCtx, &gcppubsub.Message{Data: payload})
		if _, err := result.Get(pubCtx); err != nil && p.logg != nil {
			p.logg.Error(pubCtx, "publishing event", err)
		}
	}()
}
