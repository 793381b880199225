package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/salonhub/salon-backend/internal/domain/booking"
)

// Slot sequences expire well after the booking day has passed; they only
// need to outlive the slot itself.
const slotSequenceTTL = 48 * time.Hour

// SlotSequence assigns queue numbers from a per-slot Redis counter. INCR is
// atomic, so concurrent bookings for the same slot never share a number.
type SlotSequence struct {
	client *redis.Client
}

func NewSlotSequence(client *redis.Client) *SlotSequence {
	return &SlotSequence{client: client}
}

func (s *SlotSequence) Next(ctx context.Context, slot domain.Slot) (int, error) {
	key := fmt.Sprintf("slotseq:%d:%s:%s", slot.ServiceID, slot.Date, slot.Time)

	n, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	// Best effort; a missing TTL only leaves a small stale key behind.
	s.client.Expire(ctx, key, slotSequenceTTL)

	return int(n), nil
}

var _ domain.SlotSequencer = (*SlotSequence)(nil)
