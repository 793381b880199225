package audit

import (
	"go.uber.org/zap"

	"github.com/salonhub/salon-backend/internal/logger"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher persists audit events off the request path. Overflow drops the
// event rather than blocking a request.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(l *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.Error("audit write failed", zap.Error(err))
		}
	}
}

// Dispatch is a no-op on a nil dispatcher so auditing stays optional for
// callers that have nothing to persist to.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		logger.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
