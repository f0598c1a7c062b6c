package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Action names written to audit_logs.
const (
	ActionBookingCreated       = "booking_created"
	ActionBookingConflict      = "booking_conflict"
	ActionBookingStatusChanged = "booking_status_changed"
	ActionBookingDeleted       = "booking_deleted"
	ActionOpeningHoursUpdated  = "opening_hours_updated"
	ActionSalonCreated         = "salon_created"
	ActionSalonUpdated         = "salon_updated"
	ActionOfferingCreated      = "offering_created"
	ActionOfferingUpdated      = "offering_updated"
	ActionOfferingDeleted      = "offering_deleted"
	ActionImageUploaded        = "image_uploaded"
	ActionImageUpdated         = "image_updated"
	ActionImageDeleted         = "image_deleted"
)

type Event struct {
	SalonID  uint
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher writes audit events off the request path. A nil *Dispatcher
// discards everything.
type Dispatcher struct {
	sink  sink
	log   zerolog.Logger
	queue chan Event

	wg sync.WaitGroup
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	return newDispatcher(logger, log, 100)
}

func newDispatcher(s sink, log zerolog.Logger, size int) *Dispatcher {
	d := &Dispatcher{
		sink:  s,
		log:   log,
		queue: make(chan Event, size),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch never blocks; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains pending events. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	close(d.queue)
	d.wg.Wait()
}
