package audit

import "log"

const (
	ActionCustomerCreated = "customer_created"
	ActionCustomerDeleted = "customer_deleted"
	ActionScanCreated     = "scan_created"
	ActionScanDeleted     = "scan_deleted"
	ActionRecordCreated   = "record_created"
	ActionRecordDeleted   = "record_deleted"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue drops the event rather than blocking a submission
		log.Println("audit queue full, dropping event")
	}
}
