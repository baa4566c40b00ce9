package services

import (
	"context"
	"errors"
	"fmt"

	"patri/internal/domain"
	"patri/internal/ports"
	"patri/logging"
)

// Dispatcher routes inbound events to the handler for the current session
// state. It runs on the event loop, so every event sees a consistent
// snapshot: state and active case are read exactly once per event and passed
// down to the handler.
type Dispatcher struct {
	handlers  *Handlers
	machine   *Machine
	transport ports.Transport
}

// NewDispatcher creates the event dispatcher
func NewDispatcher(handlers *Handlers, machine *Machine, transport ports.Transport) *Dispatcher {
	return &Dispatcher{handlers: handlers, machine: machine, transport: transport}
}

// Dispatch handles one inbound event. Panics in handlers are contained here;
// a panicking event is logged and answered with an apology, and the session
// survives.
func (d *Dispatcher) Dispatch(ctx context.Context, ev domain.Event) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Handler panicked", "kind", ev.Kind, "panic", r)
			d.sendQuiet(ctx, ev.UserID, msgUnexpectedError)
		}
	}()

	state := d.machine.State()
	caseID := d.machine.ActiveCase()
	logging.Logger.Debug("Dispatching event", "kind", ev.Kind, "state", state, "case_id", caseID)

	if state == domain.StateCollecting && caseID == "" {
		// The one self-heal point: a collecting session without a case
		// cannot make progress, so reset rather than wedge.
		logging.Logger.Error("Collecting state with no active case, resetting session")
		if err := d.machine.ForceIdle(); err != nil {
			logging.Logger.Error("Failed to reset inconsistent session", "error", err)
		}
		d.sendQuiet(ctx, ev.UserID, msgLostCaseContext)
		return
	}

	var err error
	switch state {
	case domain.StateIdle:
		err = d.handlers.HandleIdle(ctx, ev)
	case domain.StateWaitingForCase:
		err = d.handlers.HandleWaiting(ctx, ev)
	case domain.StateCollecting:
		err = d.handlers.HandleCollecting(ctx, ev, caseID)
	default:
		err = fmt.Errorf("%w: unknown state %q", domain.ErrInconsistentState, state)
	}

	if err != nil {
		d.recoverFrom(ctx, ev.UserID, err)
	}
}

// recoverFrom applies the error ladder: transient failures get a retry
// message and no state change, inconsistency resets to idle, and anything
// else gets an apology with idle as the last resort.
func (d *Dispatcher) recoverFrom(ctx context.Context, userID int64, err error) {
	switch {
	case errors.Is(err, domain.ErrTransient):
		logging.Logger.Warn("Transient failure handling event", "error", err)
		d.sendQuiet(ctx, userID, msgTransientFailure)

	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrInconsistentState):
		logging.Logger.Error("Session inconsistency, resetting to idle", "error", err)
		if ferr := d.machine.ForceIdle(); ferr != nil {
			logging.Logger.Error("Failed to reset session", "error", ferr)
		}
		d.sendQuiet(ctx, userID, msgBackToMenu)

	default:
		logging.Logger.Error("Event handling failed", "error", err)
		d.sendQuiet(ctx, userID, msgUnexpectedError)
		if d.machine.State() == domain.StateCollecting && d.machine.ActiveCase() == "" {
			if ferr := d.machine.ForceIdle(); ferr != nil {
				logging.Logger.Error("Failed to reset session", "error", ferr)
			}
		}
	}
}

func (d *Dispatcher) sendQuiet(ctx context.Context, userID int64, text string) {
	if _, err := d.transport.SendMessage(ctx, userID, text, ports.SendOptions{}); err != nil {
		logging.Logger.Error("Failed to send recovery message", "error", err)
	}
}
