package services

import (
	"patri/internal/ports"
)

// Handlers implements the per-state event handling. One instance per
// session, created by the container and driven by the dispatcher.
type Handlers struct {
	analyzer    ports.CaseAnalyzer
	cases       ports.CaseStore
	debouncer   *Debouncer
	machine     *Machine
	status      *StatusMessenger
	stepper     *Stepper
	summarizer  ports.Summarizer
	tracker     *Tracker
	transcriber ports.Transcriber
	transport   ports.Transport
}

// NewHandlers wires the per-state handlers
func NewHandlers(
	analyzer ports.CaseAnalyzer,
	cases ports.CaseStore,
	debouncer *Debouncer,
	machine *Machine,
	status *StatusMessenger,
	stepper *Stepper,
	summarizer ports.Summarizer,
	tracker *Tracker,
	transcriber ports.Transcriber,
	transport ports.Transport,
) *Handlers {
	return &Handlers{
		analyzer:    analyzer,
		cases:       cases,
		debouncer:   debouncer,
		machine:     machine,
		status:      status,
		stepper:     stepper,
		summarizer:  summarizer,
		tracker:     tracker,
		transcriber: transcriber,
		transport:   transport,
	}
}
