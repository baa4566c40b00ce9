package cmd

import (
	"os"

	"github.com/benbjohnson/clock"

	"patri/internal/adapters/console"
	"patri/internal/adapters/dummy"
	"patri/internal/adapters/statefile"
	"patri/internal/adapters/storage"
	"patri/internal/bus"
	"patri/internal/config"
	"patri/internal/domain"
	"patri/internal/services"
	"patri/logging"
)

// defaultOperatorID is used when settings carry no operator id. The console
// transport only ever talks to one operator anyway.
const defaultOperatorID int64 = 1

// Container holds all dependencies for the application
type Container struct {
	Debouncer  *services.Debouncer
	Dispatcher *services.Dispatcher
	Inbox      *bus.Inbox
	Loop       *services.Loop
	Machine    *services.Machine
	OperatorID int64

	// Internal - for cleanup only
	caseStore *storage.SQLiteStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	sessionStore := statefile.NewStore(config.GetSessionFilePath())
	machine, err := services.NewMachine(sessionStore)
	if err != nil {
		return nil, err
	}

	caseStore, err := storage.NewSQLiteStore(config.GetDBPath(), config.GetCaseDataDir(settings))
	if err != nil {
		return nil, err
	}

	transport := console.NewTransport(os.Stdout)

	if settings != nil && settings.DummyAPIs != nil && !*settings.DummyAPIs {
		logging.Logger.Warn("Real analysis services are not configured, falling back to dummy APIs")
	}

	loop := services.NewLoop()
	tracker := services.NewTracker()
	serializer := services.NewSerializer(machine, tracker)
	stepper := services.NewStepper(caseStore, machine, serializer, tracker, transport)
	serializer.SetStarter(stepper)
	debouncer := services.NewDebouncer(clock.New(), loop, tracker, serializer)
	status := services.NewStatusMessenger(transport)

	handlers := services.NewHandlers(
		dummy.Analyzer{},
		caseStore,
		debouncer,
		machine,
		status,
		stepper,
		dummy.Summarizer{},
		tracker,
		dummy.Transcriber{},
		transport,
	)
	dispatcher := services.NewDispatcher(handlers, machine, transport)

	operatorID := defaultOperatorID
	if settings != nil && settings.OperatorID != nil {
		operatorID = *settings.OperatorID
	}

	return &Container{
		Debouncer:  debouncer,
		Dispatcher: dispatcher,
		Inbox:      bus.NewInbox(),
		Loop:       loop,
		Machine:    machine,
		OperatorID: operatorID,
		caseStore:  caseStore,
	}, nil
}

// SessionSnapshot returns the machine's current snapshot for status output
func (c *Container) SessionSnapshot() domain.Snapshot {
	return c.Machine.Snapshot()
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Inbox != nil {
		c.Inbox.Close()
	}
	if c.caseStore != nil {
		return c.caseStore.Close()
	}
	return nil
}
