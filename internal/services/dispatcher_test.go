package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"patri/internal/domain"
	"patri/internal/ports"
	portsmocks "patri/internal/ports/mocks"
)

type fakeAnalyzer struct {
	err     error
	extract *ports.CaseExtract
}

func (f fakeAnalyzer) ExtractCase(ctx context.Context, pdf []byte) (*ports.CaseExtract, error) {
	return f.extract, f.err
}

type fakeTranscriber struct {
	err  error
	text string
}

func (f fakeTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	return f.text, f.err
}

type fakeSummarizer struct {
	err  error
	text string
}

func (f fakeSummarizer) Summarize(ctx context.Context, info *domain.CaseInfo) (string, error) {
	return f.text, f.err
}

type dispatchRig struct {
	cases      *portsmocks.MockCaseStore
	dispatcher *Dispatcher
	machine    *Machine
	sent       []string
	store      *memStore
	tracker    *Tracker
	transport  *portsmocks.MockTransport
}

func newDispatchRig(t *testing.T, snap domain.Snapshot, analyzer ports.CaseAnalyzer) *dispatchRig {
	t.Helper()
	store := newMemStore()
	store.snap = snap
	machine := newTestMachine(t, store)

	cases := portsmocks.NewMockCaseStore(t)
	transport := portsmocks.NewMockTransport(t)
	tracker := NewTracker()
	serializer := NewSerializer(machine, tracker)
	stepper := NewStepper(cases, machine, serializer, tracker, transport)
	serializer.SetStarter(stepper)
	debouncer := NewDebouncer(clock.NewMock(), inlinePoster{}, tracker, serializer)
	status := NewStatusMessenger(transport)

	rig := &dispatchRig{
		cases:     cases,
		machine:   machine,
		store:     store,
		tracker:   tracker,
		transport: transport,
	}

	handlers := NewHandlers(
		analyzer,
		cases,
		debouncer,
		machine,
		status,
		stepper,
		fakeSummarizer{text: "summary"},
		tracker,
		fakeTranscriber{text: "transcript"},
		transport,
	)
	rig.dispatcher = NewDispatcher(handlers, machine, transport)
	return rig
}

// expectMessages records every outbound message text
func (r *dispatchRig) expectMessages() {
	r.transport.EXPECT().SendMessage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, userID int64, text string, opts ports.SendOptions) {
			r.sent = append(r.sent, text)
		}).
		Return(ports.MessageRef{ID: 1}, nil)
}

func TestDispatcher_SelfHealsCollectingWithoutCase(t *testing.T) {
	rig := newDispatchRig(t, domain.Snapshot{State: domain.StateCollecting}, fakeAnalyzer{})
	rig.expectMessages()

	rig.dispatcher.Dispatch(context.Background(), domain.Event{Kind: domain.EventText, Text: "hello", UserID: 1})

	assert.Equal(t, domain.StateIdle, rig.machine.State())
	assert.Contains(t, rig.sent, msgLostCaseContext)
}

func TestDispatcher_PanicIsContained(t *testing.T) {
	rig := newDispatchRig(t, domain.DefaultSnapshot(), fakeAnalyzer{})

	// First send panics mid-handler, the recovery message goes through
	rig.transport.EXPECT().SendMessage(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, userID int64, text string, opts ports.SendOptions) {
			panic("transport exploded")
		}).
		Return(ports.MessageRef{}, nil).Once()
	rig.expectMessages()

	assert.NotPanics(t, func() {
		rig.dispatcher.Dispatch(context.Background(), domain.Event{Kind: domain.EventText, Text: "hi", UserID: 1})
	})
	assert.Contains(t, rig.sent, msgUnexpectedError)
}

func TestDispatcher_TransientFailureKeepsState(t *testing.T) {
	rig := newDispatchRig(t, domain.Snapshot{State: domain.StateWaitingForCase}, fakeAnalyzer{})
	rig.expectMessages()
	rig.transport.EXPECT().DownloadFile(mock.Anything, domain.FileRef("pdf:2024-001")).
		Return(nil, fmt.Errorf("connection reset: %w", domain.ErrTransient))

	rig.dispatcher.Dispatch(context.Background(), domain.Event{
		Kind:   domain.EventDocument,
		File:   "pdf:2024-001",
		UserID: 1,
	})

	assert.Equal(t, domain.StateWaitingForCase, rig.machine.State(), "transient failure must not change state")
	assert.Contains(t, rig.sent, msgTransientFailure)
}

func TestDispatcher_IdleStartMovesToWaiting(t *testing.T) {
	rig := newDispatchRig(t, domain.DefaultSnapshot(), fakeAnalyzer{})
	rig.expectMessages()

	rig.dispatcher.Dispatch(context.Background(), domain.Event{Kind: domain.EventText, Text: "/start", UserID: 1})

	assert.Equal(t, domain.StateWaitingForCase, rig.machine.State())
	assert.Contains(t, rig.sent, msgSendReport)
}

func TestDispatcher_ValidReportOpensCase(t *testing.T) {
	analyzer := fakeAnalyzer{extract: &ports.CaseExtract{CaseID: "2024-001", Summary: "report"}}
	rig := newDispatchRig(t, domain.Snapshot{State: domain.StateWaitingForCase}, analyzer)
	rig.expectMessages()
	rig.transport.EXPECT().DownloadFile(mock.Anything, domain.FileRef("pdf:2024-001")).
		Return([]byte("pdf:2024-001"), nil)
	rig.transport.EXPECT().PinMessage(mock.Anything, int64(1), mock.Anything).Return(nil)
	rig.cases.EXPECT().CreateCase(mock.Anything, mock.Anything).Return(nil)

	rig.dispatcher.Dispatch(context.Background(), domain.Event{
		Kind:   domain.EventDocument,
		File:   "pdf:2024-001",
		UserID: 1,
	})

	assert.Equal(t, domain.StateCollecting, rig.machine.State())
	assert.Equal(t, "2024-001", rig.machine.ActiveCase())
	assert.Contains(t, rig.sent, msgCaseStarted)
}

func TestDispatcher_RejectedReportStaysWaiting(t *testing.T) {
	analyzer := fakeAnalyzer{err: fmt.Errorf("not a report")}
	rig := newDispatchRig(t, domain.Snapshot{State: domain.StateWaitingForCase}, analyzer)
	rig.expectMessages()
	rig.transport.EXPECT().DownloadFile(mock.Anything, mock.Anything).
		Return([]byte("junk"), nil)

	rig.dispatcher.Dispatch(context.Background(), domain.Event{
		Kind:   domain.EventDocument,
		File:   "junk",
		UserID: 1,
	})

	assert.Equal(t, domain.StateWaitingForCase, rig.machine.State())
	assert.Contains(t, rig.sent, msgInvalidReport)
}

func TestDispatcher_CollectingTextBecomesEvidence(t *testing.T) {
	rig := newDispatchRig(t, domain.Snapshot{State: domain.StateCollecting, ActiveCaseID: "2024-001"}, fakeAnalyzer{})
	rig.expectMessages()
	rig.transport.EXPECT().PinMessage(mock.Anything, int64(1), mock.Anything).Return(nil)
	rig.cases.EXPECT().AddEvidence(mock.Anything, "2024-001", domain.NewEvidence{
		Text: "suspect wore gloves",
		Type: domain.EvidenceText,
	}).Return("e1", nil)
	rig.cases.EXPECT().LoadCase(mock.Anything, "2024-001").
		Return(&domain.CaseInfo{ID: "2024-001"}, nil)

	rig.dispatcher.Dispatch(context.Background(), domain.Event{
		Kind:   domain.EventText,
		Text:   "suspect wore gloves",
		UserID: 1,
	})

	assert.Contains(t, rig.sent, msgTextSaved)
}

func TestDispatcher_CollectingPhotoWhileDescribingIsRejected(t *testing.T) {
	rig := newDispatchRig(t, domain.Snapshot{
		State:        domain.StateCollecting,
		ActiveCaseID: "2024-001",
		Dialog:       &domain.AwaitingDescription{BatchID: "b1", EvidenceID: "e1"},
	}, fakeAnalyzer{})
	rig.expectMessages()

	rig.dispatcher.Dispatch(context.Background(), domain.Event{
		Kind:   domain.EventPhoto,
		File:   "photo:x",
		UserID: 1,
	})

	assert.Contains(t, rig.sent, msgDescriptionNotNow)
}

func TestDispatcher_FinishFlowNeedsConfirmation(t *testing.T) {
	rig := newDispatchRig(t, domain.Snapshot{State: domain.StateCollecting, ActiveCaseID: "2024-001"}, fakeAnalyzer{})
	rig.expectMessages()

	rig.dispatcher.Dispatch(context.Background(), domain.Event{Kind: domain.EventText, Text: "/finish", UserID: 1})
	require.Contains(t, rig.sent, msgConfirmFinishAsk)
	assert.Equal(t, domain.StateCollecting, rig.machine.State(), "asking is not finishing")

	rig.cases.EXPECT().LoadCase(mock.Anything, "2024-001").
		Return(&domain.CaseInfo{ID: "2024-001"}, nil)
	rig.dispatcher.Dispatch(context.Background(), domain.Event{Kind: domain.EventCallback, Callback: cbConfirmFinish, UserID: 1})

	assert.Equal(t, domain.StateIdle, rig.machine.State())
	assert.Contains(t, rig.sent, msgCollectionDone)
}

func TestDispatcher_CancelFlowDiscardsCase(t *testing.T) {
	rig := newDispatchRig(t, domain.Snapshot{State: domain.StateCollecting, ActiveCaseID: "2024-001"}, fakeAnalyzer{})
	rig.expectMessages()

	rig.dispatcher.Dispatch(context.Background(), domain.Event{Kind: domain.EventText, Text: "/cancel", UserID: 1})
	require.Contains(t, rig.sent, msgConfirmCancelAsk)

	rig.cases.EXPECT().DeleteCase(mock.Anything, "2024-001").Return(nil)
	rig.dispatcher.Dispatch(context.Background(), domain.Event{Kind: domain.EventCallback, Callback: cbConfirmCancel, UserID: 1})

	assert.Equal(t, domain.StateIdle, rig.machine.State())
	assert.Contains(t, rig.sent, msgCollectionCanceled)
}

func TestDispatcher_VoiceWhileDescribingSavesDescription(t *testing.T) {
	rig := newDispatchRig(t, domain.Snapshot{
		State:        domain.StateCollecting,
		ActiveCaseID: "2024-001",
		Dialog:       &domain.AwaitingDescription{BatchID: "b1", EvidenceID: "e1", Index: 0},
	}, fakeAnalyzer{})
	rig.tracker.Put(&domain.Batch{
		CaseID:      "2024-001",
		EvidenceIDs: []string{"e1"},
		ID:          "b1",
		Status:      domain.BatchProcessing,
		UserID:      1,
	})
	require.NoError(t, rig.machine.SetProcessing(domain.ProcessingState{Active: true, CurrentBatchID: "b1"}))

	rig.expectMessages()
	rig.transport.EXPECT().DownloadFile(mock.Anything, domain.FileRef("voice:desc")).
		Return([]byte("voice:desc"), nil)
	desc := "transcript"
	rig.cases.EXPECT().UpdateEvidence(mock.Anything, "2024-001", "e1", domain.EvidenceUpdate{Description: &desc}).Return(nil)
	rig.cases.EXPECT().PromoteTempEvidence(mock.Anything, "2024-001", []string{"e1"}).Return(nil)

	rig.dispatcher.Dispatch(context.Background(), domain.Event{
		Kind:   domain.EventVoice,
		File:   "voice:desc",
		UserID: 1,
	})

	assert.True(t, rig.tracker.Committed("b1"), "last description commits the batch")
	assert.Nil(t, rig.machine.Snapshot().Dialog)
}
