// Package dummy provides stand-in collaborators for running without the
// real PDF analysis and transcription services. They understand the console
// transport's self-describing file payloads.
package dummy

import (
	"context"
	"fmt"
	"strings"

	"patri/internal/domain"
	"patri/internal/ports"
)

// Analyzer accepts payloads of the form "pdf:<case-id>" and fabricates an
// extract for that case.
type Analyzer struct{}

var _ ports.CaseAnalyzer = (*Analyzer)(nil)

// ExtractCase implements ports.CaseAnalyzer
func (Analyzer) ExtractCase(ctx context.Context, pdf []byte) (*ports.CaseExtract, error) {
	payload := string(pdf)
	if !strings.HasPrefix(payload, "pdf:") {
		return nil, fmt.Errorf("document is not an occurrence report")
	}
	caseID := strings.TrimSpace(strings.TrimPrefix(payload, "pdf:"))
	if caseID == "" {
		return nil, fmt.Errorf("occurrence report has no case number")
	}
	return &ports.CaseExtract{
		CaseID:    caseID,
		Checklist: []string{"Photograph the scene", "Collect fingerprints", "Note the address"},
		Summary:   "Occurrence report " + caseID,
	}, nil
}

// Transcriber accepts payloads of the form "voice:<text>" and returns the
// text as the transcript.
type Transcriber struct{}

var _ ports.Transcriber = (*Transcriber)(nil)

// Transcribe implements ports.Transcriber
func (Transcriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	payload := string(audio)
	if !strings.HasPrefix(payload, "voice:") {
		return "", fmt.Errorf("audio payload is not transcribable")
	}
	return strings.TrimPrefix(payload, "voice:"), nil
}

// Summarizer produces a plain count-based closing summary
type Summarizer struct{}

var _ ports.Summarizer = (*Summarizer)(nil)

// Summarize implements ports.Summarizer
func (Summarizer) Summarize(ctx context.Context, info *domain.CaseInfo) (string, error) {
	counts := map[domain.EvidenceType]int{}
	for _, item := range info.Evidence {
		counts[item.Type]++
	}
	return fmt.Sprintf("📋 Case %s closed with %d photo(s), %d note(s), %d voice note(s), %d location(s).",
		info.ID,
		counts[domain.EvidencePhoto],
		counts[domain.EvidenceText],
		counts[domain.EvidenceAudio],
		counts[domain.EvidenceLocation],
	), nil
}
