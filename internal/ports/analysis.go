package ports

import (
	"context"

	"patri/internal/domain"
)

// CaseExtract is what the PDF collaborator pulls out of an occurrence report
type CaseExtract struct {
	CaseID    string
	Checklist []string
	Summary   string
}

// CaseAnalyzer extracts the case identity and summary from an occurrence PDF
type CaseAnalyzer interface {
	ExtractCase(ctx context.Context, pdf []byte) (*CaseExtract, error)
}

// Transcriber turns a voice note into text
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// Summarizer produces the evidence summary shown when a case closes
type Summarizer interface {
	Summarize(ctx context.Context, info *domain.CaseInfo) (string, error)
}
