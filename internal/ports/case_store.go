package ports

import (
	"context"

	"patri/internal/domain"
)

// CaseStore persists cases and their evidence. Evidence enters as temporary
// and is promoted to permanent storage with a stable display order when a
// batch commits.
type CaseStore interface {
	AddEvidence(ctx context.Context, caseID string, item domain.NewEvidence) (string, error)
	CreateCase(ctx context.Context, info domain.CaseInfo) error
	DeleteCase(ctx context.Context, caseID string) error
	LoadCase(ctx context.Context, caseID string) (*domain.CaseInfo, error)
	PromoteTempEvidence(ctx context.Context, caseID string, evidenceIDs []string) error
	RemoveEvidence(ctx context.Context, caseID, evidenceID string) error
	SaveCase(ctx context.Context, info *domain.CaseInfo) error
	UpdateEvidence(ctx context.Context, caseID, evidenceID string, update domain.EvidenceUpdate) error
}
