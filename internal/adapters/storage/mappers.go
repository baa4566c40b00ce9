package storage

import (
	"patri/internal/domain"
)

// evidenceModelToDomain converts an EvidenceModel (GORM) to domain.EvidenceItem
func evidenceModelToDomain(m EvidenceModel) domain.EvidenceItem {
	return domain.EvidenceItem{
		CreatedAt:     m.CreatedAt,
		Description:   m.Description,
		DisplayOrder:  m.DisplayOrder,
		FilePath:      m.FilePath,
		ID:            m.ID,
		IsFingerprint: m.IsFingerprint,
		Latitude:      m.Latitude,
		Longitude:     m.Longitude,
		RemoteFileID:  m.RemoteFileID,
		Temporary:     m.Temporary,
		Text:          m.Text,
		Type:          domain.EvidenceType(m.Type),
	}
}

// caseModelToDomain converts a CaseModel and its evidence rows to domain.CaseInfo
func caseModelToDomain(m CaseModel, evidence []EvidenceModel) domain.CaseInfo {
	info := domain.CaseInfo{
		CreatedAt: m.CreatedAt,
		Evidence:  make([]domain.EvidenceItem, 0, len(evidence)),
		ID:        m.ID,
		Summary:   m.Summary,
		UpdatedAt: m.UpdatedAt,
	}
	for _, e := range evidence {
		info.Evidence = append(info.Evidence, evidenceModelToDomain(e))
	}
	return info
}

// domainToCaseModel converts a domain.CaseInfo to CaseModel (GORM)
func domainToCaseModel(c domain.CaseInfo) CaseModel {
	return CaseModel{
		CreatedAt: c.CreatedAt,
		ID:        c.ID,
		Summary:   c.Summary,
		UpdatedAt: c.UpdatedAt,
	}
}
