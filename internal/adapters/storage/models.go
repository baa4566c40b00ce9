package storage

import "time"

// CaseModel is the GORM model for cases
type CaseModel struct {
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	Summary   string `gorm:"default:''"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (CaseModel) TableName() string { return "cases" }

// EvidenceModel is the GORM model for evidence rows. Payloads live on disk
// under the case data directory; FilePath points at them.
type EvidenceModel struct {
	CaseID        string `gorm:"not null;index:idx_evidence_case"`
	CreatedAt     time.Time
	Description   string `gorm:"default:''"`
	DisplayOrder  int    `gorm:"not null;default:0;index:idx_evidence_order"`
	FilePath      string `gorm:"default:''"`
	ID            string `gorm:"primaryKey"`
	IsFingerprint bool   `gorm:"not null;default:false"`
	Latitude      float64
	Longitude     float64
	RemoteFileID  string `gorm:"default:''"`
	Temporary     bool   `gorm:"not null;default:false;index:idx_evidence_temp"`
	Text          string `gorm:"default:''"`
	Type          string `gorm:"not null;check:type IN ('photo','text','audio','location')"`
	UpdatedAt     time.Time
}

// TableName specifies the table name for GORM
func (EvidenceModel) TableName() string { return "evidence" }
