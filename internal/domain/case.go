package domain

import "time"

// EvidenceType tags the kind of evidence collected for a case
type EvidenceType string

const (
	EvidencePhoto    EvidenceType = "photo"
	EvidenceText     EvidenceType = "text"
	EvidenceAudio    EvidenceType = "audio"
	EvidenceLocation EvidenceType = "location"
)

// EvidenceItem is one collected piece of evidence as stored by the case
// store. The concurrency core only ever references items by ID; payloads
// stay behind the store boundary.
type EvidenceItem struct {
	CreatedAt     time.Time
	Description   string
	DisplayOrder  int
	FilePath      string
	ID            string
	IsFingerprint bool
	Latitude      float64
	Longitude     float64
	RemoteFileID  string
	Temporary     bool
	Text          string
	Type          EvidenceType
}

// CaseInfo is the case record at the store boundary
type CaseInfo struct {
	CreatedAt time.Time
	Evidence  []EvidenceItem
	ID        string
	Summary   string
	UpdatedAt time.Time
}

// FindEvidence returns the evidence item with the given id, or nil
func (c *CaseInfo) FindEvidence(id string) *EvidenceItem {
	for i := range c.Evidence {
		if c.Evidence[i].ID == id {
			return &c.Evidence[i]
		}
	}
	return nil
}

// NewEvidence is the input for adding evidence to a case. Payload carries
// the raw bytes for file-backed types (photo, audio).
type NewEvidence struct {
	Latitude     float64
	Longitude    float64
	Payload      []byte
	RemoteFileID string
	Text         string
	Type         EvidenceType
}

// EvidenceUpdate is a typed field mask for evidence metadata updates.
// Nil fields are left untouched.
type EvidenceUpdate struct {
	Description   *string
	IsFingerprint *bool
	RemoteFileID  *string
}
