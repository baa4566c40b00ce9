package domain

// BatchOrigin describes how a photo batch was grouped
type BatchOrigin string

const (
	BatchOriginExplicitGroup BatchOrigin = "explicit_group"
	BatchOriginTimeWindow    BatchOrigin = "time_window"
)

// BatchStatus is the lifecycle of a photo batch
type BatchStatus string

const (
	BatchOpen       BatchStatus = "open"       // timer pending, still accepting photos
	BatchReady      BatchStatus = "ready"      // quiet window elapsed, waiting for the serializer
	BatchProcessing BatchStatus = "processing" // holds the single-flight slot
	BatchDone       BatchStatus = "done"       // committed or emptied
)

// Batch is a group of photo evidence ids that arrived together, either as an
// explicit media group or within the same-user time window.
type Batch struct {
	CaseID      string
	EvidenceIDs []string
	ID          string
	Origin      BatchOrigin
	Status      BatchStatus
	UserID      int64
}

// Empty reports whether every evidence id has been removed from the batch
func (b *Batch) Empty() bool {
	return len(b.EvidenceIDs) == 0
}

// RemoveEvidence deletes id from the batch's ordered list, preserving the
// order of the remaining items. Returns false if the id was not present.
func (b *Batch) RemoveEvidence(id string) bool {
	for i, eid := range b.EvidenceIDs {
		if eid == id {
			b.EvidenceIDs = append(b.EvidenceIDs[:i], b.EvidenceIDs[i+1:]...)
			return true
		}
	}
	return false
}
