// Package interaction defines the uniform interaction record produced by
// provider adapters.
package interaction

// Record is a single protein-protein interaction in provider-neutral form.
// Records are immutable once emitted by an adapter; identifiers are the
// graph node keys, labels are for display only.
type Record struct {
	SourceID    string  `json:"source_id"`
	TargetID    string  `json:"target_id"`
	SourceLabel string  `json:"source_label"`
	TargetLabel string  `json:"target_label"`
	Score       float64 `json:"score,omitempty"` // STRING confidence score; 0 when the provider has none
}

// SelfInteraction reports whether the record links a protein to itself.
// Providers emit these; the graph builder filters them out.
func (r Record) SelfInteraction() bool {
	return r.SourceID == r.TargetID
}
