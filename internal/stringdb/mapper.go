package stringdb

import (
	"strings"

	"github.com/tcxian/ppinet/internal/interaction"
)

// Normalize maps STRING associations onto the uniform record shape.
// Nodes are keyed by STRING identifier with the preferred name as label;
// associations missing either identifier are skipped. The combined
// confidence score is carried through for presentation.
func Normalize(interactions []Interaction) []interaction.Record {
	records := make([]interaction.Record, 0, len(interactions))
	for _, in := range interactions {
		a := strings.TrimSpace(in.StringIDA)
		b := strings.TrimSpace(in.StringIDB)
		if a == "" || b == "" {
			continue
		}
		records = append(records, interaction.Record{
			SourceID:    a,
			TargetID:    b,
			SourceLabel: labelOr(in.PreferredNameA, a),
			TargetLabel: labelOr(in.PreferredNameB, b),
			Score:       in.Score,
		})
	}
	return records
}

func labelOr(name, fallback string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}
	return fallback
}
