package biogrid

import (
	"strings"

	"github.com/tcxian/ppinet/internal/interaction"
)

// Normalize maps BioGRID interactions onto the uniform record shape.
// Nodes are keyed by upper-cased official symbol, which is also the display
// label; interactions missing either symbol are skipped.
func Normalize(interactions []Interaction) []interaction.Record {
	records := make([]interaction.Record, 0, len(interactions))
	for _, in := range interactions {
		a := strings.ToUpper(strings.TrimSpace(in.OfficialSymbolA))
		b := strings.ToUpper(strings.TrimSpace(in.OfficialSymbolB))
		if a == "" || b == "" {
			continue
		}
		records = append(records, interaction.Record{
			SourceID:    a,
			TargetID:    b,
			SourceLabel: a,
			TargetLabel: b,
		})
	}
	return records
}
