package biogrid

import (
	"reflect"
	"testing"

	"github.com/tcxian/ppinet/internal/interaction"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		interactions []Interaction
		want         []interaction.Record
	}{
		{
			name: "symbols upper-cased and trimmed",
			interactions: []Interaction{
				{OfficialSymbolA: " tp53", OfficialSymbolB: "Mdm2 "},
			},
			want: []interaction.Record{
				{SourceID: "TP53", TargetID: "MDM2", SourceLabel: "TP53", TargetLabel: "MDM2"},
			},
		},
		{
			name: "missing symbols skipped",
			interactions: []Interaction{
				{OfficialSymbolA: "", OfficialSymbolB: "MDM2"},
				{OfficialSymbolA: "TP53", OfficialSymbolB: "  "},
				{OfficialSymbolA: "TP53", OfficialSymbolB: "EP300"},
			},
			want: []interaction.Record{
				{SourceID: "TP53", TargetID: "EP300", SourceLabel: "TP53", TargetLabel: "EP300"},
			},
		},
		{
			name:         "empty input",
			interactions: nil,
			want:         []interaction.Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.interactions)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}
