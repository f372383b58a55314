package stringdb

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
			name: "identifiers and preferred names",
			interactions: []Interaction{
				{
					StringIDA:      "9606.ENSP00000269305",
					StringIDB:      "9606.ENSP00000258149",
					PreferredNameA: "TP53",
					PreferredNameB: "MDM2",
					Score:          0.999,
				},
			},
			want: []interaction.Record{
				{
					SourceID:    "9606.ENSP00000269305",
					TargetID:    "9606.ENSP00000258149",
					SourceLabel: "TP53",
					TargetLabel: "MDM2",
					Score:       0.999,
				},
			},
		},
		{
			name: "missing preferred name falls back to identifier",
			interactions: []Interaction{
				{StringIDA: "id.a", StringIDB: "id.b", PreferredNameB: "  "},
			},
			want: []interaction.Record{
				{SourceID: "id.a", TargetID: "id.b", SourceLabel: "id.a", TargetLabel: "id.b"},
			},
		},
		{
			name: "missing identifiers skipped",
			interactions: []Interaction{
				{StringIDA: "", StringIDB: "id.b"},
				{StringIDA: "id.a", StringIDB: ""},
			},
			want: []interaction.Record{},
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
