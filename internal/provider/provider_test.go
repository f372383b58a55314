package provider

import "testing"

func TestResolveTaxon(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		names   map[string]int
		want    int
		wantErr bool
	}{
		{"named human", "human", Organisms, TaxonHuman, false},
		{"named mouse", "mouse", Organisms, TaxonMouse, false},
		{"biogrid yeast strain taxon", "yeast", Organisms, TaxonYeastBioGRID, false},
		{"string yeast species taxon", "yeast", Species, TaxonYeastSTRING, false},
		{"case and whitespace", "  Human ", Organisms, TaxonHuman, false},
		{"numeric", "10090", Organisms, 10090, false},
		{"numeric unknown to table", "7227", Organisms, 7227, false},
		{"empty", "", Organisms, 0, true},
		{"zero taxon", "0", Organisms, 0, true},
		{"negative taxon", "-9606", Organisms, 0, true},
		{"unknown name", "fly", Organisms, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTaxon(tt.in, tt.names)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResolveTaxon(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ResolveTaxon(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
