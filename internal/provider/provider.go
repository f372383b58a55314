// Package provider defines the shared query shape and error taxonomy for
// interaction data providers (BioGRID, STRING).
package provider

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tcxian/ppinet/internal/interaction"
)

// Query identifies the protein and organism to fetch interactions for.
type Query struct {
	// Protein is the gene symbol or protein name to search for.
	Protein string
	// TaxonID is the provider's organism/species taxonomy identifier.
	TaxonID int
	// Limit bounds the number of interactions requested. Zero means the
	// provider default; BioGRID ignores it.
	Limit int
}

// Fetcher is implemented by each provider adapter. Implementations make a
// single attempt and surface failures to the caller without retrying.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) ([]interaction.Record, error)
	Name() string
}

// Taxonomy identifiers for the organisms the original providers document.
const (
	TaxonHuman        = 9606
	TaxonMouse        = 10090
	TaxonYeastBioGRID = 559292 // BioGRID uses the S288C strain taxon
	TaxonYeastSTRING  = 4932   // STRING uses the species-level taxon
)

// Organisms maps friendly names to BioGRID organism taxonomy IDs.
var Organisms = map[string]int{
	"human": TaxonHuman,
	"mouse": TaxonMouse,
	"yeast": TaxonYeastBioGRID,
}

// Species maps friendly names to STRING species taxonomy IDs.
var Species = map[string]int{
	"human": TaxonHuman,
	"mouse": TaxonMouse,
	"yeast": TaxonYeastSTRING,
}

// ResolveTaxon turns an organism argument into a taxonomy ID. It accepts a
// numeric taxon directly or one of the friendly names in the given table.
func ResolveTaxon(s string, names map[string]int) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("organism not specified")
	}
	if taxon, err := strconv.Atoi(s); err == nil {
		if taxon <= 0 {
			return 0, fmt.Errorf("invalid taxonomy ID %d", taxon)
		}
		return taxon, nil
	}
	if taxon, ok := names[s]; ok {
		return taxon, nil
	}
	return 0, fmt.Errorf("unknown organism %q (use a taxonomy ID or one of: human, mouse, yeast)", s)
}
