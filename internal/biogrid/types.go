// Package biogrid provides a client for the BioGRID interactions REST API.
package biogrid

// Interaction is a single interaction as returned by the BioGRID webservice
// (format=json). The response is an object keyed by BioGRID interaction ID.
type Interaction struct {
	BioGRIDInteractionID int    `json:"BIOGRID_INTERACTION_ID"`
	BioGRIDIDA           int    `json:"BIOGRID_ID_A"`
	BioGRIDIDB           int    `json:"BIOGRID_ID_B"`
	OfficialSymbolA      string `json:"OFFICIAL_SYMBOL_A"`
	OfficialSymbolB      string `json:"OFFICIAL_SYMBOL_B"`
	ExperimentalSystem   string `json:"EXPERIMENTAL_SYSTEM"`
	Throughput           string `json:"THROUGHPUT"`
	OrganismA            int    `json:"ORGANISM_A"`
	OrganismB            int    `json:"ORGANISM_B"`
	PubmedID             int    `json:"PUBMED_ID"`
}
