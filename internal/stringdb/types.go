// Package stringdb provides a client for the STRING network REST API.
package stringdb

// Interaction is a single functional association as returned by the STRING
// network endpoint (api/json/network).
type Interaction struct {
	StringIDA      string  `json:"stringId_A"`
	StringIDB      string  `json:"stringId_B"`
	PreferredNameA string  `json:"preferredName_A"`
	PreferredNameB string  `json:"preferredName_B"`
	Score          float64 `json:"score"`
	EscoreNeighbor float64 `json:"nscore"`
	EscoreExp      float64 `json:"escore"`
	EscoreDatabase float64 `json:"dscore"`
	EscoreText     float64 `json:"tscore"`
}
