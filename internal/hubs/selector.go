// Package hubs ranks proteins by centrality and partitions them into hub
// and peripheral sets.
package hubs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tcxian/ppinet/internal/centrality"
)

// ErrInvalidRankingKey is returned when the ranking kind is not one of the
// five recognized centrality measures.
var ErrInvalidRankingKey = errors.New("invalid ranking key")

// DefaultTop is the number of hub proteins selected.
const DefaultTop = 5

// Ranked is a protein with its ranking score.
type Ranked struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// HubSet partitions a network's proteins into ordered hubs and the
// peripheral remainder. The union of both equals the table's node set.
type HubSet struct {
	RankedBy   centrality.Kind `json:"ranked_by"`
	Hubs       []Ranked        `json:"hubs"`
	Peripheral []string        `json:"peripheral"`
}

// IsHub reports whether a protein is in the hub set.
func (h *HubSet) IsHub(id string) bool {
	for _, r := range h.Hubs {
		if r.ID == id {
			return true
		}
	}
	return false
}

// Select ranks all proteins by the chosen centrality descending, breaking
// ties by ascending identifier, and returns the top proteins as hubs. If top
// is not positive, DefaultTop is used; networks smaller than top yield all
// nodes as hubs. Selection is deterministic for a given table.
func Select(table centrality.Table, rankBy centrality.Kind, top int) (*HubSet, error) {
	if top <= 0 {
		top = DefaultTop
	}

	ranked := make([]Ranked, 0, len(table))
	for id, scores := range table {
		v, ok := scores.Value(rankBy)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRankingKey, rankBy)
		}
		ranked = append(ranked, Ranked{ID: id, Score: v})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	if top > len(ranked) {
		top = len(ranked)
	}

	peripheral := make([]string, 0, len(ranked)-top)
	for _, r := range ranked[top:] {
		peripheral = append(peripheral, r.ID)
	}
	sort.Strings(peripheral)

	return &HubSet{
		RankedBy:   rankBy,
		Hubs:       ranked[:top:top],
		Peripheral: peripheral,
	}, nil
}
