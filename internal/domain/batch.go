package domain

// NormalizedBatch is the canonical output of one normalization run: everything
// the presentation layer needs to render a search response, rebuilt from
// scratch on every run (no incremental updates, no accumulation across calls).
type NormalizedBatch struct {
	// SearchID is the upstream correlation id of the search this batch came
	// from, used by the caller to discard stale responses
	SearchID string `json:"search_id,omitempty"`

	// DirectItineraries are the itineraries the provider returned in its
	// direct-flights collection
	DirectItineraries []Itinerary `json:"direct_itineraries"`

	// OtherItineraries are combo deals and hidden-city results
	OtherItineraries []Itinerary `json:"other_itineraries"`

	// Disclaimers are the legal disclaimers the provider attached to the batch.
	// Hidden-city and throwaway fares carry legal risk; these must reach the UI.
	Disclaimers []string `json:"disclaimers"`

	// Metadata contains aggregate counts for this run
	Metadata BatchMetadata `json:"metadata"`
}

// BatchMetadata contains aggregate counts about a normalization run.
type BatchMetadata struct {
	// TotalResults is the number of itineraries in the batch after filtering
	TotalResults int `json:"total_results"`

	// DirectCount is the number of itineraries in the direct collection
	DirectCount int `json:"direct_count"`

	// OtherCount is the number of itineraries in the other collection
	OtherCount int `json:"other_count"`

	// FlaggedCount is the number of hidden-city or throwaway itineraries
	FlaggedCount int `json:"flagged_count"`

	// DroppedByFilter is the number of itineraries the relevance filter removed
	DroppedByFilter int `json:"dropped_by_filter"`

	// WarningCount is the total number of data-quality warnings recorded
	WarningCount int `json:"warning_count"`
}

// NewNormalizedBatch builds a batch from the two itinerary collections and
// recomputes the aggregate counts. Nil slices are normalized to empty slices
// so the JSON output always has arrays.
func NewNormalizedBatch(searchID string, direct, other []Itinerary, disclaimers []string) *NormalizedBatch {
	if direct == nil {
		direct = []Itinerary{}
	}
	if other == nil {
		other = []Itinerary{}
	}
	if disclaimers == nil {
		disclaimers = []string{}
	}

	batch := &NormalizedBatch{
		SearchID:          searchID,
		DirectItineraries: direct,
		OtherItineraries:  other,
		Disclaimers:       disclaimers,
	}
	batch.RecountMetadata()
	return batch
}

// RecountMetadata recomputes the aggregate counts from the current collections.
// DroppedByFilter is preserved; everything else is derived.
func (b *NormalizedBatch) RecountMetadata() {
	flagged := 0
	warnings := 0
	for _, coll := range [][]Itinerary{b.DirectItineraries, b.OtherItineraries} {
		for i := range coll {
			if coll[i].IsFareFlagged() {
				flagged++
			}
			warnings += len(coll[i].Warnings)
		}
	}

	b.Metadata.DirectCount = len(b.DirectItineraries)
	b.Metadata.OtherCount = len(b.OtherItineraries)
	b.Metadata.TotalResults = len(b.DirectItineraries) + len(b.OtherItineraries)
	b.Metadata.FlaggedCount = flagged
	b.Metadata.WarningCount = warnings
}

// AllItineraries returns both collections as one slice, direct first.
// The returned slice is freshly allocated; mutating it does not affect the batch.
func (b *NormalizedBatch) AllItineraries() []Itinerary {
	all := make([]Itinerary, 0, len(b.DirectItineraries)+len(b.OtherItineraries))
	all = append(all, b.DirectItineraries...)
	all = append(all, b.OtherItineraries...)
	return all
}
