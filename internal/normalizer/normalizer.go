// Package normalizer implements the itinerary normalization pipeline: it turns
// heterogeneous, versioned, partially-malformed raw search responses into the
// canonical itinerary model. The pipeline is synchronous, stateless and
// side-effect-free; it is invoked once per received search response and its
// output is discarded and rebuilt on every new search.
package normalizer

import (
	"encoding/json"
	"fmt"

	"github.com/flight-search/itinerary-normalization-service/internal/domain"
	"github.com/flight-search/itinerary-normalization-service/internal/schema"
)

//go:generate mockgen -source=normalizer.go -destination=mock_normalizer.go -package=normalizer

// Normalizer defines the interface for normalizing raw search responses.
type Normalizer interface {
	// Normalize converts a parsed raw search response into the canonical batch,
	// applying relevance filtering when opts carries a route context.
	// It returns domain.ErrInvalidPayload only for malformed input shape;
	// malformed data degrades gracefully into warnings and unavailable states.
	Normalize(payload map[string]any, opts Options) (*domain.NormalizedBatch, error)
}

// Config contains configuration for the pipeline.
type Config struct {
	// DefaultCurrency is assumed when a price carries no currency code
	DefaultCurrency string

	// LogoURLTemplate derives an airline logo URL from an IATA code
	// (one %s verb)
	LogoURLTemplate string
}

// DefaultLogoURLTemplate derives airline logos from the daisycon image service.
const DefaultLogoURLTemplate = "https://daisycon.io/images/airline/?width=300&height=150&iata=%s"

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		DefaultCurrency: DefaultCurrency,
		LogoURLTemplate: DefaultLogoURLTemplate,
	}
}

// Pipeline implements Normalizer over a set of alias-table resolvers.
type Pipeline struct {
	cfg    Config
	resp   *schema.Resolver
	itin   *schema.Resolver
	seg    *schema.Resolver
	hidden *schema.Resolver
}

// NewPipeline creates a Pipeline with the given alias tables and configuration.
// If aliases is nil the built-in tables are used; if config is nil the
// defaults are used.
func NewPipeline(aliases *schema.AliasConfig, config *Config) *Pipeline {
	if aliases == nil {
		aliases = schema.DefaultAliasConfig()
	}

	cfg := DefaultConfig()
	if config != nil {
		if config.DefaultCurrency != "" {
			cfg.DefaultCurrency = config.DefaultCurrency
		}
		if config.LogoURLTemplate != "" {
			cfg.LogoURLTemplate = config.LogoURLTemplate
		}
	}

	return &Pipeline{
		cfg:    cfg,
		resp:   schema.NewResolver(aliases.Response),
		itin:   schema.NewResolver(aliases.Itinerary),
		seg:    schema.NewResolver(aliases.Segment),
		hidden: schema.NewResolver(aliases.HiddenDestination),
	}
}

// Normalize implements Normalizer.
//
// Idempotence: repeated calls on the same payload yield structurally identical
// batches. Ids fall back to deterministic values and no state accumulates
// across calls, which is what makes caller-side retry/refresh safe.
func (p *Pipeline) Normalize(payload map[string]any, opts Options) (*domain.NormalizedBatch, error) {
	if payload == nil {
		return nil, fmt.Errorf("%w: payload is not an object", domain.ErrInvalidPayload)
	}

	if opts.Route != nil {
		if err := opts.Route.Validate(); err != nil {
			return nil, err
		}
	}

	directRaw, err := p.itineraryCollection(payload, "directFlights")
	if err != nil {
		return nil, err
	}
	otherRaw, err := p.itineraryCollection(payload, "comboDeals")
	if err != nil {
		return nil, err
	}

	direct := p.normalizeCollection(directRaw, "direct")
	other := p.normalizeCollection(otherRaw, "combo")

	dropped := 0
	if opts.Route != nil {
		var d1, d2 int
		direct, d1 = FilterRelevant(direct, *opts.Route)
		other, d2 = FilterRelevant(other, *opts.Route)
		dropped = d1 + d2
	}

	direct = p.presentCollection(direct, opts)
	other = p.presentCollection(other, opts)

	batch := domain.NewNormalizedBatch(
		p.resp.String(payload, "searchId"),
		direct,
		other,
		p.disclaimers(payload),
	)
	batch.Metadata.DroppedByFilter = dropped
	return batch, nil
}

// NormalizeJSON unmarshals a raw JSON search response and normalizes it.
// A payload that is not a JSON object fails loudly with ErrInvalidPayload:
// that is a caller programming error, not a data-quality issue.
func (p *Pipeline) NormalizeJSON(data []byte, opts Options) (*domain.NormalizedBatch, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}
	return p.Normalize(payload, opts)
}

// itineraryCollection resolves one of the itinerary arrays. An absent
// collection is an empty list; a present collection that is not an array is a
// malformed input shape.
func (p *Pipeline) itineraryCollection(payload map[string]any, field string) ([]map[string]any, error) {
	v, ok := p.resp.Resolve(payload, field)
	if !ok {
		return nil, nil
	}

	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not an array", domain.ErrInvalidPayload, field)
	}

	items := make([]map[string]any, 0, len(arr))
	for _, el := range arr {
		if obj, isObj := el.(map[string]any); isObj {
			items = append(items, obj)
		}
	}
	return items, nil
}

// normalizeCollection runs the per-itinerary pipeline over one raw collection.
func (p *Pipeline) normalizeCollection(rawItins []map[string]any, collection string) []domain.Itinerary {
	result := make([]domain.Itinerary, 0, len(rawItins))

	for i, rawItin := range rawItins {
		result = append(result, p.normalizeItinerary(rawItin, collection, i))
	}
	return result
}

// normalizeItinerary runs segment normalization, transfer analysis and
// classification for one raw itinerary.
func (p *Pipeline) normalizeItinerary(rawItin map[string]any, collection string, index int) domain.Itinerary {
	rawSegments := p.itin.ObjectArray(rawItin, "segments")

	segments := make([]domain.Segment, 0, len(rawSegments))
	var warnings []domain.Warning
	for i, rawSeg := range rawSegments {
		seg, segWarnings := p.normalizeSegment(rawSeg, i)
		segments = append(segments, seg)
		warnings = append(warnings, segWarnings...)
	}

	transfers := buildTransfers(segments)

	return p.classify(rawItin, rawSegments, collection, index, segments, transfers, warnings)
}

// presentCollection applies presentation filters, ranking and sorting to one
// normalized collection.
func (p *Pipeline) presentCollection(itineraries []domain.Itinerary, opts Options) []domain.Itinerary {
	filtered := ApplyFilters(itineraries, opts.Filters)
	ranked := CalculateRankingScores(filtered)
	return SortItineraries(ranked, opts.SortBy)
}

// disclaimers extracts the provider's legal disclaimers from the payload.
func (p *Pipeline) disclaimers(payload map[string]any) []string {
	arr := p.resp.Array(payload, "disclaimers")
	if arr == nil {
		return nil
	}

	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Ensure Pipeline implements Normalizer at compile time.
var _ Normalizer = (*Pipeline)(nil)
