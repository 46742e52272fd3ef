package normalizer

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/flight-search/itinerary-normalization-service/internal/domain"
)

// DefaultCurrency is the currency assumed when the payload carries none.
const DefaultCurrency = "CNY"

// NormalizePrice validates and coerces a raw upstream price into a canonical
// Price. Upstream prices arrive as numbers, numeric strings, {amount, currency}
// objects, nulls, or zero; anything that does not coerce to a finite positive
// number yields Available == false with a zero amount, and the presentation
// layer renders an "unavailable" state instead of a zero price.
//
// The currency defaults to defaultCurrency when absent, independent of whether
// the amount is valid.
func NormalizePrice(raw any, rawCurrency, defaultCurrency string) domain.Price {
	if defaultCurrency == "" {
		defaultCurrency = DefaultCurrency
	}
	currency := strings.TrimSpace(rawCurrency)
	if currency == "" {
		currency = defaultCurrency
	}

	// {amount, currency} object: recurse on amount, preferring the object's
	// own currency over the caller-supplied one
	if obj, ok := raw.(map[string]any); ok {
		objCurrency := rawCurrency
		if c, err := cast.ToStringE(obj["currency"]); err == nil && c != "" {
			objCurrency = c
		}
		return NormalizePrice(obj["amount"], objCurrency, defaultCurrency)
	}

	// Booleans cast to 0/1 but are never a meaningful price
	if _, isBool := raw.(bool); isBool {
		return unavailablePrice(currency)
	}

	amount, err := cast.ToFloat64E(raw)
	if err != nil {
		return unavailablePrice(currency)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return unavailablePrice(currency)
	}

	return domain.Price{
		Amount:    amount,
		Currency:  currency,
		Available: true,
	}
}

// unavailablePrice is the canonical "price unavailable" sentinel.
func unavailablePrice(currency string) domain.Price {
	return domain.Price{
		Amount:    0,
		Currency:  currency,
		Available: false,
	}
}
