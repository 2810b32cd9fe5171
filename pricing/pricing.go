// Package pricing computes per-run cost estimates from audio duration
// and published per-minute rates. Rates are fixed-point decimals so the
// arithmetic is exact.
package pricing

import (
	"github.com/shopspring/decimal"
)

// Per-minute rates in USD. Local models are free to run.
var (
	RateOpenAI   = decimal.RequireFromString("0.006")
	RateVoxtral  = decimal.RequireFromString("0.001")
	RateParakeet = decimal.Zero
	RatePyannote = decimal.Zero
)

var ratesByProvider = map[string]decimal.Decimal{
	"openai":   RateOpenAI,
	"voxtral":  RateVoxtral,
	"parakeet": RateParakeet,
	"pyannote": RatePyannote,
}

var sixty = decimal.NewFromInt(60)

// RateFor returns the per-minute rate for a provider. Unknown providers
// are priced at zero.
func RateFor(provider string) decimal.Decimal {
	if rate, ok := ratesByProvider[provider]; ok {
		return rate
	}
	return decimal.Zero
}

// Cost computes the price of processing durationSeconds of audio at the
// given per-minute rate: minutes times rate, exactly.
func Cost(durationSeconds float64, ratePerMinute decimal.Decimal) decimal.Decimal {
	minutes := decimal.NewFromFloat(durationSeconds).Div(sixty)
	return minutes.Mul(ratePerMinute)
}

// CostFor computes the price of processing durationSeconds of audio with
// the named provider.
func CostFor(provider string, durationSeconds float64) decimal.Decimal {
	return Cost(durationSeconds, RateFor(provider))
}
