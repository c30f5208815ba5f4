package usecase

import "github.com/renalplate/backend/internal/domain"

// Verdict is a qualitative safety bucket for a nutrient amount or total.
type Verdict string

const (
	VerdictSafe    Verdict = "safe"
	VerdictCaution Verdict = "caution"
	VerdictHigh    Verdict = "high"
	VerdictNotSafe Verdict = "not_safe"
)

// Emoji returns the display bucket for a verdict.
func (v Verdict) Emoji() string {
	switch v {
	case VerdictSafe:
		return "✅"
	case VerdictCaution:
		return "⚠️"
	default:
		return "❌"
	}
}

// cautionFraction is the lower boundary of the caution band as a fraction
// of the stage limit.
const cautionFraction = 0.6

// ClassifyGraduated buckets a value against a stage limit:
//
//	v < 0.6·L          → safe
//	0.6·L ≤ v ≤ L      → caution
//	v > L              → high
//
// A value exactly at 0.6·L is caution, exactly at L is still caution.
// Negative values classify safe. Behavior is defined for L > 0; with L = 0
// the formula degenerates to caution at zero and high above it.
func ClassifyGraduated(value, limit float64) Verdict {
	switch {
	case value < cautionFraction*limit:
		return VerdictSafe
	case value <= limit:
		return VerdictCaution
	default:
		return VerdictHigh
	}
}

// BinaryCutoffs pairs the carbohydrate and sugar maxima for the diabetes
// screen.
type BinaryCutoffs struct {
	Carbohydrates float64
	Sugars        float64
}

var (
	// ItemCutoffs screens a single food.
	ItemCutoffs = BinaryCutoffs{Carbohydrates: 30, Sugars: 10}
	// MealCutoffs screens a running meal total.
	MealCutoffs = BinaryCutoffs{Carbohydrates: 60, Sugars: 20}
)

// ClassifyBinary is the two-level diabetes screen: safe only when both the
// carbohydrate and sugar amounts are strictly below their cutoffs. Callers
// pass zero for unreported amounts, which scores optimistically.
func ClassifyBinary(carbohydrates, sugars float64, cutoffs BinaryCutoffs) Verdict {
	if carbohydrates < cutoffs.Carbohydrates && sugars < cutoffs.Sugars {
		return VerdictSafe
	}
	return VerdictNotSafe
}

// ClassifyTotals applies the graduated classifier to every CKD nutrient a
// stage defines a limit for. Totals without a limit are skipped.
func ClassifyTotals(totals map[domain.Nutrient]float64, stage domain.Stage, limits domain.LimitTable) map[domain.Nutrient]Verdict {
	verdicts := make(map[domain.Nutrient]Verdict)
	for _, n := range domain.CKDNutrients {
		limit, ok := limits.Limit(stage, n)
		if !ok {
			continue
		}
		verdicts[n] = ClassifyGraduated(totals[n], limit)
	}
	return verdicts
}
