package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/renalplate/backend/internal/domain"
)

// Tracker orchestrates the lookup pipeline: resolve a query, fetch the
// chosen candidate's nutrients, append to the session's meal log, and
// derive totals and safety verdicts on demand.
type Tracker struct {
	resolver *FoodResolver
	limits   domain.LimitTable
	logger   *zap.Logger
	now      func() time.Time
}

// NewTracker creates a tracker using the given resolver and limit table.
func NewTracker(resolver *FoodResolver, limits domain.LimitTable, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		resolver: resolver,
		limits:   limits,
		logger:   logger,
		now:      time.Now,
	}
}

// AddFoods resolves each query sequentially (one search plus one detail
// round trip per item), picks the best candidate, and appends the batch to
// the log under a single timestamp. Queries that resolve to nothing are
// recorded as failed entries so the caller can surface a warning. The
// appended entries are returned in input order.
func (t *Tracker) AddFoods(ctx context.Context, log *domain.MealLog, queries []string) []domain.FoodEntry {
	at := t.now()
	entries := make([]domain.FoodEntry, 0, len(queries))

	for _, query := range queries {
		query = strings.TrimSpace(query)
		if query == "" {
			continue
		}
		entries = append(entries, t.resolveEntry(ctx, query))
	}

	log.AppendBatch(entries, at)

	// AppendBatch stamps the stored copies; mirror that on the returned slice.
	for i := range entries {
		entries[i].AddedAt = at
	}
	return entries
}

// AddFoodByID fetches one specific food (a candidate the caller already
// chose) and appends it to the log.
func (t *Tracker) AddFoodByID(ctx context.Context, log *domain.MealLog, candidate domain.CandidateFood) domain.FoodEntry {
	at := t.now()

	reading := t.resolver.FetchNutrients(ctx, candidate.FdcID)
	var entry domain.FoodEntry
	if reading.IsEmpty() {
		entry = domain.FailedEntry(candidate.Description, at)
	} else {
		entry = domain.FoodEntry{Name: candidate.Description, Reading: reading, AddedAt: at}
	}

	log.Append(entry)
	return entry
}

func (t *Tracker) resolveEntry(ctx context.Context, query string) domain.FoodEntry {
	candidates := t.resolver.Resolve(ctx, query, 1)
	if len(candidates) == 0 {
		t.logger.Info("query recorded as failed lookup", zap.String("query", query))
		return domain.FailedEntry(query, t.now())
	}

	best := candidates[0]
	reading := t.resolver.FetchNutrients(ctx, best.FdcID)
	if reading.IsEmpty() {
		return domain.FailedEntry(query, t.now())
	}

	return domain.FoodEntry{Name: best.Description, Reading: reading, AddedAt: t.now()}
}

// NutrientVerdict pairs a total with its CKD verdict and the limit it was
// judged against.
type NutrientVerdict struct {
	Total   float64 `json:"total"`
	Limit   float64 `json:"limit"`
	Verdict Verdict `json:"verdict"`
	Bucket  string  `json:"bucket"`
}

// Summary is the on-demand rollup of a meal log: per-nutrient totals, CKD
// verdicts for the selected stage, and the binary diabetes screen of the
// meal total.
type Summary struct {
	Stage       domain.Stage                        `json:"stage"`
	Totals      map[domain.Nutrient]float64         `json:"totals"`
	CKD         map[domain.Nutrient]NutrientVerdict `json:"ckd"`
	MealVerdict Verdict                             `json:"mealVerdict"`
	Entries     int                                 `json:"entries"`
	Failed      int                                 `json:"failed"`
}

// Summarize recomputes totals from the full log and classifies them for
// the given stage. Failed entries are excluded from every total.
func (t *Tracker) Summarize(log *domain.MealLog, stage domain.Stage) (*Summary, error) {
	if _, ok := t.limits[stage]; !ok {
		return nil, domain.ErrUnknownStage
	}

	entries := log.Entries()
	totals := Summarize(log.Readings(), domain.AllNutrients)

	ckd := make(map[domain.Nutrient]NutrientVerdict)
	for n, verdict := range ClassifyTotals(totals, stage, t.limits) {
		limit, _ := t.limits.Limit(stage, n)
		ckd[n] = NutrientVerdict{
			Total:   totals[n],
			Limit:   limit,
			Verdict: verdict,
			Bucket:  verdict.Emoji(),
		}
	}

	failed := 0
	for _, e := range entries {
		if e.Failed {
			failed++
		}
	}

	return &Summary{
		Stage:  stage,
		Totals: totals,
		CKD:    ckd,
		MealVerdict: ClassifyBinary(
			totals[domain.NutrientCarbohydrates],
			totals[domain.NutrientSugars],
			MealCutoffs,
		),
		Entries: len(entries),
		Failed:  failed,
	}, nil
}

// ScreenItem runs the single-item diabetes screen on one reading.
// Unreported carbohydrates or sugars count as zero.
func ScreenItem(reading domain.NutrientReading) Verdict {
	carbs, _ := reading.Amount(domain.NutrientCarbohydrates)
	sugars, _ := reading.Amount(domain.NutrientSugars)
	return ClassifyBinary(carbs, sugars, ItemCutoffs)
}
