package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/renalplate/backend/internal/domain"
	"github.com/renalplate/backend/internal/infrastructure/fdc"
)

// FoodResolver translates free-text queries into candidate foods and fetches
// nutrient breakdowns. All provider failure is absorbed here: callers see
// empty results, never errors. The client layer still distinguishes
// not-found from provider failure so the two degrade with different log
// levels.
type FoodResolver struct {
	client domain.FDCClient
	logger *zap.Logger
}

// NewFoodResolver creates a resolver over an FDC client.
func NewFoodResolver(client domain.FDCClient, logger *zap.Logger) *FoodResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FoodResolver{client: client, logger: logger}
}

// Resolve returns up to maxResults candidates for a query, best match
// first. The query must be non-empty after trimming; enforcing that is the
// caller's job, but a blank query still degrades to no candidates here.
func (r *FoodResolver) Resolve(ctx context.Context, query string, maxResults int) []domain.CandidateFood {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	if maxResults < 1 {
		maxResults = 1
	}

	resp, err := r.client.SearchFoods(ctx, query, maxResults)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			r.logger.Info("no candidates", zap.String("query", query))
		} else {
			r.logger.Warn("search degraded to empty result",
				zap.String("query", query), zap.Error(err))
		}
		return nil
	}

	candidates := make([]domain.CandidateFood, 0, len(resp.Foods))
	for _, f := range resp.Foods {
		candidates = append(candidates, domain.CandidateFood{
			FdcID:       f.FdcID,
			Description: f.Description,
		})
	}

	rankCandidates(query, candidates)

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}
	return candidates
}

// FetchNutrients returns the reading for a food id, or an empty reading on
// any failure. Callers must treat an empty reading as a failed lookup.
func (r *FoodResolver) FetchNutrients(ctx context.Context, fdcID int64) domain.NutrientReading {
	detail, err := r.client.GetFood(ctx, fdcID)
	if err != nil {
		if errors.Is(err, domain.ErrFoodNotFound) {
			r.logger.Info("food id unknown", zap.Int64("fdcId", fdcID))
		} else {
			r.logger.Warn("detail fetch degraded to empty reading",
				zap.Int64("fdcId", fdcID), zap.Error(err))
		}
		return domain.EmptyReading()
	}

	return fdc.MapToReading(detail)
}

// rankCandidates orders candidates by token overlap between the query and
// the candidate description, preserving provider order on ties (the
// provider already sorts by its own relevance).
func rankCandidates(query string, candidates []domain.CandidateFood) {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return
	}

	scores := make(map[int64]int, len(candidates))
	for _, c := range candidates {
		scores[c.FdcID] = overlapScore(queryTokens, tokenize(c.Description))
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return scores[candidates[i].FdcID] > scores[candidates[j].FdcID]
	})
}

func tokenize(s string) map[string]bool {
	tokens := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ",.()-")
		if w != "" {
			tokens[w] = true
		}
	}
	return tokens
}

func overlapScore(query, description map[string]bool) int {
	score := 0
	for t := range query {
		if description[t] {
			score++
		}
	}
	return score
}
