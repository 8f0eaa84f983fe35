package kakao

import (
	"context"
	"fmt"
	"log/slog"

	"biteengine/internal/models"
	"biteengine/internal/repository"
)

// Import outcomes. Empty searches and fully-duplicate batches are successful
// results with zero inserts, distinct from a hard ingestion failure.
type ImportOutcome string

const (
	OutcomeImported      ImportOutcome = "imported"
	OutcomeNoResults     ImportOutcome = "no_results"
	OutcomeAllDuplicates ImportOutcome = "all_duplicates"
)

// ImportResult reports the counts of one ingestion run
type ImportResult struct {
	Outcome    ImportOutcome
	Inserted   int
	TotalFound int
	Duplicates int
}

// Searcher is the slice of the Kakao client the importer needs
type Searcher interface {
	SearchRestaurants(ctx context.Context, query string, lat, lng float64, radius int) ([]Place, error)
}

// Importer runs the admin-triggered ingestion pipeline: search, normalize,
// dedup by name against a fresh catalog snapshot, batch insert.
type Importer struct {
	client Searcher
	repo   repository.RestaurantRepository
	logger *slog.Logger
}

func NewImporter(client Searcher, repo repository.RestaurantRepository, logger *slog.Logger) *Importer {
	return &Importer{
		client: client,
		repo:   repo,
		logger: logger,
	}
}

// SearchAndImport queries the place-search provider and persists the results
// that are not already in the catalog. The name filter is exact and
// case-sensitive, and also collapses duplicate names inside the batch itself
// (first occurrence wins, so the recommended badge survives dedup).
func (i *Importer) SearchAndImport(ctx context.Context, query string, lat, lng float64, radius int) (*ImportResult, error) {
	places, err := i.client.SearchRestaurants(ctx, query, lat, lng, radius)
	if err != nil {
		return nil, fmt.Errorf("place search failed: %w", err)
	}

	if len(places) == 0 {
		i.logger.Info("ingestion found no places", "query", query)
		return &ImportResult{Outcome: OutcomeNoResults}, nil
	}

	existingNames, err := i.repo.GetNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing catalog names: %w", err)
	}

	seen := make(map[string]bool, len(existingNames))
	for _, name := range existingNames {
		seen[name] = true
	}

	var toInsert []*models.Restaurant
	for _, restaurant := range NormalizeBatch(places) {
		if seen[restaurant.Name] {
			continue
		}
		seen[restaurant.Name] = true
		toInsert = append(toInsert, restaurant)
	}

	result := &ImportResult{
		TotalFound: len(places),
	}

	if len(toInsert) == 0 {
		i.logger.Info("ingestion skipped an all-duplicate batch",
			"query", query, "total_found", result.TotalFound)
		result.Outcome = OutcomeAllDuplicates
		result.Duplicates = result.TotalFound
		return result, nil
	}

	// Atomic-or-nothing for the batch: any insert failure leaves the
	// catalog unchanged and surfaces as an ingestion error.
	if err := i.repo.CreateBatch(ctx, toInsert); err != nil {
		return nil, fmt.Errorf("failed to insert restaurants: %w", err)
	}

	result.Outcome = OutcomeImported
	result.Inserted = len(toInsert)
	result.Duplicates = result.TotalFound - result.Inserted

	i.logger.Info("ingestion completed",
		"query", query,
		"total_found", result.TotalFound,
		"inserted", result.Inserted,
		"duplicates", result.Duplicates)

	return result, nil
}
