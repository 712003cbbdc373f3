package services

import (
	"context"
	"iter"

	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/nutrition"
)

const (
	// DefaultMaxResults caps FindSimilar when the caller passes no limit.
	DefaultMaxResults = 15

	// similarityThreshold is the minimum Ratcliff/Obershelp ratio for a
	// record to qualify in the second search phase.
	similarityThreshold = 0.90
)

// ExternalCatalog manages the read-mostly reference food set.
type ExternalCatalog struct {
	repo *database.ExternalFoodRepository
}

// NewExternalCatalog creates an ExternalCatalog over the given connection context.
func NewExternalCatalog(dbCtx *database.Context) *ExternalCatalog {
	return &ExternalCatalog{repo: database.NewExternalFoodRepository(dbCtx)}
}

// Add inserts the record unless its description is already present.
// Re-adding an existing description is a no-op, never an error.
func (c *ExternalCatalog) Add(ctx context.Context, food nutrition.ExternalFood) error {
	exists, err := c.repo.Exists(ctx, food.Description)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return c.repo.Insert(ctx, food)
}

// FindSimilar produces a lazy, finite, single-use sequence of up to
// maxResults records ranked for the query name:
//
//  1. records whose description contains name (case-sensitive), in
//     storage order;
//  2. if the cap is not reached, remaining records whose description has
//     a similarity ratio of at least 0.90 against name.
//
// maxResults <= 0 selects DefaultMaxResults. A storage failure surfaces
// as the final element's error.
func (c *ExternalCatalog) FindSimilar(ctx context.Context, name string, maxResults int) iter.Seq2[nutrition.ExternalFood, error] {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	return func(yield func(nutrition.ExternalFood, error) bool) {
		contained, err := c.repo.ListContaining(ctx, name, int64(maxResults))
		if err != nil {
			yield(nutrition.ExternalFood{}, err)
			return
		}

		seen := make(map[string]struct{}, len(contained))
		count := 0
		for _, food := range contained {
			seen[food.Description] = struct{}{}
			if !yield(food, nil) {
				return
			}
			count++
		}
		if count >= maxResults {
			return
		}

		rest, err := c.repo.ListAll(ctx)
		if err != nil {
			yield(nutrition.ExternalFood{}, err)
			return
		}
		for _, food := range rest {
			if _, dup := seen[food.Description]; dup {
				continue
			}
			if nutrition.Similarity(food.Description, name) < similarityThreshold {
				continue
			}
			if !yield(food, nil) {
				return
			}
			count++
			if count >= maxResults {
				return
			}
		}
	}
}

// Count returns the number of reference records.
func (c *ExternalCatalog) Count(ctx context.Context) (int64, error) {
	return c.repo.Count(ctx)
}
