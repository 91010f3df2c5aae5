// Package committer separates the decision to persist from the act of
// persisting. Repositories return Spanner mutations instead of applying
// them; usecases collect the mutations into a CommitPlan and hand the plan
// to a Committer, which applies everything in a single atomic commit.
//
// The typical flow in a usecase is:
//
//	// 1. Load aggregate from repository
//	product, err := repo.GetByID(ctx, productID)
//
//	// 2. Call domain methods (pure business logic)
//	product.SetPrice(newPrice)
//
//	// 3. Repository returns mutations (doesn't apply them)
//	plan := committer.NewPlan()
//	mut, err := repo.UpdateMut(product)
//	plan.Add(mut)
//
//	// 4. Apply everything atomically
//	return comm.Apply(ctx, plan)
//
// Tests can substitute a recording Committer and inspect the plan without
// a database.
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// CommitPlan collects Spanner mutations from multiple sources so they can
// be applied atomically.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan. Nil mutations are silently ignored
// for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Committer applies a CommitPlan.
type Committer interface {
	Apply(ctx context.Context, plan *CommitPlan) error
}

// SpannerCommitter executes CommitPlans against Cloud Spanner.
type SpannerCommitter struct {
	client *spanner.Client
}

// NewCommitter creates a Committer backed by the given Spanner client.
func NewCommitter(client *spanner.Client) *SpannerCommitter {
	return &SpannerCommitter{client: client}
}

// Apply executes the CommitPlan atomically within a Spanner transaction.
func (c *SpannerCommitter) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil // nothing to commit
	}

	_, err := c.client.Apply(ctx, plan.Mutations())
	if err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}
