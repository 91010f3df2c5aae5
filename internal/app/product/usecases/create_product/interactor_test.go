package create_product

import (
	"context"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fc-labs/store-management-service/internal/app/product/contracts"
	"github.com/fc-labs/store-management-service/internal/app/product/domain"
	"github.com/fc-labs/store-management-service/internal/pkg/clock"
	"github.com/fc-labs/store-management-service/internal/pkg/committer"
)

type fakeRepo struct {
	contracts.ProductRepository

	byName    map[string]*domain.Product
	nameErr   error
	inserted  []*domain.Product
	insertErr error
}

func (f *fakeRepo) FindByName(_ context.Context, name string) (*domain.Product, error) {
	if f.nameErr != nil {
		return nil, f.nameErr
	}
	return f.byName[name], nil
}

func (f *fakeRepo) InsertMut(product *domain.Product) (*spanner.Mutation, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, product)
	return spanner.Insert("products", []string{"product_id"}, []interface{}{product.ID()}), nil
}

type recordingCommitter struct {
	plans []*committer.CommitPlan
	err   error
}

func (r *recordingCommitter) Apply(_ context.Context, plan *committer.CommitPlan) error {
	if r.err != nil {
		return r.err
	}
	r.plans = append(r.plans, plan)
	return nil
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	price, _ := domain.NewMoney(2499, 100)

	t.Run("creates product with store-assigned id", func(t *testing.T) {
		repo := &fakeRepo{byName: map[string]*domain.Product{}}
		comm := &recordingCommitter{}
		interactor := NewInteractor(repo, comm, clock.NewMockClock(now))

		product, err := interactor.Execute(ctx, &Request{
			Name:        "Keyboard",
			Description: "Mechanical",
			Price:       price,
			ProductType: domain.TypeHard,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, product.ID())
		assert.Equal(t, "Keyboard", product.Name())
		assert.Equal(t, now, product.CreateDate())
		assert.Nil(t, product.UpdateDate())

		require.Len(t, repo.inserted, 1)
		require.Len(t, comm.plans, 1)
		assert.Equal(t, 1, comm.plans[0].Count())
	})

	t.Run("missing name is rejected before any lookup", func(t *testing.T) {
		repo := &fakeRepo{nameErr: errors.New("should not be called")}
		comm := &recordingCommitter{}
		interactor := NewInteractor(repo, comm, clock.NewMockClock(now))

		_, err := interactor.Execute(ctx, &Request{Name: ""})
		assert.ErrorIs(t, err, domain.ErrNameMissing)
		assert.Empty(t, comm.plans)
	})

	t.Run("taken name is rejected", func(t *testing.T) {
		existing := domain.NewProduct("id-1", "Keyboard", "", nil, domain.TypeHard, now)
		repo := &fakeRepo{byName: map[string]*domain.Product{"Keyboard": existing}}
		comm := &recordingCommitter{}
		interactor := NewInteractor(repo, comm, clock.NewMockClock(now))

		_, err := interactor.Execute(ctx, &Request{Name: "Keyboard"})

		var conflict *domain.NameConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "Keyboard", conflict.Name)
		assert.Empty(t, comm.plans)
	})

	t.Run("nil price is allowed at creation", func(t *testing.T) {
		repo := &fakeRepo{byName: map[string]*domain.Product{}}
		comm := &recordingCommitter{}
		interactor := NewInteractor(repo, comm, clock.NewMockClock(now))

		product, err := interactor.Execute(ctx, &Request{Name: "Free sample"})
		require.NoError(t, err)
		assert.Nil(t, product.Price())
	})

	t.Run("zero price is allowed at creation", func(t *testing.T) {
		zero, _ := domain.NewMoney(0, 1)
		repo := &fakeRepo{byName: map[string]*domain.Product{}}
		comm := &recordingCommitter{}
		interactor := NewInteractor(repo, comm, clock.NewMockClock(now))

		product, err := interactor.Execute(ctx, &Request{Name: "Giveaway", Price: zero})
		require.NoError(t, err)
		require.NotNil(t, product.Price())
		assert.True(t, product.Price().IsZero())
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		repo := &fakeRepo{nameErr: errors.New("spanner unavailable")}
		comm := &recordingCommitter{}
		interactor := NewInteractor(repo, comm, clock.NewMockClock(now))

		_, err := interactor.Execute(ctx, &Request{Name: "Keyboard"})
		assert.Error(t, err)
	})

	t.Run("commit error propagates", func(t *testing.T) {
		repo := &fakeRepo{byName: map[string]*domain.Product{}}
		comm := &recordingCommitter{err: errors.New("commit failed")}
		interactor := NewInteractor(repo, comm, clock.NewMockClock(now))

		_, err := interactor.Execute(ctx, &Request{Name: "Keyboard"})
		assert.ErrorContains(t, err, "commit failed")
	})
}
