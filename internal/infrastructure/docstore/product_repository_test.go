package docstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auraskin-api/internal/domain"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/infrastructure/docstore"
)

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func TestProductCreate_AsignaIDYDefaults(t *testing.T) {
	ctx := context.Background()
	repo := docstore.NewProductRepository(newMemStore()).WithClock(fixedClock)

	p := &entity.Product{Name: "Serum", Description: "x", Price: decimal.NewFromInt(100000)}
	require.NoError(t, repo.Create(ctx, p))

	assert.Equal(t, fixedNow.UnixMilli(), p.ID)
	assert.Equal(t, "Rp 100.000", p.PriceDisplay)
	assert.Equal(t, 0, p.Stock)
	assert.Equal(t, "Serum", p.Alt, "alt usa el nombre por defecto")

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *p, *got)
}

func TestProductCreate_MismoMilisegundoNoRepiteID(t *testing.T) {
	ctx := context.Background()
	repo := docstore.NewProductRepository(newMemStore()).WithClock(fixedClock)

	a := &entity.Product{Name: "A", Price: decimal.NewFromInt(1)}
	b := &entity.Product{Name: "B", Price: decimal.NewFromInt(2)}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	assert.NotEqual(t, a.ID, b.ID)
	assert.Greater(t, b.ID, a.ID)
}

func TestProductCreate_IDExplicitoDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := docstore.NewProductRepository(newMemStore())

	require.NoError(t, repo.Create(ctx, &entity.Product{ID: 7, Name: "A"}))
	err := repo.Create(ctx, &entity.Product{ID: 7, Name: "B"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUpdate_InexistenteNoEscribe(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	repo := docstore.NewProductRepository(store)

	got, err := repo.Update(ctx, 404, func(p *entity.Product) error {
		p.Name = "nunca"
		return nil
	})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Equal(t, 0, store.writeCount())
}

func TestProductUpdate_NoCambiaIDYRecalculaPrecio(t *testing.T) {
	ctx := context.Background()
	repo := docstore.NewProductRepository(newMemStore()).WithClock(fixedClock)
	p := &entity.Product{Name: "Cream", Price: decimal.NewFromInt(630000), Stock: 3}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.Update(ctx, p.ID, func(q *entity.Product) error {
		q.ID = 999
		q.Price = decimal.NewFromInt(450000)
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Rp 450.000", got.PriceDisplay)
	assert.Equal(t, 3, got.Stock, "los campos no tocados se conservan")

	missing, err := repo.GetByID(ctx, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductUpdate_ErrorDeApplySePropaga(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	repo := docstore.NewProductRepository(store)
	p := &entity.Product{Name: "A"}
	require.NoError(t, repo.Create(ctx, p))
	writes := store.writeCount()

	_, err := repo.Update(ctx, p.ID, func(*entity.Product) error { return domain.ErrInvalidInput })
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Equal(t, writes, store.writeCount())
}

func TestProductDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	repo := docstore.NewProductRepository(store)
	p := &entity.Product{Name: "A"}
	require.NoError(t, repo.Create(ctx, p))

	ok, err := repo.Delete(ctx, p.ID+1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductList_RecalculaPriceDisplayObsoleto(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.doc.Products = []entity.Product{{ID: 1, Name: "A", Price: decimal.NewFromInt(277500), PriceDisplay: "Rp 1"}}
	repo := docstore.NewProductRepository(store)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Rp 277.500", list[0].PriceDisplay)
}

func TestProductSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	repo := docstore.NewProductRepository(newMemStore())
	seed := []entity.Product{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	n, err := repo.SeedIfEmpty(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.SeedIfEmpty(ctx, seed)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "no vuelve a sembrar un catálogo con datos")
}

func TestProductCreate_ConcurrenteIDsUnicos(t *testing.T) {
	ctx := context.Background()
	repo := docstore.NewProductRepository(newMemStore()).WithClock(fixedClock)

	const n = 30
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Create(ctx, &entity.Product{Name: "X"}))
		}()
	}
	wg.Wait()

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, n)
	seen := map[int64]bool{}
	for _, p := range list {
		assert.False(t, seen[p.ID], "ID repetido %d", p.ID)
		seen[p.ID] = true
	}
}
