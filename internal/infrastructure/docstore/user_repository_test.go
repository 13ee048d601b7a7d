package docstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/auraskin-api/internal/domain"
	"github.com/jhoicas/auraskin-api/internal/domain/entity"
	"github.com/jhoicas/auraskin-api/internal/infrastructure/docstore"
)

func TestUserCreate_DefaultsYLectura(t *testing.T) {
	ctx := context.Background()
	repo := docstore.NewUserRepository(newMemStore()).WithClock(fixedClock)

	u := &entity.User{Name: "Ana", Email: "ana@auraskin.id", Password: "rahasia"}
	require.NoError(t, repo.Create(ctx, u))

	assert.Equal(t, fixedNow.UnixMilli(), u.ID)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.Equal(t, fixedNow, u.CreatedAt)

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *u, *got)
}

func TestUserCreate_EmailDuplicadoSinDistinguirMayusculas(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	repo := docstore.NewUserRepository(store)

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "Ana", Email: "ana@auraskin.id"}))
	err := repo.Create(ctx, &entity.User{Name: "Otra", Email: "ANA@auraskin.id"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1, "el duplicado no se agrega")
}

func TestUserGetByEmail_CoincidenciaExacta(t *testing.T) {
	ctx := context.Background()
	repo := docstore.NewUserRepository(newMemStore())
	require.NoError(t, repo.Create(ctx, &entity.User{Name: "Ana", Email: "ana@auraskin.id"}))

	got, err := repo.GetByEmail(ctx, "ana@auraskin.id")
	require.NoError(t, err)
	assert.NotNil(t, got)

	got, err = repo.GetByEmail(ctx, "Ana@auraskin.id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserUpdate_EmailEnUso(t *testing.T) {
	ctx := context.Background()
	repo := docstore.NewUserRepository(newMemStore())
	a := &entity.User{Name: "A", Email: "a@x.id"}
	b := &entity.User{Name: "B", Email: "b@x.id"}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	_, err := repo.Update(ctx, b.ID, func(u *entity.User) error {
		u.Email = "A@x.id"
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	// Cambiar solo mayúsculas del propio email está permitido.
	got, err := repo.Update(ctx, a.ID, func(u *entity.User) error {
		u.Email = "A@x.id"
		u.ID = 1
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, "A@x.id", got.Email)
}

func TestUserUpdateYDelete_Inexistente(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	repo := docstore.NewUserRepository(store)

	got, err := repo.Update(ctx, 1, func(*entity.User) error { return nil })
	require.NoError(t, err)
	assert.Nil(t, got)

	ok, err := repo.Delete(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, store.writeCount())
}

func TestSessionRepo_SetYClear(t *testing.T) {
	ctx := context.Background()
	repo := docstore.NewSessionRepository(newMemStore())

	cur, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	snap := entity.User{ID: 5, Name: "Ana", Email: "ana@auraskin.id", Password: "x"}.SessionSnapshot(fixedNow)
	require.NoError(t, repo.Set(ctx, snap))

	cur, err = repo.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, int64(5), cur.ID)
	assert.Empty(t, cur.Password)
	require.NotNil(t, cur.LoginTime)
	assert.Equal(t, fixedNow, *cur.LoginTime)

	require.NoError(t, repo.Clear(ctx))
	cur, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}
