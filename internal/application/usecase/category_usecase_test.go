package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/safestock/internal/application/dto"
	"github.com/tu-usuario/safestock/internal/application/usecase"
	"github.com/tu-usuario/safestock/internal/domain"
	"github.com/tu-usuario/safestock/internal/testutil"
)

func TestCategoryCreateAndGet(t *testing.T) {
	store := testutil.NewMemStore()
	uc := usecase.NewCategoryUseCase(store.CategoryRepo(), store)

	created, err := uc.Create(dto.CreateCategoryRequest{Name: "Herramientas"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, int64(0), created.TotalProducts)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Herramientas", got.Name)

	_, err = uc.GetByID("no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryCreate_Validaciones(t *testing.T) {
	store := testutil.NewMemStore()
	uc := usecase.NewCategoryUseCase(store.CategoryRepo(), store)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: ""})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	_, err = uc.Create(dto.CreateCategoryRequest{Name: string(long)})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryDelete_GuardConProductos(t *testing.T) {
	store := testutil.NewMemStore()
	catID := store.SeedCategory("Electrónica")
	store.SeedProduct("Sensor", catID, 3)
	uc := usecase.NewCategoryUseCase(store.CategoryRepo(), store)

	err := uc.Delete(context.Background(), catID)
	require.ErrorIs(t, err, domain.ErrCategoryInUse)
	assert.Contains(t, store.Categories, catID, "la categoría debe sobrevivir al rechazo")
}

func TestCategoryDelete_SinProductos(t *testing.T) {
	store := testutil.NewMemStore()
	catID := store.SeedCategory("Vacía")
	uc := usecase.NewCategoryUseCase(store.CategoryRepo(), store)

	require.NoError(t, uc.Delete(context.Background(), catID))
	assert.NotContains(t, store.Categories, catID)

	_, err := uc.GetByID(catID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(context.Background(), catID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryList_ConteoDeProductos(t *testing.T) {
	store := testutil.NewMemStore()
	aID := store.SeedCategory("A")
	store.SeedCategory("B")
	store.SeedProduct("P1", aID, 1)
	store.SeedProduct("P2", aID, 2)
	uc := usecase.NewCategoryUseCase(store.CategoryRepo(), store)

	out, err := uc.List(20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, int64(2), out.Items[0].TotalProducts) // "A" primero
	assert.Equal(t, int64(0), out.Items[1].TotalProducts)
}

func TestCategoryUpdate(t *testing.T) {
	store := testutil.NewMemStore()
	catID := store.SeedCategory("Tipografía")
	uc := usecase.NewCategoryUseCase(store.CategoryRepo(), store)

	out, err := uc.Update(catID, dto.UpdateCategoryRequest{Name: "Papelería"})
	require.NoError(t, err)
	assert.Equal(t, "Papelería", out.Name)
	assert.Equal(t, "Papelería", store.Categories[catID].Name)

	_, err = uc.Update("no-existe", dto.UpdateCategoryRequest{Name: "X"})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
