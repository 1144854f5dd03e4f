package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/safestock/internal/application/ports"
	"github.com/tu-usuario/safestock/internal/application/usecase"
	"github.com/tu-usuario/safestock/internal/domain/entity"
	"github.com/tu-usuario/safestock/internal/testutil"
	"github.com/tu-usuario/safestock/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func TestDashboard_Resumen(t *testing.T) {
	store := testutil.NewMemStore()
	catID := store.SeedCategory("Bodega")
	store.SeedProduct("Crítico", catID, 2)   // LOW
	store.SeedProduct("Justo", catID, 5)     // LOW (borde)
	store.SeedProduct("Sobrado", catID, 50)  // IDEAL
	uc := usecase.NewDashboardUseCase(store.Dashboard(), nil, time.Minute, testLogger())

	out, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.TotalProducts)
	assert.Equal(t, int64(1), out.TotalCategories)
	assert.Equal(t, int64(2), out.LowStockProducts)
	require.Len(t, out.CriticalProducts, 2)
	// Ascendente por cantidad, con nivel y color derivados.
	assert.Equal(t, "Crítico", out.CriticalProducts[0].Name)
	assert.Equal(t, "LOW", out.CriticalProducts[0].Status)
	assert.Equal(t, "red", out.CriticalProducts[0].StatusColor)
	assert.Equal(t, "Bodega", out.CriticalProducts[0].Category)
}

func TestDashboard_UsaCache(t *testing.T) {
	store := testutil.NewMemStore()
	catID := store.SeedCategory("Bodega")
	store.SeedProduct("Único", catID, 1)
	cache := testutil.NewFakeCache()
	uc := usecase.NewDashboardUseCase(store.Dashboard(), cache, time.Minute, testLogger())
	ctx := context.Background()

	first, err := uc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), first.TotalProducts)

	// Un cambio sin invalidación no se ve: se sirve la vista materializada.
	store.SeedProduct("Nuevo", catID, 9)
	second, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.TotalProducts)

	// Tras invalidar (lo que hace el ledger al mutar) se reconstruye.
	require.NoError(t, cache.Delete(ctx, ports.DashboardCacheKey))
	third, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), third.TotalProducts)
}

func TestReplenishmentPriority(t *testing.T) {
	store := testutil.NewMemStore()
	catID := store.SeedCategory("Bodega")
	prodID := store.SeedProduct("Taladro", catID, 3)
	last := time.Now().Add(-24 * time.Hour)
	store.SeedMovement(prodID, entity.MovementTypeOUT, 4, last.Add(-time.Hour))
	store.SeedMovement(prodID, entity.MovementTypeOUT, 6, last)
	uc := usecase.NewReplenishmentUseCase(store.ProductRepo(), store.Dashboard())

	out, err := uc.Priority(prodID)
	require.NoError(t, err)
	assert.Equal(t, "HIGH", out.Priority)
	assert.Equal(t, int64(3), out.CurrentQuantity)
	assert.Equal(t, "5.00", out.AvgOutbound)
	require.NotNil(t, out.LastOutboundAt)
	assert.Equal(t, last.Format(time.RFC3339), *out.LastOutboundAt)
}

func TestReplenishmentPriority_SinSalidas(t *testing.T) {
	store := testutil.NewMemStore()
	catID := store.SeedCategory("Bodega")
	prodID := store.SeedProduct("Nuevo", catID, 0)
	uc := usecase.NewReplenishmentUseCase(store.ProductRepo(), store.Dashboard())

	out, err := uc.Priority(prodID)
	require.NoError(t, err)
	assert.Equal(t, "CRITICAL", out.Priority)
	assert.Equal(t, "0.00", out.AvgOutbound)
	assert.Nil(t, out.LastOutboundAt)
}
