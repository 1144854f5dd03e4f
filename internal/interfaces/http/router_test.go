package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/safestock/internal/application/dto"
	"github.com/tu-usuario/safestock/internal/application/ledger"
	"github.com/tu-usuario/safestock/internal/application/usecase"
	"github.com/tu-usuario/safestock/internal/domain/entity"
	apphttp "github.com/tu-usuario/safestock/internal/interfaces/http"
	"github.com/tu-usuario/safestock/internal/testutil"
	"github.com/tu-usuario/safestock/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la aplicación Fiber completa sobre el store en memoria,
// con los mismos usecases que monta main.
func buildTestApp(t *testing.T) (*fiber.App, *testutil.MemStore) {
	t.Helper()

	store := testutil.NewMemStore()
	cache := testutil.NewFakeCache()
	log := logger.New(logger.Config{Env: "development", Level: "error"})

	ledgerUC := ledger.NewLedgerUseCase(store, cache, log)
	categoryUC := usecase.NewCategoryUseCase(store.CategoryRepo(), store)
	productUC := usecase.NewProductUseCase(store.ProductRepo(), store.CategoryRepo())
	replenishmentUC := usecase.NewReplenishmentUseCase(store.ProductRepo(), store.Dashboard())
	dashboardUC := usecase.NewDashboardUseCase(store.Dashboard(), cache, time.Minute, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC:      categoryUC,
		ProductUC:       productUC,
		ReplenishmentUC: replenishmentUC,
		DashboardUC:     dashboardUC,
		LedgerUC:        ledgerUC,
		MovementRepo:    store.MovementRepo(),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), "respuesta debe ser JSON válido: %s", raw)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_ConStockInicial(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")

	resp, raw := doJSON(t, app, http.MethodPost, "/api/products", dto.CreateProductRequest{
		Name: "Taladro", CategoryID: catID, InitialQuantity: 25,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", raw)

	out := decode[dto.ProductResponse](t, raw)
	assert.Equal(t, "Taladro", out.Name)
	assert.Equal(t, int64(25), out.Quantity)
	assert.Equal(t, "IDEAL", out.Status)
	assert.Equal(t, "green", out.StatusColor)

	// El stock inicial queda respaldado por un movimiento IN en el ledger.
	assert.Equal(t, int64(25), store.SignedSum(out.ID))
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/products", dto.CreateProductRequest{
		Name: "Taladro", CategoryID: "no-existe", InitialQuantity: 1,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code)
}

func TestProductGetByID_NoEncontrado(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/products/desconocido", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code)
}

func TestProductAddStock(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	prodID := store.SeedProduct("Martillo", catID, 3)

	resp, raw := doJSON(t, app, http.MethodPut, "/api/products/"+prodID+"/add", dto.AddStockRequest{Quantity: 7})
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", raw)

	out := decode[dto.RegisterMovementResponse](t, raw)
	assert.Equal(t, int64(10), out.NewQuantity)
	assert.Equal(t, entity.MovementTypeIN, out.Movement.Type)
}

func TestProductReplenishmentPriority(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	prodID := store.SeedProduct("Sierra", catID, 0)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/products/"+prodID+"/replenishment-priority", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", raw)

	out := decode[dto.ReplenishmentPriorityResponse](t, raw)
	assert.Equal(t, "CRITICAL", out.Priority)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementRegister_Salida(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	prodID := store.SeedProduct("Destornillador", catID, 10)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/movements", dto.RegisterMovementRequest{
		ProductID: prodID, Type: entity.MovementTypeOUT, Quantity: 4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "body: %s", raw)

	out := decode[dto.RegisterMovementResponse](t, raw)
	assert.Equal(t, int64(6), out.NewQuantity)
}

func TestMovementRegister_StockInsuficiente(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	prodID := store.SeedProduct("Destornillador", catID, 3)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/movements", dto.RegisterMovementRequest{
		ProductID: prodID, Type: entity.MovementTypeOUT, Quantity: 4,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", decode[dto.ErrorResponse](t, raw).Code)
}

func TestMovementRegister_TipoInvalido(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	prodID := store.SeedProduct("Destornillador", catID, 3)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/movements", dto.RegisterMovementRequest{
		ProductID: prodID, Type: "TRANSFER", Quantity: 1,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)
}

func TestMovementCorrect(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	prodID := store.SeedProduct("Llave", catID, 10)
	movID := store.SeedMovement(prodID, entity.MovementTypeIN, 10, time.Now().Add(-time.Hour))

	resp, raw := doJSON(t, app, http.MethodPut, "/api/movements/"+movID, dto.CorrectMovementRequest{Quantity: 4})
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", raw)

	out := decode[dto.RegisterMovementResponse](t, raw)
	assert.Equal(t, int64(4), out.NewQuantity)
	assert.Equal(t, int64(4), out.Movement.Quantity)
}

func TestMovementCorrect_AjusteInvalido(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	prodID := store.SeedProduct("Llave", catID, 2)
	// IN de 10 con salidas posteriores: reducirlo a 1 dejaría stock negativo.
	movID := store.SeedMovement(prodID, entity.MovementTypeIN, 10, time.Now().Add(-time.Hour))

	resp, raw := doJSON(t, app, http.MethodPut, "/api/movements/"+movID, dto.CorrectMovementRequest{Quantity: 1})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_ADJUSTMENT", decode[dto.ErrorResponse](t, raw).Code)
}

func TestMovementRemove(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	prodID := store.SeedProduct("Llave", catID, 10)
	movID := store.SeedMovement(prodID, entity.MovementTypeIN, 6, time.Now().Add(-time.Hour))

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/movements/"+movID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	got, err := store.ProductRepo().GetByID(prodID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Quantity, "revertir el IN resta su cantidad")
}

func TestMovementList_FiltroPorProducto(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	prodA := store.SeedProduct("A", catID, 10)
	prodB := store.SeedProduct("B", catID, 10)
	store.SeedMovement(prodA, entity.MovementTypeIN, 10, time.Now().Add(-2*time.Hour))
	store.SeedMovement(prodB, entity.MovementTypeIN, 10, time.Now().Add(-time.Hour))

	resp, raw := doJSON(t, app, http.MethodGet, "/api/movements?product_id="+prodA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.MovementListResponse](t, raw)
	require.Len(t, out.Items, 1)
	assert.Equal(t, prodA, out.Items[0].ProductID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías y dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_ConProductos(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	store.SeedProduct("Taladro", catID, 5)

	resp, raw := doJSON(t, app, http.MethodDelete, "/api/categories/"+catID, nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CATEGORY_IN_USE", decode[dto.ErrorResponse](t, raw).Code)
}

func TestCategoryDelete_Vacia(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Obsoleta")

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/categories/"+catID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDashboardGet(t *testing.T) {
	app, store := buildTestApp(t)
	catID := store.SeedCategory("Herramientas")
	store.SeedProduct("Crítico", catID, 2)
	store.SeedProduct("Sano", catID, 50)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "body: %s", raw)

	out := decode[dto.DashboardResponse](t, raw)
	assert.Equal(t, int64(2), out.TotalProducts)
	assert.Equal(t, int64(1), out.TotalCategories)
	assert.Equal(t, int64(1), out.LowStockProducts)
	require.Len(t, out.CriticalProducts, 1)
	assert.Equal(t, "Crítico", out.CriticalProducts[0].Name)
	assert.Equal(t, "red", out.CriticalProducts[0].StatusColor)
}
