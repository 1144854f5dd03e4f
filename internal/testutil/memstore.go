// Package testutil provee dobles en memoria para los tests de casos de uso:
// un almacén que implementa los puertos de repositorio y el TxRunner del
// motor de ledger, con rollback real por snapshot, y un cache falso.
package testutil

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/safestock/internal/application/ports"
	"github.com/tu-usuario/safestock/internal/domain/entity"
	"github.com/tu-usuario/safestock/internal/domain/repository"
)

// MemStore almacén en memoria. Run toma snapshot antes de ejecutar el
// callback y lo restaura si este falla, imitando el rollback transaccional.
type MemStore struct {
	mu         sync.Mutex
	Products   map[string]*entity.Product
	Categories map[string]*entity.Category
	Movements  map[string]*entity.Movement
	RunErr     error // si no es nil, Run falla sin ejecutar el callback
}

// NewMemStore construye un almacén vacío.
func NewMemStore() *MemStore {
	return &MemStore{
		Products:   make(map[string]*entity.Product),
		Categories: make(map[string]*entity.Category),
		Movements:  make(map[string]*entity.Movement),
	}
}

// Run implementa ledger.TxRunner sobre el almacén en memoria.
func (s *MemStore) Run(_ context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RunErr != nil {
		return s.RunErr
	}

	products := snapshot(s.Products)
	categories := snapshot(s.Categories)
	movements := snapshot(s.Movements)

	err := fn(&memMovementRepo{s}, &memProductRepo{s}, &memCategoryRepo{s})
	if err != nil {
		s.Products = products
		s.Categories = categories
		s.Movements = movements
	}
	return err
}

func snapshot[T any](m map[string]*T) map[string]*T {
	out := make(map[string]*T, len(m))
	for k, v := range m {
		cp := *v
		out[k] = &cp
	}
	return out
}

// SeedCategory inserta una categoría y devuelve su ID.
func (s *MemStore) SeedCategory(name string) string {
	id := uuid.New().String()
	now := time.Now()
	s.Categories[id] = &entity.Category{ID: id, Name: name, CreatedAt: now, UpdatedAt: now}
	return id
}

// SeedProduct inserta un producto con la cantidad dada y devuelve su ID.
func (s *MemStore) SeedProduct(name, categoryID string, quantity int64) string {
	id := uuid.New().String()
	now := time.Now()
	s.Products[id] = &entity.Product{
		ID: id, Name: name, Quantity: quantity, CategoryID: categoryID,
		CreatedAt: now, UpdatedAt: now,
	}
	return id
}

// SeedMovement inserta un movimiento (no ajusta la cantidad del producto).
func (s *MemStore) SeedMovement(productID, movType string, quantity int64, date time.Time) string {
	id := uuid.New().String()
	s.Movements[id] = &entity.Movement{
		ID: id, ProductID: productID, Type: movType, Quantity: quantity, Date: date,
	}
	return id
}

// SignedSum suma con signo de los movimientos de un producto: el lado derecho
// del invariante del ledger.
func (s *MemStore) SignedSum(productID string) int64 {
	var sum int64
	for _, m := range s.Movements {
		if m.ProductID == productID {
			sum += m.SignedQuantity()
		}
	}
	return sum
}

// ProductRepo devuelve un repositorio de productos sobre el almacén (el
// equivalente a construir un repo sobre el pool, fuera de transacción).
func (s *MemStore) ProductRepo() repository.ProductRepository { return &memProductRepo{s} }

// CategoryRepo devuelve un repositorio de categorías sobre el almacén.
func (s *MemStore) CategoryRepo() repository.CategoryRepository { return &memCategoryRepo{s} }

// MovementRepo devuelve un repositorio de movimientos sobre el almacén.
func (s *MemStore) MovementRepo() repository.MovementRepository { return &memMovementRepo{s} }

// ── Repos en memoria ─────────────────────────────────────────────────────────

type memProductRepo struct{ s *MemStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.s.Products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.Products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	if c, ok := r.s.Categories[p.CategoryID]; ok {
		cp.CategoryName = c.Name
	}
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *memProductRepo) Update(p *entity.Product) error {
	cur, ok := r.s.Products[p.ID]
	if !ok {
		return nil
	}
	cur.Name = p.Name
	cur.CategoryID = p.CategoryID
	cur.UpdatedAt = p.UpdatedAt
	return nil
}

func (r *memProductRepo) UpdateQuantity(id string, quantity int64) error {
	if p, ok := r.s.Products[id]; ok {
		p.Quantity = quantity
		p.UpdatedAt = time.Now()
	}
	return nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	all := make([]*entity.Product, 0, len(r.s.Products))
	for id := range r.s.Products {
		p, _ := r.GetByID(id)
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, limit, offset), nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.s.Products, id)
	return nil
}

type memCategoryRepo struct{ s *MemStore }

func (r *memCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.s.Categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.s.Categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	cp.ProductCount, _ = r.CountProducts(id)
	return &cp, nil
}

func (r *memCategoryRepo) Update(c *entity.Category) error {
	if cur, ok := r.s.Categories[c.ID]; ok {
		cur.Name = c.Name
		cur.UpdatedAt = c.UpdatedAt
	}
	return nil
}

func (r *memCategoryRepo) List(limit, offset int) ([]*entity.Category, error) {
	all := make([]*entity.Category, 0, len(r.s.Categories))
	for id := range r.s.Categories {
		c, _ := r.GetByID(id)
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return page(all, limit, offset), nil
}

func (r *memCategoryRepo) CountProducts(id string) (int64, error) {
	var n int64
	for _, p := range r.s.Products {
		if p.CategoryID == id {
			n++
		}
	}
	return n, nil
}

func (r *memCategoryRepo) Delete(id string) error {
	delete(r.s.Categories, id)
	return nil
}

type memMovementRepo struct{ s *MemStore }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.s.Movements[m.ID] = &cp
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	m, ok := r.s.Movements[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *memMovementRepo) UpdateQuantity(id string, quantity int64, date time.Time) error {
	if m, ok := r.s.Movements[id]; ok {
		m.Quantity = quantity
		m.Date = date
	}
	return nil
}

func (r *memMovementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	all := make([]*entity.Movement, 0, len(r.s.Movements))
	for _, m := range r.s.Movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		cp := *m
		if p, ok := r.s.Products[m.ProductID]; ok {
			cp.ProductName = p.Name
		}
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Date.After(all[j].Date) })
	return page(all, limit, offset), nil
}

func (r *memMovementRepo) Delete(id string) error {
	delete(r.s.Movements, id)
	return nil
}

func (r *memMovementRepo) DeleteByProduct(productID string) (int64, error) {
	var n int64
	for id, m := range r.s.Movements {
		if m.ProductID == productID {
			delete(r.s.Movements, id)
			n++
		}
	}
	return n, nil
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all
}

// ── Repos de dashboard ───────────────────────────────────────────────────────

// Dashboard devuelve una vista del almacén que implementa DashboardRepository.
func (s *MemStore) Dashboard() repository.DashboardRepository {
	return &memDashboardRepo{s}
}

type memDashboardRepo struct{ s *MemStore }

func (r *memDashboardRepo) CountProducts() (int64, error) {
	return int64(len(r.s.Products)), nil
}

func (r *memDashboardRepo) CountCategories() (int64, error) {
	return int64(len(r.s.Categories)), nil
}

func (r *memDashboardRepo) CountLowStock(threshold int64) (int64, error) {
	var n int64
	for _, p := range r.s.Products {
		if p.Quantity <= threshold {
			n++
		}
	}
	return n, nil
}

func (r *memDashboardRepo) CriticalProducts(threshold int64, limit int) ([]*entity.Product, error) {
	repo := &memProductRepo{r.s}
	var out []*entity.Product
	for id, p := range r.s.Products {
		if p.Quantity <= threshold {
			cp, _ := repo.GetByID(id)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memDashboardRepo) OutboundStats(productID string) (*repository.OutboundStats, error) {
	stats := &repository.OutboundStats{AvgQuantity: decimal.Zero}
	var sum, count int64
	for _, m := range r.s.Movements {
		if m.ProductID != productID || m.Type != entity.MovementTypeOUT {
			continue
		}
		sum += m.Quantity
		count++
		if stats.LastDate == nil || m.Date.After(*stats.LastDate) {
			d := m.Date
			stats.LastDate = &d
		}
	}
	if count > 0 {
		stats.AvgQuantity = decimal.NewFromInt(sum).Div(decimal.NewFromInt(count))
	}
	return stats, nil
}

// ── Cache falso ──────────────────────────────────────────────────────────────

// FakeCache implementa ports.Cache en memoria y registra las invalidaciones.
type FakeCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	Deleted []string
}

// NewFakeCache construye un cache falso vacío.
func NewFakeCache() *FakeCache {
	return &FakeCache{values: make(map[string][]byte)}
}

func (c *FakeCache) Get(_ context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.values[key]
	if !ok {
		return ports.ErrCacheMiss
	}
	return json.Unmarshal(data, dest)
}

func (c *FakeCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = data
	return nil
}

func (c *FakeCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.values, k)
		c.Deleted = append(c.Deleted, k)
	}
	return nil
}
