package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/safestock/internal/domain/entity"
	"github.com/tu-usuario/safestock/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para reporting sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador de reporting. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// CountProducts total de productos.
func (r *DashboardRepo) CountProducts() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountCategories total de categorías.
func (r *DashboardRepo) CountCategories() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM categories`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// CountLowStock productos con cantidad <= threshold (el umbral LOW del clasificador).
func (r *DashboardRepo) CountLowStock(threshold int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(),
		`SELECT count(*) FROM products WHERE quantity <= $1`, threshold,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return n, nil
}

// CriticalProducts productos bajo el umbral, ascendente por cantidad.
func (r *DashboardRepo) CriticalProducts(threshold int64, limit int) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.quantity, p.category_id, c.name, p.created_at, p.updated_at
		FROM products p JOIN categories c ON c.id = p.category_id
		WHERE p.quantity <= $1
		ORDER BY p.quantity ASC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("list critical products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Quantity, &p.CategoryID, &p.CategoryName, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan critical product: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// OutboundStats promedio de magnitud y fecha de la última salida del
// producto. AVG devuelve NUMERIC; el codec del pool lo mapea a decimal.
func (r *DashboardRepo) OutboundStats(productID string) (*repository.OutboundStats, error) {
	query := `
		SELECT coalesce(avg(quantity), 0), max(date)
		FROM movements WHERE product_id = $1 AND type = 'OUT'`
	var avg decimal.Decimal
	var last *time.Time
	err := r.q.QueryRow(context.Background(), query, productID).Scan(&avg, &last)
	if err != nil {
		return nil, fmt.Errorf("outbound stats: %w", err)
	}
	return &repository.OutboundStats{AvgQuantity: avg, LastDate: last}, nil
}
