package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/safestock/internal/domain/entity"
	"github.com/tu-usuario/safestock/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// psql builder con placeholders $1, $2, ... de PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// MovementRepo implementación de MovementRepository sobre PostgreSQL
// (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste una entrada del ledger.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, product_id, type, quantity, date)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.Type, movement.Quantity, movement.Date,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, product_id, type, quantity, date
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// UpdateQuantity corrige la magnitud y fecha de un movimiento. Producto y
// tipo son inmutables tras la creación.
func (r *MovementRepo) UpdateQuantity(id string, quantity int64, date time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE movements SET quantity = $2, date = $3 WHERE id = $1`,
		id, quantity, date,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// List lista movimientos con filtro opcional por producto, más reciente
// primero, con nombre de producto resuelto.
func (r *MovementRepo) List(filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	builder := psql.
		Select("m.id", "m.product_id", "p.name", "m.type", "m.quantity", "m.date").
		From("movements m").
		Join("products p ON p.id = m.product_id").
		OrderBy("m.date DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if filter.ProductID != "" {
		builder = builder.Where(sq.Eq{"m.product_id": filter.ProductID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build movement query: %w", err)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity, &m.Date); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// Delete elimina una entrada del ledger.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// DeleteByProduct elimina todo el historial de un producto (cascada).
func (r *MovementRepo) DeleteByProduct(productID string) (int64, error) {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM movements WHERE product_id = $1`, productID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete movements by product: %w", err)
	}
	return tag.RowsAffected(), nil
}
