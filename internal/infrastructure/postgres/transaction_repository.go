package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre PostgreSQL.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador de transacciones. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

var transactionKeyColumns = []string{"item_sku", "warehouse_id", "customer_id"}

// Exists verifica si hay una transacción para la clave compuesta.
func (r *TransactionRepo) Exists(ctx context.Context, key entity.TransactionKey) (bool, error) {
	var one int
	err := r.q.QueryRow(ctx,
		`SELECT 1 FROM transactions WHERE item_sku = $1 AND warehouse_id = $2 AND customer_id = $3`,
		key.ItemSKU, key.WarehouseID, key.CustomerID,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists transaction: %w", err)
	}
	return true, nil
}

// Create registra una compra. No hay constraint de unicidad sobre la tripleta:
// compras repetidas no se deduplican (ver DESIGN.md).
func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, item_sku, warehouse_id, customer_id, date, sales_uom,
			transaction_quantity, shipping_address, shipping_city, shipping_state,
			shipping_zipcode, shipping_country, transaction_image, transaction_barcode,
			transaction_weight, tracking_information
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.Key.ItemSKU, tx.Key.WarehouseID, tx.Key.CustomerID, tx.Date, tx.SalesUOM,
		tx.Quantity, tx.ShippingAddress, tx.ShippingCity, tx.ShippingState,
		tx.ShippingZipcode, tx.ShippingCountry, tx.TransactionImage, tx.TransactionBarcode,
		tx.TransactionWeight, tx.TrackingInformation,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// Update aplica una actualización parcial sobre la clave compuesta vía el
// constructor con allowlist (la clave misma no es actualizable).
func (r *TransactionRepo) Update(ctx context.Context, key entity.TransactionKey, fields map[string]any) error {
	query, args, err := buildUpdate("transactions", transactionColumns, fields,
		transactionKeyColumns, []string{key.ItemSKU, key.WarehouseID, key.CustomerID})
	if err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// GetQuantity obtiene la cantidad vigente para la clave compuesta.
// ErrNotFound cuando no hay transacción; NULL se reporta como 0.
func (r *TransactionRepo) GetQuantity(ctx context.Context, key entity.TransactionKey) (int64, error) {
	var qty *int64
	err := r.q.QueryRow(ctx,
		`SELECT transaction_quantity FROM transactions
		 WHERE item_sku = $1 AND warehouse_id = $2 AND customer_id = $3`,
		key.ItemSKU, key.WarehouseID, key.CustomerID,
	).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("get transaction quantity: %w", err)
	}
	if qty == nil {
		return 0, nil
	}
	return *qty, nil
}

// Deduct resta qty de la cantidad vigente en una sola escritura condicional:
// solo si la cantidad actual alcanza. Cero filas afectadas significa que la
// devolución excede lo disponible, incluso bajo devoluciones concurrentes.
func (r *TransactionRepo) Deduct(ctx context.Context, key entity.TransactionKey, qty int64) (bool, error) {
	cmd, err := r.q.Exec(ctx,
		`UPDATE transactions
		 SET transaction_quantity = transaction_quantity - $4
		 WHERE item_sku = $1 AND warehouse_id = $2 AND customer_id = $3
		   AND transaction_quantity >= $4`,
		key.ItemSKU, key.WarehouseID, key.CustomerID, qty,
	)
	if err != nil {
		return false, fmt.Errorf("deduct transaction quantity: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
