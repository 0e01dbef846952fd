package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// TransactionRepository puerto de persistencia para transacciones.
//
// Deduct resta qty de la cantidad vigente como una sola escritura condicional
// (solo si la cantidad actual alcanza); devuelve false cuando la condición no
// se cumple. Así el invariante de no-negatividad se sostiene también bajo
// devoluciones concurrentes sobre la misma clave.
type TransactionRepository interface {
	Exists(ctx context.Context, key entity.TransactionKey) (bool, error)
	Create(ctx context.Context, tx *entity.Transaction) error
	Update(ctx context.Context, key entity.TransactionKey, fields map[string]any) error
	GetQuantity(ctx context.Context, key entity.TransactionKey) (int64, error)
	Deduct(ctx context.Context, key entity.TransactionKey, qty int64) (bool, error)
}
