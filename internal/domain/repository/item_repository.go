package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemRepository puerto de persistencia para artículos.
// Update recibe el subconjunto de campos a modificar ya validado; la
// implementación solo acepta columnas de su allowlist.
type ItemRepository interface {
	Exists(ctx context.Context, sku string) (bool, error)
	Create(ctx context.Context, item *entity.Item) error
	Search(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, error)
	Update(ctx context.Context, sku string, fields map[string]any) error
	Delete(ctx context.Context, sku string) error
}
