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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de persistencia para artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumnsList = `item_sku, item_name, item_uom, item_group, retail_price, purchase_price,
	warranty_period, is_stock_item, brand, description, single_unit_dimensions,
	single_unit_weight, weight_uom, country_of_origin, barcode, barcode_type`

// Exists verifica si ya hay un artículo con ese SKU.
func (r *ItemRepo) Exists(ctx context.Context, sku string) (bool, error) {
	var one int
	err := r.q.QueryRow(ctx, `SELECT 1 FROM items WHERE item_sku = $1`, sku).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists item: %w", err)
	}
	return true, nil
}

// Create persiste un artículo nuevo.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	query := `
		INSERT INTO items (` + itemColumnsList + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		item.SKU, item.Name, item.UOM, item.Group, item.RetailPrice, item.PurchasePrice,
		item.WarrantyPeriod, item.IsStockItem, item.Brand, item.Description,
		item.SingleUnitDimensions, item.SingleUnitWeight, item.WeightUOM,
		item.CountryOfOrigin, item.Barcode, item.BarcodeType,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Search lista artículos filtrando por subcadena en nombre, grupo, marca y SKU.
// Cada filtro presente se agrega con AND; la comparación es sensible a mayúsculas.
func (r *ItemRepo) Search(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumnsList + ` FROM items WHERE 1=1`
	var args []any
	like := func(column, value string) {
		args = append(args, "%"+value+"%")
		query += fmt.Sprintf(" AND %s LIKE $%d", column, len(args))
	}
	if filter.Name != "" {
		like("item_name", filter.Name)
	}
	if filter.Group != "" {
		like("item_group", filter.Group)
	}
	if filter.Brand != "" {
		like("brand", filter.Brand)
	}
	if filter.SKU != "" {
		like("item_sku", filter.SKU)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.SKU, &it.Name, &it.UOM, &it.Group, &it.RetailPrice, &it.PurchasePrice,
			&it.WarrantyPeriod, &it.IsStockItem, &it.Brand, &it.Description,
			&it.SingleUnitDimensions, &it.SingleUnitWeight, &it.WeightUOM,
			&it.CountryOfOrigin, &it.Barcode, &it.BarcodeType); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Update aplica una actualización parcial vía el constructor con allowlist.
func (r *ItemRepo) Update(ctx context.Context, sku string, fields map[string]any) error {
	query, args, err := buildUpdate("items", itemColumns, fields, []string{"item_sku"}, []string{sku})
	if err != nil {
		return err
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo por SKU.
func (r *ItemRepo) Delete(ctx context.Context, sku string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM items WHERE item_sku = $1`, sku); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}
