package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo repositorio de artículos en memoria, indexado por SKU.
type ItemRepo struct {
	mu    sync.RWMutex
	items map[string]*entity.Item
}

// NewItemRepository construye el repositorio vacío.
func NewItemRepository() *ItemRepo {
	return &ItemRepo{items: make(map[string]*entity.Item)}
}

func (r *ItemRepo) Exists(ctx context.Context, sku string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.items[sku]
	return ok, nil
}

func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.SKU]; ok {
		return domain.ErrDuplicate
	}
	cp := *item
	r.items[item.SKU] = &cp
	return nil
}

func (r *ItemRepo) Search(ctx context.Context, filter entity.ItemFilter) ([]*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []*entity.Item
	for _, it := range r.items {
		if filter.Name != "" && !strings.Contains(it.Name, filter.Name) {
			continue
		}
		if filter.Group != "" && !strings.Contains(it.Group, filter.Group) {
			continue
		}
		if filter.Brand != "" && !strings.Contains(it.Brand, filter.Brand) {
			continue
		}
		if filter.SKU != "" && !strings.Contains(it.SKU, filter.SKU) {
			continue
		}
		cp := *it
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })
	return list, nil
}

func (r *ItemRepo) Update(ctx context.Context, sku string, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[sku]
	if !ok {
		return nil // mismo efecto que un UPDATE sin filas
	}
	updated := *it
	for name, v := range fields {
		if err := applyItemField(&updated, name, v); err != nil {
			return err
		}
	}
	r.items[sku] = &updated
	return nil
}

func (r *ItemRepo) Delete(ctx context.Context, sku string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, sku)
	return nil
}

// applyItemField espejo del allowlist de columnas del adaptador PostgreSQL:
// item_sku es identidad y no aparece aquí.
func applyItemField(it *entity.Item, name string, v any) error {
	var err error
	switch name {
	case "item_name":
		it.Name, err = textVal(name, v)
	case "item_uom":
		it.UOM, err = textVal(name, v)
	case "item_group":
		it.Group, err = textVal(name, v)
	case "retail_price":
		it.RetailPrice, err = numericVal(name, v)
	case "purchase_price":
		it.PurchasePrice, err = numericVal(name, v)
	case "warranty_period":
		it.WarrantyPeriod, err = integerVal(name, v)
	case "is_stock_item":
		it.IsStockItem, err = booleanVal(name, v)
	case "brand":
		it.Brand, err = textVal(name, v)
	case "description":
		it.Description, err = textVal(name, v)
	case "single_unit_dimensions":
		it.SingleUnitDimensions, err = textVal(name, v)
	case "single_unit_weight":
		it.SingleUnitWeight, err = numericVal(name, v)
	case "weight_uom":
		it.WeightUOM, err = textVal(name, v)
	case "country_of_origin":
		it.CountryOfOrigin, err = textVal(name, v)
	case "barcode":
		it.Barcode, err = textVal(name, v)
	case "barcode_type":
		it.BarcodeType, err = textVal(name, v)
	default:
		return fmt.Errorf("%w: campo no actualizable %q", domain.ErrInvalidInput, name)
	}
	return err
}
