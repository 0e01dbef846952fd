package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD para artículos. Los payloads llegan ya
// validados por el paquete validation; aquí va la verificación de existencia
// contra el almacén y el mapeo a entidad.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create registra un artículo nuevo. Falla con ErrDuplicate si el SKU ya existe.
func (uc *ItemUseCase) Create(ctx context.Context, data map[string]any) error {
	item, err := itemFromPayload(data)
	if err != nil {
		return err
	}
	exists, err := uc.repo.Exists(ctx, item.SKU)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicate
	}
	return uc.repo.Create(ctx, item)
}

// Search busca artículos por los filtros reconocidos. Lista vacía cuando no
// hay coincidencias; el handler la traduce a NotFound.
func (uc *ItemUseCase) Search(ctx context.Context, filter entity.ItemFilter) ([]dto.ItemResponse, error) {
	items, err := uc.repo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromItems(items), nil
}

// Update aplica una actualización parcial sobre un SKU existente.
func (uc *ItemUseCase) Update(ctx context.Context, sku string, data map[string]any) error {
	exists, err := uc.repo.Exists(ctx, sku)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Update(ctx, sku, data)
}

// Delete elimina un artículo existente por SKU.
func (uc *ItemUseCase) Delete(ctx context.Context, sku string) error {
	exists, err := uc.repo.Exists(ctx, sku)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, sku)
}

// itemFromPayload materializa la entidad desde el payload de creación validado.
func itemFromPayload(data map[string]any) (*entity.Item, error) {
	item := &entity.Item{}
	var err error
	if item.SKU, err = reqString(data, "item_sku"); err != nil {
		return nil, err
	}
	if item.Name, err = reqString(data, "item_name"); err != nil {
		return nil, err
	}
	if item.UOM, err = reqString(data, "item_uom"); err != nil {
		return nil, err
	}
	if item.Group, err = reqString(data, "item_group"); err != nil {
		return nil, err
	}
	if item.RetailPrice, err = reqDecimal(data, "retail_price"); err != nil {
		return nil, err
	}
	if item.PurchasePrice, err = reqDecimal(data, "purchase_price"); err != nil {
		return nil, err
	}
	if item.WarrantyPeriod, err = reqInt(data, "warranty_period"); err != nil {
		return nil, err
	}
	if item.IsStockItem, err = reqBool(data, "is_stock_item"); err != nil {
		return nil, err
	}
	if item.Brand, err = reqString(data, "brand"); err != nil {
		return nil, err
	}
	if item.Description, err = reqString(data, "description"); err != nil {
		return nil, err
	}
	if item.SingleUnitDimensions, err = reqString(data, "single_unit_dimensions"); err != nil {
		return nil, err
	}
	if item.SingleUnitWeight, err = reqDecimal(data, "single_unit_weight"); err != nil {
		return nil, err
	}
	if item.WeightUOM, err = reqString(data, "weight_uom"); err != nil {
		return nil, err
	}
	if item.CountryOfOrigin, err = reqString(data, "country_of_origin"); err != nil {
		return nil, err
	}
	if item.Barcode, err = reqString(data, "barcode"); err != nil {
		return nil, err
	}
	if item.BarcodeType, err = reqString(data, "barcode_type"); err != nil {
		return nil, err
	}
	return item, nil
}
