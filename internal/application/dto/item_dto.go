package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemResponse salida de un artículo en la búsqueda.
type ItemResponse struct {
	ItemSKU              string          `json:"item_sku"`
	ItemName             string          `json:"item_name"`
	ItemUOM              string          `json:"item_uom"`
	ItemGroup            string          `json:"item_group"`
	RetailPrice          decimal.Decimal `json:"retail_price"`
	PurchasePrice        decimal.Decimal `json:"purchase_price"`
	WarrantyPeriod       int64           `json:"warranty_period"`
	IsStockItem          bool            `json:"is_stock_item"`
	Brand                string          `json:"brand"`
	Description          string          `json:"description"`
	SingleUnitDimensions string          `json:"single_unit_dimensions"`
	SingleUnitWeight     decimal.Decimal `json:"single_unit_weight"`
	WeightUOM            string          `json:"weight_uom"`
	CountryOfOrigin      string          `json:"country_of_origin"`
	Barcode              string          `json:"barcode"`
	BarcodeType          string          `json:"barcode_type"`
}

// FromItem convierte la entidad a su representación de API.
func FromItem(it *entity.Item) ItemResponse {
	return ItemResponse{
		ItemSKU:              it.SKU,
		ItemName:             it.Name,
		ItemUOM:              it.UOM,
		ItemGroup:            it.Group,
		RetailPrice:          it.RetailPrice,
		PurchasePrice:        it.PurchasePrice,
		WarrantyPeriod:       it.WarrantyPeriod,
		IsStockItem:          it.IsStockItem,
		Brand:                it.Brand,
		Description:          it.Description,
		SingleUnitDimensions: it.SingleUnitDimensions,
		SingleUnitWeight:     it.SingleUnitWeight,
		WeightUOM:            it.WeightUOM,
		CountryOfOrigin:      it.CountryOfOrigin,
		Barcode:              it.Barcode,
		BarcodeType:          it.BarcodeType,
	}
}

// FromItems convierte la lista completa.
func FromItems(items []*entity.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromItem(it))
	}
	return out
}
