package entity

import "github.com/shopspring/decimal"

// Item representa un artículo del inventario, identificado por su SKU.
// Invariante de creación: PurchasePrice <= RetailPrice.
type Item struct {
	SKU                  string
	Name                 string
	UOM                  string // unidad de medida
	Group                string
	RetailPrice          decimal.Decimal
	PurchasePrice        decimal.Decimal
	WarrantyPeriod       int64 // meses
	IsStockItem          bool
	Brand                string
	Description          string
	SingleUnitDimensions string
	SingleUnitWeight     decimal.Decimal
	WeightUOM            string
	CountryOfOrigin      string
	Barcode              string
	BarcodeType          string
}

// ItemFilter filtros de búsqueda de artículos. Campos vacíos no filtran.
// Name, Group, Brand y SKU se comparan por subcadena (LIKE).
type ItemFilter struct {
	Name  string
	Group string
	Brand string
	SKU   string
}
