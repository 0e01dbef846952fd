package entity

import "github.com/shopspring/decimal"

// TransactionKey identidad compuesta de una transacción.
// El modelo asume a lo sumo una transacción abierta por tripleta.
type TransactionKey struct {
	ItemSKU     string
	WarehouseID string
	CustomerID  string
}

// Transaction representa una compra (y sus devoluciones acumuladas vía Quantity).
// Invariante: Quantity >= 0 en todo momento; una devolución solo puede restar
// hasta la cantidad vigente.
//
// Los campos opcionales de la compra pueden llegar en null, por eso son punteros.
// ID es un identificador interno generado al registrar la compra; la API
// direcciona siempre por TransactionKey.
type Transaction struct {
	ID                  string
	Key                 TransactionKey
	Date                *string
	SalesUOM            *string
	Quantity            *int64
	ShippingAddress     *string
	ShippingCity        *string
	ShippingState       *string
	ShippingZipcode     *string
	ShippingCountry     *string
	TransactionImage    *string
	TransactionBarcode  *string
	TransactionWeight   *decimal.Decimal
	TrackingInformation *string // <= 255 caracteres
}
