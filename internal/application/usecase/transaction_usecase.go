package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TransactionUseCase casos de uso de compras y devoluciones.
type TransactionUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionUseCase construye el caso de uso.
func NewTransactionUseCase(repo repository.TransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

// Purchase registra una compra. No se deduplica contra una transacción abierta
// para la misma tripleta (comportamiento heredado; ver DESIGN.md).
func (uc *TransactionUseCase) Purchase(ctx context.Context, data map[string]any) error {
	tx, err := transactionFromPayload(data)
	if err != nil {
		return err
	}
	tx.ID = uuid.New().String()
	return uc.repo.Create(ctx, tx)
}

// UpdatePurchase aplica una actualización parcial sobre la transacción de la
// clave compuesta. La clave misma es inmutable (ya rechazada por el validador).
func (uc *TransactionUseCase) UpdatePurchase(ctx context.Context, key entity.TransactionKey, data map[string]any) error {
	exists, err := uc.repo.Exists(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}
	return uc.repo.Update(ctx, key, data)
}

// Return procesa una devolución: la cantidad pedida se resta de la vigente
// mediante una única escritura condicional, de modo que ni siquiera
// devoluciones concurrentes sobre la misma clave pueden dejar la cantidad en
// negativo. Si la condición no se cumple se reporta ErrExceedsQuantity.
func (uc *TransactionUseCase) Return(ctx context.Context, key entity.TransactionKey, quantity int64) error {
	if _, err := uc.repo.GetQuantity(ctx, key); err != nil {
		return err
	}
	ok, err := uc.repo.Deduct(ctx, key, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrExceedsQuantity
	}
	return nil
}

// transactionFromPayload materializa la entidad desde el payload de compra
// validado. Los campos de la compra solo exigen presencia, así que cualquiera
// puede llegar en null; los de la clave compuesta se degradan a cadena vacía.
func transactionFromPayload(data map[string]any) (*entity.Transaction, error) {
	tx := &entity.Transaction{}
	var err error
	if tx.Key.ItemSKU, err = keyString(data, "item_sku"); err != nil {
		return nil, err
	}
	if tx.Key.WarehouseID, err = keyString(data, "warehouse_id"); err != nil {
		return nil, err
	}
	if tx.Key.CustomerID, err = keyString(data, "customer_id"); err != nil {
		return nil, err
	}
	if tx.Date, err = optString(data, "date"); err != nil {
		return nil, err
	}
	if tx.SalesUOM, err = optString(data, "sales_uom"); err != nil {
		return nil, err
	}
	if tx.Quantity, err = optInt(data, "transaction_quantity"); err != nil {
		return nil, err
	}
	if tx.ShippingAddress, err = optString(data, "shipping_address"); err != nil {
		return nil, err
	}
	if tx.ShippingCity, err = optString(data, "shipping_city"); err != nil {
		return nil, err
	}
	if tx.ShippingState, err = optString(data, "shipping_state"); err != nil {
		return nil, err
	}
	if tx.ShippingZipcode, err = optString(data, "shipping_zipcode"); err != nil {
		return nil, err
	}
	if tx.ShippingCountry, err = optString(data, "shipping_country"); err != nil {
		return nil, err
	}
	if tx.TransactionImage, err = optString(data, "transaction_image"); err != nil {
		return nil, err
	}
	if tx.TransactionBarcode, err = optString(data, "transaction_barcode"); err != nil {
		return nil, err
	}
	if tx.TransactionWeight, err = optDecimal(data, "transaction_weight"); err != nil {
		return nil, err
	}
	if tx.TrackingInformation, err = optString(data, "tracking_information"); err != nil {
		return nil, err
	}
	return tx, nil
}
