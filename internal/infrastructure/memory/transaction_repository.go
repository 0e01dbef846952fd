package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo repositorio de transacciones en memoria, indexado por la
// clave compuesta. Una compra repetida para la misma tripleta reemplaza a la
// anterior: es la aproximación de fila única más cercana al comportamiento
// sin constraint del adaptador SQL (ver DESIGN.md).
type TransactionRepo struct {
	mu  sync.Mutex
	txs map[entity.TransactionKey]*entity.Transaction
}

// NewTransactionRepository construye el repositorio vacío.
func NewTransactionRepository() *TransactionRepo {
	return &TransactionRepo{txs: make(map[entity.TransactionKey]*entity.Transaction)}
}

func (r *TransactionRepo) Exists(ctx context.Context, key entity.TransactionKey) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.txs[key]
	return ok, nil
}

func (r *TransactionRepo) Create(ctx context.Context, tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *tx
	r.txs[tx.Key] = &cp
	return nil
}

func (r *TransactionRepo) Update(ctx context.Context, key entity.TransactionKey, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txs[key]
	if !ok {
		return nil // mismo efecto que un UPDATE sin filas
	}
	updated := *t
	for name, v := range fields {
		var err error
		switch name {
		case "date":
			updated.Date, err = toText(name, v)
		case "sales_uom":
			updated.SalesUOM, err = toText(name, v)
		case "transaction_quantity":
			updated.Quantity, err = toInteger(name, v)
		case "shipping_address":
			updated.ShippingAddress, err = toText(name, v)
		case "shipping_city":
			updated.ShippingCity, err = toText(name, v)
		case "shipping_state":
			updated.ShippingState, err = toText(name, v)
		case "shipping_zipcode":
			updated.ShippingZipcode, err = toText(name, v)
		case "shipping_country":
			updated.ShippingCountry, err = toText(name, v)
		case "transaction_image":
			updated.TransactionImage, err = toText(name, v)
		case "transaction_barcode":
			updated.TransactionBarcode, err = toText(name, v)
		case "transaction_weight":
			updated.TransactionWeight, err = toNumeric(name, v)
		case "tracking_information":
			updated.TrackingInformation, err = toText(name, v)
		default:
			err = fmt.Errorf("%w: campo no actualizable %q", domain.ErrInvalidInput, name)
		}
		if err != nil {
			return err
		}
	}
	r.txs[key] = &updated
	return nil
}

func (r *TransactionRepo) GetQuantity(ctx context.Context, key entity.TransactionKey) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txs[key]
	if !ok {
		return 0, domain.ErrNotFound
	}
	if t.Quantity == nil {
		return 0, nil
	}
	return *t.Quantity, nil
}

// Deduct compara y resta bajo el mismo lock: el equivalente en memoria del
// UPDATE condicional del adaptador SQL.
func (r *TransactionRepo) Deduct(ctx context.Context, key entity.TransactionKey, qty int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.txs[key]
	if !ok || t.Quantity == nil || *t.Quantity < qty {
		return false, nil
	}
	remaining := *t.Quantity - qty
	t.Quantity = &remaining
	return true, nil
}
