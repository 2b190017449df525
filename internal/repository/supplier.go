package repository

import (
	"context"
	"log/slog"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/supplier"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/common"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/entity"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/utils"
)

type SupplierRepository interface {
	// GetOrCreate finds a supplier by name and email, creating one if
	// absent. Returns nil without error when name is empty.
	GetOrCreate(ctx context.Context, name, address, email, phone string) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}

type supplierRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSupplierRepository(client *ent.Client, logger *slog.Logger) SupplierRepository {
	return &supplierRepository{
		client: client,
		logger: logger,
	}
}

func (r *supplierRepository) GetOrCreate(ctx context.Context, name, address, email, phone string) (*entity.Supplier, error) {
	if name == "" {
		return nil, nil
	}

	q := r.client.Supplier.Query().Where(supplier.Name(name))
	if email != "" {
		q = q.Where(supplier.Email(email))
	}
	existing, err := q.First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to look up supplier", "name", name, "error", err)
		return nil, common.WrapError(err, "database error")
	}
	if existing != nil {
		return utils.ToSupplier(existing), nil
	}

	sup, err := r.client.Supplier.Create().
		SetName(name).
		SetNillableAddress(strOrNil(address)).
		SetNillableEmail(strOrNil(email)).
		SetNillablePhone(strOrNil(phone)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create supplier", "name", name, "error", err)
		return nil, common.WrapError(err, "database error")
	}
	r.logger.Info("created supplier", "supplier_id", sup.ID, "name", name)
	return utils.ToSupplier(sup), nil
}

func (r *supplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	sups, err := r.client.Supplier.Query().
		Order(ent.Asc(supplier.FieldName)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list suppliers", "error", err)
		return nil, common.WrapError(err, "database error")
	}

	result := make([]*entity.Supplier, len(sups))
	for i, s := range sups {
		result[i] = utils.ToSupplier(s)
	}
	return result, nil
}
