package repository

import (
	"context"
	"log/slog"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent/customer"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/common"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/entity"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/utils"
)

type CustomerRepository interface {
	// GetOrCreate finds a customer by name and billing address, creating
	// one if absent. Returns nil without error when name is empty.
	GetOrCreate(ctx context.Context, name, billingAddress, shippingAddress string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}

type customerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCustomerRepository(client *ent.Client, logger *slog.Logger) CustomerRepository {
	return &customerRepository{
		client: client,
		logger: logger,
	}
}

func (r *customerRepository) GetOrCreate(ctx context.Context, name, billingAddress, shippingAddress string) (*entity.Customer, error) {
	if name == "" {
		return nil, nil
	}

	q := r.client.Customer.Query().Where(customer.Name(name))
	if billingAddress != "" {
		q = q.Where(customer.BillingAddress(billingAddress))
	}
	existing, err := q.First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		r.logger.Error("failed to look up customer", "name", name, "error", err)
		return nil, common.WrapError(err, "database error")
	}
	if existing != nil {
		return utils.ToCustomer(existing), nil
	}

	cust, err := r.client.Customer.Create().
		SetName(name).
		SetNillableBillingAddress(strOrNil(billingAddress)).
		SetNillableShippingAddress(strOrNil(shippingAddress)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create customer", "name", name, "error", err)
		return nil, common.WrapError(err, "database error")
	}
	r.logger.Info("created customer", "customer_id", cust.ID, "name", name)
	return utils.ToCustomer(cust), nil
}

func (r *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	custs, err := r.client.Customer.Query().
		Order(ent.Asc(customer.FieldName)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list customers", "error", err)
		return nil, common.WrapError(err, "database error")
	}

	result := make([]*entity.Customer, len(custs))
	for i, c := range custs {
		result[i] = utils.ToCustomer(c)
	}
	return result, nil
}
