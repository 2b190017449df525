package utils

import (
	"github.com/google/uuid"

	"github.com/RavishanPerera/oracle-erp-invoice-ocr/gen/ent"
	"github.com/RavishanPerera/oracle-erp-invoice-ocr/internal/entity"
)

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	inv := &entity.Invoice{
		ID:                  e.ID,
		InvoiceNumber:       e.InvoiceNumber,
		InvoiceDate:         e.InvoiceDate,
		Status:              e.Status,
		Subtotal:            e.Subtotal,
		Discount:            e.Discount,
		TaxRate:             e.TaxRate,
		TotalTax:            e.TotalTax,
		BalanceDue:          e.BalanceDue,
		TotalAmount:         e.TotalAmount,
		Currency:            e.Currency,
		PaymentTerms:        e.PaymentTerms,
		BankName:            e.BankName,
		Branch:              e.Branch,
		AccountNumber:       e.AccountNumber,
		PaymentInstructions: e.PaymentInstructions,
		SourceFile:          e.SourceFile,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
	if s := e.Edges.Supplier; s != nil {
		inv.SupplierID = uuidPtr(s.ID)
		inv.SupplierName = s.Name
	}
	if c := e.Edges.Customer; c != nil {
		inv.CustomerID = uuidPtr(c.ID)
		inv.CustomerName = c.Name
	}
	return inv
}

func ToInvoiceItem(e *ent.InvoiceItem) *entity.InvoiceItem {
	return &entity.InvoiceItem{
		ID:          e.ID,
		Description: e.Description,
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
		LineTotal:   e.LineTotal,
		CreatedAt:   e.CreatedAt,
	}
}

func ToSupplier(e *ent.Supplier) *entity.Supplier {
	return &entity.Supplier{
		ID:        e.ID,
		Name:      e.Name,
		Address:   e.Address,
		Email:     e.Email,
		Phone:     e.Phone,
		CreatedAt: e.CreatedAt,
	}
}

func ToCustomer(e *ent.Customer) *entity.Customer {
	return &entity.Customer{
		ID:              e.ID,
		Name:            e.Name,
		BillingAddress:  e.BillingAddress,
		ShippingAddress: e.ShippingAddress,
		CreatedAt:       e.CreatedAt,
	}
}

func uuidPtr(id uuid.UUID) *uuid.UUID {
	return &id
}
