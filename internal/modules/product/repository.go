package product

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for product data storage.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*Product, error)
	ListByVendorID(ctx context.Context, vendorID uuid.UUID) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}
