package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound means no product exists with the given id.
	ErrNotFound = errors.New("product not found")
	// ErrNotOwned means the product belongs to a different vendor, or the
	// caller has no vendor at all. Callers must not learn which.
	ErrNotOwned = errors.New("product not owned by caller")
)

// Product is a catalog item owned by exactly one vendor. Ownership never
// changes after creation.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
