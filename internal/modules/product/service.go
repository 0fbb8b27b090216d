package product

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/nthanfp/vhiweb-assignment/internal/modules/vendor"
	"github.com/nthanfp/vhiweb-assignment/internal/validate"
	"github.com/shopspring/decimal"
)

// Service defines owner-scoped catalog business logic. Every operation takes
// the authenticated user explicitly and re-derives the caller's vendor before
// touching any product.
type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]*Product, error)
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Product, error)
	Get(ctx context.Context, userID, productID uuid.UUID) (*Product, error)
	Update(ctx context.Context, userID, productID uuid.UUID, req UpdateRequest) (*Product, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}

// CreateRequest holds the payload for a new product. Price and stock are
// pointers so that an absent field is distinguishable from zero.
type CreateRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

// Validate checks the payload field constraints.
func (r CreateRequest) Validate() error {
	errs := validate.Errors{}
	errs.Required("name", r.Name)
	if r.Price == nil {
		errs.Add("price", "The price field is required.")
	} else if r.Price.IsNegative() {
		errs.Add("price", "The price field must be at least 0.")
	}
	if r.Stock == nil {
		errs.Add("stock", "The stock field is required.")
	} else if *r.Stock < 0 {
		errs.Add("stock", "The stock field must be at least 0.")
	}
	return errs.Err()
}

// UpdateRequest holds a partial update. Only the fields on this allow-list can
// be overwritten; absent fields keep their stored value.
type UpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

// Validate checks the constraints of whichever fields are present.
func (r UpdateRequest) Validate() error {
	errs := validate.Errors{}
	if r.Name != nil && *r.Name == "" {
		errs.Add("name", "The name field is required.")
	}
	if r.Price != nil && r.Price.IsNegative() {
		errs.Add("price", "The price field must be at least 0.")
	}
	if r.Stock != nil && *r.Stock < 0 {
		errs.Add("stock", "The stock field must be at least 0.")
	}
	return errs.Err()
}

type service struct {
	repo    Repository
	vendors vendor.Repository
}

func NewService(repo Repository, vendors vendor.Repository) Service {
	return &service{repo: repo, vendors: vendors}
}

// callerVendor resolves the vendor owned by userID. A user without a vendor
// fails the ownership precondition the same way a foreign product does, so
// the response never reveals which case occurred.
func (s *service) callerVendor(ctx context.Context, userID uuid.UUID) (*vendor.Vendor, error) {
	v, err := s.vendors.GetVendorByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, vendor.ErrNotFound) {
			return nil, ErrNotOwned
		}
		return nil, err
	}
	return v, nil
}

// ownedProduct looks up productID and enforces that the caller's vendor owns
// it. A missing product is ErrNotFound; a foreign one is ErrNotOwned.
func (s *service) ownedProduct(ctx context.Context, userID, productID uuid.UUID) (*Product, error) {
	v, err := s.callerVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	p, err := s.repo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p.VendorID != v.ID {
		return nil, ErrNotOwned
	}
	return p, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*Product, error) {
	v, err := s.callerVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByVendorID(ctx, v.ID)
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Product, error) {
	v, err := s.callerVendor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &Product{
		ID:          uuid.New(),
		VendorID:    v.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, userID, productID uuid.UUID) (*Product, error) {
	return s.ownedProduct(ctx, userID, productID)
}

func (s *service) Update(ctx context.Context, userID, productID uuid.UUID, req UpdateRequest) (*Product, error) {
	p, err := s.ownedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	p, err := s.ownedProduct(ctx, userID, productID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, p.ID)
}
