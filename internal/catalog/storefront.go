package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shoplight/shoplight/internal/domain"
)

// AllStoreItems returns the full storefront listing
func (c *Catalog) AllStoreItems(ctx context.Context) ([]domain.StoreItem, error) {
	return query(ctx, c, KeyStoreItems, c.backend.GetAllStoreItems)
}

// StoreItem returns one product, or nil if the id is unknown
func (c *Catalog) StoreItem(ctx context.Context, id string) (*domain.StoreItem, error) {
	return query(ctx, c, paramKey(KeyStoreItem, id), func(ctx context.Context) (*domain.StoreItem, error) {
		return c.backend.GetStoreItem(ctx, id)
	})
}

// AddStoreItem lists a new product and returns its generated id.
// The item's ID field is ignored; the backend assigns one.
func (c *Catalog) AddStoreItem(ctx context.Context, item domain.StoreItem) (string, error) {
	if err := validateStoreItem(item); err != nil {
		return "", err
	}
	return mutate(ctx, c, MutAddStoreItem, func(ctx context.Context) (string, error) {
		return c.backend.AddStoreItem(ctx, item)
	})
}

// UpdateStoreItem replaces a product's full field set
func (c *Catalog) UpdateStoreItem(ctx context.Context, item domain.StoreItem) error {
	if err := validateStoreItem(item); err != nil {
		return err
	}
	return mutateVoid(ctx, c, MutUpdateStoreItem, func(ctx context.Context) error {
		return c.backend.UpdateStoreItem(ctx, item)
	})
}

func validateStoreItem(item domain.StoreItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: store item title is required", domain.ErrInvalidInput)
	}
	if item.PriceCents < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	return nil
}
