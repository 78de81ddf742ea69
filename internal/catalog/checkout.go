package catalog

import (
	"context"
	"fmt"

	"github.com/shoplight/shoplight/internal/domain"
)

// CreateCheckoutSession opens a hosted payment session for the cart and
// returns its id. Pure passthrough; the backend owns all payment logic.
// Not cached and not in the edge table: no query depends on session
// state.
func (c *Catalog) CreateCheckoutSession(ctx context.Context, items []domain.ShoppingItem, successURL, cancelURL string) (string, error) {
	if c.State() != domain.Ready {
		return "", domain.ErrBackendUnavailable
	}
	if len(items) == 0 {
		return "", fmt.Errorf("%w: cart is empty", domain.ErrInvalidInput)
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return "", fmt.Errorf("%w: quantity must be positive for %q", domain.ErrInvalidInput, item.ProductName)
		}
	}
	return c.backend.CreateCheckoutSession(ctx, items, successURL, cancelURL)
}

// CheckoutSessionStatus polls a session's outcome. Deliberately
// uncached: callers poll until the session settles.
func (c *Catalog) CheckoutSessionStatus(ctx context.Context, sessionID string) (*domain.CheckoutStatus, error) {
	if c.State() != domain.Ready {
		return nil, domain.ErrBackendUnavailable
	}
	return c.backend.GetCheckoutSessionStatus(ctx, sessionID)
}

// IsCheckoutConfigured reports whether payments are set up
func (c *Catalog) IsCheckoutConfigured(ctx context.Context) (bool, error) {
	return query(ctx, c, KeyCheckoutConfigured, c.backend.IsCheckoutConfigured)
}
