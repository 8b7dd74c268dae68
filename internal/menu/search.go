package menu

import (
	"context"
	"errors"

	"github.com/kahvecikaan/product-manager/internal/domain"
	httpTransport "github.com/kahvecikaan/product-manager/internal/transport/http"
)

// search looks a product up by SKU and offers to remove it
func (m *Menu) search(ctx context.Context) error {
	sku, err := m.prompt("SKU")
	if err != nil {
		return err
	}

	m.console.ShowCursor(false)
	m.console.Clear()

	product, err := m.catalog.FindBySKU(ctx, sku)
	if err != nil {
		m.reportLookupError(err)
		m.console.Pause()
		return nil
	}

	for {
		m.showProduct(product)
		m.console.Println("(R)emove  (Esc) Back to menu")

		key, err := m.console.ReadKey()
		if err != nil {
			return err
		}

		// every other key leads back to the main menu
		if !key.Is('r') {
			return nil
		}

		m.console.Clear()
		m.showProduct(product)

		ok, err := m.confirm("Remove product?")
		if err != nil {
			return err
		}
		if !ok {
			m.console.Clear()
			continue
		}

		m.remove(ctx, product)
		m.console.Pause()
		return nil
	}
}

func (m *Menu) remove(ctx context.Context, product *domain.Product) {
	err := m.catalog.Delete(ctx, product.SKU)

	switch {
	case err == nil:
		m.console.Success("Product deleted")
	case errors.Is(err, domain.ErrProductNotFound):
		m.console.Failure("Product not found")
	default:
		m.console.Failure("Deletion failed: %v", err)
	}
}

func (m *Menu) reportLookupError(err error) {
	var (
		decodeErr *httpTransport.DecodeError
		statusErr *httpTransport.StatusError
	)

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		m.console.Failure("Product not found")
	case errors.As(err, &decodeErr):
		m.console.Failure("Could not read the product: %v", decodeErr.Err)
		m.console.Printf("Response content: %s\n", decodeErr.Body)
	case errors.As(err, &statusErr):
		m.console.Failure("Error: %s", statusErr.Result)
		if statusErr.Result.Body != "" {
			m.console.Printf("Response content: %s\n", statusErr.Result.Body)
		}
	default:
		m.console.Failure("An error occurred: %v", err)
	}
}
