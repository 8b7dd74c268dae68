package menu

import (
	"context"
	"errors"

	"github.com/kahvecikaan/product-manager/internal/domain"
)

// register runs the new-product screen. Declining the summary or entering
// a product that fails local validation starts the screen over.
func (m *Menu) register(ctx context.Context) error {
	for {
		again, err := m.registerOnce(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
		m.console.Clear()
	}
}

func (m *Menu) registerOnce(ctx context.Context) (bool, error) {
	name, err := m.prompt("Name")
	if err != nil {
		return false, err
	}

	sku, err := m.prompt("SKU")
	if err != nil {
		return false, err
	}

	description, err := m.prompt("Description")
	if err != nil {
		return false, err
	}

	imageURL, err := m.prompt("Image (URL)")
	if err != nil {
		return false, err
	}

	price, err := m.promptInt("Price", "Price must be entered as a number!")
	if err != nil {
		return false, err
	}

	ok, err := m.confirm("Is this correct?")
	if err != nil {
		return false, err
	}
	if !ok {
		m.logger.Debug("Registration discarded", "sku", sku)
		return true, nil
	}

	product := &domain.Product{
		Name:        name,
		SKU:         sku,
		Description: description,
		ImageURL:    imageURL,
		Price:       price,
	}

	return m.save(ctx, product), nil
}

// save submits product and reports the outcome.
// It returns true when the product must be entered again.
func (m *Menu) save(ctx context.Context, product *domain.Product) bool {
	err := m.catalog.Register(ctx, product)

	var validationErrs domain.ValidationErrors
	if errors.As(err, &validationErrs) {
		m.console.Failure("%s", validationErrs.Error())
		m.console.Pause()
		return true
	}

	m.console.Clear()

	switch {
	case err == nil:
		m.console.Success("Product saved")
	case errors.Is(err, domain.ErrProductExists):
		m.console.Failure("Product already registered")
	case errors.Is(err, domain.ErrProductRejected):
		m.console.Failure("Invalid data")
	default:
		m.console.Failure("Could not save product: %v", err)
	}

	m.console.Pause()
	return false
}
