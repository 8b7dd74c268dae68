package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-manager/internal/domain"
	httpTransport "github.com/kahvecikaan/product-manager/internal/transport/http"
)

// Transport is the remote catalog API as seen by the service
type Transport interface {
	Create(ctx context.Context, req httpTransport.CreateRequest) (httpTransport.Result, error)
	Fetch(ctx context.Context, sku string) (*httpTransport.ProductView, httpTransport.Result, error)
	Remove(ctx context.Context, sku string) (httpTransport.Result, error)
}

type CatalogService interface {
	Register(ctx context.Context, product *domain.Product) error
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
	Delete(ctx context.Context, sku string) error
}

type catalogService struct {
	transport Transport
	validator *domain.Validation
	logger    hclog.Logger
}

func NewCatalogService(
	transport Transport,
	validator *domain.Validation,
	logger hclog.Logger) CatalogService {
	return &catalogService{
		transport: transport,
		validator: validator,
		logger:    logger,
	}
}

// Register validates product locally and sends it to the catalog.
// Local violations are returned as domain.ValidationErrors and nothing is sent.
func (s *catalogService) Register(ctx context.Context, product *domain.Product) error {
	s.logger.Debug("Registering product", "sku", product.SKU)

	if errs := s.validator.Validate(product); len(errs) > 0 {
		s.logger.Debug("Product failed validation", "sku", product.SKU, "errors", errs.Error())
		return errs
	}

	res, err := s.transport.Create(ctx, httpTransport.NewCreateRequest(*product))
	if err != nil {
		s.logger.Error("Unable to register product", "sku", product.SKU, "error", err)
		return fmt.Errorf("registering product: %w", err)
	}

	switch {
	case res.OK():
		return nil
	case res.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrProductExists, product.SKU)
	default:
		return fmt.Errorf("%w: %w", domain.ErrProductRejected, &httpTransport.StatusError{Result: res})
	}
}

// FindBySKU returns domain.ErrProductNotFound when the catalog has no such product
func (s *catalogService) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	s.logger.Debug("Getting product by SKU", "sku", sku)

	// an empty key would address the collection rather than a product
	if strings.TrimSpace(sku) == "" {
		return nil, domain.ErrProductNotFound
	}

	view, _, err := s.transport.Fetch(ctx, sku)
	if err != nil {
		s.logger.Error("Unable to get the product by SKU", "sku", sku, "error", err)
		return nil, fmt.Errorf("fetching product %q: %w", sku, err)
	}

	if view == nil {
		return nil, domain.ErrProductNotFound
	}

	product := view.Product()
	return &product, nil
}

func (s *catalogService) Delete(ctx context.Context, sku string) error {
	s.logger.Debug("Deleting product", "sku", sku)

	res, err := s.transport.Remove(ctx, sku)
	if err != nil {
		s.logger.Error("Unable to delete product", "sku", sku, "error", err)
		return fmt.Errorf("deleting product %q: %w", sku, err)
	}

	switch {
	case res.OK():
		return nil
	case res.StatusCode == http.StatusNotFound:
		return domain.ErrProductNotFound
	default:
		s.logger.Error("Unable to delete product", "sku", sku, "status", res.StatusCode)
		return &httpTransport.StatusError{Result: res}
	}
}
