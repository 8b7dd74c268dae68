package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kahvecikaan/product-manager/internal/domain"
	"github.com/mitchellh/mapstructure"
)

// CreateRequest is the body sent to POST /products.
// It carries no id, the catalog assigns one.
type CreateRequest struct {
	ProductName string `json:"productName"`
	SerialNum   string `json:"serialNum"`
	ProductDesc string `json:"productDesc"`
	ImageURL    string `json:"imageUrl"`
	Price       int    `json:"price"`
}

// ProductView is the body returned by GET /products/{serialNum}
type ProductView struct {
	ID          int    `json:"id"`
	ProductName string `json:"productName"`
	SerialNum   string `json:"serialNum"`
	ProductDesc string `json:"productDesc"`
	ImageURL    string `json:"imageUrl"`
	Price       int    `json:"price"`
}

// NewCreateRequest maps a product to its creation payload
func NewCreateRequest(p domain.Product) CreateRequest {
	return CreateRequest{
		ProductName: p.Name,
		SerialNum:   p.SKU,
		ProductDesc: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
	}
}

// Product maps the view back to the local record, id included
func (v ProductView) Product() domain.Product {
	return domain.Product{
		ID:          v.ID,
		Name:        v.ProductName,
		SKU:         v.SerialNum,
		Description: v.ProductDesc,
		ImageURL:    v.ImageURL,
		Price:       v.Price,
	}
}

// DecodeProductView decodes a read payload.
//
// The catalog is free to name its fields productName, ProductName,
// product_name and so on, so keys are matched after normalization
// instead of relying on the json package's case folding.
func DecodeProductView(body []byte) (*ProductView, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &DecodeError{Body: body, Err: errors.New("unexpected data after product")}
	}
	if raw == nil {
		return nil, &DecodeError{Body: body, Err: errors.New("empty product")}
	}

	var view ProductView
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:   "json",
		MatchName: sameFieldName,
		Result:    &view,
	})
	if err != nil {
		return nil, fmt.Errorf("creating product decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}

	return &view, nil
}

func sameFieldName(key, field string) bool {
	return normalizeName(key) == normalizeName(field)
}

// normalizeName folds case and drops word separators: product_name,
// Product-Name and productName all become productname
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.ToLower(s))
}
