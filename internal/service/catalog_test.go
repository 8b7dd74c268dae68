package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-manager/internal/domain"
	httpTransport "github.com/kahvecikaan/product-manager/internal/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	created []httpTransport.CreateRequest
	fetched []string
	removed []string

	result httpTransport.Result
	view   *httpTransport.ProductView
	err    error
}

func (f *fakeTransport) Create(_ context.Context, req httpTransport.CreateRequest) (httpTransport.Result, error) {
	f.created = append(f.created, req)
	return f.result, f.err
}

func (f *fakeTransport) Fetch(_ context.Context, sku string) (*httpTransport.ProductView, httpTransport.Result, error) {
	f.fetched = append(f.fetched, sku)
	return f.view, f.result, f.err
}

func (f *fakeTransport) Remove(_ context.Context, sku string) (httpTransport.Result, error) {
	f.removed = append(f.removed, sku)
	return f.result, f.err
}

func newTestService(ft *fakeTransport) CatalogService {
	return NewCatalogService(ft, domain.NewValidation(), hclog.NewNullLogger())
}

func status(code int) httpTransport.Result {
	return httpTransport.Result{StatusCode: code, Reason: http.StatusText(code)}
}

func TestRegister(t *testing.T) {
	ft := &fakeTransport{result: status(http.StatusCreated)}
	s := newTestService(ft)

	err := s.Register(context.Background(), &domain.Product{
		Name:        "Shirt",
		SKU:         "AB1",
		Description: "Blue shirt",
		ImageURL:    "http://x/i.png",
		Price:       199,
	})
	require.NoError(t, err)

	require.Len(t, ft.created, 1)
	assert.Equal(t, httpTransport.CreateRequest{
		ProductName: "Shirt",
		SerialNum:   "AB1",
		ProductDesc: "Blue shirt",
		ImageURL:    "http://x/i.png",
		Price:       199,
	}, ft.created[0])
}

func TestRegisterOutcomes(t *testing.T) {
	transportErr := errors.New("connection refused")

	testCases := []struct {
		name    string
		product domain.Product
		result  httpTransport.Result
		err     error
		sent    int
		check   func(t *testing.T, err error)
	}{
		{
			name:    "Invalid locally",
			product: domain.Product{Name: "Shirt", SKU: "WAY-TOO-LONG-SKU"},
			sent:    0,
			check: func(t *testing.T, err error) {
				var verrs domain.ValidationErrors
				require.ErrorAs(t, err, &verrs)
				assert.Equal(t, "SKU", verrs[0].Field)
			},
		},
		{
			name:    "Already registered",
			product: domain.Product{SKU: "AB1"},
			result:  status(http.StatusConflict),
			sent:    1,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrProductExists)
			},
		},
		{
			name:    "Rejected",
			product: domain.Product{SKU: "AB1"},
			result:  status(http.StatusBadRequest),
			sent:    1,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrProductRejected)
				assert.ErrorIs(t, err, httpTransport.ErrUnexpectedStatus)
			},
		},
		{
			name:    "Transport failure",
			product: domain.Product{SKU: "AB1"},
			err:     transportErr,
			sent:    1,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, transportErr)
				assert.NotErrorIs(t, err, domain.ErrProductRejected)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ft := &fakeTransport{result: tc.result, err: tc.err}
			s := newTestService(ft)

			err := s.Register(context.Background(), &tc.product)
			require.Error(t, err)
			assert.Len(t, ft.created, tc.sent)
			tc.check(t, err)
		})
	}
}

func TestFindBySKU(t *testing.T) {
	ft := &fakeTransport{
		result: status(http.StatusOK),
		view: &httpTransport.ProductView{
			ID:          4,
			ProductName: "Shirt",
			SerialNum:   "AB1",
			Price:       199,
		},
	}
	s := newTestService(ft)

	p, err := s.FindBySKU(context.Background(), "AB1")
	require.NoError(t, err)
	assert.Equal(t, &domain.Product{ID: 4, Name: "Shirt", SKU: "AB1", Price: 199}, p)
	assert.Equal(t, []string{"AB1"}, ft.fetched)
}

func TestFindBySKUNotFound(t *testing.T) {
	ft := &fakeTransport{result: status(http.StatusNotFound)}
	s := newTestService(ft)

	p, err := s.FindBySKU(context.Background(), "AB1")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestFindBySKUBlankSendsNothing(t *testing.T) {
	ft := &fakeTransport{}
	s := newTestService(ft)

	_, err := s.FindBySKU(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Empty(t, ft.fetched)
}

func TestFindBySKUDecodeError(t *testing.T) {
	ft := &fakeTransport{
		result: status(http.StatusOK),
		err:    &httpTransport.DecodeError{Body: []byte("{"), Err: errors.New("unexpected EOF")},
	}
	s := newTestService(ft)

	_, err := s.FindBySKU(context.Background(), "AB1")
	assert.ErrorIs(t, err, httpTransport.ErrDecode)
	assert.NotErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDelete(t *testing.T) {
	testCases := []struct {
		name  string
		code  int
		check func(t *testing.T, err error)
	}{
		{"Deleted", http.StatusNoContent, func(t *testing.T, err error) { assert.NoError(t, err) }},
		{"Not found", http.StatusNotFound, func(t *testing.T, err error) { assert.ErrorIs(t, err, domain.ErrProductNotFound) }},
		{"Failed", http.StatusInternalServerError, func(t *testing.T, err error) { assert.ErrorIs(t, err, httpTransport.ErrUnexpectedStatus) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ft := &fakeTransport{result: status(tc.code)}
			s := newTestService(ft)

			err := s.Delete(context.Background(), "AB1")
			tc.check(t, err)
			assert.Equal(t, []string{"AB1"}, ft.removed)
		})
	}
}
