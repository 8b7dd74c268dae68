package catalogtest

import (
	"errors"
	"sync"
)

var (
	errNotFound  = errors.New("product not found")
	errDuplicate = errors.New("product already exists")
)

// Record is the catalog's own representation of a product
type Record struct {
	ID          int    `json:"id"`
	ProductName string `json:"productName" validate:"required,max=50"`
	SerialNum   string `json:"serialNum" validate:"required,max=10"`
	ProductDesc string `json:"productDesc" validate:"max=50"`
	ImageURL    string `json:"imageUrl" validate:"max=100"`
	Price       int    `json:"price" validate:"min=0"`
}

type memoryRepository struct {
	products []*Record
	mutex    sync.RWMutex
}

func newMemoryRepository(seed ...Record) *memoryRepository {
	r := &memoryRepository{}
	for _, rec := range seed {
		rec := rec
		if rec.ID == 0 {
			rec.ID = r.nextID()
		}
		r.products = append(r.products, &rec)
	}
	return r
}

func (r *memoryRepository) GetBySerialNum(serialNum string) (*Record, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, product := range r.products {
		if product.SerialNum == serialNum {
			cp := *product
			return &cp, nil
		}
	}

	return nil, errNotFound
}

func (r *memoryRepository) Add(product *Record) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, p := range r.products {
		if p.SerialNum == product.SerialNum {
			return errDuplicate
		}
	}

	product.ID = r.nextID()
	cp := *product
	r.products = append(r.products, &cp)
	return nil
}

func (r *memoryRepository) Delete(serialNum string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for i, product := range r.products {
		if product.SerialNum == serialNum {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}

	return errNotFound
}

func (r *memoryRepository) All() []Record {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]Record, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out
}

func (r *memoryRepository) nextID() int {
	if len(r.products) == 0 {
		return 1
	}
	return r.products[len(r.products)-1].ID + 1
}
