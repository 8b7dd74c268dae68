package domain

// Product represents a catalog product as the operator sees it
type Product struct {
	// The ID of the product, assigned by the catalog
	//
	// example: 1
	ID int

	// The name of the product
	//
	// max length: 50
	// example: Shirt
	Name string `validate:"max=50"`

	// The SKU (serial number) of the product, the catalog lookup key
	//
	// required: true
	// max length: 10
	// example: AB1
	SKU string `validate:"required,max=10"`

	// The description of the product
	//
	// max length: 50
	// example: Blue shirt
	Description string `validate:"max=50"`

	// The image of the product
	//
	// max length: 100
	// example: http://x/i.png
	ImageURL string `validate:"max=100"`

	// The price of the product
	//
	// example: 199
	Price int
}
