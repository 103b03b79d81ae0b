package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProducts(t *testing.T) {
	products, err := LoadProducts("testdata/products.yaml")
	require.NoError(t, err)
	require.Len(t, products, 3)

	assert.Equal(t, "Book", products[0].Name)
	assert.Equal(t, "Paperback novel", products[0].Description)
	assert.Equal(t, "10.00", products[0].Price.StringFixed(2))
	assert.Equal(t, "1.5", products[1].Price.String())
	assert.Empty(t, products[1].Description)
	assert.Equal(t, "4.99", products[2].Price.String())
}

func TestLoadProducts_MissingFile(t *testing.T) {
	_, err := LoadProducts("testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading seed file")
}

func TestParseProducts_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"malformed yaml", "products: [", "parsing seed file"},
		{"missing name", "products:\n  - price: 1.00\n", "products[0]: name is required"},
		{"bad price", "products:\n  - name: Pen\n    price: cheap\n", `products[0]: invalid price "cheap"`},
		{"missing price", "products:\n  - name: Pen\n", "products[0]: invalid price"},
		{"negative price", "products:\n  - name: Pen\n    price: -2\n", "products[0]: price must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProducts([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseProducts_Empty(t *testing.T) {
	products, err := ParseProducts([]byte("products: []\n"))
	require.NoError(t, err)
	assert.Empty(t, products)
}
