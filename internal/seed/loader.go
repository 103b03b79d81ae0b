package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.yaml.in/yaml/v3"

	"shopcart/internal/domain"
)

type file struct {
	Products []productEntry `yaml:"products"`
}

// Price stays textual so 10.00 does not pass through float64.
type productEntry struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
}

// LoadProducts reads the seed file at path.
func LoadProducts(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}
	return ParseProducts(data)
}

func ParseProducts(data []byte) ([]domain.Product, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	products := make([]domain.Product, 0, len(f.Products))
	for i, entry := range f.Products {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("products[%d]: name is required", i)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(entry.Price))
		if err != nil {
			return nil, fmt.Errorf("products[%d]: invalid price %q: %w", i, entry.Price, err)
		}
		if price.IsNegative() {
			return nil, fmt.Errorf("products[%d]: price must not be negative", i)
		}
		products = append(products, domain.Product{
			Name:        name,
			Description: entry.Description,
			Price:       price,
		})
	}
	return products, nil
}
