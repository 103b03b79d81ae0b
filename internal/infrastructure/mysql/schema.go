package mysql

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = []struct {
	table string
	ddl   string
}{
	{"products", `
	CREATE TABLE IF NOT EXISTS products (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DECIMAL(10,2) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`},
	{"customers", `
	CREATE TABLE IF NOT EXISTS customers (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL,
		UNIQUE KEY uq_customers_email (email)
	)`},
	{"reserves", `
	CREATE TABLE IF NOT EXISTS reserves (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		description VARCHAR(255),
		customer_id BIGINT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (customer_id) REFERENCES customers(id),
		INDEX idx_reserves_customer (customer_id)
	)`},
	{"cart_items", `
	CREATE TABLE IF NOT EXISTS cart_items (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		reserve_id BIGINT NOT NULL,
		product_id BIGINT NOT NULL,
		quantity INT NOT NULL,
		FOREIGN KEY (reserve_id) REFERENCES reserves(id) ON DELETE CASCADE,
		FOREIGN KEY (product_id) REFERENCES products(id),
		INDEX idx_cart_items_reserve (reserve_id)
	)`},
}

// Tables lists the managed tables in creation order.
func Tables() []string {
	names := make([]string, len(schema))
	for i, s := range schema {
		names[i] = s.table
	}
	return names
}

// Migrate creates any missing table. It never alters existing ones.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("creating table %s: %w", s.table, err)
		}
	}
	return nil
}
