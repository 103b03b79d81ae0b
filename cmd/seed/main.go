package main

import (
	"context"
	"flag"
	"log"

	"shopcart/internal/config"
	"shopcart/internal/infrastructure/logger"
	"shopcart/internal/infrastructure/mysql"
	"shopcart/internal/product"
	"shopcart/internal/seed"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "internal/config/config.yaml", "path to the YAML config file")
	seedPath := flag.String("file", "internal/seed/testdata/products.yaml", "path to the product seed file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	products, err := seed.LoadProducts(*seedPath)
	if err != nil {
		zapLogger.Fatal("loading seed file", zap.String("path", *seedPath), zap.Error(err))
	}

	ctx := context.Background()
	db, err := mysql.NewConnection(ctx, cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := mysql.Migrate(ctx, db); err != nil {
			zapLogger.Fatal("migrating schema", zap.Error(err))
		}
	}

	svc := product.NewService(db)
	for _, p := range products {
		saved, err := svc.Save(ctx, p)
		if err != nil {
			zapLogger.Fatal("saving product", zap.String("name", p.Name), zap.Error(err))
		}
		zapLogger.Info("product seeded", zap.Int64("productId", saved.ID), zap.String("name", saved.Name))
	}

	zapLogger.Info("seed finished", zap.Int("count", len(products)))
}
