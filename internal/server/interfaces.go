package server

import (
	"context"

	"github.com/tkarimov/pricewatch/internal/models"
)

// ProductRepository is the persistence surface for monitored products.
// Listing order is insertion order.
type ProductRepository interface {
	CreateProduct(ctx context.Context, name, url string) (models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	DeleteProduct(ctx context.Context, id int64) (models.Product, error)
}

// SettingsRepository stores the monitoring parameters.
type SettingsRepository interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	UpdateSettings(ctx context.Context, settings models.Settings) error
}

// Cache is the price-cache surface the API drives.
type Cache interface {
	UpdateOne(ctx context.Context, product models.Product) models.PriceOutcome
	UpdateBatch(ctx context.Context, products []models.Product) []models.ScrapedProduct
	Decorate(products []models.Product) []models.DecoratedProduct
	Evict(url string)
}
