package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tkarimov/pricewatch/internal/models"
)

// Cache is a mock of the shared price cache.
type Cache struct {
	mock.Mock
}

// NewCache creates a mock bound to the test's lifecycle.
func NewCache(t interface {
	mock.TestingT
	Cleanup(func())
},
) *Cache {
	m := &Cache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Cache) UpdateOne(ctx context.Context, product models.Product) models.PriceOutcome {
	args := m.Called(ctx, product)
	return args.Get(0).(models.PriceOutcome)
}

func (m *Cache) UpdateBatch(ctx context.Context, products []models.Product) []models.ScrapedProduct {
	args := m.Called(ctx, products)
	var results []models.ScrapedProduct
	if args.Get(0) != nil {
		results = args.Get(0).([]models.ScrapedProduct)
	}
	return results
}

func (m *Cache) Decorate(products []models.Product) []models.DecoratedProduct {
	args := m.Called(products)
	var decorated []models.DecoratedProduct
	if args.Get(0) != nil {
		decorated = args.Get(0).([]models.DecoratedProduct)
	}
	return decorated
}

func (m *Cache) Evict(url string) {
	m.Called(url)
}
