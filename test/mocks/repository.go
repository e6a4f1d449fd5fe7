// Package mocks provides testify mocks for the interfaces shared across
// package tests.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tkarimov/pricewatch/internal/models"
)

// Repository is a mock of the full persistence surface. It satisfies
// both the monitor's read-only view and the server's stores.
type Repository struct {
	mock.Mock
}

// NewRepository creates a mock bound to the test's lifecycle.
func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
},
) *Repository {
	m := &Repository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Repository) CreateProduct(ctx context.Context, name, url string) (models.Product, error) {
	args := m.Called(ctx, name, url)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *Repository) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	var products []models.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]models.Product)
	}
	return products, args.Error(1)
}

func (m *Repository) DeleteProduct(ctx context.Context, id int64) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *Repository) GetSettings(ctx context.Context) (models.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Settings), args.Error(1)
}

func (m *Repository) UpdateSettings(ctx context.Context, settings models.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}
