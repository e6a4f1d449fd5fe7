package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tkarimov/pricewatch/internal/models"
)

// Notifier is a mock of the target-price alert sink.
type Notifier struct {
	mock.Mock
}

// NewNotifier creates a mock bound to the test's lifecycle.
func NewNotifier(t interface {
	mock.TestingT
	Cleanup(func())
},
) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Notifier) NotifyTargetPrice(ctx context.Context, product models.ScrapedProduct, target int64) error {
	args := m.Called(ctx, product, target)
	return args.Error(0)
}
