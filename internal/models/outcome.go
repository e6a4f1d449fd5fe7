package models

import "time"

// Status is the terminal classification of one scrape attempt.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusNotFound Status = "not_found"
	StatusTimeout  Status = "timeout"
	StatusError    Status = "error"
)

// PriceOutcome is the immutable result of one scrape attempt.
// Price and PriceText are set only on success; Error is set only
// on failure.
type PriceOutcome struct {
	Price       *int64    `json:"price"`
	PriceText   string    `json:"price_text,omitempty"`
	Status      Status    `json:"status"`
	Error       string    `json:"error,omitempty"`
	LastUpdated time.Time `json:"last_updated"`
}

// SuccessOutcome builds an outcome for an extracted price. text is the
// matched substring, kept with its currency suffix for display.
func SuccessOutcome(price int64, text string) PriceOutcome {
	return PriceOutcome{
		Price:       &price,
		PriceText:   text,
		Status:      StatusSuccess,
		LastUpdated: time.Now(),
	}
}

// FailedOutcome builds an outcome for a scrape that produced no price.
func FailedOutcome(status Status, message string) PriceOutcome {
	return PriceOutcome{
		Status:      status,
		Error:       message,
		LastUpdated: time.Now(),
	}
}

// ScrapedProduct pairs a product with the outcome of one scrape.
type ScrapedProduct struct {
	Name    string
	URL     string
	Outcome PriceOutcome
}

// DecoratedProduct is a product merged with its latest cached outcome.
// Outcome fields are absent for a product that was never scraped.
type DecoratedProduct struct {
	Product
	*PriceOutcome
}
