package models

// Product is a monitored item on the target site. URLs are unique
// across all products and must belong to the site's domain.
type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Settings holds the user-tunable monitoring parameters.
type Settings struct {
	RefreshInterval int   `json:"refresh_interval"` // seconds between scrape cycles
	TargetPrice     int64 `json:"target_price"`
	AlarmEnabled    bool  `json:"alarm_enabled"`
}

// DefaultSettings returns the values used before the user saves anything.
func DefaultSettings() Settings {
	return Settings{
		RefreshInterval: 30,
		TargetPrice:     1000000,
		AlarmEnabled:    true,
	}
}
