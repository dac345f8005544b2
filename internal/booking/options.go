package booking

import "github.com/elektrokombinacija/hotel-alloc/internal/config"

// FromConfig translates hotel settings into desk options.
// A zero seed leaves the desk seeded from the clock.
func FromConfig(h config.HotelConfig) []Option {
	opts := []Option{
		WithMaxRequest(h.MaxRequest),
		WithOccupancyRate(h.OccupancyRate),
	}
	if h.Seed != 0 {
		opts = append(opts, WithSeed(h.Seed))
	}
	return opts
}
