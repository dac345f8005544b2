// Package sim replays a stream of booking requests against a desk.
//
// A simulated day starts from a randomized occupancy, then serves
// requests of random size until the day's quota is reached. Metrics
// cover acceptance, strategy mix and travel cost.
package sim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/hotel-alloc/internal/booking"
	"github.com/elektrokombinacija/hotel-alloc/internal/core"
	"github.com/elektrokombinacija/hotel-alloc/internal/logger"
)

// SimulationConfig configures the simulation parameters.
type SimulationConfig struct {
	// Days to simulate; occupancy is randomized at the start of each.
	Days int `json:"days"`

	// Booking requests served per day.
	RequestsPerDay int `json:"requests_per_day"`

	// Random seed for request sizes.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns default simulation configuration.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		Days:           30,
		RequestsPerDay: 12,
		Seed:           42,
	}
}

// SimulationMetrics collects metrics during simulation.
type SimulationMetrics struct {
	// Timing
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Days      int       `json:"days"`

	// Requests
	Requests      int `json:"requests"`
	Accepted      int `json:"accepted"`
	RejectedPool  int `json:"rejected_pool"`  // Fewer available rooms than requested
	RejectedCombo int `json:"rejected_combo"` // Allocator found nothing
	RoomsBooked   int `json:"rooms_booked"`

	// Strategy mix
	SameFloor  int `json:"same_floor"`
	CrossFloor int `json:"cross_floor"`

	// Travel time in minutes
	TotalCost int     `json:"total_cost"`
	AvgCost   float64 `json:"avg_cost"`
	MaxCost   int     `json:"max_cost"`

	// Allocation runtime
	TotalAllocTimeMs float64 `json:"total_alloc_time_ms"`
}

// AcceptanceRate is the fraction of requests that were booked.
func (m SimulationMetrics) AcceptanceRate() float64 {
	if m.Requests == 0 {
		return 0
	}
	return float64(m.Accepted) / float64(m.Requests)
}

// Simulator drives a desk with generated requests.
type Simulator struct {
	mu sync.Mutex

	config SimulationConfig
	desk   *booking.Desk
	rng    *rand.Rand
	log    zerolog.Logger

	metrics SimulationMetrics
}

// NewSimulator creates a new simulation over desk.
func NewSimulator(desk *booking.Desk, config SimulationConfig) *Simulator {
	return &Simulator{
		config: config,
		desk:   desk,
		rng:    rand.New(rand.NewSource(config.Seed)),
		log:    logger.Component("sim"),
	}
}

// Run executes the simulation until all days are served or ctx ends.
// Metrics gathered so far are returned in both cases.
func (s *Simulator) Run(ctx context.Context) (*SimulationMetrics, error) {
	if s.config.Days < 1 || s.config.RequestsPerDay < 1 {
		return nil, fmt.Errorf("simulation needs at least one day and one request, got %d days x %d requests",
			s.config.Days, s.config.RequestsPerDay)
	}

	s.mu.Lock()
	s.metrics = SimulationMetrics{StartTime: time.Now()}
	s.mu.Unlock()

	var runErr error
days:
	for day := 1; day <= s.config.Days; day++ {
		s.desk.Randomize()

		for i := 0; i < s.config.RequestsPerDay; i++ {
			select {
			case <-ctx.Done():
				runErr = ctx.Err()
				break days
			default:
			}
			s.step()
		}

		s.mu.Lock()
		s.metrics.Days = day
		m := s.metrics
		s.mu.Unlock()

		s.log.Debug().
			Int("day", day).
			Int("accepted", m.Accepted).
			Int("requests", m.Requests).
			Msg("day simulated")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics.EndTime = time.Now()
	metrics := s.metrics
	return &metrics, runErr
}

// step serves one request of random size.
func (s *Simulator) step() {
	k := 1 + s.rng.Intn(s.desk.MaxRequest())

	startTime := time.Now()
	b, err := s.desk.Book(k)
	elapsed := float64(time.Since(startTime).Microseconds()) / 1000.0

	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.Requests++
	s.metrics.TotalAllocTimeMs += elapsed

	switch {
	case errors.Is(err, booking.ErrNotEnoughRooms):
		s.metrics.RejectedPool++
		return
	case err != nil:
		s.metrics.RejectedCombo++
		return
	}

	s.metrics.Accepted++
	s.metrics.RoomsBooked += len(b.Rooms)
	if b.Strategy == core.CrossFloor {
		s.metrics.CrossFloor++
	} else {
		s.metrics.SameFloor++
	}
	s.metrics.TotalCost += b.Cost
	s.metrics.MaxCost = max(s.metrics.MaxCost, b.Cost)
	s.metrics.AvgCost = float64(s.metrics.TotalCost) / float64(s.metrics.Accepted)
}

// Metrics returns current simulation metrics.
func (s *Simulator) Metrics() SimulationMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.metrics
}

// ExportMetrics writes metrics to a JSON file.
func (s *Simulator) ExportMetrics(path string) error {
	s.mu.Lock()
	metrics := s.metrics
	s.mu.Unlock()

	data, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SimulationResult is the final output of a simulation run.
type SimulationResult struct {
	Config  SimulationConfig  `json:"config"`
	Metrics SimulationMetrics `json:"metrics"`
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
}

// RunSimulation is a convenience function to run a complete simulation.
func RunSimulation(ctx context.Context, desk *booking.Desk, config SimulationConfig) (*SimulationResult, error) {
	sim := NewSimulator(desk, config)

	metrics, err := sim.Run(ctx)

	result := &SimulationResult{
		Config:  config,
		Success: err == nil,
	}

	if err != nil {
		result.Error = err.Error()
	}

	if metrics != nil {
		result.Metrics = *metrics
	}

	return result, err
}
