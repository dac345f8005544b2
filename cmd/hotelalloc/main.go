// Command hotelalloc books hotel rooms with the least travel time.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog"

	"github.com/elektrokombinacija/hotel-alloc/internal/booking"
	"github.com/elektrokombinacija/hotel-alloc/internal/config"
	"github.com/elektrokombinacija/hotel-alloc/internal/core"
	"github.com/elektrokombinacija/hotel-alloc/internal/logger"
	"github.com/elektrokombinacija/hotel-alloc/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	k := flag.Int("k", 4, "number of rooms to book")
	seed := flag.Int64("seed", 0, "random seed, overrides config (0 = keep)")
	rate := flag.Float64("rate", -1, "occupancy rate for -random, overrides config")
	random := flag.Bool("random", false, "randomize occupancy before booking")
	interactive := flag.Bool("interactive", false, "read single-key commands from the terminal")
	simulate := flag.Int("simulate", 0, "simulate this many days of random requests")
	metricsPath := flag.String("metrics", "", "write simulation metrics as JSON to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Hotel.Seed = *seed
	}
	if *rate >= 0 {
		cfg.Hotel.OccupancyRate = *rate
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.GetLoggerConfigured(logger.ParseLevel(cfg.Log.Level))
	opts := append(booking.FromConfig(cfg.Hotel), booking.WithLogger(log.With().Str("component", "desk").Logger()))
	desk := booking.NewDesk(core.BuildInventory(), opts...)

	if *interactive {
		if err := runInteractive(desk, log); err != nil {
			log.Fatal().Err(err).Msg("interactive mode failed")
		}
		return
	}

	if *simulate > 0 {
		if err := runSimulation(desk, *simulate, cfg.Hotel.Seed, *metricsPath); err != nil {
			log.Fatal().Err(err).Msg("simulation failed")
		}
		return
	}

	if *random {
		desk.Randomize()
	}
	b, err := desk.Book(*k)
	printHotel(os.Stdout, desk)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	printBooking(os.Stdout, b)
}

func runSimulation(desk *booking.Desk, days int, seed int64, metricsPath string) error {
	cfg := sim.DefaultConfig()
	cfg.Days = days
	if seed != 0 {
		cfg.Seed = seed
	}

	s := sim.NewSimulator(desk, cfg)
	m, err := s.Run(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Simulated %d days, %d requests\n", m.Days, m.Requests)
	fmt.Printf("  accepted:     %d (%.1f%%)\n", m.Accepted, m.AcceptanceRate()*100)
	fmt.Printf("  rejected:     %d no rooms, %d no combination\n", m.RejectedPool, m.RejectedCombo)
	fmt.Printf("  same floor:   %d\n", m.SameFloor)
	fmt.Printf("  cross floor:  %d\n", m.CrossFloor)
	fmt.Printf("  travel time:  avg %.2f min, max %d min\n", m.AvgCost, m.MaxCost)

	if metricsPath != "" {
		return s.ExportMetrics(metricsPath)
	}
	return nil
}

func runInteractive(desk *booking.Desk, log *zerolog.Logger) error {
	if err := keyboard.Open(); err != nil {
		return err
	}
	defer keyboard.Close()

	for {
		printHotel(os.Stdout, desk)
		if b := desk.LastBooking(); b != nil {
			printBooking(os.Stdout, b)
		}
		fmt.Printf("\n[1-%d] book  [r] random occupancy  [x] reset  [u] undo  [y] redo  [q] quit\n", desk.MaxRequest())

		char, key, err := keyboard.GetKey()
		if err != nil {
			return err
		}
		if key == keyboard.KeyEsc || key == keyboard.KeyCtrlC || char == 'q' {
			return nil
		}

		switch {
		case char >= '1' && char <= '9':
			if _, err := desk.Book(int(char - '0')); err != nil {
				log.Warn().Err(err).Msg("booking failed")
			}
		case char == 'r':
			desk.Randomize()
		case char == 'x':
			desk.Reset()
		case char == 'u':
			desk.Undo()
		case char == 'y':
			desk.Redo()
		}
	}
}

// printHotel draws floors top-down with stairs/lift on the left.
func printHotel(w io.Writer, desk *booking.Desk) {
	snap, err := desk.Snapshot()
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}

	inv := desk.Inventory()
	floors := inv.Floors()
	fmt.Fprintln(w, "Legend: 101 available, 101x occupied, 101* booked")
	for i := len(floors) - 1; i >= 0; i-- {
		var row strings.Builder
		fmt.Fprintf(&row, "F%-3d|", floors[i])
		for _, r := range inv.OnFloor(floors[i]) {
			fmt.Fprintf(&row, " %4d%c", r.Number, marker(snap.Status[r.ID]))
		}
		fmt.Fprintln(w, row.String())
	}
	fmt.Fprintf(w, "Available=%d Occupied=%d Booked=%d\n",
		snap.Count(core.Available), snap.Count(core.Occupied), snap.Count(core.Booked))
}

func marker(s core.Status) byte {
	switch s {
	case core.Occupied:
		return 'x'
	case core.Booked:
		return '*'
	default:
		return ' '
	}
}

func printBooking(w io.Writer, b *booking.Booking) {
	nums := make([]string, len(b.Rooms))
	for i, r := range b.Rooms {
		nums[i] = r.String()
	}
	fmt.Fprintf(w, "Booking %s: rooms %s, travel time %d min, strategy %s\n",
		b.ID, strings.Join(nums, ", "), b.Cost, b.Strategy)
}
