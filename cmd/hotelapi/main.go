// Command hotelapi serves the booking desk over HTTP.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/elektrokombinacija/hotel-alloc/internal/api"
	"github.com/elektrokombinacija/hotel-alloc/internal/booking"
	"github.com/elektrokombinacija/hotel-alloc/internal/config"
	"github.com/elektrokombinacija/hotel-alloc/internal/core"
	"github.com/elektrokombinacija/hotel-alloc/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.GetLoggerConfigured(logger.ParseLevel(cfg.Log.Level))
	opts := append(booking.FromConfig(cfg.Hotel), booking.WithLogger(logger.Component("desk")))
	desk := booking.NewDesk(core.BuildInventory(), opts...)

	app := api.NewServer(desk, logger.Component("http"))

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.Server.Addr).Int("rooms", len(desk.Inventory().Rooms)).Msg("listening")
	if err := app.Listen(cfg.Server.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
