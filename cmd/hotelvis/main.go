// Command hotelvis provides a GUI for booking hotel rooms.
package main

import (
	"flag"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"

	"github.com/elektrokombinacija/hotel-alloc/internal/booking"
	"github.com/elektrokombinacija/hotel-alloc/internal/config"
	"github.com/elektrokombinacija/hotel-alloc/internal/core"
	"github.com/elektrokombinacija/hotel-alloc/internal/logger"
	"github.com/elektrokombinacija/hotel-alloc/internal/vis"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger.GetLoggerConfigured(logger.ParseLevel(cfg.Log.Level))

	opts := append(booking.FromConfig(cfg.Hotel), booking.WithLogger(logger.Component("desk")))
	desk := booking.NewDesk(core.BuildInventory(), opts...)

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("Hotel Room Reservation System"),
			app.Size(unit.Dp(1000), unit.Dp(720)),
		)

		application := vis.NewApp(desk)
		if err := application.Run(window); err != nil {
			logger.GetLogger().Fatal().Err(err).Msg("window closed with error")
		}
		os.Exit(0)
	}()
	app.Main()
}
