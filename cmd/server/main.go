package main

import (
	"flag"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/benbeisheim/chessrules-backend/internal/config"
	"github.com/benbeisheim/chessrules-backend/internal/controller"
	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/setup"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	addr := flag.String("addr", "", "listen address, overrides the config")
	logLevel := flag.String("log-level", "", "debug, info, warn, error or fatal")
	logFormat := flag.String("log-format", "", "text or json")
	placementFile := flag.String("placement", "", "YAML document with the starting placement")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	if *placementFile != "" {
		cfg.PlacementFile = *placementFile
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("invalid flags")
	}

	if cfg.LogFormat == "json" {
		log.SetHandler(json.New(os.Stderr))
	} else {
		log.SetHandler(text.New(os.Stderr))
	}
	log.SetLevelFromString(cfg.LogLevel)
	logger := log.Log

	placement, toMove := setup.Standard(), model.White
	if cfg.PlacementFile != "" {
		placement, toMove, err = setup.LoadFile(cfg.PlacementFile)
		if err != nil {
			log.WithError(err).Fatal("loading placement")
		}
		if _, err := model.NewBoard(placement); err != nil {
			log.WithError(err).WithField("file", cfg.PlacementFile).Fatal("rejecting placement")
		}
		logger.WithFields(log.Fields{"file": cfg.PlacementFile, "pieces": len(placement), "toMove": toMove}).Info("custom placement")
	}

	app := controller.NewApp()
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Origins(),
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestLogger(logger))

	gameManager := service.NewGameManager(
		service.WithPlacement(placement, toMove),
		service.WithLogger(logger),
	)
	controller.RegisterRoutes(app, service.NewGameService(gameManager), logger, cfg.AllowOrigins)

	logger.WithField("addr", cfg.Addr).Info("listening")
	if err := app.Listen(cfg.Addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
