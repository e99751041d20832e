package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/1970jjh/minusproject/internal/api"
	"github.com/1970jjh/minusproject/internal/constants"
	"github.com/1970jjh/minusproject/internal/logging"
	"github.com/1970jjh/minusproject/internal/realtime"
)

func main() {
	checkEnvVars([]string{constants.EnvAdminPassword, constants.EnvOpenAIAPIKey})

	// Path may be provided via MINUS_CONFIG or defaults to
	// ./minus_config.json in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./minus_config.json"
	}
	cfg := loadConfigOrExit(configPath)
	applyPromptTemplates(cfg)

	// Allow the DB path to be configured via MINUS_DB. Default to a `data/`
	// directory for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/minus.db"
	}
	repo := createRepositoryOrExit(dbPath)

	hub := realtime.NewHub()
	handler := api.NewRoomHandler(repo, hub, cfg)

	startStaleRoomScanner(repo, hub, cfg.StaleRoomTTL)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		// Public endpoints
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteHealthz, api.Healthz)
		apiRoutes.POST(constants.RouteAdminLogin, api.AdminLogin)
		apiRoutes.POST(constants.RouteAdminLogout, api.AdminLogout)

		// Player endpoints; players are trusted once they hold a join code.
		apiRoutes.GET(constants.RouteRooms, handler.ListRooms)
		apiRoutes.POST(constants.RouteRoomsJoin, handler.JoinRoom)
		apiRoutes.GET(constants.RouteRoomByCode, handler.GetRoom)
		apiRoutes.POST(constants.RouteRoomAction, handler.SubmitAction)
		apiRoutes.POST(constants.RouteRoomAdvice, handler.Advice)
		apiRoutes.GET(constants.RouteRoomRecap, handler.Recap)
		apiRoutes.GET(constants.RouteRoomPoster, handler.Poster)
		apiRoutes.GET(constants.RouteRoomStream, handler.StreamRoom)

		// Admin endpoints: room lifecycle is host-driven.
		admin := apiRoutes.Group("")
		admin.Use(api.AdminRequired())
		admin.POST(constants.RouteRooms, handler.CreateRoom)
		admin.POST(constants.RouteRoomStart, handler.StartGame)
		admin.POST(constants.RouteRoomReset, handler.ResetRoom)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}

func checkEnvVars(vars []string) {
	for _, v := range vars {
		if os.Getenv(v) == "" {
			logging.Fatal("Required environment variable not set", nil, logging.Fields{"var": v})
		}
	}
}
