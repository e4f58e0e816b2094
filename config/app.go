package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"vecino-activo/config/common"
	"vecino-activo/config/logger"
	"vecino-activo/handler"
	"vecino-activo/middleware"
	"vecino-activo/realtime"
	"vecino-activo/repository"
	"vecino-activo/routes"
	"vecino-activo/security"
	"vecino-activo/usecase"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Hub *realtime.Hub
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := NewLogrus()
	appLog := logger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)

	SeedDefaults(newDB.GetDB(), log)

	// A redis address turns on the pub/sub bridge so room broadcasts reach
	// every backend instance. Without one the hub fans out locally.
	var rdb *redis.Client
	if addr, password, db := newConfig.GetRedisConfig(); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	}
	hub := realtime.NewHub(log, rdb)
	go hub.Run()

	app.Use(cors.New(cors.Config{
		AllowOrigins: newConfig.GetCorsOrigin(),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Hub:        hub,
	})

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Error("Failed to start server")
	}
}

func App(aC *AppConfig) {
	db := aC.GetDB()

	newUserRepository := repository.NewUserRepository(db)
	newChatRepository := repository.NewChatRepository(db)
	newEventRepository := repository.NewEventRepository(db)
	newServiceRepository := repository.NewServiceRepository(db)
	newPostRepository := repository.NewPostRepository(db)
	newAlertRepository := repository.NewAlertRepository(db)
	newNeighborhoodRepository := repository.NewNeighborhoodRepository(db)

	newAuthUsecase := usecase.NewAuthUsecase(newUserRepository, aC.Validate, aC.Logger, aC.JWT)
	newChatUsecase := usecase.NewChatUsecase(newChatRepository, aC.Hub, aC.Validate, aC.Logger)
	newEventUsecase := usecase.NewEventUsecase(newEventRepository, aC.Validate, aC.Logger)
	newServiceUsecase := usecase.NewServiceUsecase(newServiceRepository, aC.Validate, aC.Logger)
	newPostUsecase := usecase.NewPostUsecase(newPostRepository, aC.Validate, aC.Logger)
	newAlertUsecase := usecase.NewAlertUsecase(newAlertRepository, aC.Hub, aC.Validate, aC.Logger)
	newNeighborhoodUsecase := usecase.NewNeighborhoodUsecase(newNeighborhoodRepository, aC.Logger)

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newChatHandler := handler.NewChatHandler(newChatUsecase, aC.Logger)
	newEventHandler := handler.NewEventHandler(newEventUsecase, aC.Logger)
	newServiceHandler := handler.NewServiceHandler(newServiceUsecase, aC.Logger)
	newPostHandler := handler.NewPostHandler(newPostUsecase, aC.Logger)
	newAlertHandler := handler.NewAlertHandler(newAlertUsecase, aC.Logger)
	newNeighborhoodHandler := handler.NewNeighborhoodHandler(newNeighborhoodUsecase, aC.Logger)

	wsHandler := handler.NewWebSocketHandler(aC.Hub, aC.JWT, newChatUsecase, aC.Logger)

	route := routes.ConfigRoute{
		App:                 aC.App,
		Middleware:          aC.Middleware,
		AuthHandler:         newAuthHandler,
		ChatHandler:         newChatHandler,
		EventHandler:        newEventHandler,
		ServiceHandler:      newServiceHandler,
		PostHandler:         newPostHandler,
		AlertHandler:        newAlertHandler,
		NeighborhoodHandler: newNeighborhoodHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)
}
