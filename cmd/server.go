package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dietlog/internal/config"
	"dietlog/internal/core"
	"dietlog/internal/db"
	"dietlog/internal/http/handler"
	"dietlog/internal/http/handler/middleware"
	"dietlog/internal/http/payload"
	"dietlog/internal/http/server"
	"dietlog/internal/repository"
	"dietlog/pkg/jwt"
	"dietlog/pkg/log"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("dietlog", zapcore.InfoLevel)

	// optional .env for local runs
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnw("could not load .env file", "error", err)
	}

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// session token service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewDietRepo(dbConn)

	err = repo.MigrateAndSeed(context.Background(), config.AdminPassword)
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// diary service
	diary := core.NewDiary(
		logger,
		repo,
		jwtService,
		config.SessionTTL)

	// handler
	dietHlr := handler.NewDietHandler(
		logger,
		payload.Decoder{},
		diary)

	// middleware
	session := middleware.NewSessionMiddleware(logger, diary).Session

	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// public routes
	mux.HandleFunc(handler.Login, dietHlr.HandleLogin)
	mux.HandleFunc(handler.CreateUser, dietHlr.HandleCreateUser)

	// session-authenticated routes
	mux.Handle(handler.Logout, session(http.HandlerFunc(dietHlr.HandleLogout)))
	mux.Handle(handler.GetUser, session(http.HandlerFunc(dietHlr.HandleGetUser)))
	mux.Handle(handler.UpdateUser, session(http.HandlerFunc(dietHlr.HandleUpdateUser)))
	mux.Handle(handler.DeleteUser, session(http.HandlerFunc(dietHlr.HandleDeleteUser)))
	mux.Handle(handler.CreateMeal, session(http.HandlerFunc(dietHlr.HandleCreateMeal)))
	mux.Handle(handler.ListMeals, session(http.HandlerFunc(dietHlr.HandleListMeals)))
	mux.Handle(handler.GetMeal, session(http.HandlerFunc(dietHlr.HandleGetMeal)))
	mux.Handle(handler.UpdateMeal, session(http.HandlerFunc(dietHlr.HandleUpdateMeal)))
	mux.Handle(handler.DeleteMeal, session(http.HandlerFunc(dietHlr.HandleDeleteMeal)))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
