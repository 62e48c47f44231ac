package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/avdeyev/go-todo-api/internal/auth"
	"github.com/avdeyev/go-todo-api/internal/config"
	"github.com/avdeyev/go-todo-api/internal/delivery/http/v1"
	"github.com/avdeyev/go-todo-api/internal/services"
	"github.com/avdeyev/go-todo-api/internal/storage/postgres"
)

func MustListenAndServeHTTP() {
	cfg := config.Global()
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}

	httpCfg := cfg.HTTP

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	registerRoutes(router)

	server := &http.Server{
		Addr:    net.JoinHostPort(httpCfg.Host, httpCfg.Port),
		Handler: router,
	}

	go func() {
		globalLogger.Info().
			Str("host", httpCfg.Host).
			Str("port", httpCfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			globalLogger.Error().
				Err(err).
				Msg("failed to listen and serve http")
			panic(err)
		}
	}()

	// Wait for the interrupt signal to gracefully
	// shut down the server with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	globalLogger.Info().
		Msg("shutting down http server")

	ctx, cancel := context.WithTimeout(context.Background(), httpCfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		panic(err)
	}
	globalLogger.Info().Msg("shut down http server")
}

func registerRoutes(router gin.IRouter) {
	jwtCfg := config.Global().JWT
	tokens := auth.NewTokenIssuer(
		[]byte(jwtCfg.SigningKey),
		jwtCfg.Issuer,
		jwtCfg.AccessTokenTTL,
	)

	userStore := postgres.NewUserStore(globalLogger, globalPostgresPool)
	todoStore := postgres.NewTodoStore(globalLogger, globalPostgresPool)

	identityService := services.NewIdentityService(globalLogger, userStore, tokens)
	todoService := services.NewTodoService(globalLogger, userStore, todoStore)

	v1Handler := v1.New(globalLogger, identityService, todoService, tokens)

	authRouter := router.Group("/auth")
	authRouter.POST("/login", v1Handler.HandleLogin)
	authRouter.POST("/sign-up", v1Handler.HandleRegister)
	authRouter.GET("/fetch-profile", v1Handler.HandleAuthMiddleware, v1Handler.HandleFetchProfile)

	todoRouter := router.Group("/todo")
	todoRouter.Use(v1Handler.HandleAuthMiddleware)
	todoRouter.POST("/create", v1Handler.HandleCreateTodo)
	todoRouter.GET("/get-all", v1Handler.HandleGetTodos)
	todoRouter.PUT("/:todoId", v1Handler.HandleEditTodo)
	todoRouter.DELETE("/:todoId", v1Handler.HandleDeleteTodo)
}
