// @title           Telefono HTTP Service API
// @version         1.0
// @description     Phone records owned by users, every response wrapped in a success/message/data envelope

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer ` prefix
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"telefono-http-service/internal/app/routes"
	"telefono-http-service/internal/domain/services"
	"telefono-http-service/internal/infrastructure/cache"
	"telefono-http-service/internal/infrastructure/config"
	"telefono-http-service/internal/infrastructure/database"
	"telefono-http-service/internal/test/benchmark"
	Logger "telefono-http-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 5 * time.Second

func main() {
	app := &cli.App{
		Name:  "telefono-http-service",
		Usage: "phone records HTTP service",
		Before: func(ctx *cli.Context) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				return errors.Wrap(err, "could not load .env file")
			}
			return nil
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			tokenCommand(),
			benchCommand(),
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "could not load configuration")
	}

	if err := Logger.SetupLogger(Logger.Options{Level: cfg.LogLevel, Dir: cfg.LogDir}); err != nil {
		return nil, errors.Wrap(err, "could not set up logger")
	}

	return cfg, nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP server",
		Action: func(ctx *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer Logger.Sync()

			if cfg.EnvType == "PRODUCTION" {
				gin.SetMode(gin.ReleaseMode)
			}

			pool, err := database.NewConnectionPool(cfg)
			if err != nil {
				return errors.Wrap(err, "could not create database connection pool")
			}
			defer pool.Close()

			if cfg.DBMigrationMode == database.MigrationDrop {
				Logger.Warning("running in drop mode, every table will be dropped and recreated")
			}
			if err := database.Migrate(pool.GetDB(), cfg.DBMigrationMode); err != nil {
				return errors.Wrap(err, "could not migrate database")
			}

			redisClient := cache.NewRedisClient(cfg)
			if redisClient != nil {
				defer redisClient.Close()
			}

			engine := routes.SetupRouter(pool.GetDB(), cfg, redisClient)
			server := &http.Server{
				Addr:              "0.0.0.0:" + cfg.ServerPort,
				Handler:           routes.NewHandler(engine, cfg),
				ReadHeaderTimeout: 10 * time.Second,
			}

			printSystemInfo(pool)

			serverErr := make(chan error, 1)
			go func() {
				Logger.Info("server listening on http://0.0.0.0:%s", cfg.ServerPort)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			select {
			case err, ok := <-serverErr:
				if ok {
					return errors.Wrap(err, "server stopped")
				}
				return nil
			case sig := <-quit:
				Logger.Info("received %s, shutting down", sig)
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return errors.Wrap(err, "could not shut down server")
			}

			Logger.Info("server stopped")
			return nil
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "migrate the database schema and exit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mode",
				Usage:   "migration mode, auto or drop",
				EnvVars: []string{"DB_MIGRATION_MODE"},
				Value:   database.MigrationAuto,
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			defer Logger.Sync()

			pool, err := database.NewConnectionPool(cfg)
			if err != nil {
				return errors.Wrap(err, "could not create database connection pool")
			}
			defer pool.Close()

			mode := ctx.String("mode")
			if err := database.Migrate(pool.GetDB(), mode); err != nil {
				return errors.Wrapf(err, "could not migrate database in %s mode", mode)
			}

			Logger.Info("database migrated in %s mode", mode)
			return nil
		},
	}
}

func tokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "issue a bearer token for the write routes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "subject",
				Usage: "token subject",
				Value: "operator",
			},
			&cli.DurationFlag{
				Name:  "ttl",
				Usage: "token lifetime",
				Value: 24 * time.Hour,
			},
		},
		Action: func(ctx *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return errors.Wrap(err, "could not load configuration")
			}

			tokens := services.NewJWTService(cfg)
			if tokens == nil {
				return errors.New("JWT_SECRET_KEY is not set")
			}

			token, err := tokens.GenerateToken(ctx.String("subject"), ctx.Duration("ttl"))
			if err != nil {
				return errors.Wrap(err, "could not generate token")
			}

			fmt.Fprintln(ctx.App.Writer, token)
			return nil
		},
	}
}

func benchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "load test a running instance",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Usage: "service base url", Value: "http://localhost:8080"},
			&cli.StringFlag{Name: "method", Usage: "HTTP method", Value: http.MethodGet},
			&cli.StringFlag{Name: "path", Usage: "request path", Value: "/telefonos"},
			&cli.StringFlag{Name: "body", Usage: "JSON request body"},
			&cli.StringFlag{Name: "token", Usage: "bearer token for write routes"},
			&cli.IntFlag{Name: "concurrency", Value: 10},
			&cli.IntFlag{Name: "requests", Value: 100},
		},
		Action: func(ctx *cli.Context) error {
			var payload interface{}
			if raw := ctx.String("body"); raw != "" {
				payload = json.RawMessage(raw)
			}

			bench := benchmark.NewAPIBenchmark(ctx.String("url"), ctx.Int("concurrency"), ctx.Int("requests"), ctx.String("token"))
			result, err := bench.Run(ctx.Context, ctx.String("method"), ctx.String("path"), payload)
			if err != nil {
				return errors.Wrap(err, "could not run benchmark")
			}

			result.PrintResult(ctx.App.Writer)
			return nil
		},
	}
}

func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		Logger.Info("database pool: %+v", stats)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.Info("cpus=%d goroutines=%d alloc=%dMiB sys=%dMiB",
		runtime.NumCPU(), runtime.NumGoroutine(), m.Alloc/1024/1024, m.Sys/1024/1024)
}
