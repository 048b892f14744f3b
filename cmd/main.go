package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/infinitivesi/lab-8/config"
	"github.com/infinitivesi/lab-8/internal/client"
	"github.com/infinitivesi/lab-8/internal/feedback"
	"github.com/infinitivesi/lab-8/internal/order"
	"github.com/infinitivesi/lab-8/internal/product"
	"github.com/infinitivesi/lab-8/internal/schema"
	"github.com/infinitivesi/lab-8/pkg/database"
	"github.com/infinitivesi/lab-8/pkg/httpserver"
	"github.com/infinitivesi/lab-8/pkg/logger"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Storefront catalog, client and order service",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config", "directory holding config.json")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Bring the schema up to date and serve the HTTP API",
		RunE:  runServe,
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Bring the schema up to date and exit",
		RunE:  runMigrate,
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap() (config.Config, config.AppEnv, *logrus.Entry, *gorm.DB) {
	log := logger.NewLogger("debug", &logger.MainLogHook{})

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("failed to load configs: %v", err)
	}

	env, err := config.GetEnvironment()
	if err != nil {
		log.Fatal(err.Error())
	}

	log = logger.NewLogger(env.LogLvl, &logger.MainLogHook{})

	db, err := database.Open(database.Config{
		Driver:          env.DBDriver,
		Path:            env.DBPath,
		Host:            env.PgHost,
		Port:            env.PgPort,
		Username:        env.PgUser,
		Password:        env.PgPassword,
		DBName:          env.PgDbName,
		SSLMode:         env.SSLMode,
		TimeZone:        env.TimeZone,
		BusyTimeout:     cfg.Database.BusyTimeout,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		SlowThreshold:   cfg.Database.SlowThreshold,
	}, log)
	if err != nil {
		log.Fatalf("failed connection to db: %v", err)
	}

	if err := schema.Ensure(db); err != nil {
		log.Fatalf("failed schema migration: %v", err)
	}

	return cfg, env, log, db
}

func runMigrate(cmd *cobra.Command, args []string) error {
	_, _, log, db := bootstrap()
	defer closeDB(db, log)

	log.Info("schema is up to date")
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, env, log, db := bootstrap()
	defer closeDB(db, log)

	productLog := logger.NewLogger(env.LogLvl, &product.ProductLogHook{})
	clientLog := logger.NewLogger(env.LogLvl, &client.ClientLogHook{})
	orderLog := logger.NewLogger(env.LogLvl, &order.OrderLogHook{})
	feedbackLog := logger.NewLogger(env.LogLvl, &feedback.FeedbackLogHook{})

	productService := product.NewService(product.NewStorage(db), productLog)
	clientService := client.NewService(client.NewStorage(db), clientLog)
	orderService := order.NewService(order.NewStorage(db), orderLog, order.RetryPolicy{
		MaxTries:        cfg.Order.RetryMaxTries,
		InitialInterval: cfg.Order.RetryInitialInterval,
		MaxElapsedTime:  cfg.Order.RetryMaxElapsedTime,
	})
	feedbackService := feedback.NewService(feedback.NewStorage(db), feedbackLog)

	router, api := httpserver.NewRouter(log, cfg.Server.AllowedOrigins)
	product.NewHandler(productService, productLog).Register(api)
	client.NewHandler(clientService, clientLog).Register(api)
	order.NewHandler(orderService, orderLog).Register(api)
	feedback.NewHandler(feedbackService, feedbackLog).Register(api)

	server := new(httpserver.Server)

	go func() {
		if err := server.Run(env.Host, env.Port, router); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed running server %v", err)
		}
	}()
	log.Infof("listening on %s:%s", env.Host, env.Port)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	oscall := <-interrupt
	log.Infof("Shutdown server, %s", oscall)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Error occured on server shutting down: %v", err)
	}
	return nil
}

func closeDB(db *gorm.DB, log *logrus.Entry) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Errorf("failed to close db: %v", err)
	}
}
