package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"

	"github.com/SlavaShagalov/car-booking/internal/pkg/app"
	"github.com/SlavaShagalov/car-booking/internal/requests/repository"
	"github.com/SlavaShagalov/car-booking/pkg/migrations"
	"github.com/SlavaShagalov/car-booking/pkg/statistics"
)

func main() {
	var configPath, migrationsPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/statistics.yaml", "Config file path")
	pflag.StringVarP(&migrationsPath, "migrations", "m", "migrations", "Migrations directory path")
	pflag.Parse()

	config, err := app.ReadLocalConfig(configPath)
	if err != nil {
		panic(err)
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{Level: slog.Level(config.Logging.Level)}))

	db, err := sqlx.Connect(config.DB.DriverName, config.DB.ConnectionString)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			panic(err)
		}
	}()

	if err = migrations.Do(config.DB.ConnectionString, migrationsPath, logger); err != nil {
		panic(err)
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: config.Kafka.Addresses,
		Topic:   config.Kafka.Topic,
		GroupID: "statistics",
	})
	defer reader.Close()

	repo := repository.NewSqlxRepository(db, logger)
	stat := statistics.NewKafkaStatistics(reader, nil, logger, repo)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Debug("shutdown statistics consumer ...")
		cancel()
	}()

	logger.Debug("statistics consumer starts",
		slog.Any("brokers", config.Kafka.Addresses),
		slog.String("topic", config.Kafka.Topic),
	)

	for {
		if err = stat.SaveRequest(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			logger.Error("save request", slog.String("error", err.Error()))
		}
	}

	logger.Debug("statistics consumer exited")
}
