package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lmittmann/tint"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/pflag"

	authDelivery "github.com/SlavaShagalov/car-booking/internal/auth/delivery"
	authRepository "github.com/SlavaShagalov/car-booking/internal/auth/repository"
	authUsecase "github.com/SlavaShagalov/car-booking/internal/auth/usecase"
	bookingDelivery "github.com/SlavaShagalov/car-booking/internal/booking/delivery"
	bookingRepository "github.com/SlavaShagalov/car-booking/internal/booking/repository"
	bookingUsecase "github.com/SlavaShagalov/car-booking/internal/booking/usecase"
	carDelivery "github.com/SlavaShagalov/car-booking/internal/car/delivery"
	carRepository "github.com/SlavaShagalov/car-booking/internal/car/repository"
	carUsecase "github.com/SlavaShagalov/car-booking/internal/car/usecase"
	contactDelivery "github.com/SlavaShagalov/car-booking/internal/contact/delivery"
	contactRepository "github.com/SlavaShagalov/car-booking/internal/contact/repository"
	contactUsecase "github.com/SlavaShagalov/car-booking/internal/contact/usecase"
	"github.com/SlavaShagalov/car-booking/internal/pkg/app"
	"github.com/SlavaShagalov/car-booking/internal/pkg/hasher"
	"github.com/SlavaShagalov/car-booking/internal/session"
	"github.com/SlavaShagalov/car-booking/pkg/migrations"
	pkgRedis "github.com/SlavaShagalov/car-booking/pkg/redis"
	"github.com/SlavaShagalov/car-booking/pkg/statistics"
)

type WebApp interface {
	Start() error
	Shutdown(ctx context.Context) error
}

func startApp(webApp WebApp, config app.Config, logger *slog.Logger) {
	logger.Debug(fmt.Sprintf("web app starts at %s", config.Web.Host+":"+config.Web.Port))

	go func() {
		if err := webApp.Start(); err != nil {
			panic(err)
		}
	}()
}

func shutdownApp(webApp WebApp, logger *slog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Debug("shutdown web app ...")

	const shutdownTimeout = time.Minute
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)

	if err := webApp.Shutdown(ctx); err != nil {
		panic(err)
	}

	cancel()
	logger.Debug("web app exited")
}

func main() {
	var configPath, migrationsPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/web.yaml", "Config file path")
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

	redisClient, err := pkgRedis.Connect(context.Background(), pkgRedis.Config{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})
	if err != nil {
		panic(err)
	}
	defer redisClient.Close()

	sessions := session.NewManager(session.NewRedisStore(redisClient), config.Session.TTL, logger)

	kafkaWriter := &kafka.Writer{
		Addr:                   kafka.TCP(config.Kafka.Addresses...),
		Topic:                  config.Kafka.Topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	defer kafkaWriter.Close()

	stat := statistics.NewKafkaStatistics(nil, kafkaWriter, logger, nil)
	statisticsMW := app.NewStatisticsMW(stat, logger)

	passwordHasher := hasher.NewBcryptHasher()

	authRepo := authRepository.NewSqlxRepository(db, logger)
	carRepo := carRepository.NewSqlxRepository(db, logger)
	bookingRepo := bookingRepository.NewSqlxRepository(db, logger)
	contactRepo := contactRepository.NewSqlxRepository(db, logger)

	authUC := authUsecase.New(authRepo, bookingRepo, logger, passwordHasher)
	carUC := carUsecase.New(carRepo, logger)
	bookingUC := bookingUsecase.New(bookingRepo, sessions, logger)
	contactUC := contactUsecase.New(contactRepo, logger)

	sessionMW := app.NewSessionMW(sessions, logger)

	webApp := app.NewFiberApp(
		config.Web,
		statisticsMW,
		sessionMW,
		logger,
		authDelivery.New(authUC, sessions, config.Session.TTL, logger),
		carDelivery.New(carUC, logger),
		bookingDelivery.New(bookingUC, logger),
		contactDelivery.New(contactUC, logger),
	)

	startApp(webApp, config, logger)
	shutdownApp(webApp, logger)
}
