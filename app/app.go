package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/openshelf/library-service/config"
	"github.com/openshelf/library-service/internal/handler"
	"github.com/openshelf/library-service/internal/repository"
	"github.com/openshelf/library-service/internal/server"
	"github.com/openshelf/library-service/internal/service"
	"github.com/openshelf/library-service/migrations"
	"github.com/openshelf/library-service/pkg/blob"
	"github.com/openshelf/library-service/pkg/kafka"
	"github.com/openshelf/library-service/pkg/logger"
	"github.com/openshelf/library-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		log.Fatal("kafka.NewProducer", zap.Error(err))
	}
	audit := service.NewKafkaAuditSink(producer, log)
	notify := service.NewKafkaNotifier(producer, log)

	blobs, err := blob.NewFileStore(cfg.BlobDir)
	if err != nil {
		log.Fatal("blob store", zap.Error(err))
	}

	svc := service.NewService(repo, audit, notify, blobs, log)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.AuditConsumerGroup)
	if err != nil {
		log.Fatal("kafka.NewConsumer", zap.Error(err))
	}
	auditWriter := service.NewAuditWriter(repo, log)
	go func() {
		if err := kafka.Consume(ctx, consumer, handler.NewConsumer(auditWriter.Write, log), kafka.AuditTopic); err != nil && ctx.Err() == nil {
			log.Error("kafka.Consume", zap.Error(err))
		}
	}()

	if cfg.SeedInterval > 0 {
		go runSeeder(ctx, svc, cfg.SeedInterval, log)
	}

	h := handler.New(svc, svc, svc, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))
	cancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if err = consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err = producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

func runSeeder(ctx context.Context, svc *service.Service, interval time.Duration, log *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := svc.SeedBook(ctx); err != nil {
				log.Error("seed book", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}
