package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"grandplaza/config"
	"grandplaza/di"
	"grandplaza/internal/handlers/event"
	"grandplaza/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := di.InitializeConsumer()
	handler := event.New()

	var wg sync.WaitGroup

	wg.Add(2) //nolint:mnd

	go func() {
		defer wg.Done()
		client.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topics.StatusChanged, handler.StatusChanged)
	}()

	go func() {
		defer wg.Done()
		client.Consume(ctx, cfg.Kafka.ConsumerGroup, cfg.Kafka.Topics.InvoiceSent, handler.InvoiceSent)
	}()

	log.Info().Msg("Event consumer started.")

	wg.Wait()

	if err := client.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka client")
	}

	log.Info().Msg("Event consumer stopped.")
}
