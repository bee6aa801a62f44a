package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/skypulse/config"
	"github.com/Domenick1991/skypulse/internal/email"
	"github.com/Domenick1991/skypulse/internal/kafka"
	"github.com/sirupsen/logrus"
	kafkaGo "github.com/segmentio/kafka-go"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.ConfirmationsTopic)
	defer consumer.Close()

	emailSender := email.NewSender()

	logrus.WithField("topic", cfg.Kafka.ConfirmationsTopic).Info("notification worker started")

	if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event kafka.ConfirmationEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logrus.WithError(err).Warn("decode confirmation event")
			return nil
		}
		return emailSender.Send(ctx, event)
	}); err != nil && ctx.Err() == nil {
		logrus.WithError(err).Error("consumer stopped")
	}
}
