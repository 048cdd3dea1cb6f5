package main

import (
	"context"
	"github.com/ougirez/revman/internal/api"
	"github.com/ougirez/revman/internal/pkg/constants"
	"github.com/ougirez/revman/internal/pkg/logger"
	"github.com/ougirez/revman/internal/pkg/notify"
	"github.com/ougirez/revman/internal/pkg/store"
	"github.com/ougirez/revman/internal/pkg/store/xpgx"
	"github.com/spf13/viper"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loadConfig(); err != nil {
		log.Fatalf("loadConfig: %s", err)
	}
	if err := logger.Init(viper.GetString(constants.ViperLogLevelKey), viper.GetString(constants.ViperAppEnvKey) == "dev"); err != nil {
		log.Fatalf("logger.Init: %s", err)
	}
	defer logger.Sync()

	defaults, err := pricingDefaults()
	if err != nil {
		logger.Fatal(ctx, err)
	}

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperPostgresDSNKey))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	var publisher notify.Publisher
	if brokers := viper.GetStringSlice(constants.ViperKafkaBrokersKey); len(brokers) > 0 {
		kafkaPublisher, err := notify.NewKafkaPublisher(brokers, viper.GetString(constants.ViperKafkaTopicPrefixKey), nil)
		if err != nil {
			logger.Fatal(ctx, err)
		}
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Errorf(ctx, "kafkaPublisher.Close: %s", err)
			}
		}()
		publisher = kafkaPublisher
	} else {
		logger.Warnf(ctx, "no kafka brokers configured, performance cards are disabled")
	}

	svc, err := api.NewAPIService(store.NewStore(pool), publisher, api.Options{
		AllowOrigins:     viper.GetStringSlice(constants.ViperAllowOriginsKey),
		Defaults:         defaults,
		HolidaySourceURL: viper.GetString(constants.ViperHolidaySourceURLKey),
		LogLevel:         viper.GetString(constants.ViperLogLevelKey),
	})
	if err != nil {
		logger.Fatal(ctx, err)
	}

	addr := viper.GetString(constants.ViperHTTPAddrKey)
	go svc.Serve(addr)
	logger.Info(ctx, "revman started", "addr", addr, "env", viper.GetString(constants.ViperAppEnvKey))

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "svc.Shutdown: %s", err)
	}
	logger.Info(shutdownCtx, "revman stopped")
}
