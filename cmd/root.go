package cmd

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/umalmyha/fleetcases/internal/config"
	"github.com/umalmyha/fleetcases/internal/infra"
	"go.mongodb.org/mongo-driver/mongo"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:          "fleetcases",
	Short:        "Fleet case management API: cases, timeline, suppliers, surveys and notifications",
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading configuration")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(indexesCmd)
}

// loadConfig reads optional dotenv file, builds config and configures logger
func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		logrus.Debugf("dotenv file %s is not loaded - %v", envFile, err)
	}

	cfg, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := infra.Logger(cfg.LogCfg); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, nil
}

func connectMongo(ctx context.Context, cfg config.MongoCfg) (*mongo.Client, func(), error) {
	client, err := infra.Mongodb(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	disconnect := func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
		defer cancel()

		if err := client.Disconnect(ctx); err != nil {
			logrus.Errorf("failed to disconnect from mongodb - %v", err)
		}
	}
	return client, disconnect, nil
}
