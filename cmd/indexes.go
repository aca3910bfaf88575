package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/umalmyha/fleetcases/internal/repository"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create unique and lookup indexes of every collection",
	RunE:  runIndexes,
}

func runIndexes(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mongoClient, disconnect, err := connectMongo(cmd.Context(), cfg.MongoCfg)
	if err != nil {
		return err
	}
	defer disconnect()

	if err := repository.EnsureIndexes(cmd.Context(), mongoClient.Database(cfg.MongoCfg.Database)); err != nil {
		return err
	}

	logrus.Infof("indexes: ok for database %s", cfg.MongoCfg.Database)
	return nil
}
