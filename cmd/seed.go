package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/umalmyha/fleetcases/internal/cache"
	"github.com/umalmyha/fleetcases/internal/repository"
	"github.com/umalmyha/fleetcases/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill empty case type and status code catalogs with defaults",
	RunE:  runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	mongoClient, disconnect, err := connectMongo(ctx, cfg.MongoCfg)
	if err != nil {
		return err
	}
	defer disconnect()

	db := mongoClient.Database(cfg.MongoCfg.Database)
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	// seeding only inserts into empty catalogs, cached entries stay valid
	lookupSvc := service.NewLookupService(repository.NewMongoLookupRepository(db), cache.NewNoopLookupCache())
	res, err := lookupSvc.Seed(ctx)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"caseTypes":   res.CaseTypes,
		"statusCodes": res.StatusCodes,
	}).Info("seed: ok")
	return nil
}
