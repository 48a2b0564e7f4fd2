// Package commands implements the tanvet subcommands.
package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"tanvet/internal/config"
	"tanvet/internal/dataset"
	"tanvet/internal/loader"
	"tanvet/internal/logger"
)

var (
	dataDirFlag string
	configFlag  string
)

// ValidateCmd runs the full validation pass.
var ValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the tangram dataset",
	Long: `Validate every wz and codm tangram and the mapping between them.

The run halts at the first violation and reports which set, entry, or
pair broke which rule. Mapping rows without a codm counterpart are
skipped, not errors.`,
	RunE: runValidate,
}

func init() {
	addDatasetFlags(ValidateCmd)
}

// addDatasetFlags registers the flags shared by every dataset-consuming
// command.
func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&dataDirFlag, "data-dir", "", "Dataset directory (default from config)")
	cmd.Flags().StringVar(&configFlag, "config", "", "Config file path (default ./tanvet.yaml if present)")
}

// loadConfig resolves configuration and applies flag overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	if configFlag != "" {
		cfg, err = config.LoadFromFile(configFlag)
	} else {
		cfg, err = config.Load()
	}

	if err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}

	if dataDirFlag != "" {
		cfg.DataDir = dataDirFlag
	}

	return cfg, nil
}

// loadDataset loads the dataset from the configured data directory.
func loadDataset(cfg *config.Config) (*dataset.Set, *dataset.Set, *dataset.Mapping, error) {
	wz, codm, m, err := loader.LoadDataset(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, err
	}

	logger.Debugw("dataset loaded",
		"data_dir", cfg.DataDir,
		"wz_count", wz.Len(),
		"codm_count", codm.Len(),
		"mapping_rows", m.Len())

	return wz, codm, m, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	wz, codm, m, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	if err := dataset.Validate(wz, codm, m); err != nil {
		return errors.Wrap(err, "dataset validation failed")
	}

	logger.Infow("dataset is consistent",
		"wz_count", wz.Len(),
		"codm_count", codm.Len(),
		"mapping_rows", m.Len())

	return nil
}
