package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"tanvet/internal/dataset"
	"tanvet/internal/logger"
	"tanvet/internal/render"
)

var (
	outDirFlag   string
	planFileFlag string
)

// RenderCmd validates, then writes every diagnostic sheet.
var RenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Validate the dataset and render all diagnostic images",
	Long: `Validate the dataset, then render the reference sheet, the
translated reference sheet, and the binary test grids into the output
directory. Grid layouts come from the render-plan file when one is
configured, otherwise the built-in plans are used.`,
	RunE: runRender,
}

func init() {
	addDatasetFlags(RenderCmd)
	RenderCmd.Flags().StringVar(&outDirFlag, "out-dir", "", "Output directory (default from config)")
	RenderCmd.Flags().StringVar(&planFileFlag, "plans", "", "Render-plan YAML file (default built-in plans)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outDirFlag != "" {
		cfg.OutDir = outDirFlag
	}

	if planFileFlag != "" {
		cfg.PlanFile = planFileFlag
	}

	wz, codm, m, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	if err := dataset.Validate(wz, codm, m); err != nil {
		return errors.Wrap(err, "dataset validation failed")
	}

	plans := render.DefaultPlans()

	if cfg.PlanFile != "" {
		plans, err = render.LoadPlans(cfg.PlanFile)
		if err != nil {
			return err
		}
	}

	r := render.New(cfg.SquareSize, cfg.BorderSize, cfg.OutDir)

	if err := r.Reference(wz, codm, m); err != nil {
		return err
	}

	logger.Infow("rendered reference sheet", "out_dir", cfg.OutDir)

	if err := r.TranslatedReference(wz, codm, m); err != nil {
		return err
	}

	logger.Infow("rendered translated reference sheet", "out_dir", cfg.OutDir)

	for _, plan := range plans.Plans {
		if err := r.TestGrid(plan, wz, codm, m); err != nil {
			return err
		}

		logger.Infow("rendered test grid", "plan", plan.Name, "out_dir", cfg.OutDir)
	}

	return nil
}
