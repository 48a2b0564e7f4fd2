package commands

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

// DumpCmd prints the loaded dataset for debugging hand-authored files.
var DumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump the loaded dataset without validating it",
	Long: `Load the dataset and dump the in-memory structures. Useful for
checking what the loader actually read when a validation error is
surprising.`,
	RunE: runDump,
}

func init() {
	addDatasetFlags(DumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	wz, codm, m, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	spew.Dump(wz, codm, m)

	return nil
}
