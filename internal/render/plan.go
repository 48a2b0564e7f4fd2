package render

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Order selects how source names are dealt into grid rows.
type Order string

const (
	// OrderStriped deals names round-robin across rows.
	OrderStriped Order = "striped"
	// OrderSequential fills each row before starting the next.
	OrderSequential Order = "sequential"
)

// Plan describes one test-grid sheet.
type Plan struct {
	// Name becomes the output file name (without extension).
	Name string `yaml:"name"`

	// Rows is the number of layout rows.
	Rows int `yaml:"rows,omitempty"`

	// Order is the layout order, striped or sequential.
	Order Order `yaml:"order,omitempty"`
}

// PlanFile is the root of a YAML render-plan file.
type PlanFile struct {
	Plans []Plan `yaml:"plans"`
}

// DefaultPlans returns the built-in grid sheets: the 6x6 and 18x2
// layouts in both orders.
func DefaultPlans() *PlanFile {
	return &PlanFile{Plans: []Plan{
		{Name: "grid_6_by_6_striped", Rows: 6, Order: OrderStriped},
		{Name: "grid_6_by_6_sequential", Rows: 6, Order: OrderSequential},
		{Name: "grid_18_by_2_striped", Rows: 2, Order: OrderStriped},
		{Name: "grid_18_by_2_sequential", Rows: 2, Order: OrderSequential},
	}}
}

// LoadPlans loads and parses a YAML render-plan file from the given path.
func LoadPlans(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read plan file %s", path)
	}

	return ParsePlans(data)
}

// ParsePlans parses YAML data into a PlanFile.
func ParsePlans(data []byte) (*PlanFile, error) {
	var pf PlanFile

	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, errors.Wrap(err, "parse plan YAML")
	}

	applyDefaults(&pf)

	if err := validatePlans(&pf); err != nil {
		return nil, err
	}

	return &pf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(pf *PlanFile) {
	for i := range pf.Plans {
		p := &pf.Plans[i]
		if p.Rows <= 0 {
			p.Rows = refRows
		}

		if p.Order == "" {
			p.Order = OrderStriped
		}
	}
}

func validatePlans(pf *PlanFile) error {
	for i := range pf.Plans {
		p := &pf.Plans[i]
		if p.Name == "" {
			return errors.Newf("plan %d: name is required", i)
		}

		if p.Order != OrderStriped && p.Order != OrderSequential {
			return errors.Newf("plan %s: unknown order %q", p.Name, p.Order)
		}
	}

	return nil
}
