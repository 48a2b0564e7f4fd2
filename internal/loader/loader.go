package loader

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"tanvet/internal/dataset"
	"tanvet/internal/tangram"
)

// Conventional set and file names inside the data directory.
const (
	WzSet   = "wz"
	CodmSet = "codm"

	mappingFile = "mapping.csv"
)

// ReadTangramFile reads one tangram file. All whitespace is stripped, so
// authors may lay the encoding out as two rows of three.
func ReadTangramFile(path string) (tangram.Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read tangram file %s", path)
	}

	return tangram.Encoding(strings.Join(strings.Fields(string(data)), "")), nil
}

// LoadSet reads every *.txt file under dir into a set. Entry names are
// the file basenames without extension. Entries are inserted in numeric
// order when every name parses as an integer, lexicographic otherwise.
func LoadSet(dir, name string) (*dataset.Set, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, errors.Wrapf(err, "glob tangram files in %s", dir)
	}

	names := make([]string, 0, len(paths))
	byName := make(map[string]string, len(paths))

	for _, p := range paths {
		base := filepath.Base(p)
		entry := strings.TrimSuffix(base, filepath.Ext(base))
		names = append(names, entry)
		byName[entry] = p
	}

	sortEntryNames(names)

	set := dataset.NewSet(name)

	for _, entry := range names {
		enc, err := ReadTangramFile(byName[entry])
		if err != nil {
			return nil, err
		}

		set.Add(entry, enc)
	}

	return set, nil
}

// LoadMapping reads mapping.csv: a header row followed by
// source-name,target-name rows. Rows with an empty source are skipped;
// an empty or absent target column means "no counterpart yet" and is
// kept as an empty string. Row order is preserved.
func LoadMapping(path string) (*dataset.Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open mapping file %s", path)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "parse mapping file %s", path)
	}

	m := dataset.NewMapping()

	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}

		if len(row) == 0 || row[0] == "" {
			continue
		}

		target := ""
		if len(row) > 1 {
			target = row[1]
		}

		m.Add(row[0], target)
	}

	return m, nil
}

// LoadDataset reads the wz set, the codm set, and the mapping table from
// the conventional layout under dataDir.
func LoadDataset(dataDir string) (wz, codm *dataset.Set, m *dataset.Mapping, err error) {
	wz, err = LoadSet(filepath.Join(dataDir, WzSet), WzSet)
	if err != nil {
		return nil, nil, nil, err
	}

	codm, err = LoadSet(filepath.Join(dataDir, CodmSet), CodmSet)
	if err != nil {
		return nil, nil, nil, err
	}

	m, err = LoadMapping(filepath.Join(dataDir, mappingFile))
	if err != nil {
		return nil, nil, nil, err
	}

	return wz, codm, m, nil
}

// sortEntryNames sorts numerically when all names are integers, so
// wz/1..wz/36 come out in the human order, and lexicographically
// otherwise.
func sortEntryNames(names []string) {
	nums := make(map[string]int, len(names))

	for _, n := range names {
		v, err := strconv.Atoi(n)
		if err != nil {
			sort.Strings(names)
			return
		}

		nums[n] = v
	}

	sort.Slice(names, func(i, j int) bool {
		return nums[names[i]] < nums[names[j]]
	})
}
