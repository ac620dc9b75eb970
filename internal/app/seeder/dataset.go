package seeder

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var embeddedDataset []byte

// Dataset is the seed content: the region tree, sample words with their
// region links and sample blog posts.
type Dataset struct {
	Country    CountrySeed             `yaml:"country"`
	Broad      []RegionSeed            `yaml:"broad"`
	Subregions []RegionSeed            `yaml:"subregions"`
	Provinces  map[string][]RegionSeed `yaml:"provinces"` // keyed by subregion code
	Words      []WordSeed              `yaml:"words"`
	Posts      []PostSeed              `yaml:"posts"`
}

type CountrySeed struct {
	Name string `yaml:"name"`
	Code string `yaml:"code"`
}

type RegionSeed struct {
	Code        string `yaml:"code"`
	Parent      string `yaml:"parent"`
	Name        string `yaml:"name"`
	Sort        int    `yaml:"sort"`
	Description string `yaml:"description"`
}

type WordSeed struct {
	Content    string         `yaml:"content"`
	Definition string         `yaml:"definition"`
	Dialect    string         `yaml:"dialect"`
	Example    string         `yaml:"example"`
	Regions    map[string]int `yaml:"regions"` // region code -> usage strength
}

type PostSeed struct {
	Slug    string `yaml:"slug"`
	Title   string `yaml:"title"`
	Excerpt string `yaml:"excerpt"`
	Content string `yaml:"content"`
	Word    string `yaml:"word"`
}

// LoadDataset parses the dataset at path, or the embedded one when path is empty.
func LoadDataset(path string) (*Dataset, error) {
	raw := embeddedDataset
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read dataset %s: %w", path, err)
		}
		raw = b
	}
	return ParseDataset(raw)
}

// ParseDataset decodes a YAML dataset and checks that every subregion and
// province hangs under a declared parent.
func ParseDataset(raw []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if ds.Country.Code == "" {
		return nil, fmt.Errorf("dataset: country code is required")
	}

	broad := make(map[string]bool, len(ds.Broad))
	for _, b := range ds.Broad {
		broad[b.Code] = true
	}
	sub := make(map[string]bool, len(ds.Subregions))
	for _, s := range ds.Subregions {
		if !broad[s.Parent] {
			return nil, fmt.Errorf("dataset: subregion %s: unknown broad region %q", s.Code, s.Parent)
		}
		sub[s.Code] = true
	}
	for parent := range ds.Provinces {
		if !sub[parent] {
			return nil, fmt.Errorf("dataset: provinces under unknown subregion %q", parent)
		}
	}
	return &ds, nil
}

// ProvinceCount is the number of provinces in the dataset.
func (d *Dataset) ProvinceCount() int {
	n := 0
	for _, ps := range d.Provinces {
		n += len(ps)
	}
	return n
}
