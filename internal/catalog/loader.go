package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dungeon-forge/internal/domain/equipment"
	"github.com/KirkDiggler/dungeon-forge/internal/domain/skills"
)

//go:embed data/*.yaml
var embeddedData embed.FS

const (
	basesFile   = "bases.yaml"
	affixesFile = "affixes.yaml"
	skillsFile  = "skills.yaml"
	runesFile   = "runes.yaml"
)

type basesDoc struct {
	Bases []*equipment.BaseType `yaml:"bases"`
}

type affixesDoc struct {
	Affixes []*equipment.AffixDefinition `yaml:"affixes"`
}

type skillsDoc struct {
	Skills []*skills.Definition `yaml:"skills"`
}

type runesDoc struct {
	Runes []*skills.RuneDefinition `yaml:"runes"`
}

// Load builds the catalog bundled with the binary
func Load() (*Catalog, error) {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return nil, fmt.Errorf("catalog: open embedded data: %w", err)
	}
	return LoadFS(sub)
}

// MustLoad loads the embedded catalog or panics on failure
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadDir loads tables from dir. A table missing from dir falls back to the
// embedded default so an override directory can replace just one file.
func LoadDir(dir string) (*Catalog, error) {
	if dir == "" {
		return Load()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog: %s is not a directory", dir)
	}
	defaults, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return nil, fmt.Errorf("catalog: open embedded data: %w", err)
	}
	return LoadFS(overlayFS{primary: os.DirFS(dir), fallback: defaults})
}

// LoadFS reads the four tables from fsys and validates them
func LoadFS(fsys fs.FS) (*Catalog, error) {
	var bases basesDoc
	if err := decode(fsys, basesFile, &bases); err != nil {
		return nil, err
	}
	var affixes affixesDoc
	if err := decode(fsys, affixesFile, &affixes); err != nil {
		return nil, err
	}
	var sk skillsDoc
	if err := decode(fsys, skillsFile, &sk); err != nil {
		return nil, err
	}
	var runes runesDoc
	if err := decode(fsys, runesFile, &runes); err != nil {
		return nil, err
	}
	return New(bases.Bases, affixes.Affixes, sk.Skills, runes.Runes)
}

func decode(fsys fs.FS, name string, out any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}

// overlayFS serves files from primary and falls back when they do not exist
type overlayFS struct {
	primary  fs.FS
	fallback fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return o.fallback.Open(name)
	}
	return nil, err
}
