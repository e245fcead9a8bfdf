package codegen

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/louisbranch/lucide/icons"
)

// Entry is one icon ready for code generation.
type Entry struct {
	Name    string
	Ident   string
	Aliases []string
	Nodes   []icons.Node
}

type metadata struct {
	Aliases []alias `json:"aliases"`
}

// alias accepts both the plain string and the {name, deprecated} forms used
// by upstream metadata files.
type alias struct {
	Name       string `json:"name"`
	Deprecated bool   `json:"deprecated"`
}

func (a *alias) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		a.Name = name
		return nil
	}
	type plain alias
	var value plain
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*a = alias(value)
	return nil
}

// LoadDir reads every <name>.svg in dir, plus its optional <name>.json
// metadata, and returns the entries sorted by name.
func LoadDir(dir string) ([]Entry, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS is LoadDir over an fs.FS rooted at the icons directory.
func LoadFS(fsys fs.FS) ([]Entry, error) {
	paths, err := fs.Glob(fsys, "*.svg")
	if err != nil {
		return nil, fmt.Errorf("list icons: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no .svg files found")
	}
	entries := make([]Entry, 0, len(paths))
	for _, path := range paths {
		entry, err := loadEntry(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		entries = append(entries, entry)
	}
	// Sort by name, not path: "x.svg" must precede "x-circle.svg".
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

func loadEntry(fsys fs.FS, path string) (Entry, error) {
	name := strings.TrimSuffix(filepath.Base(path), ".svg")
	if !ValidName(name) {
		return Entry{}, fmt.Errorf("icon name %q is not kebab-case", name)
	}

	file, err := fsys.Open(path)
	if err != nil {
		return Entry{}, err
	}
	defer file.Close()
	nodes, err := ParseSVG(file)
	if err != nil {
		return Entry{}, err
	}

	aliases, err := loadAliases(fsys, name+".json")
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Name:    name,
		Ident:   Identifier(name),
		Aliases: aliases,
		Nodes:   nodes,
	}, nil
}

func loadAliases(fsys fs.FS, path string) ([]string, error) {
	data, err := fs.ReadFile(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var meta metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	var aliases []string
	for _, a := range meta.Aliases {
		if !ValidName(a.Name) {
			return nil, fmt.Errorf("alias %q in %s is not kebab-case", a.Name, path)
		}
		aliases = append(aliases, a.Name)
	}
	return aliases, nil
}
