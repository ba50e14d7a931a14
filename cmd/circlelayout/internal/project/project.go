// Package project locates the Go module a chart file lives in and derives
// default output names from it.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// Resolved describes the project around a chart file.
type Resolved struct {
	// Root is the directory holding go.mod, or the chart's directory when
	// the chart is outside any module.
	Root string
	// ModulePath is empty outside a module.
	ModulePath string
	// Name is the last element of the module path, or the root's base name.
	Name string
}

// Resolve finds the project containing path.
func Resolve(path string) (*Resolved, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(abs)

	root, err := FindRoot(dir)
	if err != nil {
		return &Resolved{Root: dir, Name: defaultName("", dir)}, nil
	}
	modPath, err := ModulePath(root)
	if err != nil {
		return nil, err
	}
	return &Resolved{Root: root, ModulePath: modPath, Name: defaultName(modPath, root)}, nil
}

// FindRoot walks up from dir to find go.mod.
func FindRoot(dir string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

// ModulePath reads the module path from dir/go.mod.
func ModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "circlelayout"
	}
	return base
}

// OutputPath returns the default PNG path for chartPath: next to the
// chart, named "<project>-<chart>.png".
func (r *Resolved) OutputPath(chartPath string) string {
	stem := strings.TrimSuffix(filepath.Base(chartPath), filepath.Ext(chartPath))
	return filepath.Join(filepath.Dir(chartPath), r.Name+"-"+stem+".png")
}
