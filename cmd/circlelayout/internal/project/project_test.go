package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveInsideModule(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/charts/budget/v2\n\ngo 1.24\n")
	chart := filepath.Join(root, "data", "q1.yaml")
	writeFile(t, chart, "slices: []\n")

	r, err := Resolve(chart)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Root != root {
		t.Errorf("Root = %q, want %q", r.Root, root)
	}
	if r.ModulePath != "example.com/charts/budget/v2" {
		t.Errorf("ModulePath = %q", r.ModulePath)
	}
	if r.Name != "budget" {
		t.Errorf("Name = %q, want budget", r.Name)
	}
	if got, want := r.OutputPath(chart), filepath.Join(root, "data", "budget-q1.png"); got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestResolveOutsideModule(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "loose")
	chart := filepath.Join(dir, "pie.toml")
	writeFile(t, chart, "")

	r, err := Resolve(chart)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.ModulePath != "" {
		t.Errorf("ModulePath = %q, want empty", r.ModulePath)
	}
	// Temp dirs can sit under a module on some machines; only check the
	// fallback when no go.mod was found.
	if _, err := FindRoot(dir); err != nil && r.Name != "loose" {
		t.Errorf("Name = %q, want loose", r.Name)
	}
}

func TestModulePathErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ModulePath(dir); err == nil {
		t.Error("expected error for missing go.mod")
	}
	writeFile(t, filepath.Join(dir, "go.mod"), "go 1.24\n")
	if _, err := ModulePath(dir); err == nil {
		t.Error("expected error for go.mod without module line")
	}
}

func TestDefaultName(t *testing.T) {
	tests := []struct {
		modulePath, dir, want string
	}{
		{"github.com/acme/pies", "/src/x", "pies"},
		{"", "/src/charts", "charts"},
		{"", "/", "circlelayout"},
	}
	for _, tt := range tests {
		if got := defaultName(tt.modulePath, tt.dir); got != tt.want {
			t.Errorf("defaultName(%q, %q) = %q, want %q", tt.modulePath, tt.dir, got, tt.want)
		}
	}
}
