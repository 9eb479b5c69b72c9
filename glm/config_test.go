package glm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prfkit/prfkit/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Config
		wantErr bool
	}{
		{
			name: "all fields",
			yaml: "strict_degeneracy_check: true\nparallel_threshold: 2048\nworker_cap: 8\n",
			want: Config{StrictDegeneracyCheck: true, ParallelThreshold: 2048, WorkerCap: 8},
		},
		{
			name: "empty document keeps zero values",
			yaml: "",
			want: Config{},
		},
		{
			name:    "negative threshold",
			yaml:    "parallel_threshold: -1\n",
			wantErr: true,
		},
		{
			name:    "negative worker cap",
			yaml:    "worker_cap: -4\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			yaml:    "parallel_threshold: [oops\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseConfig([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if *c != tt.want {
				t.Errorf("ParseConfig() = %+v, want %+v", *c, tt.want)
			}
		})
	}
}

func TestParseConfig_ValidationErrorType(t *testing.T) {
	_, err := ParseConfig([]byte("parallel_threshold: -3\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *errors.ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("error should be a ValidationError, got %v", err)
	}
	if valErr.ParamName != "parallel_threshold" {
		t.Errorf("ParamName = %q, want parallel_threshold", valErr.ParamName)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fit.yaml")
	content := "strict_degeneracy_check: true\nworker_cap: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !c.StrictDegeneracyCheck || c.WorkerCap != 2 || c.ParallelThreshold != 0 {
		t.Errorf("LoadConfig = %+v", *c)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file should be an error")
	}
}

func TestConfig_OptionsDriveStrictMode(t *testing.T) {
	design, err := NewDesignMatrixFromColumns(
		[]float32{1, 2, 3},
		[]float32{1, 2, 3},
	)
	if err != nil {
		t.Fatalf("failed to build design: %v", err)
	}

	c, err := ParseConfig([]byte("strict_degeneracy_check: true\n"))
	if err != nil {
		t.Fatalf("ParseConfig failed: %v", err)
	}

	if _, err := NewSolver(design, c.Options()...); err == nil {
		t.Error("strict config should reject a degenerate design")
	}
}
