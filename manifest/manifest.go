// Package manifest records what one generation pass produced, for the
// downstream passes that depend on it.
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/chisel-gen/chisel"
)

// Manifest is the exported record of one generated artifact.
type Manifest struct {
	// ArtifactID uniquely identifies this generation pass's output.
	ArtifactID string `json:"artifact_id"`
	Name       string `json:"name"`
	Version    string `json:"version"`
	OutputPath string `json:"output_path"`
	Types      []chisel.ProcessedTypeInfo `json:"types"`
}

// New builds a manifest with a fresh artifact id.
func New(name, version, outputPath string, types []chisel.ProcessedTypeInfo) Manifest {
	return Manifest{
		ArtifactID: uuid.NewString(),
		Name:       name,
		Version:    version,
		OutputPath: outputPath,
		Types:      types,
	}
}

// Write stores the manifest as manifest.json inside dir.
func (m Manifest) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating output directory")
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshalling manifest")
	}
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "writing manifest")
	}
	return path, nil
}
