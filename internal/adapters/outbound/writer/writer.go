// Package writer persists generated artifacts to disk. It is the owning
// side of the artifact hand-off: the generator engine only ever produces
// in-memory content.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/archforge/archforge/internal/domain"
)

// FileWriter implements domain.ArtifactWriter on the local filesystem.
type FileWriter struct{}

func New() *FileWriter { return &FileWriter{} }

// Write persists artifacts under projectPath, creating directories as
// needed. Unless force is set, an existing file fails the whole write before
// anything is touched, so a scaffold never partially overwrites a feature.
func (w *FileWriter) Write(projectPath string, artifacts []domain.GeneratedArtifact, force bool) error {
	if !force {
		for _, a := range artifacts {
			dest := filepath.Join(projectPath, filepath.FromSlash(a.Path))
			if _, err := os.Stat(dest); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.Path)
			}
		}
	}

	for _, a := range artifacts {
		dest := filepath.Join(projectPath, filepath.FromSlash(a.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(a.Path), err)
		}
		if err := os.WriteFile(dest, []byte(a.Content), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", a.Path, err)
		}
	}

	return nil
}
