package present

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame int    `json:"frame"`
	Image string `json:"image"`
	Error string `json:"error,omitempty"`
}

// Manifest describes a written frame sequence.
type Manifest struct {
	Format string          `json:"format"`
	Scale  float64         `json:"scale,omitempty"`
	Frames []ManifestEntry `json:"frames"`
}

// WriteManifest writes the manifest with image paths relative to its directory.
func WriteManifest(path string, cfg SequenceConfig, results []Result) error {
	m := Manifest{
		Format: cfg.Format,
		Scale:  cfg.Scale,
		Frames: make([]ManifestEntry, len(results)),
	}
	dir := filepath.Dir(path)
	for i, r := range results {
		rel, err := filepath.Rel(dir, r.Path)
		if err != nil {
			rel = r.Path
		}
		m.Frames[i] = ManifestEntry{Frame: r.Frame, Image: filepath.ToSlash(rel), Error: r.Error}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func sortResults(rs []Result) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].Frame < rs[j].Frame })
}
