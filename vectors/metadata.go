package vectors

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/dendrascience/delium/version"
)

// Metadata summarizes a vector file. It is written next to the file it
// describes, see MetadataPath.
type Metadata struct {
	DeliumVersion   string    `json:"delium_version"`
	Generated       time.Time `json:"generated"`
	VectorCount     int       `json:"vector_count"`
	FlatVectorCount int       `json:"flat_vector_count"`
	PathVectorCount int       `json:"path_vector_count"`
	Algorithms      []string  `json:"algorithms"`
}

// GenerateMetadata creates a Metadata summary of the set, stamped with now.
func (s Set) GenerateMetadata(now time.Time) Metadata {
	return Metadata{
		DeliumVersion:   version.GetVersion(),
		Generated:       now.UTC(),
		VectorCount:     s.Len(),
		FlatVectorCount: s.CountMode(ModeFlat),
		PathVectorCount: s.CountMode(ModePath),
		Algorithms:      s.Algorithms(),
	}
}

// MetadataPath returns the sidecar metadata path for a vector file:
// "vectors.json" becomes "vectors.meta.json".
func MetadataPath(setPath string) string {
	ext := filepath.Ext(setPath)
	return strings.TrimSuffix(setPath, ext) + ".meta.json"
}

func (m Metadata) Save(path string) error {
	return WriteJSONFile(path, m)
}

// LoadMetadata reads a metadata sidecar.
func LoadMetadata(path string) (Metadata, error) {
	var m Metadata
	err := ReadJSONFile(path, &m)
	return m, err
}
