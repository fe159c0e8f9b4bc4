// Package fragments provides the read-only store of starter-project
// fragment files embedded into the binary.
package fragments

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:fragments
var fragmentsFs embed.FS

const (
	// BaseZone is the zone of files shared by every template.
	BaseZone = "_base_"
	// AssetsZone is the zone of extra files referenced by manifests.
	AssetsZone = "_assets_"
	// ManifestFileName is the manifest marker file of a fragment zone.
	// It is never written to the output tree.
	ManifestFileName = "_cta_manifest_"
)

// FragmentZone returns the zone name of a template identifier.
func FragmentZone(templateName string) string {
	return "fragment-" + templateName
}

// Store is a read-only virtual path to bytes store.
type Store interface {
	// Get returns the content of the file at path.
	Get(path string) ([]byte, error)
	// Iter returns all file paths of the store. The order is not
	// specified.
	Iter() []string
}

type embedStore struct {
	root  fs.FS
	paths []string
}

// NewStore returns the Store of fragments embedded into the binary.
func NewStore() (Store, error) {
	root, err := fs.Sub(fragmentsFs, "fragments")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded fragments: %s", err)
	}

	var paths []string
	err = fs.WalkDir(root, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate embedded fragments: %s", err)
	}

	return &embedStore{root: root, paths: paths}, nil
}

func (s *embedStore) Get(path string) ([]byte, error) {
	data, err := fs.ReadFile(s.root, path)
	if err != nil {
		return nil, fmt.Errorf("no fragment file %q: %w", path, err)
	}

	return data, nil
}

func (s *embedStore) Iter() []string {
	return s.paths
}
