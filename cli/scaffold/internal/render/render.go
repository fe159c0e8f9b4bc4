package render

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/create-tauri-app/cta/cli/fragments"
	"github.com/create-tauri-app/cta/cli/pkgman"
	"github.com/create-tauri-app/cta/cli/scaffold/internal/manifest"
	"github.com/create-tauri-app/cta/cli/templates"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Renderer materializes a template from a fragment store into a
// project directory.
type Renderer struct {
	// Store is the fragment store to read from.
	Store fragments.Store
	// Template is the template to materialize.
	Template templates.Template
}

// renderJob carries the state of one render invocation.
type renderJob struct {
	store       fragments.Store
	targetDir   string
	ctx         Context
	manifest    manifest.Manifest
	packageName string
}

// Render writes the template into targetDir. Base zone files are
// written first, then the template's own fragment zone which may
// override them, then the extra files declared in the manifest are
// appended. The first error aborts the render; files already written
// are left in place.
func (r Renderer) Render(targetDir string, manager pkgman.PackageManager,
	packageName string, alpha, mobile bool,
) error {
	zone := fragments.FragmentZone(r.Template.String())

	manifestData, err := r.Store.Get(path.Join(zone, fragments.ManifestFileName))
	if err != nil {
		return fmt.Errorf("failed to get manifest bytes: %s", err)
	}
	parsedManifest, err := manifest.Parse(string(manifestData), mobile)
	if err != nil {
		return err
	}

	job := renderJob{
		store:       r.Store,
		targetDir:   targetDir,
		ctx:         Context{Manager: manager, Alpha: alpha, Mobile: mobile},
		manifest:    parsedManifest,
		packageName: packageName,
	}

	// Order of the phases is a contract: the fragment zone overrides
	// the base zone, extra files append to whatever was written.
	if err := job.writeZone(fragments.BaseZone); err != nil {
		return err
	}
	if err := job.writeZone(zone); err != nil {
		return err
	}

	return job.appendExtraFiles()
}

// writeZone runs every file of the zone through the per-file pipeline.
func (j renderJob) writeZone(zone string) error {
	for _, file := range j.store.Iter() {
		first, rel, found := strings.Cut(file, "/")
		if !found || first != zone {
			continue
		}
		if err := j.writeFile(file, rel); err != nil {
			return err
		}
	}

	return nil
}

// writeFile resolves the file condition and, if the file is included,
// writes its substituted content to the destination path.
func (j renderJob) writeFile(storePath, relPath string) error {
	dir, base := path.Split(relPath)

	decision := ResolveName(base, j.ctx)
	if !decision.Include {
		return nil
	}

	data, err := j.store.Get(storePath)
	if err != nil {
		return err
	}
	data = Substitute(decision.Name, data, j.manifest, j.packageName, j.ctx.Manager)

	destDir := filepath.Join(j.targetDir, filepath.FromSlash(dir))
	if err := os.MkdirAll(destDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %q: %s", destDir, err)
	}

	dest := filepath.Join(destDir, decision.Name)
	if err := os.WriteFile(dest, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %q: %s", dest, err)
	}

	return nil
}

// appendExtraFiles appends the manifest's extra files, in manifest
// order, to their destinations. Several entries may target the same
// destination to assemble it from disjoint asset fragments.
func (j renderJob) appendExtraFiles() error {
	for _, entry := range j.manifest.Files {
		data, err := j.store.Get(path.Join(fragments.AssetsZone, entry.Asset))
		if err != nil {
			return fmt.Errorf("failed to get asset file bytes %q: %s", entry.Asset, err)
		}

		dest := filepath.Join(j.targetDir, filepath.FromSlash(entry.Dest))
		if err := os.MkdirAll(filepath.Dir(dest), dirPerm); err != nil {
			return fmt.Errorf("failed to create directory %q: %s", filepath.Dir(dest), err)
		}

		if err := appendFile(dest, data); err != nil {
			return err
		}
	}

	return nil
}

func appendFile(dest string, data []byte) error {
	file, err := os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open %q: %s", dest, err)
	}

	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to append to %q: %s", dest, err)
	}

	return file.Close()
}
