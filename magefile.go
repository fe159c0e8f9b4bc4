//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/apex/log"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	goPackageName = "github.com/create-tauri-app/cta/cli"

	asmflags = "all=-trimpath=${PWD}"
	gcflags  = "all=-trimpath=${PWD}"

	packagePath = "./cli"
)

var (
	ldflags = []string{
		"-X ${PACKAGE}/version.gitTag=${GIT_TAG}",
		"-X ${PACKAGE}/version.gitCommit=${GIT_COMMIT}",
		"-X ${PACKAGE}/version.versionLabel=${VERSION_LABEL}",
	}

	goExecutableName  = "go"
	ctaExecutableName = "cta"

	Aliases = map[string]any{
		"build": Build.Release,
	}
)

func init() {
	if specifiedGoExe := os.Getenv("GOEXE"); specifiedGoExe != "" {
		goExecutableName = specifiedGoExe
	}

	// We want to use Go 1.11 modules even if the source lives inside GOPATH.
	// The default is "auto".
	os.Setenv("GO111MODULE", "on")
}

// buildCta builds the cta executable with the given extra linker flags.
func buildCta(extraLdflags ...string) error {
	buildLdflags := make([]string, len(ldflags))
	copy(buildLdflags, ldflags)
	buildLdflags = append(buildLdflags, extraLdflags...)

	err := sh.RunWith(getBuildEnvironment(), goExecutableName,
		"build", "-o", ctaExecutableName,
		"-ldflags", strings.Join(buildLdflags, " "),
		"-asmflags", asmflags,
		"-gcflags", gcflags,
		packagePath)
	if err != nil {
		return fmt.Errorf("Failed to build cta executable: %s", err)
	}

	return nil
}

type Build mg.Namespace

// Building release cta executable without debug info.
func (Build) Release() error {
	fmt.Println("Building release cta...")

	return buildCta("-s", "-w")
}

// Building debug cta executable.
func (Build) Debug() error {
	fmt.Println("Building debug cta...")

	return buildCta()
}

// Run unit tests.
func Unit() error {
	fmt.Println("Running unit tests...")

	args := []string{"test"}
	if mg.Verbose() {
		args = append(args, "-v")
	}
	args = append(args, "./...")

	return sh.RunV(goExecutableName, args...)
}

// Run static code analysis.
func Lint() error {
	fmt.Println("Running go vet...")

	return sh.RunV(goExecutableName, "vet", "./...")
}

// getBuildEnvironment return map with build environment variables.
func getBuildEnvironment() map[string]string {
	var err error

	var currentDir string
	var gitTag string
	var gitCommit string

	if currentDir, err = os.Getwd(); err != nil {
		log.Warnf("Failed to get current directory: %s", err)
	}

	if _, err := exec.LookPath("git"); err == nil {
		gitTag, _ = sh.Output("git", "describe", "--tags")
		gitCommit, _ = sh.Output("git", "rev-parse", "--short", "HEAD")
	}

	return map[string]string{
		"PACKAGE":       goPackageName,
		"GIT_TAG":       gitTag,
		"GIT_COMMIT":    gitCommit,
		"VERSION_LABEL": os.Getenv("VERSION_LABEL"),
		"PWD":           currentDir,
	}
}
