package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersionUnknown(t *testing.T) {
	// gitTag is empty unless injected at build time.
	assert.Contains(t, GetVersion(false, false), unknownVersion)
	assert.Equal(t, unknownVersion, GetVersion(true, false))
}

func TestIsPreReleaseUnknown(t *testing.T) {
	assert.False(t, IsPreRelease())
}
