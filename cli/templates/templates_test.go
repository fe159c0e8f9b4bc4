package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/create-tauri-app/cta/cli/pkgman"
)

func TestParse(t *testing.T) {
	for _, template := range All {
		parsed, err := Parse(template.String())
		require.NoError(t, err)
		assert.Equal(t, template, parsed)
	}

	_, err := Parse("flutter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a valid template")
	assert.Contains(t, err.Error(), "vanilla")
	assert.Contains(t, err.Error(), "preact-ts")
}

func TestFlavorRoundTrip(t *testing.T) {
	for _, template := range All {
		for _, flavor := range template.Flavors(pkgman.Pnpm) {
			flavored := template.WithFlavor(flavor)
			assert.Equal(t, template, flavored.WithoutFlavor(),
				"template %s, flavor %s", template, flavor)
		}
	}
}

func TestWithFlavorNoFlavorSupport(t *testing.T) {
	for _, template := range []Template{Yew, Leptos, Sycamore, Angular} {
		assert.Equal(t, template, template.WithFlavor(TypeScript))
		assert.Equal(t, template, template.WithFlavor(JavaScript))
		assert.Equal(t, template, template.WithoutFlavor())
	}
}

func TestFlavorsForCargo(t *testing.T) {
	// There is no JS build step when scaffolding vanilla for cargo,
	// so no flavor variants either.
	assert.Nil(t, Vanilla.Flavors(pkgman.Cargo))
	assert.NotNil(t, Vanilla.Flavors(pkgman.Npm))

	// Other flavored templates are not compatible with cargo at all,
	// their flavors do not depend on the manager.
	assert.Equal(t, Vue.Flavors(pkgman.Cargo), Vue.Flavors(pkgman.Yarn))
}

func TestPossiblePackageManagers(t *testing.T) {
	assert.Equal(t, pkgman.All, Vanilla.PossiblePackageManagers())
	assert.Equal(t, []pkgman.PackageManager{pkgman.Cargo}, Yew.PossiblePackageManagers())
	assert.Equal(t, pkgman.Node, ReactTs.PossiblePackageManagers())
	assert.Equal(t, pkgman.Node, Angular.PossiblePackageManagers())
}

func TestCapabilities(t *testing.T) {
	for _, template := range []Template{Yew, Leptos, Sycamore} {
		assert.True(t, template.NeedsTrunk())
		assert.True(t, template.NeedsTauriCli())
		assert.True(t, template.NeedsWasm32Target())
	}

	assert.True(t, Vanilla.NeedsTauriCli())
	assert.False(t, Vanilla.NeedsTrunk())
	assert.False(t, Vanilla.NeedsWasm32Target())

	assert.False(t, ReactTs.NeedsTrunk())
	assert.False(t, ReactTs.NeedsTauriCli())
	assert.False(t, ReactTs.NeedsWasm32Target())
}

func TestMenuLabels(t *testing.T) {
	for _, template := range Menu {
		assert.NotEmpty(t, template.SelectText())
	}
}
