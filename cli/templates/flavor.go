package templates

// Flavor is a language surface variant, orthogonal to template choice.
type Flavor uint16

const (
	JavaScript Flavor = iota
	TypeScript
)

// Flavors contains every known flavor.
var Flavors = []Flavor{JavaScript, TypeScript}

// String returns the display name of the flavor.
func (f Flavor) String() string {
	switch f {
	case JavaScript:
		return "JavaScript"
	case TypeScript:
		return "TypeScript"
	}

	return "unknown"
}
