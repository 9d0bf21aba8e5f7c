package gen

var (
	// FeatureRuntimeEnumeration provides a feature-flag for the runtime
	// enumeration accessors (EnumerateAll, EnumerateAllNumeric) that list the
	// live entities of a domain through the accessor context.
	FeatureRuntimeEnumeration = Feature{
		Name:        "enumerate/runtime",
		Stage:       Stable,
		Default:     true,
		Description: "Generates EnumerateAll accessors that list live entities of a domain at runtime",
	}

	// FeatureSplitOutput writes the root declarations to entities.go and
	// every domain group to a file of its own.
	FeatureSplitOutput = Feature{
		Name:        "output/split",
		Stage:       Beta,
		Default:     false,
		Description: "Writes one file per domain group instead of a single entities.go",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureRuntimeEnumeration,
		FeatureSplitOutput,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and may change or go away.
	Experimental

	// Alpha features are complete but their generated API may still change.
	Alpha

	// Beta features are documented and not expected to change.
	Beta

	// Stable features have been in use for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the hassgen codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// LookupFeature returns the feature registered under name.
func LookupFeature(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

func defaultFeatures() []Feature {
	var fs []Feature
	for _, f := range AllFeatures {
		if f.Default {
			fs = append(fs, f)
		}
	}
	return fs
}
