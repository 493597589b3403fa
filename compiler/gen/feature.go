package gen

import "strings"

var (
	// FeatureMutation emits a mutation entry point against the mutation root.
	FeatureMutation = Feature{
		Name:        "mutation",
		Stage:       Alpha,
		Default:     false,
		Description: "Mutation emits a `mutation` entry point when the schema declares a mutation root",
	}

	// FeatureSubscription emits a subscription entry point against the
	// subscription root.
	FeatureSubscription = Feature{
		Name:        "subscription",
		Stage:       Experimental,
		Default:     false,
		Description: "Subscription emits a `subscription` entry point when the schema declares a subscription root",
	}

	// FeatureTypename adds a __typename entry to every selector value, so
	// consumers can select the discriminator of interface results.
	FeatureTypename = Feature{
		Name:        "typename",
		Stage:       Experimental,
		Default:     false,
		Description: "Typename adds a zero-argument `__typename` entry to every object and interface selector",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureMutation,
		FeatureSubscription,
		FeatureTypename,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and their output may change.
	Experimental

	// Alpha features are complete, but their output may still change.
	Alpha

	// Beta features are documented and their output is not expected to change.
	Beta

	// Stable features are Beta features that have been in use for a while.
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

// A Feature of the codegen.
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

// FeatureByName looks up a feature-flag by its name.
func FeatureByName(name string) (Feature, error) {
	for _, f := range AllFeatures {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	return Feature{}, NewConfigError("Features", name, "unknown feature")
}
