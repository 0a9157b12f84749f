package event

// A FeatureSet lists the experimental protocol extensions (MSCs) that a
// deployment recognises when decoding events. Fields belonging to an MSC
// that is not enabled are treated as unknown wire keys: ignored by the
// concrete shapes, but still preserved verbatim by the custom fallback.
//
// Stabilised field names are always recognised regardless of the feature
// set, and encoding emits stable names only.
type FeatureSet struct {
	// The MSCs to enable, e.g. "msc1767".
	MSCs []string
}

// Enabled returns whether the given MSC is enabled.
func (f *FeatureSet) Enabled(msc string) bool {
	for _, m := range f.MSCs {
		if m == msc {
			return true
		}
	}
	return false
}

// DefaultFeatureSet returns the feature set used by the package-level parse
// functions: extensible-event field aliases on, everything else off.
func DefaultFeatureSet() FeatureSet {
	return FeatureSet{MSCs: []string{"msc1767"}}
}

// unstableKeyOwners maps the wire-key prefix of each known unstable
// namespace to the MSC that owns it. The decoder strips keys under a
// disabled namespace before unmarshalling, so the concrete shapes never see
// them.
var unstableKeyOwners = map[string]string{
	"org.matrix.msc1767.":    "msc1767",
	"org.matrix.msc3917.v1.": "msc3917",
}
