package spdx

// License list sentinels that bypass registry lookup.
const (
	// SentinelFOSS marks a license entry as open source without a registry record.
	SentinelFOSS = "FOSS"
	// SentinelProprietary marks a license entry as closed source without a registry record.
	SentinelProprietary = "Proprietary"
)

// Classifier decides whether license identifiers count as FOSS.
// It exists so consumers can take fixture classifiers in tests instead of
// a full registry.
type Classifier interface {
	// IsFoss reports whether a single license ID counts as open source.
	IsFoss(licenseID string) bool

	// IsLicensesFoss reports whether every entry of a license list counts
	// as open source.
	IsLicensesFoss(licenseIDs []string) bool
}

// IsFoss reports whether a license ID counts as open source.
// Unknown IDs are conservatively non-FOSS; known IDs are FOSS when
// OSI-approved or FSF-libre, regardless of deprecation.
func (r *Registry) IsFoss(licenseID string) bool {
	l, ok := r.byID[licenseID]
	if !ok {
		return false
	}
	return l.IsOsiApproved || l.IsFsfLibre
}

// IsLicensesFoss reports whether every entry of a license list counts as
// open source. Each entry resolves with three tiers of precedence: the
// literal "FOSS" sentinel is always true, the literal "Proprietary"
// sentinel is always false, and anything else goes through IsFoss.
//
// An empty (or nil) list resolves to true. That vacuous truth is the
// long-standing behavior of the pipeline and is kept as-is.
func (r *Registry) IsLicensesFoss(licenseIDs []string) bool {
	for _, id := range licenseIDs {
		var foss bool
		switch id {
		case SentinelFOSS:
			foss = true
		case SentinelProprietary:
			foss = false
		default:
			foss = r.IsFoss(id)
		}
		if !foss {
			return false
		}
	}
	return true
}
