package operations

import "fmt"

// Version is a semantic library version.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Less reports whether v precedes o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	if v.Minor != o.Minor {
		return v.Minor < o.Minor
	}
	return v.Patch < o.Patch
}

// libraryVersion is the version of this library, injected once and never
// mutated.
var libraryVersion = Version{Major: 1, Minor: 9, Patch: 0}

// CurrentVersion returns the library version, used for import/export checks.
func CurrentVersion() Version {
	return libraryVersion
}

// minimumVersions lists the variants introduced after 1.0.0. Everything not
// listed here is supported since 1.0.0.
var minimumVersions = map[string]Version{
	"PragmaLoop":                  {Major: 1, Minor: 1},
	"PhaseShiftedControlledPhase": {Major: 1, Minor: 2},
	"PragmaControlledCircuit":     {Major: 1, Minor: 5},
	"PragmaAnnotatedOp":           {Major: 1, Minor: 8},
}

// nestedOperations is implemented by wrapper variants owning child
// operations; the version requirement of a wrapper includes its children.
type nestedOperations interface {
	nestedOps() []Operation
}

// MinimumSupportedVersion returns the oldest library version that supports
// the operation, including any nested operations it wraps.
func MinimumSupportedVersion(op Operation) Version {
	minimum := Version{Major: 1}
	if v, ok := minimumVersions[op.HQSLang()]; ok {
		minimum = v
	}
	if wrapper, ok := op.(nestedOperations); ok {
		for _, child := range wrapper.nestedOps() {
			if cv := MinimumSupportedVersion(child); minimum.Less(cv) {
				minimum = cv
			}
		}
	}
	return minimum
}

// ValidateVersion checks that a library at version library can handle data
// requiring version required.
func ValidateVersion(library, required Version) error {
	if library.Less(required) {
		return VersionMismatchError{
			LibraryMajor: library.Major,
			LibraryMinor: library.Minor,
			DataMajor:    required.Major,
			DataMinor:    required.Minor,
		}
	}
	return nil
}

// CheckVersion verifies that the running library supports the operation.
func CheckVersion(op Operation) error {
	return ValidateVersion(CurrentVersion(), MinimumSupportedVersion(op))
}
