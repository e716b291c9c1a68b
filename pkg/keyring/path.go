// Package keyring derives deterministic key identities from seed phrases and
// derivation paths, and encodes them into the tagged store keys and metadata
// records the rest of the wallet persists.
package keyring

import "regexp"

// pathRe is the anchored derivation-path grammar: any run of soft (/) and
// hard (//) junctions, optionally ending in a ///password suffix. Compiled
// once at startup and never mutated, so concurrent matching needs no locking.
var pathRe = regexp.MustCompile(`^(?P<path>(//?[^/]+)*)(///(?P<password>.+))?$`)

var (
	pathGroup     = pathRe.SubexpIndex("path")
	passwordGroup = pathRe.SubexpIndex("password")
)

// ParseDerivationPath splits a raw derivation path into its junction-only
// normalized form and a flag recording whether a ///password suffix was
// present. The password itself is stripped, never returned. Inputs that do
// not fit the grammar degrade to an empty path with no password rather than
// failing: parsing only shapes stored metadata, while derivation always
// consumes the raw string.
func ParseDerivationPath(raw string) (path string, hasPassword bool) {
	m := pathRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[pathGroup], m[passwordGroup] != ""
}
