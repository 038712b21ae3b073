// Package primitives provides change tracking and content fingerprints for the container.
package primitives

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
)

// Version is a mutation counter. Observers record Load() and later compare with
// Changed; the counter never goes backwards.
type Version struct {
	n uint64
}

// Bump records one mutation and returns the new counter value.
func (v *Version) Bump() uint64 {
	v.n++
	return v.n
}

// Load returns the current counter value.
func (v *Version) Load() uint64 { return v.n }

// Changed reports whether any mutation happened after since was observed.
func (v *Version) Changed(since uint64) bool { return v.n != since }

// Fingerprint computes a deterministic digest of values: SHA256(JSON)[:8] in hex.
func Fingerprint(values any) string {
	data, err := json.Marshal(values)
	if err != nil {
		// Values that cannot be encoded still get a stable, recognisable tag.
		return fmt.Sprintf("unencodable-%T", values)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}
