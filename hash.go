package poolprobe

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns the xxh3 hash of the pool's binary encoding.
// Pools with equal values and bounds have equal fingerprints.
func (p *Pool) Fingerprint() uint64 {
	return xxh3.Hash(p.encode())
}

// FingerprintString returns the fingerprint as 16 lowercase hex digits.
func (p *Pool) FingerprintString() string {
	return fmt.Sprintf("%016x", p.Fingerprint())
}
