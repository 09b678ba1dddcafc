//go:build !amd64 && !arm64

package registry

// No vector tiers; every operation runs on the scalar kernel.
var archTiers []Tier
