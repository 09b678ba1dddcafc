//go:build !amd64 && !arm64

package cpu

import "runtime"

// Architectures without a tier table report no vector flags; every operation
// runs on the scalar kernel.
func detectFeaturesImpl() Features {
	return Features{Architecture: runtime.GOARCH}
}
