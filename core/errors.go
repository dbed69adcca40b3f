package core

import (
	"github.com/cockroachdb/errors"
)

// Bring-up error taxonomy. The first is a negotiation error, the middle
// three are per-device capability errors, the last is exhaustion after
// every candidate was rejected.
var (
	ErrLayerUnavailable      = errors.New("missing required validation layer")
	ErrQueueFamiliesMissing  = errors.New("missing required queue families")
	ErrExtensionsMissing     = errors.New("missing required device extensions")
	ErrSwapchainInsufficient = errors.New("insufficient swapchain support")
	ErrNoSuitableDevice      = errors.New("no suitable physical device found")
)

// isCapabilityError reports whether err rejects a single candidate device.
// The selector skips such candidates; every other error aborts bring-up.
func isCapabilityError(err error) bool {
	return errors.IsAny(err,
		ErrQueueFamiliesMissing,
		ErrExtensionsMissing,
		ErrSwapchainInsufficient,
	)
}
