package changer

import (
	"github.com/npillmayer/soundlaw"
)

// Changer applies compiled rules to sequences. It holds the injected
// Phonology service and no other state; all its methods are pure
// functions of their inputs plus that service.
type Changer struct {
	phon soundlaw.Phonology
}

// New creates a Changer over a Phonology service. The service's
// lifetime is owned by the caller; a single Changer may be shared
// across goroutines, provided the service is read-safe.
func New(phon soundlaw.Phonology) *Changer {
	return &Changer{phon: phon}
}
