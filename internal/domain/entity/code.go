// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// IncubatorCode is a one-time discount code handed out to incubator
// participants. A code is consumed (activated) at store creation and
// halves the weekly cost of the chosen plan.
type IncubatorCode struct {
	ID               string    // Document identifier.
	Code             string    // The code itself, compared by exact equality.
	ActivationStatus bool      // false until consumed at store creation.
	ActivatedBy      string    // User ID that consumed the code, if any.
	ActivatedAt      time.Time // Zero until consumed.
}

// IncubatorDiscount is the fraction of the weekly cost charged when a
// valid incubator code is applied.
const IncubatorDiscount = 0.5
