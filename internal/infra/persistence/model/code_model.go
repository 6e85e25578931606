package model

import (
	"time"
)

// CodeModel mirrors a document in the 'codes' collection holding the
// incubator discount codes.
type CodeModel struct {
	Code             string    `firestore:"code"`
	ActivationStatus bool      `firestore:"activationStatus"`
	ActivatedBy      string    `firestore:"activatedBy"`
	ActivatedAt      time.Time `firestore:"activatedAt"`
}
