package model

import (
	"time"
)

// RefreshTokenModel mirrors a document in the 'refresh_tokens' collection.
// Only the SHA-256 hash of the raw token is ever persisted.
type RefreshTokenModel struct {
	UserID    string    `firestore:"userId"`
	TokenHash string    `firestore:"tokenHash"`
	ExpiresAt time.Time `firestore:"expiresAt"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp"`
}
