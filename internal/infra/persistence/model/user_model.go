package model

import (
	"time"
)

// UserModel mirrors a document in the 'users' collection, keyed by the
// auth identity identifier.
type UserModel struct {
	Email        string           `firestore:"email"`
	DisplayName  string           `firestore:"displayName"`
	PasswordHash string           `firestore:"passwordHash"`
	Roles        []string         `firestore:"roles"`
	Profile      UserProfileModel `firestore:"profile"`
	CreatedAt    time.Time        `firestore:"createdAt,serverTimestamp"`
	UpdatedAt    time.Time        `firestore:"updatedAt,serverTimestamp"`
}

// UserProfileModel mirrors the nested 'profile' map on a user document.
type UserProfileModel struct {
	Phone     string `firestore:"phone"`
	Address   string `firestore:"address"`
	BirthDate string `firestore:"birthDate"`
	Gender    string `firestore:"gender"`
	PhotoURL  string `firestore:"photoUrl"`
}
