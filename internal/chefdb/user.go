package chefdb

// UserProfile is the per-user profile document stored at users/{uid}.
// It is created once on first sign-in and read unchanged afterwards.
type UserProfile struct {
	// UID is the identity provider's unique identifier for the account.
	UID string `firestore:"uid" json:"uid"`

	// Name is the display name of the user, if shared by the provider.
	Name string `firestore:"name" json:"name"`

	// Email is the email address of the user, if shared by the provider.
	Email string `firestore:"email" json:"email"`

	// ProfilePic is the URL of the user's profile picture.
	ProfilePic string `firestore:"profile_pic" json:"profile_pic"`
}
