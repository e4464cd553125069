package auth

import (
	"context"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
)

// Profile is the identity of the authenticated user from their verified
// Firebase ID token.
type Profile struct {
	UID        string
	Name       string
	Email      string
	ProfilePic string
}

// UserProfile returns the authenticated user's identity from the request
// context. The UID is empty if the request is unauthenticated.
func UserProfile(ctx context.Context) Profile {
	tok := firebaseauth.TokenFromContext(ctx)
	if tok == nil {
		return Profile{}
	}
	p := Profile{UID: tok.UID}
	if name, ok := tok.Claims["name"].(string); ok {
		p.Name = name
	}
	if email, ok := tok.Claims["email"].(string); ok {
		p.Email = email
	}
	if pic, ok := tok.Claims["picture"].(string); ok {
		p.ProfilePic = pic
	}
	return p
}
