package domain

import (
	"strings"

	"github.com/google/uuid"
)

// User is the person driving a session. Guests get a user record too so
// cart and favorites work before sign-in.
type User struct {
	ID       string
	Name     string
	Phone    string
	Email    string
	Location string
	IsGuest  bool
}

// NewUser creates a registered user from a name and phone number.
func NewUser(name, phone string) *User {
	return &User{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
	}
}

// NewGuestUser creates an anonymous guest user.
func NewGuestUser() *User {
	return &User{
		ID:      uuid.NewString(),
		Name:    "Guest",
		IsGuest: true,
	}
}

// ReferralCode derives a shareable invite code from the user id.
// Display only, carries no server-side meaning.
func (u *User) ReferralCode() string {
	compact := strings.ReplaceAll(u.ID, "-", "")
	if len(compact) > 6 {
		compact = compact[:6]
	}
	return "DELIGO-" + strings.ToUpper(compact)
}
