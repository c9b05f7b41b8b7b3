package models

import (
	"strings"
	"time"
)

// GuestEmailDomain tags synthetic guest accounts so they can be told apart
// from real members wherever member lists are filtered.
const GuestEmailDomain = "temp.local"

// User is an account known to the system. Real users are provisioned from the
// identity provider's claims on first contact; guests and imported players get
// synthetic records.
type User struct {
	BaseModel
	Name     string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	JoinedAt time.Time `json:"joined_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// IsGuest reports whether the user is a synthetic guest account.
func (u *User) IsGuest() bool {
	return IsGuestEmail(u.Email)
}

// IsGuestEmail reports whether an address belongs to a synthetic guest account.
func IsGuestEmail(email string) bool {
	return strings.HasSuffix(email, "@"+GuestEmailDomain)
}
