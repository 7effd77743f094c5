package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded identity carried by an access token. EventIDs is a
// snapshot taken at issuance time and can go stale; membership-sensitive
// reads must re-query the ledger instead of trusting it.
type Claims struct {
	UserID   string
	Role     UserRole
	Login    string
	Name     string
	Surname  string
	Lastname string
	Email    string
	EventIDs []string
	jwt.RegisteredClaims
}
