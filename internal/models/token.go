package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are carried in the session cookie. Role is the role at issue time only;
// admin checks always re-read the current role.
type SessionClaims struct {
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Identity is the verified caller attached to a request context.
type Identity struct {
	Email      string
	IssuedRole Role
}
