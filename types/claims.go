package types

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ActorContext carries the acting identity and request metadata into
// workflow calls. Handlers build it from the verified claims; services
// never reach back into the transport layer.
type ActorContext struct {
	UserID    uint
	IPAddress string
	UserAgent string
}
