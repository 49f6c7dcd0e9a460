package model

import "github.com/golang-jwt/jwt/v5"

type SessionClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}
