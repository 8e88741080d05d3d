// Package jwt reads display hints out of EcoCheck bearer tokens.
//
// Nothing here verifies a signature: the dashboard never holds the API's
// signing secret, so every value returned is an unverified claim that may
// only drive what the UI shows. The API re-checks authorization on every call.
package jwt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed token")

// Claims are the unverified fields the dashboard cares about
type Claims struct {
	Subject  string
	Email    string
	Role     string
	Location string
	Expiry   int64
}

// ExtractClaims decodes the payload segment of tokenString without validation.
// Role is taken from "role", then "userType", then "type".
func ExtractClaims(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrMalformedToken
	}

	parser := jwt.NewParser()
	mapClaims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, mapClaims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	claims := &Claims{
		Subject:  firstString(mapClaims, "sub", "id", "userId", "_id"),
		Email:    firstString(mapClaims, "email"),
		Role:     firstString(mapClaims, "role", "userType", "type"),
		Location: firstString(mapClaims, "location"),
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.Expiry = exp.Unix()
	}

	return claims, nil
}

func firstString(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if v, ok := claims[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
