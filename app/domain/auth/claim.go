package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"lendsqr.dev/admin-api-gateway/config/environment_variables"
)

const SessionCookieKey = "lsq_session"
const ContextAdminClaim = "context_admin_claim"

type AdminClaim struct {
	Email     string
	Name      string
	ID        string
	SessionID string
	jwt.RegisteredClaims
}

func CreateJwtSignedString(c AdminClaim) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, c)
	return token.SignedString(environment_variables.EnvironmentVariables.JWT_SECRET)
}

func ParseAdminClaim(tokenString string) (*AdminClaim, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaim{}, func(token *jwt.Token) (interface{}, error) {
		return environment_variables.EnvironmentVariables.JWT_SECRET, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}
	claims, ok := token.Claims.(*AdminClaim)
	if !ok {
		return nil, false
	}
	if claims.ID == "" {
		return nil, false
	}
	return claims, true
}
