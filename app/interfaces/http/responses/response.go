package responses

import (
	"net/http"
	"time"

	"lendsqr.dev/admin-api-gateway/config"
)

type ErrorResponse struct {
	Code          string `json:"code"`
	Error         string `json:"error"`
	ErrorInstance error  `json:"-"`
}

type GeneralResponse[T any] struct {
	Status string `json:"status"`
	Result T      `json:"result"`
}

const ResponseStatusOk = "ok"

func NewCookieWithSecurity(name string, value string, expires time.Time) *http.Cookie {
	if config.IsDev() {
		return &http.Cookie{
			Name:     name,
			Value:    value,
			Expires:  expires,
			HttpOnly: false,
			Secure:   false,
			Path:     "/",
		}
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Expires:  expires,
		HttpOnly: true,
		Secure:   true,
		Path:     "/",
		SameSite: http.SameSiteStrictMode,
	}
}
