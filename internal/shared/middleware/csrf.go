package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"movie-catalog/pkg/jwt"
)

const (
	CSRFCookieName = "csrf_nonce"
	CSRFFormField  = "_csrf"
	CSRFHeader     = "X-CSRF-Token"

	// CSRFTokenKey is the gin context key holding the token for the page
	// being rendered.
	CSRFTokenKey = "csrf_token"
)

// CSRF protects form posts with a signed token tied to a per-visitor nonce
// cookie. Safe methods get a fresh token in the context; unsafe methods must
// echo a valid one in the _csrf field or X-CSRF-Token header.
func CSRF(manager *jwt.Manager, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		nonce, err := c.Cookie(CSRFCookieName)
		if err != nil || nonce == "" {
			nonce = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CSRFCookieName, nonce, 0, "/", "", secureCookie, true)
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
		default:
			token := c.PostForm(CSRFFormField)
			if token == "" {
				token = c.GetHeader(CSRFHeader)
			}
			if err := manager.ValidateCSRFToken(token, nonce); err != nil {
				log.Ctx(c.Request.Context()).Warn().Err(err).Str("path", c.Request.URL.Path).Msg("csrf check failed")
				c.String(http.StatusForbidden, "Invalid or missing form token. Reload the page and try again.")
				c.Abort()
				return
			}
		}

		token, err := manager.GenerateCSRFToken(nonce)
		if err != nil {
			c.AbortWithError(http.StatusInternalServerError, err)
			return
		}
		c.Set(CSRFTokenKey, token)

		c.Next()
	}
}
