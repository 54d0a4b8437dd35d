package controllers

import (
	"crypto/subtle"
	"net/http"

	"mdyrent/config"

	"github.com/gin-gonic/gin"
)

// BasicAuthRequired protege as rotas do admin com a credencial única
// compartilhada (HTTP Basic). Sem credencial ou credencial errada
// devolve o challenge 401 antes de chegar no handler.
func BasicAuthRequired(cfg config.Configuration) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !checkAuth(user, pass, cfg) {
			c.Header("WWW-Authenticate", `Basic realm="Login Required"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

func checkAuth(user, pass string, cfg config.Configuration) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(cfg.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(cfg.AdminPassword)) == 1
	return userOK && passOK
}
