package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, name+" é obrigatório", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, name+" inválido", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

// ---------- flash (cookie transiente, lido e apagado na próxima página) ----------

const flashCookie = "admin_flash"

// SetFlash guarda uma mensagem transiente classificada como
// success/warning/danger para a próxima renderização.
func SetFlash(c *gin.Context, level, msg string) {
	value := url.QueryEscape(level + "|" + msg)
	c.SetCookie(flashCookie, value, 60, "/", "", false, true)
}

// TakeFlash lê e apaga a mensagem transiente, se houver.
func TakeFlash(c *gin.Context) (level, msg string) {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return "", ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", ""
	}
	parts := strings.SplitN(decoded, "|", 2)
	if len(parts) != 2 {
		return "", ""
	}
	return parts[0], parts[1]
}

// clientIP prefere o X-Forwarded-For (proxy/CDN na frente), limitado a 45 chars.
func clientIP(c *gin.Context) string {
	ip := c.GetHeader("X-Forwarded-For")
	if ip == "" {
		ip = c.ClientIP()
	}
	if len(ip) > 45 {
		ip = ip[:45]
	}
	return ip
}

func userAgent(c *gin.Context) string {
	ua := c.GetHeader("User-Agent")
	if len(ua) > 255 {
		ua = ua[:255]
	}
	return ua
}
