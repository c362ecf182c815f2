package v1

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/eagle_eye/internal/config"
	"github.com/sirupsen/logrus"
)

// operatorContextKey - ключ gin.Context с идентификатором оператора пульта
const operatorContextKey = "operator"

// APIKeyAuthMiddleware пускает к пульту только операторов с ключом из API_KEYS.
// Номер ключа в списке становится идентификатором оператора: operator-1, operator-2, ...
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := logrus.Fields{
			"path":      c.FullPath(),
			"client_ip": c.ClientIP(),
		}

		apiKey := requestAPIKey(c)
		if apiKey == "" {
			log.WithFields(fields).Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		operator, ok := matchOperator(cfg.APIKeys, apiKey)
		if !ok {
			log.WithFields(fields).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Set(operatorContextKey, operator)
		c.Next()
	}
}

// requestAPIKey берет ключ из X-API-Key, иначе из Authorization: Bearer
func requestAPIKey(c *gin.Context) string {
	if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
		return apiKey
	}
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// matchOperator сравнивает ключ со всеми настроенными за постоянное время
func matchOperator(keys []string, apiKey string) (string, bool) {
	matched := -1
	for i, key := range keys {
		if key != "" && subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 && matched < 0 {
			matched = i
		}
	}
	if matched < 0 {
		return "", false
	}
	return fmt.Sprintf("operator-%d", matched+1), true
}

// operatorFrom возвращает оператора, установленного APIKeyAuthMiddleware
func operatorFrom(c *gin.Context) string {
	return c.GetString(operatorContextKey)
}
