package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"event-ticketing/internal/model"
	"event-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ctxUserID        = "user_id"
	ctxRole          = "role"
	ctxCorrelationID = "correlation_id"

	correlationHeader = "X-Request-ID"
)

// Claims 由登入服務簽發：sub 為使用者 id，role 為 1 代表管理員
type Claims struct {
	Role int `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken 簽發 HS256 token
func IssueToken(secret string, userID int, role int, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Auth 驗證 Authorization: Bearer 或 access_token cookie
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			respondFailure(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		userID, role, err := parseToken(secret, tokenString)
		if err != nil {
			logger.WithComponent("auth").Warn("invalid token", zap.Error(err))
			respondFailure(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxRole, role)
		c.Next()
	}
}

// RequireAdmin 必須放在 Auth 之後
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetInt(ctxRole) != model.RoleAdmin {
			respondFailure(c, http.StatusForbidden, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CorrelationID 為每個請求帶上 X-Request-ID，沒有就產生一個
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(correlationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxCorrelationID, id)
		c.Header(correlationHeader, id)
		c.Next()
	}
}

// RequestLogger 以 zap 記錄每個請求
func RequestLogger() gin.HandlerFunc {
	log := logger.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("correlation_id", c.GetString(ctxCorrelationID)))
	}
}

// currentUserID Auth 之後一定有值
func currentUserID(c *gin.Context) int {
	return c.GetInt(ctxUserID)
}

func bearerToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}

func parseToken(secret, tokenString string) (int, int, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, 0, err
	}
	if !token.Valid {
		return 0, 0, errors.New("token is not valid")
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID <= 0 {
		return 0, 0, fmt.Errorf("invalid subject %q", claims.Subject)
	}
	return userID, claims.Role, nil
}
