package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/Gabarito/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	AccountIDKey   = "account_id"
	AccountRoleKey = "account_role"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Claims identify the acting account. Tokens are issued by the account
// service that fronts this API; IssueToken exists for operators and tests.
type Claims struct {
	AccountID uint   `json:"account_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func IssueToken(secret string, accountID uint, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: accountID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.AccountID == 0 {
		return nil, errors.New("invalid account_id in token")
	}
	return claims, nil
}

// AccountAuth requires a bearer token and stores the account id and role
// in the gin context.
func AccountAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authorization header required"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid authorization header format"})
			return
		}

		claims, err := ParseToken(secret, parts[1])
		if err != nil {
			log.Warn().Err(err).Str("path", c.FullPath()).Msg("AccountAuth: rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid or expired token"})
			return
		}

		role := claims.Role
		if role == "" {
			role = RoleUser
		}
		c.Set(AccountIDKey, claims.AccountID)
		c.Set(AccountRoleKey, role)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(AccountRoleKey) != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "admin role required"})
			return
		}
		c.Next()
	}
}
