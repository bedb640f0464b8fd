package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	domainerr "github.com/amirhossein-jamali/game-booking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/game-booking/internal/domain/port/core"
	"github.com/amirhossein-jamali/game-booking/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by JWTAuth
const (
	PlayerIDKey = "player_id"
	RoleKey     = "role"
)

// Claims are the JWT claims the API understands. The subject is the player id.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AuthConfig holds the token verification settings
type AuthConfig struct {
	Secret string
	Issuer string
}

// JWTAuth validates the HS256 bearer token and stores the player id and role
// in the gin context
func JWTAuth(config AuthConfig, logger coreport.Logger) gin.HandlerFunc {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if config.Issuer != "" {
		options = append(options, jwt.WithIssuer(config.Issuer))
	}
	parser := jwt.NewParser(options...)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithMessage(domainerr.ErrUnauthorized, "Missing bearer token"))
			return
		}

		claims := &Claims{}
		_, err := parser.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
			return []byte(config.Secret), nil
		})
		if err != nil {
			logger.Warn("Rejected bearer token", map[string]any{
				"path":       c.Request.URL.Path,
				"request_id": c.GetString(RequestIDKey),
				"error":      err.Error(),
			})
			message := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithMessage(domainerr.ErrUnauthorized, message))
			return
		}

		playerID, err := strconv.ParseUint(claims.Subject, 10, 64)
		if err != nil || playerID == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithMessage(domainerr.ErrUnauthorized, "Token subject is not a player id"))
			return
		}

		c.Set(PlayerIDKey, playerID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole lets the request through only when the token carries one of roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(roles, c.GetString(RoleKey)) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithMessage(domainerr.ErrForbidden, "Insufficient role"))
			return
		}
		c.Next()
	}
}

// PlayerIDFromContext returns the authenticated player id
func PlayerIDFromContext(c *gin.Context) (uint64, bool) {
	v, ok := c.Get(PlayerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok && id > 0
}

// IssueToken signs an HS256 token for playerID. Used by tests and the load script.
func IssueToken(config AuthConfig, playerID uint64, role string, now time.Time, ttl time.Duration) (string, error) {
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(playerID, 10),
			Issuer:    config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.Secret))
}
