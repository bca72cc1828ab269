package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const (
	dbContextKey       = "db"
	userIDContextKey   = "user_id"
	usernameContextKey = "username"
	roleContextKey     = "role"
)

// CORSMiddleware configures CORS headers for incoming requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Content-Type", "application/json")

		// For preflight requests, respond with 204 and abort further processing.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// DatabaseMiddleware injects the gorm DB handle into the request context so
// handlers never touch process-wide state.
func DatabaseMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(dbContextKey, db)
		c.Next()
	}
}

// GetDB returns the gorm DB handle stored by DatabaseMiddleware, or nil.
func GetDB(c *gin.Context) *gorm.DB {
	value, exists := c.Get(dbContextKey)
	if !exists {
		return nil
	}
	db, ok := value.(*gorm.DB)
	if !ok {
		return nil
	}
	return db
}

// AuthRequired validates the Bearer JWT on the request and stores the acting
// user's identity in the context for created_by attribution.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			util.LogSecurityEvent(util.SecurityEvent{
				EventType: util.EventUnauthorizedAccess,
				IP:        c.ClientIP(),
				UserAgent: c.Request.UserAgent(),
				Message:   fmt.Sprintf("Missing bearer token for %s", c.Request.URL.Path),
			})
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Access denied",
				Err: fmt.Errorf("missing bearer token"),
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return util.GetJWTSecretByte(), nil
		})
		if err != nil || !token.Valid {
			if err == nil {
				err = fmt.Errorf("invalid token")
			}
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Invalid token",
				Err: err,
			})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			util.CallUserNotAuthorized(c, util.APIErrorParams{
				Msg: "Invalid token",
				Err: fmt.Errorf("unexpected token claims"),
			})
			c.Abort()
			return
		}

		if id, ok := claims[userIDContextKey].(float64); ok {
			c.Set(userIDContextKey, uint(id))
		}
		if username, ok := claims[usernameContextKey].(string); ok {
			c.Set(usernameContextKey, username)
		}
		if role, ok := claims[roleContextKey].(string); ok {
			c.Set(roleContextKey, role)
		}

		c.Next()
	}
}

// GetUserID returns the authenticated user's id from the context.
func GetUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(userIDContextKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// GetUsername returns the authenticated user's username from the context.
func GetUsername(c *gin.Context) (string, bool) {
	value, exists := c.Get(usernameContextKey)
	if !exists {
		return "", false
	}
	username, ok := value.(string)
	return username, ok
}
