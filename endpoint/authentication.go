package endpoint

import (
	"crypto/hmac"
	"fmt"
	"strings"
	"time"

	"github.com/ariebrainware/hospital-front-office/middleware"
	"github.com/ariebrainware/hospital-front-office/model"
	"github.com/ariebrainware/hospital-front-office/util"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

const (
	maxFailedAttempts = 5
	lockoutDuration   = 15 * time.Minute
	tokenLifetime     = 24 * time.Hour
)

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"reception1"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginResponse struct {
	Token string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  loginUser `json:"user"`
}

type loginUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Login godoc
// @Summary      User login
// @Description  Authenticate a staff user with username and password
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} util.APIResponse{data=LoginResponse} "Login successful"
// @Failure      400 {object} util.APIResponse "Invalid request payload"
// @Failure      401 {object} util.APIResponse "Invalid credentials"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	ci := clientInfo{IP: c.ClientIP(), Agent: c.Request.UserAgent()}

	var user model.User
	err := db.Where("username = ? AND is_active = ?", req.Username, true).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		util.LogLoginFailure(req.Username, ci.IP, ci.Agent, "user not found")
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Invalid credentials",
			Err: fmt.Errorf("invalid credentials"),
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Database error", Err: err})
		return
	}

	if locked, until := isAccountLocked(&user); locked {
		util.LogLoginFailure(req.Username, ci.IP, ci.Agent, "account locked")
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Account is locked until %s due to multiple failed login attempts", until.Format(time.RFC3339)),
			Err: fmt.Errorf("account locked"),
		})
		return
	}

	if !passwordMatches(req.Password, user.Password) {
		incrementFailedAttempts(db, &user, ci)
		util.LogLoginFailure(req.Username, ci.IP, ci.Agent, "invalid password")
		util.CallUserNotAuthorized(c, util.APIErrorParams{
			Msg: "Invalid credentials",
			Err: fmt.Errorf("invalid credentials"),
		})
		return
	}

	if err := resetFailedAttempts(db, &user); err != nil {
		util.LogSecurityEvent(util.SecurityEvent{
			EventType: util.EventSuspiciousActivity,
			UserID:    fmt.Sprintf("%d", user.ID),
			Username:  user.Username,
			IP:        ci.IP,
			Message:   fmt.Sprintf("Failed to reset failed attempts: %v", err),
		})
	}

	tokenString, err := createJWTToken(user)
	if err != nil {
		util.LogLoginFailure(req.Username, ci.IP, ci.Agent, "token generation failed")
		util.CallServerError(c, util.APIErrorParams{Msg: "Could not generate token", Err: err})
		return
	}

	session := model.Session{
		UserID:       user.ID,
		SessionToken: tokenString,
		IP:           ci.IP,
		UserAgent:    ci.Agent,
		ExpiresAt:    time.Now().Add(tokenLifetime),
	}
	if err := db.Create(&session).Error; err != nil {
		util.LogLoginFailure(req.Username, ci.IP, ci.Agent, "session creation failed")
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to record session", Err: err})
		return
	}

	// Mirror the session in Redis (best-effort)
	_ = util.AddSessionToUserSet(user.ID, tokenString, fmt.Sprintf("%d:%s", user.ID, user.Role))

	util.LogLoginSuccess(user.ID, user.Username, ci.IP, ci.Agent)
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg: "Login successful",
		Data: LoginResponse{
			Token: tokenString,
			User: loginUser{
				ID:       user.ID,
				Username: user.Username,
				FullName: user.FullName,
				Role:     user.Role,
			},
		},
	})
}

// Logout godoc
// @Summary      User logout
// @Description  Invalidate the current session token
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse "Logged out"
// @Failure      401 {object} util.APIResponse "Unauthorized"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /auth/logout [post]
func Logout(c *gin.Context) {
	db, ok := getDBOrRespond(c)
	if !ok {
		return
	}

	tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	userID, _ := middleware.GetUserID(c)
	username, _ := middleware.GetUsername(c)

	if err := db.Where("session_token = ?", tokenString).Delete(&model.Session{}).Error; err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to invalidate session", Err: err})
		return
	}
	_ = util.RemoveSessionTokenFromUserSet(userID, tokenString)

	util.LogLogout(userID, username, c.ClientIP(), c.Request.UserAgent())
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Logged out"})
}

func passwordMatches(plain, storedHash string) bool {
	computed := util.HashPassword(plain)
	return hmac.Equal([]byte(computed), []byte(storedHash))
}

func createJWTToken(user model.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString(util.GetJWTSecretByte())
}

func isAccountLocked(user *model.User) (bool, time.Time) {
	if user.LockedUntil != nil && *user.LockedUntil > time.Now().Unix() {
		return true, time.Unix(*user.LockedUntil, 0)
	}
	return false, time.Time{}
}

func incrementFailedAttempts(db *gorm.DB, user *model.User, ci clientInfo) {
	user.FailedAttempts++
	if user.FailedAttempts >= maxFailedAttempts {
		lockUntil := time.Now().Add(lockoutDuration).Unix()
		user.LockedUntil = &lockUntil
		util.LogAccountLocked(user.ID, user.Username, ci.IP, "too many failed login attempts")
		// Kill any live sessions for the locked account (best-effort)
		_ = util.InvalidateUserSessions(user.ID)
	}
	if err := db.Save(user).Error; err != nil {
		util.LogLoginFailure(user.Username, ci.IP, ci.Agent, "failed to update failed attempts")
	}
}

func resetFailedAttempts(db *gorm.DB, user *model.User) error {
	if user.FailedAttempts > 0 || user.LockedUntil != nil {
		user.FailedAttempts = 0
		user.LockedUntil = nil
		return db.Save(user).Error
	}
	return nil
}
