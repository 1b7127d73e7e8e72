package http

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"account-service/internal/domain"
	"account-service/internal/service"
	"account-service/internal/storage"
)

const currentUserKey = "current_user"

// Handler wires HTTP routes to the auth service.
type Handler struct {
	auth    service.AuthService
	storage storage.Service
	bucket  string
	prefix  string
}

func NewHandler(auth service.AuthService, store storage.Service, bucket, keyPrefix string) *Handler {
	return &Handler{
		auth:    auth,
		storage: store,
		bucket:  bucket,
		prefix:  keyPrefix,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	router.POST("/auth/token", h.login)
	router.POST("/auth/logout", h.logout)

	authed := router.Group("/", h.requireUser())
	{
		authed.GET("/auth/me", h.me)
		authed.POST("/auth/change-password", h.changePassword)
		authed.PUT("/auth/me/avatar", h.uploadAvatar)
		authed.GET("/auth/me/avatar", h.avatarURL)

		authed.GET("/users", h.listUsers)
		authed.POST("/users", h.createUser)
		authed.DELETE("/users/:user_id", h.deleteUser)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requireUser validates the bearer token and resolves the acting user.
func (h *Handler) requireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		user, err := h.auth.ResolveToken(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				unauthorized(c, "Could not validate credentials")
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func currentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*domain.User)
	return user
}

func unauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	var verr service.ValidationError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		unauthorized(c, "Could not validate credentials")
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admin can manage users"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	result, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			unauthorized(c, "Incorrect email or password")
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": result.AccessToken,
		"token_type":   "bearer",
		"user_id":      result.User.ID,
		"email":        result.User.Email,
		"name":         result.User.Name,
	})
}

// logout acknowledges without touching server state; tokens stay valid
// until their embedded expiry.
func (h *Handler) logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (h *Handler) me(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"user_id":        user.ID,
		"email":          user.Email,
		"name":           user.Name,
		"email_verified": user.EmailVerified != nil,
	})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *Handler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), currentUser(c), req.CurrentPassword, req.NewPassword); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context(), currentUser(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(users[i])
	}
	c.JSON(http.StatusOK, resp)
}

type createUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.auth.CreateUser(c.Request.Context(), currentUser(c), req.Email, req.Name, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(*user))
}

func (h *Handler) deleteUser(c *gin.Context) {
	if err := h.auth.DeleteUser(c.Request.Context(), currentUser(c), c.Param("user_id")); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

func (h *Handler) uploadAvatar(c *gin.Context) {
	if h.storage == nil || h.bucket == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage service not configured"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	defer file.Close()

	user := currentUser(c)
	key := fmt.Sprintf("%s/%s", user.ID, filepath.Base(header.Filename))
	location, err := h.storage.UploadObject(c.Request.Context(), key, file, storage.UploadOptions{
		Bucket:      h.bucket,
		KeyPrefix:   h.prefix,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.SetAvatar(c.Request.Context(), user, location); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": location})
}

func (h *Handler) avatarURL(c *gin.Context) {
	if h.storage == nil || h.bucket == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage service not configured"})
		return
	}

	user := currentUser(c)
	if user.Image == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no avatar set"})
		return
	}

	bucket, key, err := storage.ParseLocation(user.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	url, err := h.storage.GetObjectURL(c.Request.Context(), bucket, key, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func userToResponse(user domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
