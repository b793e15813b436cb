package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openduel/duel-server-go/internal/repository"
	"github.com/openduel/duel-server-go/internal/session"
	"github.com/openduel/duel-server-go/internal/user"
)

const (
	userIDKey     = "user_id"
	sessionCookie = "duel_session"
)

type signupRequest struct {
	Email    string `json:"email" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signinRequest struct {
	// Login is a nickname or an email address.
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type accountResponse struct {
	ID        int64     `json:"id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	Rating    int16     `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
	User      accountResponse `json:"user"`
}

func accountOf(u repository.User) accountResponse {
	return accountResponse{
		ID:        u.ID,
		Nickname:  u.Nickname,
		Email:     u.Email,
		Rating:    u.Rating,
		CreatedAt: u.CreatedAt,
	}
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := s.users.Register(c.Request.Context(), req.Email, req.Nickname, req.Password)
	if err != nil {
		s.accountError(c, err)
		return
	}

	sess, err := s.sessions.Create(c.Request.Context(), u.ID)
	if err != nil {
		s.internalError(c, "create session", err)
		return
	}

	s.setSessionCookie(c, sess)
	c.JSON(http.StatusCreated, sessionResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		User:      accountOf(u),
	})
}

func (s *Server) handleSignin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := s.users.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		s.accountError(c, err)
		return
	}

	sess, err := s.sessions.Create(c.Request.Context(), u.ID)
	if err != nil {
		s.internalError(c, "create session", err)
		return
	}

	s.setSessionCookie(c, sess)
	c.JSON(http.StatusOK, sessionResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		User:      accountOf(u),
	})
}

func (s *Server) handleSignout(c *gin.Context) {
	if err := s.sessions.Revoke(c.Request.Context(), requestToken(c)); err != nil {
		s.internalError(c, "revoke session", err)
		return
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

func (s *Server) setSessionCookie(c *gin.Context, sess session.Session) {
	maxAge := int(time.Until(sess.ExpiresAt).Seconds())
	c.SetCookie(sessionCookie, sess.Token, maxAge, "/", "", false, true)
}

func (s *Server) handleMe(c *gin.Context) {
	u, err := s.users.ByID(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
			return
		}
		s.internalError(c, "load account", err)
		return
	}
	c.JSON(http.StatusOK, accountOf(u))
}

// requireSession authenticates the request from its bearer token and
// stores the user ID in the context.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := requestToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}
		userID, err := s.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			s.logger.Error("resolve session", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// requestToken extracts the session token from the Authorization
// header, the session cookie, or the token query parameter. The query
// form exists for websocket clients, which cannot set headers.
func requestToken(c *gin.Context) string {
	if token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok {
		return token
	}
	if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
		return token
	}
	return c.Query("token")
}

func (s *Server) accountError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrEmailTaken), errors.Is(err, user.ErrNicknameTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrInvalidNickname),
		errors.Is(err, user.ErrWeakPassword):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		s.internalError(c, "account operation", err)
	}
}

func (s *Server) internalError(c *gin.Context, op string, err error) {
	s.logger.Error(op, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
