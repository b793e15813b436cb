package server

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openduel/duel-server-go/internal/game"
	"github.com/openduel/duel-server-go/internal/match"
	"github.com/openduel/duel-server-go/internal/repository"
)

func (s *Server) handleCreateMatch(c *gin.Context) {
	u, err := s.users.ByID(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
			return
		}
		s.internalError(c, "load account", err)
		return
	}

	m := s.matches.Create(u.ID, u.Nickname)
	c.JSON(http.StatusCreated, m.Summary())
}

func (s *Server) handleListMatches(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"matches": s.matches.List()})
}

func (s *Server) handleGetMatch(c *gin.Context) {
	m, err := s.matches.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"match": m.Summary(),
		"game":  m.Snapshot(),
	})
}

func (s *Server) handleJoinMatch(c *gin.Context) {
	m, err := s.matches.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}

	u, err := s.users.ByID(c.Request.Context(), c.GetInt64(userIDKey))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
			return
		}
		s.internalError(c, "load account", err)
		return
	}

	if err := m.Join(u.ID, u.Nickname); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"match": m.Summary(),
		"game":  m.Snapshot(),
	})
}

func (s *Server) handleMatchAction(c *gin.Context) {
	m, err := s.matches.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 4096))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	action, err := match.DecodeAction(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := m.Apply(c.GetInt64(userIDKey), action); err != nil {
		s.matchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": m.Snapshot()})
}

func (s *Server) matchError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, match.ErrNotSeated):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, match.ErrNotYourTurn),
		errors.Is(err, match.ErrNotStarted),
		errors.Is(err, game.ErrActionNotAllowed),
		errors.Is(err, game.ErrNotEnoughCoins):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		s.internalError(c, "apply action", err)
	}
}

// handleMatchFeed serves a match over a websocket. The current
// snapshot is sent on connect, then one message per state change.
// Connections carrying a valid session token for a seated player may
// also send actions; spectators are read-only.
func (s *Server) handleMatchFeed(c *gin.Context) {
	m, err := s.matches.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}

	var userID int64
	if token := requestToken(c); token != "" {
		userID, err = s.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	updates, cancel := m.Subscribe()
	defer cancel()

	if err := conn.WriteJSON(m.Snapshot()); err != nil {
		return
	}

	// Errors from the player's own actions go back on the same socket;
	// accepted actions surface through the subscription broadcast.
	errs := make(chan string, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			_, payload, readErr := conn.ReadMessage()
			if readErr != nil {
				return
			}
			if userID == 0 {
				continue
			}
			action, decodeErr := match.DecodeAction(payload)
			if decodeErr != nil {
				errs <- decodeErr.Error()
				continue
			}
			if applyErr := m.Apply(userID, action); applyErr != nil {
				errs <- applyErr.Error()
			}
		}
	}()

	for {
		select {
		case view, ok := <-updates:
			if !ok {
				return
			}
			if err := conn.WriteJSON(view); err != nil {
				return
			}
		case msg := <-errs:
			if err := conn.WriteJSON(gin.H{"error": msg}); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
