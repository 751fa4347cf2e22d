package httpapi

import (
	"errors"
	"net/http"

	"github.com/ecopulse/ecopulse/internal/common"
	"github.com/ecopulse/ecopulse/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Error strings returned to clients.
const (
	msgDuplicateEmail     = "Duplicate email"
	msgRegistrationFailed = "Registration failed"
	msgInvalidCredentials = "Invalid email or password"
	msgLoginFailed        = "Login failed"
	msgNoToken            = "No token provided"
	msgInvalidToken       = "Invalid token"
	msgInvalidRequest     = "Invalid request"
	msgSaveFailed         = "Failed to save log"
	msgFetchFailed        = "Failed to fetch logs"
)

func ok(c *gin.Context, body gin.H) {
	if body == nil {
		body = gin.H{}
	}
	body["status"] = common.StatusOK
	c.JSON(http.StatusOK, body)
}

func fail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"status": common.StatusError, "error": msg})
}

func (s *Server) root(c *gin.Context) {
	c.String(http.StatusOK, "EcoPulse API is Running!")
}

func (s *Server) health(c *gin.Context) {
	ok(c, nil)
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, msgInvalidRequest)
		return
	}

	ctx := c.Request.Context()
	s.logger.Info(ctx, "Registration request", "email", req.Email)

	user, err := s.users.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		s.logger.Error(ctx, "registration failed", "email", req.Email, "error", err)
		switch {
		case errors.Is(err, common.ErrDuplicateEmail):
			fail(c, msgDuplicateEmail)
		case errors.Is(err, common.ErrValidation):
			fail(c, msgInvalidRequest)
		default:
			fail(c, msgRegistrationFailed)
		}
		return
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	ok(c, gin.H{"userId": user.ID})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, msgInvalidRequest)
		return
	}

	ctx := c.Request.Context()
	res, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.logger.Info(ctx, "login rejected", "email", req.Email)
			fail(c, msgInvalidCredentials)
			return
		}
		s.logger.Error(ctx, "login failed", "email", req.Email, "error", err)
		fail(c, msgLoginFailed)
		return
	}

	ok(c, gin.H{"token": res.Token, "name": res.Name})
}

func (s *Server) createLog(c *gin.Context) {
	id := identityFrom(c)
	if id == nil {
		fail(c, msgInvalidToken)
		return
	}

	var req createLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, msgInvalidRequest)
		return
	}

	in := services.LogInput{
		Category: req.Category,
		Type:     req.Type,
		Amount:   *req.Amount,
	}
	if req.CO2 != nil {
		in.CO2 = *req.CO2
	}

	ctx := c.Request.Context()
	saved, err := s.logs.Create(ctx, id.UserID, in)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			fail(c, msgInvalidRequest)
			return
		}
		s.logger.Error(ctx, "save log failed", "user_id", id.UserID, "error", err)
		fail(c, msgSaveFailed)
		return
	}

	s.logger.Info(ctx, "log saved", "user_id", id.UserID, "log_id", saved.ID, "category", saved.Category)
	ok(c, gin.H{"log": toLogDTO(saved)})
}

func (s *Server) listLogs(c *gin.Context) {
	id := identityFrom(c)
	if id == nil {
		fail(c, msgInvalidToken)
		return
	}

	ctx := c.Request.Context()
	logs, err := s.logs.List(ctx, id.UserID)
	if err != nil {
		s.logger.Error(ctx, "fetch logs failed", "user_id", id.UserID, "error", err)
		fail(c, msgFetchFailed)
		return
	}

	ok(c, gin.H{"logs": toLogDTOs(logs)})
}
