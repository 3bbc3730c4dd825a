package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"postboard/internal/common"
	"postboard/internal/server/auth"
)

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_INPUT",
			"message": "username and password are required",
		})
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    "INVALID_INPUT",
				"message": err.Error(),
			})
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"code":    "USERNAME_TAKEN",
				"message": "username is already taken",
			})
		default:
			s.logger.Error(c.Request.Context(), "signup failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    "INTERNAL",
				"message": "internal error",
			})
		}
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "username", user.UserName)
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.UserName})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_INPUT",
			"message": "username and password are required",
		})
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidLoginPassword) {
			// one generic outcome regardless of cause
			c.JSON(http.StatusUnauthorized, gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "invalid username or password",
			})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "INTERNAL",
			"message": "internal error",
		})
		return
	}

	s.carrier.Attach(c, token)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleLogout(c *gin.Context) {
	if err := s.guard.RevokeToken(c); err != nil {
		// the cookie is cleared regardless; revocation is best effort
		s.logger.Warn(c.Request.Context(), "token revocation failed", "error", err.Error())
	}

	s.carrier.Clear(c)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleChangePassword(c *gin.Context) {
	identity, _ := auth.IdentityFromContext(c)

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"code":    "INVALID_INPUT",
			"message": "old_password and new_password are required",
		})
		return
	}

	err := s.users.ChangePassword(c.Request.Context(), identity.UserID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"code":    "INVALID_INPUT",
				"message": err.Error(),
			})
		case errors.Is(err, common.ErrorInvalidLoginPassword):
			c.JSON(http.StatusForbidden, gin.H{
				"code":    "WRONG_PASSWORD",
				"message": "old password does not match",
			})
		default:
			s.logger.Error(c.Request.Context(), "password change failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":    "INTERNAL",
				"message": "internal error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
