package auth

import (
	"net/http"

	autherrors "github.com/DevHanzala/TMS-PORTAL/internal/auth/errors"
	"github.com/DevHanzala/TMS-PORTAL/internal/shared/apperror"
	"github.com/DevHanzala/TMS-PORTAL/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	var (
		token string
		resp  AuthResponse
		err   error
	)

	switch req.Stakeholder {
	case RoleHR:
		token, resp, err = h.service.LoginHR(c.Request.Context(), req.Password)
	case RoleEmployee:
		token, resp, err = h.service.LoginEmployee(c.Request.Context(), req.Email, req.CNIC)
	default:
		err = autherrors.ErrInvalidStakeholder
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"access_token": token,
		"user":         resp,
	}, nil)
}
