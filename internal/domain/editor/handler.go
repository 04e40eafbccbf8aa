package editor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pricingsite/internal/pkg/jwt"
	"pricingsite/internal/pkg/response"
	"pricingsite/internal/pkg/validator"
)

type Handler struct {
	service *Service
	jwt     *jwt.Service
}

func NewHandler(service *Service, jwtService *jwt.Service) *Handler {
	return &Handler{service: service, jwt: jwtService}
}

// Login godoc
// @Summary Editor login
// @Tags Editor
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Router /editor/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	token, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
		case errors.Is(err, ErrLoginDisabled):
			response.Error(c, http.StatusServiceUnavailable, "LOGIN_DISABLED", err.Error())
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to issue token")
		}
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(h.jwt.TTL().Seconds()),
	})
}
