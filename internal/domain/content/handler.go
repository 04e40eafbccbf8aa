package content

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pricingsite/internal/pkg/response"
	"pricingsite/internal/pkg/validator"
)

// Handler serves the editor API for stored section content.
// Every route sits behind editor JWT auth.
type Handler struct {
	service *Service
	hub     *Hub
	log     logrus.FieldLogger
}

func NewHandler(service *Service, hub *Hub, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{service: service, hub: hub, log: log}
}

// ListSections godoc
// @Summary List sections with stored content
// @Tags Editor
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SectionListResponse
// @Router /editor/sections [get]
func (h *Handler) ListSections(c *gin.Context) {
	sections, err := h.service.ListSections(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	if sections == nil {
		sections = []string{}
	}
	response.Success(c, http.StatusOK, SectionListResponse{Sections: sections})
}

// GetSection godoc
// @Summary Get stored overrides and resolved fields of a section
// @Tags Editor
// @Security BearerAuth
// @Produce json
// @Param section path string true "Section name"
// @Success 200 {object} SectionContent
// @Router /editor/sections/{section} [get]
func (h *Handler) GetSection(c *gin.Context) {
	content, err := h.service.GetSection(c.Request.Context(), c.Param("section"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

// UpdateFields godoc
// @Summary Set field values of a section
// @Tags Editor
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param section path string true "Section name"
// @Param body body UpdateFieldsRequest true "Field values by key"
// @Success 200 {object} SectionContent
// @Router /editor/sections/{section}/fields [put]
func (h *Handler) UpdateFields(c *gin.Context) {
	var req UpdateFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.CustomError(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", errs)
		return
	}

	content, err := h.service.SetFields(c.Request.Context(), c.Param("section"), req.Fields, c.GetString("username"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

// RevertField godoc
// @Summary Revert a field to its default value
// @Tags Editor
// @Security BearerAuth
// @Produce json
// @Param section path string true "Section name"
// @Param field path string true "Field key"
// @Success 200 {object} SectionContent
// @Router /editor/sections/{section}/fields/{field} [delete]
func (h *Handler) RevertField(c *gin.Context) {
	content, err := h.service.RevertField(c.Request.Context(), c.Param("section"), c.Param("field"), c.GetString("username"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, content)
}

// Preview upgrades to a websocket that receives the section view model after every change.
func (h *Handler) Preview(c *gin.Context) {
	section := c.Param("section")
	snapshot, err := h.service.Snapshot(c.Request.Context(), section)
	if err != nil {
		h.writeError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).WithField("section", section).Warn("websocket upgrade failed")
		return
	}
	h.hub.ServeWS(conn, section, snapshot)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	var fieldErr *FieldError
	switch {
	case errors.Is(err, ErrInvalidSection):
		response.Error(c, http.StatusNotFound, "SECTION_NOT_FOUND", err.Error())
	case errors.As(err, &fieldErr) && errors.Is(err, ErrUnknownField):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "UNKNOWN_FIELD", err.Error(), gin.H{"field": fieldErr.Field})
	case errors.As(err, &fieldErr) && errors.Is(err, ErrValueTooLong):
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALUE_TOO_LONG", err.Error(), gin.H{"field": fieldErr.Field, "max": MaxValueLength})
	case errors.Is(err, ErrValueTooLong):
		response.Error(c, http.StatusUnprocessableEntity, "VALUE_TOO_LONG", err.Error())
	case errors.Is(err, ErrEmptyUpdate):
		response.Error(c, http.StatusUnprocessableEntity, "EMPTY_UPDATE", err.Error())
	case errors.Is(err, ErrFieldNotFound):
		response.Error(c, http.StatusNotFound, "FIELD_NOT_FOUND", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to process section content")
	}
}
