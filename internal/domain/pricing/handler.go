package pricing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"pricingsite/internal/pkg/response"
)

// Handler serves the rendered pricing page, its JSON model and CTA activations
type Handler struct {
	service        *Service
	renderer       *Renderer
	navigator      Navigator
	defaultSection string
}

func NewHandler(service *Service, renderer *Renderer, navigator Navigator, defaultSection string) *Handler {
	if navigator == nil {
		navigator = RedirectNavigator{}
	}
	return &Handler{
		service:        service,
		renderer:       renderer,
		navigator:      navigator,
		defaultSection: defaultSection,
	}
}

func (h *Handler) section(c *gin.Context) string {
	if s := c.Param("section"); s != "" {
		return s
	}
	return h.defaultSection
}

// BasePath is the page URL of a section; toggle links and CTA forms hang off it
func BasePath(section string) string {
	return "/pricing/" + section
}

// Page renders the pricing section as HTML.
// ?billing=annual selects the annual cycle, ?fragment=1 renders only the <section>.
func (h *Handler) Page(c *gin.Context) {
	section := h.section(c)
	view, err := h.service.View(c.Request.Context(), section, ParseBillingCycle(c.Query("billing")))
	if err != nil {
		h.pageError(c, err)
		return
	}

	name := PageTemplate
	if c.Query("fragment") != "" {
		name = FragmentTemplate
	}
	c.Render(http.StatusOK, render.HTML{
		Template: h.renderer.Template(),
		Name:     name,
		Data:     Page{Section: view.Section(), BasePath: BasePath(section)},
	})
}

// Activate handles a call-to-action: the navigator is invoked once with the configured href.
func (h *Handler) Activate(c *gin.Context) {
	section := h.section(c)
	view, err := h.service.View(c.Request.Context(), section, BillingMonthly)
	if err != nil {
		h.pageError(c, err)
		return
	}

	if _, err := view.Activate(c.Param("field"), func(href string) {
		h.navigator.Navigate(c, href)
	}); err != nil {
		h.pageError(c, err)
	}
}

// GetSection godoc
// @Summary Pricing section model
// @Description Plans, toggle state, editable-field map and CTA links of a section. Public.
// @Tags Pricing
// @Produce json
// @Param section path string true "Section name"
// @Param billing query string false "monthly or annual"
// @Success 200 {object} SectionResponse
// @Router /pricing/sections/{section} [get]
func (h *Handler) GetSection(c *gin.Context) {
	section := h.section(c)
	view, err := h.service.View(c.Request.Context(), section, ParseBillingCycle(c.Query("billing")))
	if err != nil {
		h.apiError(c, err)
		return
	}
	response.Success(c, http.StatusOK, SectionResponse{Name: section, Section: view.Section()})
}

// Preview godoc
// @Summary Preview a section from the defaults plus ad-hoc overrides
// @Tags Pricing
// @Accept json
// @Produce json
// @Param billing query string false "monthly or annual"
// @Param body body PreviewRequest true "Overrides"
// @Success 200 {object} Section
// @Router /pricing/preview [post]
func (h *Handler) Preview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	view := NewView(ResolveDefaults(req.Overrides))
	view.SetCycle(ParseBillingCycle(c.Query("billing")))
	response.Success(c, http.StatusOK, view.Section())
}

// Fields godoc
// @Summary List configuration keys and their defaults
// @Tags Pricing
// @Produce json
// @Success 200 {array} FieldInfo
// @Router /pricing/fields [get]
func (h *Handler) Fields(c *gin.Context) {
	response.Success(c, http.StatusOK, fieldInfos())
}

func (h *Handler) pageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSectionNotFound), errors.Is(err, ErrUnknownCTA):
		c.String(http.StatusNotFound, "404 page not found")
	default:
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) apiError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSectionNotFound):
		response.Error(c, http.StatusNotFound, "SECTION_NOT_FOUND", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to build pricing section")
	}
}
