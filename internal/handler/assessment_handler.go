package handler

import (
	"bytes"
	"errors"
	"slices"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/riskcheck-api/internal/dto"
	"github.com/noah-isme/riskcheck-api/internal/service"
	"github.com/noah-isme/riskcheck-api/internal/utils"
	"github.com/noah-isme/riskcheck-api/internal/view"
)

const (
	formErrorUnreadable = "We could not read your answers. Please submit the form again."
	formErrorInvalid    = "Please correct the highlighted answers."
	formErrorFailed     = "Something went wrong while assessing your answers. Please try again."
)

// AssessmentHandler serves the questionnaire page and the JSON assessment API.
type AssessmentHandler struct {
	service  service.AssessmentService
	renderer *view.Renderer
	appName  string
	logger   zerolog.Logger
}

// NewAssessmentHandler constructs an AssessmentHandler.
func NewAssessmentHandler(service service.AssessmentService, renderer *view.Renderer, appName string, logger zerolog.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		service:  service,
		renderer: renderer,
		appName:  appName,
		logger:   logger.With().Str("component", "assessment_handler").Logger(),
	}
}

// Register wires the JSON endpoints. Submit middleware only guards the POST route.
func (h *AssessmentHandler) Register(router fiber.Router, submit ...fiber.Handler) {
	router.Get("/options", h.options)
	router.Post("", withHandler(submit, h.assess)...)
}

// RegisterPages wires the server-rendered questionnaire.
func (h *AssessmentHandler) RegisterPages(router fiber.Router, submit ...fiber.Handler) {
	router.Get("/", h.showForm)
	router.Post("/assess", withHandler(submit, h.submitForm)...)
}

func withHandler(middleware []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	return append(slices.Clone(middleware), handler)
}

func (h *AssessmentHandler) assess(c *fiber.Ctx) error {
	var payload dto.AssessmentRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.Assess(c.UserContext(), payload)
	if err != nil {
		if details := service.FieldErrors(err); details != nil {
			return utils.SendErrorWithDetails(c, fiber.StatusUnprocessableEntity, "invalid assessment", details)
		}
		h.logFailure(c, err)
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to assess responses")
	}

	return utils.SendSuccess(c, "assessment completed", result)
}

func (h *AssessmentHandler) options(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "assessment options", h.service.Options())
}

func (h *AssessmentHandler) showForm(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, h.newPage())
}

// submitForm renders the outcome under the form, or the form again with field errors.
func (h *AssessmentHandler) submitForm(c *fiber.Ctx) error {
	page := h.newPage()

	var payload dto.AssessmentRequest
	if err := c.BodyParser(&payload); err != nil {
		page.FormError = formErrorUnreadable
		return h.render(c, fiber.StatusBadRequest, page)
	}
	page.Values = view.ValuesFromRequest(payload)

	result, err := h.service.Assess(c.UserContext(), payload)
	if err != nil {
		if details := service.FieldErrors(err); details != nil {
			page.Errors = details
			page.FormError = formErrorInvalid
			return h.render(c, fiber.StatusBadRequest, page)
		}
		h.logFailure(c, err)
		page.FormError = formErrorFailed
		return h.render(c, fiber.StatusInternalServerError, page)
	}

	page.Result = &result
	return h.render(c, fiber.StatusOK, page)
}

func (h *AssessmentHandler) newPage() view.Page {
	return view.Page{
		AppName: h.appName,
		Form:    h.service.Options(),
	}
}

func (h *AssessmentHandler) render(c *fiber.Ctx, status int, page view.Page) error {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("render assessment page")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to render page")
	}

	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func (h *AssessmentHandler) logFailure(c *fiber.Ctx, err error) {
	event := requestLogger(h.logger, c).Error().Err(err)
	if errors.Is(err, service.ErrClassifierFailed) {
		event = event.Str("stage", "inference")
	}
	event.Msg("assessment failed")
}
