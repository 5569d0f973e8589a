package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"funcbox/models"
	"funcbox/services"
)

type FunctionHandler struct {
	service *services.InvokeService
}

func NewFunctionHandler(svc *services.InvokeService) *FunctionHandler {
	return &FunctionHandler{service: svc}
}

// ListFunctions godoc
// @Summary List built-in functions
// @Description Get the functions bundled with this deployment
// @Tags functions
// @Produce json
// @Success 200 {array} models.FunctionListItem
// @Router /functions [get]
func (h *FunctionHandler) ListFunctions(c *fiber.Ctx) error {
	return c.JSON(h.service.ListFunctions())
}

// GetFunction godoc
// @Summary Get function details
// @Description Get detailed information about a built-in function
// @Tags functions
// @Produce json
// @Param name path string true "Function name"
// @Success 200 {object} models.BuiltinFunction
// @Failure 404 {object} map[string]string
// @Router /functions/{name} [get]
func (h *FunctionHandler) GetFunction(c *fiber.Ctx) error {
	fn, err := h.service.GetFunction(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fn)
}

// InvokeFunction godoc
// @Summary Invoke a function
// @Description Queue a function execution; params become environment variables of the function process
// @Tags functions
// @Accept json
// @Produce json
// @Param name path string true "Function name"
// @Param input body models.InvokeRequest true "Input parameters"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /functions/{name}/invoke [post]
func (h *FunctionHandler) InvokeFunction(c *fiber.Ctx) error {
	var req models.InvokeRequest
	if err := c.BodyParser(&req); err != nil {
		req.Params = make(map[string]string)
	}

	invokedBy := c.IP()
	if invokedBy == "" {
		invokedBy = "anonymous"
	}

	inv, err := h.service.Invoke(c.Context(), c.Params("name"), req.Params, invokedBy)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":        inv.Status,
		"function_name": inv.FunctionName,
		"invocation_id": inv.ID,
		"input_event":   inv.InputEvent,
		"logged_at":     inv.InvokedAt,
	})
}

// GetInvocationResult godoc
// @Summary Get invocation result
// @Description Poll for the result of a function invocation
// @Tags functions
// @Produce json
// @Param name path string true "Function name"
// @Param invocationId path int true "Invocation ID"
// @Success 200 {object} models.InvokeResponse
// @Failure 404 {object} map[string]string
// @Router /functions/{name}/invocations/{invocationId} [get]
func (h *FunctionHandler) GetInvocationResult(c *fiber.Ctx) error {
	invocationID, err := strconv.ParseInt(c.Params("invocationId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid invocation ID",
		})
	}

	inv, err := h.service.GetInvocationResult(c.Context(), invocationID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	response := models.InvokeResponse{
		Status:       inv.Status,
		FunctionName: inv.FunctionName,
		InvocationID: inv.ID,
		InputEvent:   inv.InputEvent,
		ArtifactKey:  inv.ArtifactKey,
		DurationMs:   inv.DurationMs,
		LoggedAt:     inv.InvokedAt,
	}

	if inv.Status == models.StatusSuccess {
		response.Result = inv.OutputResult
	} else if inv.Status == models.StatusFail || inv.Status == models.StatusTimeout {
		response.ErrorMessage = inv.ErrorMessage
	}

	return c.JSON(response)
}

// ListInvocations godoc
// @Summary List function invocations
// @Description Get execution history for a function
// @Tags functions
// @Produce json
// @Param name path string true "Function name"
// @Param limit query int false "Number of results to return" default(20)
// @Success 200 {array} models.InvocationListItem
// @Failure 404 {object} map[string]string
// @Router /functions/{name}/invocations [get]
func (h *FunctionHandler) ListInvocations(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)

	invocations, err := h.service.ListInvocations(c.Context(), c.Params("name"), limit)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if invocations == nil {
		invocations = []models.InvocationListItem{}
	}

	return c.JSON(invocations)
}
