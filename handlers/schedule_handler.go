package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"funcbox/models"
	"funcbox/services"
)

type ScheduleHandler struct {
	service *services.ScheduleService
}

func NewScheduleHandler(service *services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// CreateSchedule godoc
// @Summary Create a scheduled execution for a function
// @Tags schedules
// @Accept json
// @Produce json
// @Param name path string true "Function name"
// @Param schedule body models.CreateScheduleRequest true "Schedule request"
// @Success 200 {object} models.FunctionSchedule
// @Router /functions/{name}/schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *fiber.Ctx) error {
	var req models.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	sched, err := h.service.CreateSchedule(c.Context(), c.Params("name"), &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(sched)
}

// ListSchedules godoc
// @Summary List schedules for a function
// @Tags schedules
// @Produce json
// @Param name path string true "Function name"
// @Success 200 {array} models.FunctionSchedule
// @Router /functions/{name}/schedules [get]
func (h *ScheduleHandler) ListSchedules(c *fiber.Ctx) error {
	schedules, err := h.service.ListSchedules(c.Context(), c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(schedules)
}

// DeleteSchedule godoc
// @Summary Delete a function schedule
// @Tags schedules
// @Param name path string true "Function name"
// @Param scheduleId path int true "Schedule ID"
// @Success 204
// @Router /functions/{name}/schedules/{scheduleId} [delete]
func (h *ScheduleHandler) DeleteSchedule(c *fiber.Ctx) error {
	scheduleID, err := strconv.ParseInt(c.Params("scheduleId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid schedule ID"})
	}

	if err := h.service.DeleteSchedule(c.Context(), c.Params("name"), scheduleID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
