package http

import (
	"todo-api/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// CreateLabel godoc
// @Summary Create label
// @Tags LABEL
// @Accept application/json
// @Success 201 {object} ResponseBody{data=domain.Label}
// @Failure 409 {object} ResponseBody
// @Router /labels [post]
// @Produce json
// @param CreateLabel body CreateLabelRequest true "CreateLabel"
func (hdl *HTTPHandler) CreateLabel(c *fiber.Ctx) error {
	var request CreateLabelRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest.withMessage(validator.Messages(err)...)})
	}
	label, err := hdl.labels.CreateLabel(c.UserContext(), request.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created, Data: label})
}

// AllLabels godoc
// @Summary List labels
// @Tags LABEL
// @Success 200 {object} ResponseBody{data=[]domain.Label}
// @Router /labels [get]
// @Produce json
func (hdl *HTTPHandler) AllLabels(c *fiber.Ctx) error {
	labels, err := hdl.labels.AllLabels(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: labels})
}

// DeleteLabel godoc
// @Summary Delete label
// @Tags LABEL
// @Success 204
// @Failure 404 {object} ResponseBody
// @Router /labels/{id} [delete]
// @param id path int true "label id"
func (hdl *HTTPHandler) DeleteLabel(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.labels.DeleteLabel(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
