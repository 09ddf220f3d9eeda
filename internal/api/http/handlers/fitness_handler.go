package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acest-fitness/gym-service/internal/api/dto"
	"github.com/acest-fitness/gym-service/internal/service"
	apperrors "github.com/acest-fitness/gym-service/pkg/util"
)

const invalidInputMessage = "Invalid input"

// FitnessHandler serves calculators.
type FitnessHandler struct{}

// NewFitnessHandler constructs handler.
func NewFitnessHandler() *FitnessHandler {
	return &FitnessHandler{}
}

// BMI handles GET /bmi?weight=&height=.
func (h *FitnessHandler) BMI(c *fiber.Ctx) error {
	weight, err := service.ParseMeasurement(c.Query("weight"))
	if err != nil {
		return apperrors.NewInvalidInput(invalidInputMessage)
	}
	height, err := service.ParseMeasurement(c.Query("height"))
	if err != nil {
		return apperrors.NewInvalidInput(invalidInputMessage)
	}

	bmi, err := service.CalculateBMI(weight, height)
	if err != nil {
		return apperrors.NewInvalidInput(invalidInputMessage)
	}
	return c.JSON(dto.BMIResponse{BMI: bmi})
}
