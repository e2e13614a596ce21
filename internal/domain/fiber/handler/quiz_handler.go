package handler

import (
	"errors"

	"github.com/fadilmartias/bizsim/internal/dto"
	"github.com/fadilmartias/bizsim/internal/quiz"
	"github.com/fadilmartias/bizsim/internal/util"
	"github.com/gofiber/fiber/v2"
)

type QuizHandler struct {
	generator *quiz.Generator
}

func NewQuizHandler(generator *quiz.Generator) *QuizHandler {
	return &QuizHandler{generator: generator}
}

func (h *QuizHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/ai/personalized-quiz", h.Generate)
}

func (h *QuizHandler) Generate(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	q, err := h.generator.Generate(c.UserContext(), req.InterestArea, req.Difficulty)
	if errors.Is(err, quiz.ErrInterestAreaRequired) {
		return badRequest(c, "Interest area is required", nil)
	}
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "Failed to generate quiz",
		}, err)
	}

	data := fiber.Map{"questions": q.Questions}
	if q.Fallback {
		data["fallback"] = true
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: data})
}
