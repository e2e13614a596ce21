package handler

import (
	"time"

	"github.com/fadilmartias/bizsim/internal/dto"
	"github.com/fadilmartias/bizsim/internal/logger"
	"github.com/fadilmartias/bizsim/internal/middleware"
	"github.com/fadilmartias/bizsim/internal/usecase"
	"github.com/fadilmartias/bizsim/internal/util"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SimulationHandler struct {
	uc *usecase.SimulationUsecase
}

func NewSimulationHandler(uc *usecase.SimulationUsecase) *SimulationHandler {
	return &SimulationHandler{uc: uc}
}

func (h *SimulationHandler) RegisterRoutes(app *fiber.App) {
	g := app.Group("/simulation")
	// generation may call the model several times
	g.Post("/generate", middleware.RateLimiter(10, time.Minute), h.Generate)
	g.Post("/submit", h.Submit)
	g.Get("/social-proof", h.SocialProof)
}

func (h *SimulationHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateSimulationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	resp, err := h.uc.GenerateSimulation(c.UserContext(), req)
	if err != nil {
		logger.Log.Error("generate simulation", zap.String("user_id", req.UserID), zap.Error(err))
		return usecaseError(c, "Failed to generate simulation scenario", err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: fiber.Map{
			"simulation": resp.Simulation,
			"context":    resp.Context,
			"source":     resp.Source,
		},
	})
}

func (h *SimulationHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	resp, err := h.uc.SubmitDecision(c.UserContext(), req)
	if err != nil {
		return usecaseError(c, "Failed to process submission", err)
	}

	data := fiber.Map{
		"feedback": resp.Feedback,
		"result":   resp.Result,
	}
	if resp.Session != nil {
		data["session"] = resp.Session
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: data})
}

func (h *SimulationHandler) SocialProof(c *fiber.Ctx) error {
	count, err := h.uc.SocialProofCount(c.UserContext(), c.Query("title"))
	if err != nil {
		return usecaseError(c, "Failed to load completion count", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: fiber.Map{"count": count},
	})
}
