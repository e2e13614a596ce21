package handler

import (
	"bytes"

	"github.com/fadilmartias/bizsim/internal/dto"
	"github.com/fadilmartias/bizsim/internal/usecase"
	"github.com/fadilmartias/bizsim/internal/web"
	"github.com/gofiber/fiber/v2"
)

// ViewHandler serves a generated round as an HTML page.
type ViewHandler struct {
	uc *usecase.SimulationUsecase
}

func NewViewHandler(uc *usecase.SimulationUsecase) *ViewHandler {
	return &ViewHandler{uc: uc}
}

func (h *ViewHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/simulation/view", h.View)
}

func (h *ViewHandler) View(c *fiber.Ctx) error {
	req := dto.GenerateSimulationRequest{
		UserID:     c.Query("userId"),
		CareerPath: c.Query("careerPath"),
		Round:      max(c.QueryInt("round", 1), 1),
	}
	resp, err := h.uc.GenerateSimulation(c.UserContext(), req)
	if err != nil {
		return usecaseError(c, "Failed to generate simulation scenario", err)
	}

	var buf bytes.Buffer
	if err := web.Render(&buf, web.Page{
		Simulation: resp.Simulation,
		Context:    resp.Context,
		Source:     resp.Source,
		Round:      req.Round,
	}); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
