package handler

import (
	"github.com/fadilmartias/bizsim/internal/dto"
	"github.com/fadilmartias/bizsim/internal/usecase"
	"github.com/fadilmartias/bizsim/internal/util"
	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	uc *usecase.SimulationUsecase
}

func NewSessionHandler(uc *usecase.SimulationUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

func (h *SessionHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/simulation/session", h.Start)
	app.Patch("/simulation/session", h.Update)
	app.Get("/simulation/sessions", h.List)
	app.Get("/simulation/progress", h.Progress)
}

// Start resumes the user's ongoing session or creates one.
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	resp, err := h.uc.StartSession(c.UserContext(), req)
	if err != nil {
		return usecaseError(c, "Failed to create session", err)
	}

	data := fiber.Map{
		"sessionId": resp.SessionID,
		"progress":  resp.Progress,
	}
	if resp.Existing {
		data["existing"] = true
		data["currentRound"] = resp.CurrentRound
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{Data: data})
}

func (h *SessionHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	session, err := h.uc.UpdateSession(c.UserContext(), req)
	if err != nil {
		return usecaseError(c, "Failed to update session", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: fiber.Map{"session": session},
	})
}

func (h *SessionHandler) List(c *fiber.Ctx) error {
	sessions, pagination, err := h.uc.ListSessions(c.UserContext(), c.Query("userId"), c.QueryInt("page", 1), c.QueryInt("page_size", 10))
	if err != nil {
		return usecaseError(c, "Failed to load sessions", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data:       fiber.Map{"sessions": sessions},
		Pagination: pagination,
	})
}

func (h *SessionHandler) Progress(c *fiber.Ctx) error {
	progress, err := h.uc.ListProgress(c.UserContext(), c.Query("userId"))
	if err != nil {
		return usecaseError(c, "Failed to load progress", err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Data: fiber.Map{"progress": progress},
	})
}
