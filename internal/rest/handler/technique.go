package handler

import (
	"errors"
	"net/http"

	"github.com/promptforge/promptforge/internal/database"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/permission"
	"github.com/promptforge/promptforge/internal/rest/middleware/auth"
	restTypes "github.com/promptforge/promptforge/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// TechniqueHandler handles technique taxonomy REST endpoints.
type TechniqueHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewTechniqueHandler creates a new technique handler.
func NewTechniqueHandler(db database.Client, logger *zap.Logger) *TechniqueHandler {
	return &TechniqueHandler{
		db:     db,
		logger: logger,
	}
}

// CreateTechnique adds a taxonomy entry. Gated behind the highest
// reputation threshold.
func (h *TechniqueHandler) CreateTechnique(w http.ResponseWriter, req bunrouter.Request) error {
	user, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	if !permission.CanCreateTechnique(user.Reputation) {
		forbidden(w, "Insufficient reputation to create techniques")
		return nil
	}

	var body restTypes.CreateTechniqueRequest
	if err := decodeBody(req, &body); err != nil || body.Name == "" {
		badRequest(w, "Name is required")
		return nil
	}

	technique := &types.Technique{
		Name:        body.Name,
		Description: body.Description,
		CreatedBy:   user.ID,
	}

	if err := h.db.Model().Technique().CreateTechnique(req.Context(), technique); err != nil {
		h.logger.Error("Failed to create technique", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, technique)
}

// ListTechniques returns the technique taxonomy.
func (h *TechniqueHandler) ListTechniques(w http.ResponseWriter, req bunrouter.Request) error {
	techniques, err := h.db.Model().Technique().ListTechniques(req.Context())
	if err != nil {
		h.logger.Error("Failed to list techniques", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.ListTechniquesResponse{Techniques: techniques})
}

// LinkTechnique tags the acting user's prompt with a technique.
func (h *TechniqueHandler) LinkTechnique(w http.ResponseWriter, req bunrouter.Request) error {
	user, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	promptID, err := paramID(req, "id")
	if err != nil {
		badRequest(w, "Invalid prompt ID")
		return nil
	}

	var body restTypes.LinkTechniqueRequest
	if err := decodeBody(req, &body); err != nil || body.TechniqueID == 0 {
		badRequest(w, "Technique ID is required")
		return nil
	}

	prompt, err := h.db.Model().Prompt().GetPrompt(req.Context(), promptID)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotFound) {
			http.Error(w, "Prompt not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to get prompt", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	if prompt.AuthorID != user.ID {
		forbidden(w, "Only the author can tag a prompt")
		return nil
	}

	if _, err := h.db.Model().Technique().GetTechnique(req.Context(), body.TechniqueID); err != nil {
		if errors.Is(err, types.ErrTechniqueNotFound) {
			http.Error(w, "Technique not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to get technique", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	err = h.db.Model().Technique().LinkPrompt(req.Context(), promptID, body.TechniqueID)
	if err != nil {
		h.logger.Error("Failed to link technique", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}
