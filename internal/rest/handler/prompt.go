package handler

import (
	"errors"
	"net/http"

	"github.com/promptforge/promptforge/internal/database"
	"github.com/promptforge/promptforge/internal/database/types"
	"github.com/promptforge/promptforge/internal/database/types/enum"
	"github.com/promptforge/promptforge/internal/rest/middleware/auth"
	restTypes "github.com/promptforge/promptforge/internal/rest/types"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// PromptHandler handles prompt lifecycle REST endpoints.
type PromptHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewPromptHandler creates a new prompt handler.
func NewPromptHandler(db database.Client, logger *zap.Logger) *PromptHandler {
	return &PromptHandler{
		db:     db,
		logger: logger,
	}
}

// CreatePrompt creates a new draft prompt owned by the acting user.
func (h *PromptHandler) CreatePrompt(w http.ResponseWriter, req bunrouter.Request) error {
	user, ok := auth.FromContext(req.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil
	}

	var body restTypes.CreatePromptRequest
	if err := decodeBody(req, &body); err != nil || body.Title == "" || body.Body == "" {
		badRequest(w, "Title and body are required")
		return nil
	}

	prompt := &types.Prompt{
		AuthorID: user.ID,
		Title:    body.Title,
		Body:     body.Body,
	}

	if err := h.db.Model().Prompt().CreatePrompt(req.Context(), prompt); err != nil {
		h.logger.Error("Failed to create prompt", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, prompt)
}

// GetPrompt returns a prompt with its technique tags.
func (h *PromptHandler) GetPrompt(w http.ResponseWriter, req bunrouter.Request) error {
	prompt, err := h.db.Model().Prompt().GetPromptByRef(req.Context(), req.Param("id"))
	if err != nil {
		if errors.Is(err, types.ErrPromptNotFound) || errors.Is(err, types.ErrInvalidPromptID) {
			http.Error(w, "Prompt not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to get prompt", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	techniques, err := h.db.Model().Technique().GetPromptTechniques(req.Context(), prompt.ID)
	if err != nil {
		h.logger.Error("Failed to get prompt techniques", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.GetPromptResponse{
		Prompt:     prompt,
		Techniques: techniques,
	})
}

// ListPrompts returns prompts filtered by the optional status and author
// query parameters.
func (h *PromptHandler) ListPrompts(w http.ResponseWriter, req bunrouter.Request) error {
	var filter types.PromptFilter

	if status := req.URL.Query().Get("status"); status != "" {
		parsed, err := enum.PromptStatusString(status)
		if err != nil {
			badRequest(w, "Invalid status filter")
			return nil
		}

		filter.Status = &parsed
	}

	if author := req.URL.Query().Get("author"); author != "" {
		user, err := h.db.Model().User().GetUserByRef(req.Context(), author)
		if err != nil {
			if errors.Is(err, types.ErrUserNotFound) || errors.Is(err, types.ErrInvalidUserID) {
				http.Error(w, "Author not found", http.StatusNotFound)
				return nil
			}

			h.logger.Error("Failed to resolve author filter", zap.Error(err))
			http.Error(w, "Internal server error", http.StatusInternalServerError)

			return nil
		}

		filter.AuthorID = user.ID
	}

	prompts, err := h.db.Model().Prompt().ListPrompts(req.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list prompts", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	return bunrouter.JSON(w, restTypes.ListPromptsResponse{Prompts: prompts})
}

// SubmitPrompt moves the acting user's draft into the review queue.
func (h *PromptHandler) SubmitPrompt(w http.ResponseWriter, req bunrouter.Request) error {
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

	err = h.db.Model().Prompt().SubmitForReview(req.Context(), promptID, user.ID)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotFound) {
			http.Error(w, "Prompt not found or not submittable", http.StatusConflict)
			return nil
		}

		h.logger.Error("Failed to submit prompt", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

// ForkPrompt copies a prompt into a new draft owned by the acting user.
// The fork keeps a reference to its parent so the original author earns
// a bonus if the fork is later approved.
func (h *PromptHandler) ForkPrompt(w http.ResponseWriter, req bunrouter.Request) error {
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

	fork, err := h.db.Model().Prompt().ForkPrompt(req.Context(), promptID, user.ID)
	if err != nil {
		if errors.Is(err, types.ErrPromptNotFound) {
			http.Error(w, "Prompt not found", http.StatusNotFound)
			return nil
		}

		h.logger.Error("Failed to fork prompt", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return nil
	}

	w.WriteHeader(http.StatusCreated)

	return bunrouter.JSON(w, fork)
}
