// Package rest wires the HTTP API.
package rest

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/promptforge/promptforge/internal/database"
	"github.com/promptforge/promptforge/internal/leaderboard"
	"github.com/promptforge/promptforge/internal/rest/handler"
	"github.com/promptforge/promptforge/internal/rest/middleware/auth"
	"github.com/uptrace/bunrouter"
	"go.uber.org/zap"
)

// Server implements the REST API service.
type Server struct {
	userHandler        *handler.UserHandler
	promptHandler      *handler.PromptHandler
	voteHandler        *handler.VoteHandler
	reviewHandler      *handler.ReviewHandler
	commentHandler     *handler.CommentHandler
	techniqueHandler   *handler.TechniqueHandler
	leaderboardHandler *handler.LeaderboardHandler
}

// NewServer creates a new REST API server.
func NewServer(db database.Client, cache *leaderboard.Cache, logger *zap.Logger) http.Handler {
	// Create server instance with handlers
	server := &Server{
		userHandler:        handler.NewUserHandler(db, logger),
		promptHandler:      handler.NewPromptHandler(db, logger),
		voteHandler:        handler.NewVoteHandler(db, logger),
		reviewHandler:      handler.NewReviewHandler(db, logger),
		commentHandler:     handler.NewCommentHandler(db, logger),
		techniqueHandler:   handler.NewTechniqueHandler(db, logger),
		leaderboardHandler: handler.NewLeaderboardHandler(cache, logger),
	}

	// Create middleware instances
	authMiddleware := auth.New(db, logger)

	// Create base router
	router := bunrouter.New()

	router.WithGroup("/v1", func(g *bunrouter.Group) {
		// Public read endpoints
		g.POST("/users", server.userHandler.CreateUser)
		g.GET("/users/:id", server.userHandler.GetUser)
		g.GET("/users/:id/reputation", server.userHandler.GetReputation)
		g.GET("/badges", server.userHandler.ListBadges)
		g.GET("/leaderboard", server.leaderboardHandler.GetLeaderboard)
		g.GET("/prompts", server.promptHandler.ListPrompts)
		g.GET("/prompts/:id", server.promptHandler.GetPrompt)
		g.GET("/prompts/:id/comments", server.commentHandler.ListComments)
		g.GET("/prompts/:id/reviews", server.reviewHandler.ListReviews)
		g.GET("/techniques", server.techniqueHandler.ListTechniques)

		// Authenticated endpoints; the reputation gates are enforced in
		// the handlers against the caller's current total
		g.Use(authMiddleware.AsRESTMiddleware).WithGroup("", func(g *bunrouter.Group) {
			g.POST("/prompts", server.promptHandler.CreatePrompt)
			g.POST("/prompts/:id/submit", server.promptHandler.SubmitPrompt)
			g.POST("/prompts/:id/fork", server.promptHandler.ForkPrompt)
			g.POST("/prompts/:id/votes", server.voteHandler.CastVote)
			g.DELETE("/prompts/:id/votes", server.voteHandler.RemoveVote)
			g.POST("/prompts/:id/reviews", server.reviewHandler.SubmitReview)
			g.POST("/prompts/:id/comments", server.commentHandler.AddComment)
			g.POST("/prompts/:id/techniques", server.techniqueHandler.LinkTechnique)
			g.POST("/comments/:id/votes", server.commentHandler.UpvoteComment)
			g.POST("/techniques", server.techniqueHandler.CreateTechnique)
		})
	})

	// Add gzip compression
	return gzhttp.GzipHandler(router)
}
