package redis

import (
	"fmt"

	"github.com/promptforge/promptforge/internal/setup/config"
	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

// NewClient creates a Redis client from configuration.
func NewClient(config *config.Redis, logger *zap.Logger) (rueidis.Client, error) {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress: []string{fmt.Sprintf("%s:%d", config.Host, config.Port)},
		Username:    config.Username,
		Password:    config.Password,
		ClientName:  "promptforge",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis client: %w", err)
	}

	logger.Info("Redis connection established",
		zap.String("host", config.Host),
		zap.Int("port", config.Port))

	return client, nil
}
