package reservation

import (
	"id-reserve/core/queue"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the reservation feature with its store, resolver
// and HTTP handler wired together.
func NewFeature(db *gorm.DB, resolver OwnershipResolver, logger *zap.Logger, queueCfg queue.Config, authMW fiber.Handler) *Feature {
	svc := NewService(NewStore(db), resolver, logger, queueCfg)
	h := NewHandler(svc, authMW)
	return &Feature{service: svc, handler: h}
}

// Service exposes the underlying service for the queue consumer and the
// optimise command.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "reservation"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
