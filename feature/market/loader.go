package market

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/ledger"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/storage"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the marketplace feature.
func NewFeature(engine *Engine, signer ledger.Signer, media storage.Client, mediaCfg storage.Config, fc FaucetClient, logger *zap.Logger) *Feature {
	svc := NewService(engine, signer, media, mediaCfg, fc, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h}
}

// Service returns the underlying marketplace service.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "market"
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
