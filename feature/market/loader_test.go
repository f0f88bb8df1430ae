package market

import (
	"testing"
	"time"

	ledgermocks "github.com/matt0757/Alt-F4-NFTMarketplace/core/ledger/mocks"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/storage"
	storagemocks "github.com/matt0757/Alt-F4-NFTMarketplace/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	logger := zap.NewNop()
	engine := NewEngine(new(ledgermocks.Gateway), engineConfig(), time.Second, logger)
	feature := NewFeature(engine, new(ledgermocks.Signer), new(storagemocks.Client), storage.Config{Bucket: "media"}, &fakeFaucet{}, logger)

	assert.Equal(t, "market", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
