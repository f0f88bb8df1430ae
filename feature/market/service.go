package market

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/faucet"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/ledger"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/storage"
	"github.com/matt0757/Alt-F4-NFTMarketplace/feature/market/models"
)

// FaucetClient is the slice of the faucet collaborator the service needs.
type FaucetClient interface {
	RequestFunds(ctx context.Context, address string) (faucet.Status, error)
}

// Service orchestrates marketplace operations: it builds transaction
// intents, hands them to the signing collaborator, and keeps the
// reconciled view current through the engine and local state store.
type Service struct {
	engine   *Engine
	intents  *IntentBuilder
	signer   ledger.Signer
	media    storage.Client
	mediaCfg storage.Config
	faucet   FaucetClient
	logger   *zap.Logger
}

// NewService creates the marketplace service.
func NewService(engine *Engine, signer ledger.Signer, media storage.Client, mediaCfg storage.Config, fc FaucetClient, logger *zap.Logger) *Service {
	return &Service{
		engine:   engine,
		intents:  NewIntentBuilder(engine.cfg),
		signer:   signer,
		media:    media,
		mediaCfg: mediaCfg,
		faucet:   fc,
		logger:   logger,
	}
}

// View returns the reconciled view for the owner, throttled: a request
// inside the minimum query interval returns the last known view.
func (s *Service) View(ctx context.Context, owner string) (*models.View, error) {
	return s.engine.BuildView(ctx, owner)
}

// Refresh forces a full reconciliation, bypassing the throttle window.
// This is the path for explicit user-initiated refreshes.
func (s *Service) Refresh(ctx context.Context, owner string) (*models.View, error) {
	s.engine.Invalidate(owner)
	return s.engine.BuildView(ctx, owner)
}

// Mint creates a new asset. On success the created object is fetched
// directly by id and spliced into the local view; the owner index is not
// re-queried because it may not reflect the new object yet.
func (s *Service) Mint(ctx context.Context, owner, name, description, imageRef string) (*ledger.ExecutionResult, error) {
	intent, err := s.intents.MintIntent(owner, name, description, imageRef)
	if err != nil {
		return nil, err
	}

	res, err := s.signer.SignAndExecute(ctx, intent)
	if err != nil {
		return nil, fmt.Errorf("mint submission failed: %w", err)
	}
	if !res.Succeeded() {
		return res, &TransactionError{Op: "mint", Digest: res.Digest, Reason: res.FailureReason}
	}

	spliced, err := s.engine.SpliceMintResult(ctx, owner, res)
	if err != nil {
		// The mint committed; only the local splice failed. The next full
		// reconciliation picks the asset up.
		s.logger.Warn("mint committed but local splice failed",
			zap.String("owner", owner), zap.Error(err))
		return res, nil
	}

	s.logger.Info("mint complete",
		zap.String("owner", owner),
		zap.String("digest", res.Digest),
		zap.Int("spliced", len(spliced)))
	return res, nil
}

// List offers an owned asset for sale. Eligibility is checked before any
// intent exists: listing an asset minted under a retired contract fails
// fast instead of failing on-ledger. On success the asset moves
// optimistically from owned to listed.
func (s *Service) List(ctx context.Context, owner, assetID string, price uint64) (*ledger.ExecutionResult, error) {
	store := s.engine.StoreFor(owner)
	view := store.View()

	var asset *models.Asset
	for i := range view.OwnedAssets {
		if view.OwnedAssets[i].ID == assetID {
			asset = &view.OwnedAssets[i]
			break
		}
	}
	if asset == nil {
		return nil, ErrAssetNotFound
	}

	intent, err := s.intents.ListIntent(owner, asset, price)
	if err != nil {
		return nil, err
	}

	res, err := s.signer.SignAndExecute(ctx, intent)
	if err != nil {
		return nil, fmt.Errorf("list submission failed: %w", err)
	}
	if !res.Succeeded() {
		return res, &TransactionError{Op: "list", Digest: res.Digest, Reason: res.FailureReason}
	}

	s.engine.MarkListed(owner, assetID, price)
	s.logger.Info("asset listed",
		zap.String("owner", owner),
		zap.String("asset_id", assetID),
		zap.Uint64("price", price),
		zap.String("digest", res.Digest))
	return res, nil
}

// Purchase buys a listed item at its exact price. A failed transaction is
// surfaced with the ledger's own reason and never retried automatically.
func (s *Service) Purchase(ctx context.Context, buyer, itemID string, price uint64) (*ledger.ExecutionResult, error) {
	intent, err := s.intents.PurchaseIntent(buyer, itemID, price)
	if err != nil {
		return nil, err
	}

	res, err := s.signer.SignAndExecute(ctx, intent)
	if err != nil {
		return nil, fmt.Errorf("purchase submission failed: %w", err)
	}
	if !res.Succeeded() {
		return res, &TransactionError{Op: "purchase", Digest: res.Digest, Reason: res.FailureReason}
	}

	// Ownership changed on-ledger; the cached view is stale now.
	s.engine.Invalidate(buyer)
	s.logger.Info("purchase complete",
		zap.String("buyer", buyer),
		zap.String("item_id", itemID),
		zap.String("digest", res.Digest))
	return res, nil
}

// UploadImage stores a mint image in media storage and returns the public
// URL to use as the asset's image reference.
func (s *Service) UploadImage(ctx context.Context, filename, contentType string, reader io.Reader, size int64) (string, error) {
	objectName := fmt.Sprintf("nft/%s%s", uuid.NewString(), path.Ext(filename))
	_, err := s.media.PutObject(ctx, s.mediaCfg.Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return storage.PublicURL(s.mediaCfg, objectName), nil
}

// RequestFunds asks the faucet to top up the address. Rate limiting is a
// distinct status so the caller can direct the user to a manual faucet.
func (s *Service) RequestFunds(ctx context.Context, address string) (faucet.Status, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	return s.faucet.RequestFunds(ctx, address)
}
