package market

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/matt0757/Alt-F4-NFTMarketplace/core/faucet"
	"github.com/matt0757/Alt-F4-NFTMarketplace/core/logger"
)

// Handler handles HTTP requests for the marketplace.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the marketplace routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/market")
	group.Get("/view/:address", h.HandleView)
	group.Post("/mint", h.HandleMint)
	group.Post("/list", h.HandleList)
	group.Post("/purchase", h.HandlePurchase)
	group.Post("/faucet", h.HandleFaucet)
	group.Post("/images", h.HandleImageUpload)
}

type mintRequest struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageRef    string `json:"imageRef"`
}

type listRequest struct {
	Address string `json:"address"`
	AssetID string `json:"assetId"`
	// Price is signed on purpose: a negative value must be rejected here,
	// not wrapped around into a huge unsigned amount.
	Price int64 `json:"price"`
}

type purchaseRequest struct {
	Address string `json:"address"`
	ItemID  string `json:"itemId"`
	Price   int64  `json:"price"`
}

type faucetRequest struct {
	Address string `json:"address"`
}

// HandleView returns the reconciled marketplace view for an address.
// @Summary Get Reconciled View
// @Description Returns network-wide listings, the address's unlisted assets, and the address's own listings as one consistent snapshot. Inside the throttle window the cached view is returned unchanged.
// @Tags market
// @Accept json
// @Produce json
// @Param address path string true "Owner address"
// @Param refresh query boolean false "Force a full reconciliation"
// @Success 200 {object} models.View "Reconciled view"
// @Failure 502 {object} map[string]string "Ledger unavailable"
// @Router /market/view/{address} [get]
func (h *Handler) HandleView(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	address := c.Params("address")

	var err error
	var view any
	if c.Query("refresh") == "true" {
		view, err = h.service.Refresh(c.Context(), address)
	} else {
		view, err = h.service.View(c.Context(), address)
	}
	if err != nil {
		l.Error("failed to build view", zap.String("address", address), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(view)
}

// HandleMint mints a new asset.
// @Summary Mint Asset
// @Description Mints a new collectible asset and splices it into the owner's view without waiting for the ledger's owner index.
// @Tags market
// @Accept json
// @Produce json
// @Param request body mintRequest true "Mint request"
// @Success 200 {object} ledger.ExecutionResult "Execution result"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 422 {object} map[string]string "Transaction rejected by the ledger"
// @Router /market/mint [post]
func (h *Handler) HandleMint(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req mintRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "address is required"})
	}

	res, err := h.service.Mint(c.Context(), req.Address, req.Name, req.Description, req.ImageRef)
	if err != nil {
		return h.transactionError(c, l, err)
	}
	return c.JSON(res)
}

// HandleList lists an owned asset for sale.
// @Summary List Asset
// @Description Offers an owned asset for sale. Assets minted under a retired contract are rejected before any transaction is built.
// @Tags market
// @Accept json
// @Produce json
// @Param request body listRequest true "List request"
// @Success 200 {object} ledger.ExecutionResult "Execution result"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Incompatible asset version"
// @Failure 422 {object} map[string]string "Transaction rejected by the ledger"
// @Router /market/list [post]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req listRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Address == "" || req.AssetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "address and assetId are required"})
	}
	if req.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidPrice.Error()})
	}

	res, err := h.service.List(c.Context(), req.Address, req.AssetID, uint64(req.Price))
	if err != nil {
		return h.transactionError(c, l, err)
	}
	return c.JSON(res)
}

// HandlePurchase buys a listed item.
// @Summary Purchase Item
// @Description Buys a listed item at its exact price. Failed transactions surface the ledger's reason and are never retried automatically.
// @Tags market
// @Accept json
// @Produce json
// @Param request body purchaseRequest true "Purchase request"
// @Success 200 {object} ledger.ExecutionResult "Execution result"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 422 {object} map[string]string "Transaction rejected by the ledger"
// @Router /market/purchase [post]
func (h *Handler) HandlePurchase(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req purchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Address == "" || req.ItemID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "address and itemId are required"})
	}
	if req.Price <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidPrice.Error()})
	}

	res, err := h.service.Purchase(c.Context(), req.Address, req.ItemID, uint64(req.Price))
	if err != nil {
		return h.transactionError(c, l, err)
	}
	return c.JSON(res)
}

// HandleFaucet requests test funds for an address.
// @Summary Request Test Funds
// @Description Asks the network faucet to top up the address. Rate limiting is reported distinctly so clients can suggest a manual faucet.
// @Tags market
// @Accept json
// @Produce json
// @Param request body faucetRequest true "Faucet request"
// @Success 200 {object} map[string]string "Funds granted"
// @Failure 429 {object} map[string]string "Faucet rate limited"
// @Failure 502 {object} map[string]string "Faucet unavailable"
// @Router /market/faucet [post]
func (h *Handler) HandleFaucet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req faucetRequest
	if err := c.BodyParser(&req); err != nil || req.Address == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "address is required"})
	}

	status, err := h.service.RequestFunds(c.Context(), req.Address)
	switch status {
	case faucet.StatusGranted:
		return c.JSON(fiber.Map{"status": string(status)})
	case faucet.StatusRateLimited:
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"status": string(status),
			"error":  "faucet rate limited, try again later or use a manual faucet",
		})
	default:
		l.Warn("faucet request failed", zap.String("address", req.Address), zap.Error(err))
		msg := "faucet request failed"
		if err != nil {
			msg = err.Error()
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"status": string(faucet.StatusFailed),
			"error":  msg,
		})
	}
}

// HandleImageUpload stores a mint image and returns its public URL.
// @Summary Upload Mint Image
// @Description Uploads an image to media storage; the returned URL is used as the asset's image reference when minting.
// @Tags market
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} map[string]string "Image reference"
// @Failure 400 {object} map[string]string "Missing file"
// @Failure 502 {object} map[string]string "Storage unavailable"
// @Router /market/images [post]
func (h *Handler) HandleImageUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to open uploaded file"})
	}
	defer file.Close()

	imageRef, err := h.service.UploadImage(c.Context(), fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), file, fileHeader.Size)
	if err != nil {
		l.Error("image upload failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"imageRef": imageRef})
}

// transactionError maps service errors to HTTP statuses. Validation
// failures are client errors; ledger rejections are 422 with the ledger's
// own reason.
func (h *Handler) transactionError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var txErr *TransactionError
	switch {
	case errors.Is(err, ErrIncompatibleVersion):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrEmptyName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrAssetNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &txErr):
		l.Warn("transaction rejected", zap.String("op", txErr.Op), zap.String("reason", txErr.Reason))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": txErr.Error(), "digest": txErr.Digest})
	default:
		l.Error("operation failed", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}
}
