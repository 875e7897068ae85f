package token

import (
	"time"

	"stars_admin/internal/domain/token/chain"
	"stars_admin/internal/domain/token/explorer"
	"stars_admin/internal/domain/token/handler"
	"stars_admin/internal/domain/token/service"
	"stars_admin/internal/pkg/config"
	"stars_admin/internal/pkg/middleware"
	"stars_admin/internal/pkg/registry"
	"stars_admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

type TokenModule struct{}

func init() {
	registry.Register(&TokenModule{})
}

func (m *TokenModule) Name() string {
	return "token"
}

func (m *TokenModule) Priority() int {
	return 7
}

// Init wires the chain integration. With no RPC URL configured the module
// registers nothing and the rest of the dashboard runs without it.
func (m *TokenModule) Init(ctx *registry.ModuleContext) error {
	cfg := config.GlobalConfig.Chain
	if cfg.RPCURL == "" {
		logger.Log.Info("chain integration disabled, no rpc url configured")
		return nil
	}

	contracts, err := chain.NewContracts(cfg)
	if err != nil {
		return err
	}

	var explorerClient *explorer.Client
	if config.GlobalConfig.Explorer.BaseURL != "" {
		httpClient := retryablehttp.NewClient()
		httpClient.RetryMax = 2
		httpClient.HTTPClient.Timeout = 15 * time.Second
		httpClient.Logger = nil
		explorerClient = explorer.NewClient(
			config.GlobalConfig.Explorer.BaseURL,
			config.GlobalConfig.Explorer.APIKey,
			cfg.TokenAddress,
			httpClient,
		)
	}

	tokenService := service.NewTokenService(contracts, ctx.Metrics)
	tokenHandler := handler.NewTokenHandler(tokenService, explorerClient)

	logger.Log.Info("chain integration enabled",
		zap.String("token", cfg.TokenAddress),
		zap.String("platform", cfg.PlatformAddress),
		zap.Int64("chain_id", cfg.ChainID),
	)

	setupRoutes(ctx.Router, tokenHandler)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.TokenHandler) {
	group := r.Group("/api/token")
	group.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
	{
		group.GET("/balances", h.Balances)
		group.GET("/owner", h.IsOwner)
		group.GET("/features/:feature", h.FeaturePrice)
		group.GET("/transfers", h.Transfers)

		group.POST("/mint", h.Mint)
		group.POST("/burn", h.Burn)
		group.POST("/buy", h.Buy)
		group.POST("/gift", h.Gift)
		group.POST("/features", h.SetFeaturePrice)
		group.POST("/withdraw/native", h.WithdrawNative)
		group.POST("/withdraw/stars", h.WithdrawStars)
		group.POST("/refill", h.RefillStars)
	}
}
