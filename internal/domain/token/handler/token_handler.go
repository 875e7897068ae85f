package handler

import (
	"errors"
	"net/http"
	"strconv"

	"stars_admin/internal/domain/token/chain"
	"stars_admin/internal/domain/token/explorer"
	"stars_admin/internal/domain/token/service"
	"stars_admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// TokenHandler serves the STARS treasury screens.
type TokenHandler struct {
	service  service.TokenService
	explorer *explorer.Client
}

func NewTokenHandler(service service.TokenService, explorerClient *explorer.Client) *TokenHandler {
	return &TokenHandler{service: service, explorer: explorerClient}
}

// AmountInput carries a human-readable token amount, e.g. "500" or "1.5".
type AmountInput struct {
	Amount string `json:"amount" binding:"required"`
}

// TransferInput carries a recipient address and an amount.
type TransferInput struct {
	To     string `json:"to" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// FeaturePriceInput updates the token price of a platform feature.
type FeaturePriceInput struct {
	Feature string `json:"feature" binding:"required"`
	Price   string `json:"price" binding:"required"`
}

func respondChainError(c *gin.Context, err error) {
	if errors.Is(err, chain.ErrInvalidAmount) || errors.Is(err, chain.ErrInvalidAddress) {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidAmount, err.Error())
		return
	}
	var ce *chain.ChainError
	if errors.As(err, &ce) {
		response.Error(c, http.StatusBadGateway, chainErrorCode(ce), ce.Message)
		return
	}
	// Unrecognized failures surface verbatim.
	response.Error(c, http.StatusBadGateway, response.ErrChainUnavailable, err.Error())
}

func chainErrorCode(ce *chain.ChainError) int {
	switch ce.Message {
	case "Only the contract owner can perform this action.":
		return response.ErrNotContractOwner
	case "The transaction was rejected.":
		return response.ErrTxRejected
	case "The platform is not approved to spend that many tokens.":
		return response.ErrInsufficientAllowance
	case "The account does not hold enough tokens.":
		return response.ErrInsufficientBalance
	default:
		return response.ErrChainUnavailable
	}
}

// Balances returns the treasury snapshot.
func (h *TokenHandler) Balances(c *gin.Context) {
	balances, err := h.service.Balances(c.Request.Context())
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, balances)
}

// IsOwner reports whether the configured operator key owns the platform
// contract, which gates the treasury mutation screens.
func (h *TokenHandler) IsOwner(c *gin.Context) {
	owner, err := h.service.IsOwner(c.Request.Context())
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, gin.H{"isOwner": owner})
}

// Mint creates tokens for an address.
func (h *TokenHandler) Mint(c *gin.Context) {
	var input TransferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	result, err := h.service.Mint(c.Request.Context(), input.To, input.Amount)
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, result)
}

// Burn destroys operator-held tokens.
func (h *TokenHandler) Burn(c *gin.Context) {
	var input AmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	result, err := h.service.Burn(c.Request.Context(), input.Amount)
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, result)
}

// Buy exchanges native currency for tokens at the platform rate.
func (h *TokenHandler) Buy(c *gin.Context) {
	var input AmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	result, err := h.service.Buy(c.Request.Context(), input.Amount)
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, result)
}

// Gift sends tokens from the treasury to a user address.
func (h *TokenHandler) Gift(c *gin.Context) {
	var input TransferInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	result, err := h.service.Gift(c.Request.Context(), input.To, input.Amount)
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, result)
}

// SetFeaturePrice updates the token price of a platform feature.
func (h *TokenHandler) SetFeaturePrice(c *gin.Context) {
	var input FeaturePriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	result, err := h.service.SetFeaturePrice(c.Request.Context(), input.Feature, input.Price)
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, result)
}

// FeaturePrice reads the token price of a platform feature.
func (h *TokenHandler) FeaturePrice(c *gin.Context) {
	price, err := h.service.FeaturePrice(c.Request.Context(), c.Param("feature"))
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, gin.H{"feature": c.Param("feature"), "price": price})
}

// WithdrawNative drains the platform's native balance.
func (h *TokenHandler) WithdrawNative(c *gin.Context) {
	result, err := h.service.WithdrawNative(c.Request.Context())
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, result)
}

// WithdrawStars moves tokens out of the platform reserve.
func (h *TokenHandler) WithdrawStars(c *gin.Context) {
	var input AmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	result, err := h.service.WithdrawStars(c.Request.Context(), input.Amount)
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, result)
}

// RefillStars tops up the platform reserve from the treasury.
func (h *TokenHandler) RefillStars(c *gin.Context) {
	var input AmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	result, err := h.service.RefillStars(c.Request.Context(), input.Amount)
	if err != nil {
		respondChainError(c, err)
		return
	}
	response.Success(c, result)
}

// Transfers returns recent STARS transfers from the block explorer.
func (h *TokenHandler) Transfers(c *gin.Context) {
	if h.explorer == nil {
		response.Error(c, http.StatusServiceUnavailable, response.ErrChainUnavailable, "Explorer is not configured")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "25"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}

	transfers, err := h.explorer.TokenTransfers(c.Request.Context(), c.Query("address"), page, limit)
	if err != nil {
		response.Error(c, http.StatusBadGateway, response.ErrChainUnavailable, "Explorer request failed")
		return
	}
	response.Success(c, transfers)
}
