package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"stars_admin/internal/domain/token/chain"
	"stars_admin/pkg/logger"
	"stars_admin/pkg/metrics"
)

// TxResult is what mutation endpoints return once a transaction is mined.
type TxResult struct {
	TxHash   string `json:"txHash"`
	GasUsed  uint64 `json:"gasUsed"`
	BlockNum uint64 `json:"blockNumber"`
}

// Balances is the treasury snapshot shown on the token dashboard.
type Balances struct {
	Operator    string `json:"operator"`
	Platform    string `json:"platform"`
	TotalSupply string `json:"totalSupply"`
	Rate        string `json:"rate"`
}

type TokenService interface {
	Mint(ctx context.Context, to, amount string) (*TxResult, error)
	Burn(ctx context.Context, amount string) (*TxResult, error)
	Buy(ctx context.Context, nativeAmount string) (*TxResult, error)
	Gift(ctx context.Context, to, amount string) (*TxResult, error)
	SetFeaturePrice(ctx context.Context, feature, price string) (*TxResult, error)
	WithdrawNative(ctx context.Context) (*TxResult, error)
	WithdrawStars(ctx context.Context, amount string) (*TxResult, error)
	RefillStars(ctx context.Context, amount string) (*TxResult, error)
	Balances(ctx context.Context) (*Balances, error)
	FeaturePrice(ctx context.Context, feature string) (string, error)
	IsOwner(ctx context.Context) (bool, error)
}

type tokenService struct {
	contracts *chain.Contracts
	metrics   *metrics.MetricsCollector
}

func NewTokenService(contracts *chain.Contracts, collector *metrics.MetricsCollector) TokenService {
	return &tokenService{contracts: contracts, metrics: collector}
}

func (s *tokenService) observe(method string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.RecordChainCall(method, time.Since(start), err == nil)
	}
	if err != nil {
		logger.Log.Warn("chain call failed", zap.String("method", method), zap.Error(err))
	}
}

func txResult(receipt *types.Receipt) *TxResult {
	return &TxResult{
		TxHash:   receipt.TxHash.Hex(),
		GasUsed:  receipt.GasUsed,
		BlockNum: receipt.BlockNumber.Uint64(),
	}
}

func parseAddress(addr string) (common.Address, error) {
	if !common.IsHexAddress(addr) {
		return common.Address{}, chain.ErrInvalidAddress
	}
	return common.HexToAddress(addr), nil
}

func (s *tokenService) Mint(ctx context.Context, to, amount string) (*TxResult, error) {
	addr, err := parseAddress(to)
	if err != nil {
		return nil, err
	}
	units, err := chain.ParseUnits(amount)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	receipt, err := s.contracts.Mint(ctx, addr, units)
	s.observe("mint", start, err)
	if err != nil {
		return nil, chain.TranslateChainError(err)
	}
	return txResult(receipt), nil
}

func (s *tokenService) Burn(ctx context.Context, amount string) (*TxResult, error) {
	units, err := chain.ParseUnits(amount)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	receipt, err := s.contracts.Burn(ctx, units)
	s.observe("burn", start, err)
	if err != nil {
		return nil, chain.TranslateChainError(err)
	}
	return txResult(receipt), nil
}

func (s *tokenService) Buy(ctx context.Context, nativeAmount string) (*TxResult, error) {
	value, err := chain.ParseUnits(nativeAmount)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	receipt, err := s.contracts.BuyStars(ctx, value)
	s.observe("buyStars", start, err)
	if err != nil {
		return nil, chain.TranslateChainError(err)
	}
	return txResult(receipt), nil
}

// Gift approves the platform for the amount first, then transfers. The
// approval is confirmed before the gift is sent.
func (s *tokenService) Gift(ctx context.Context, to, amount string) (*TxResult, error) {
	addr, err := parseAddress(to)
	if err != nil {
		return nil, err
	}
	units, err := chain.ParseUnits(amount)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := s.contracts.Approve(ctx, s.contracts.PlatformAddress(), units); err != nil {
		s.observe("approve", start, err)
		return nil, chain.TranslateChainError(err)
	}
	s.observe("approve", start, nil)

	start = time.Now()
	receipt, err := s.contracts.GiftStars(ctx, addr, units)
	s.observe("giftStars", start, err)
	if err != nil {
		return nil, chain.TranslateChainError(err)
	}
	return txResult(receipt), nil
}

func (s *tokenService) SetFeaturePrice(ctx context.Context, feature, price string) (*TxResult, error) {
	units, err := chain.ParseUnits(price)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	receipt, err := s.contracts.SetFeaturePrice(ctx, feature, units)
	s.observe("setFeaturePrice", start, err)
	if err != nil {
		return nil, chain.TranslateChainError(err)
	}
	return txResult(receipt), nil
}

func (s *tokenService) WithdrawNative(ctx context.Context) (*TxResult, error) {
	start := time.Now()
	receipt, err := s.contracts.WithdrawNative(ctx)
	s.observe("withdrawMATIC", start, err)
	if err != nil {
		return nil, chain.TranslateChainError(err)
	}
	return txResult(receipt), nil
}

func (s *tokenService) WithdrawStars(ctx context.Context, amount string) (*TxResult, error) {
	units, err := chain.ParseUnits(amount)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	receipt, err := s.contracts.WithdrawStars(ctx, units)
	s.observe("withdrawStars", start, err)
	if err != nil {
		return nil, chain.TranslateChainError(err)
	}
	return txResult(receipt), nil
}

// RefillStars tops up the platform reserve, approving the spend first.
func (s *tokenService) RefillStars(ctx context.Context, amount string) (*TxResult, error) {
	units, err := chain.ParseUnits(amount)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := s.contracts.Approve(ctx, s.contracts.PlatformAddress(), units); err != nil {
		s.observe("approve", start, err)
		return nil, chain.TranslateChainError(err)
	}
	s.observe("approve", start, nil)

	start = time.Now()
	receipt, err := s.contracts.RefillStars(ctx, units)
	s.observe("refillStars", start, err)
	if err != nil {
		return nil, chain.TranslateChainError(err)
	}
	return txResult(receipt), nil
}

func (s *tokenService) Balances(ctx context.Context) (*Balances, error) {
	start := time.Now()

	operator, err := s.contracts.BalanceOf(ctx, s.contracts.Operator())
	if err != nil {
		s.observe("balanceOf", start, err)
		return nil, chain.TranslateChainError(err)
	}
	platform, err := s.contracts.BalanceOf(ctx, s.contracts.PlatformAddress())
	if err != nil {
		s.observe("balanceOf", start, err)
		return nil, chain.TranslateChainError(err)
	}
	supply, err := s.contracts.TotalSupply(ctx)
	if err != nil {
		s.observe("totalSupply", start, err)
		return nil, chain.TranslateChainError(err)
	}
	rate, err := s.contracts.Rate(ctx)
	if err != nil {
		s.observe("rate", start, err)
		return nil, chain.TranslateChainError(err)
	}
	s.observe("balances", start, nil)

	return &Balances{
		Operator:    chain.FormatUnits(operator),
		Platform:    chain.FormatUnits(platform),
		TotalSupply: chain.FormatUnits(supply),
		Rate:        rate.String(),
	}, nil
}

func (s *tokenService) FeaturePrice(ctx context.Context, feature string) (string, error) {
	start := time.Now()
	price, err := s.contracts.FeaturePrice(ctx, feature)
	s.observe("featurePrices", start, err)
	if err != nil {
		return "", chain.TranslateChainError(err)
	}
	return chain.FormatUnits(price), nil
}

// IsOwner reports whether the operator key controls the platform contract.
func (s *tokenService) IsOwner(ctx context.Context) (bool, error) {
	start := time.Now()
	owner, err := s.contracts.Owner(ctx)
	s.observe("owner", start, err)
	if err != nil {
		return false, chain.TranslateChainError(err)
	}
	return owner == s.contracts.Operator(), nil
}
