package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"stars_admin/internal/pkg/config"
)

const tokenABIJSON = `[
	{"type":"function","name":"mint","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"burn","inputs":[{"name":"amount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"approve","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"balanceOf","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"}
]`

const platformABIJSON = `[
	{"type":"function","name":"buyStars","inputs":[],"outputs":[],"stateMutability":"payable"},
	{"type":"function","name":"giftStars","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"setFeaturePrice","inputs":[{"name":"feature","type":"string"},{"name":"price","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"withdrawMATIC","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"withdrawStars","inputs":[{"name":"amount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"refillStars","inputs":[{"name":"amount","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"function","name":"rate","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"featurePrices","inputs":[{"name":"feature","type":"string"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"}
]`

// Contracts wraps the STARS token and platform contracts behind typed calls.
// All transactions are signed with the operator key from configuration and
// confirmed before returning.
type Contracts struct {
	client       *ethclient.Client
	token        *bind.BoundContract
	platform     *bind.BoundContract
	tokenAddr    common.Address
	platformAddr common.Address
	chainID      *big.Int
	key          *ecdsa.PrivateKey
	operator     common.Address
}

// NewContracts dials the RPC endpoint and binds both contracts.
func NewContracts(cfg config.ChainConfig) (*Contracts, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	tokenABI, err := abi.JSON(strings.NewReader(tokenABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse token abi: %w", err)
	}
	platformABI, err := abi.JSON(strings.NewReader(platformABIJSON))
	if err != nil {
		return nil, fmt.Errorf("parse platform abi: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse operator key: %w", err)
	}

	tokenAddr := common.HexToAddress(cfg.TokenAddress)
	platformAddr := common.HexToAddress(cfg.PlatformAddress)

	return &Contracts{
		client:       client,
		token:        bind.NewBoundContract(tokenAddr, tokenABI, client, client, client),
		platform:     bind.NewBoundContract(platformAddr, platformABI, client, client, client),
		tokenAddr:    tokenAddr,
		platformAddr: platformAddr,
		chainID:      big.NewInt(cfg.ChainID),
		key:          key,
		operator:     crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Operator returns the address transactions are signed with.
func (c *Contracts) Operator() common.Address {
	return c.operator
}

// PlatformAddress returns the platform contract address.
func (c *Contracts) PlatformAddress() common.Address {
	return c.platformAddr
}

// Close releases the underlying RPC connection.
func (c *Contracts) Close() {
	c.client.Close()
}

func (c *Contracts) transactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	if value != nil {
		opts.Value = value
	}
	return opts, nil
}

// transact sends a state-changing call and waits for it to be mined.
func (c *Contracts) transact(ctx context.Context, contract *bind.BoundContract, value *big.Int, method string, args ...interface{}) (*types.Receipt, error) {
	opts, err := c.transactOpts(ctx, value)
	if err != nil {
		return nil, err
	}
	tx, err := contract.Transact(opts, method, args...)
	if err != nil {
		return nil, err
	}
	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return receipt, nil
}

// Approve lets the platform contract spend the operator's tokens.
func (c *Contracts) Approve(ctx context.Context, spender common.Address, amount *big.Int) error {
	_, err := c.transact(ctx, c.token, nil, "approve", spender, amount)
	return err
}

// Mint creates new tokens for the given address.
func (c *Contracts) Mint(ctx context.Context, to common.Address, amount *big.Int) (*types.Receipt, error) {
	return c.transact(ctx, c.token, nil, "mint", to, amount)
}

// Burn destroys tokens held by the operator.
func (c *Contracts) Burn(ctx context.Context, amount *big.Int) (*types.Receipt, error) {
	return c.transact(ctx, c.token, nil, "burn", amount)
}

// BuyStars sends native currency to the platform in exchange for tokens.
func (c *Contracts) BuyStars(ctx context.Context, value *big.Int) (*types.Receipt, error) {
	return c.transact(ctx, c.platform, value, "buyStars")
}

// GiftStars transfers tokens from the operator through the platform.
// Callers must Approve the platform for at least amount first.
func (c *Contracts) GiftStars(ctx context.Context, to common.Address, amount *big.Int) (*types.Receipt, error) {
	return c.transact(ctx, c.platform, nil, "giftStars", to, amount)
}

// SetFeaturePrice updates the token price of a platform feature.
func (c *Contracts) SetFeaturePrice(ctx context.Context, feature string, price *big.Int) (*types.Receipt, error) {
	return c.transact(ctx, c.platform, nil, "setFeaturePrice", feature, price)
}

// WithdrawNative drains the platform's native balance to the owner.
func (c *Contracts) WithdrawNative(ctx context.Context) (*types.Receipt, error) {
	return c.transact(ctx, c.platform, nil, "withdrawMATIC")
}

// WithdrawStars moves tokens out of the platform reserve.
func (c *Contracts) WithdrawStars(ctx context.Context, amount *big.Int) (*types.Receipt, error) {
	return c.transact(ctx, c.platform, nil, "withdrawStars", amount)
}

// RefillStars tops up the platform reserve from the operator's balance.
// Callers must Approve the platform for at least amount first.
func (c *Contracts) RefillStars(ctx context.Context, amount *big.Int) (*types.Receipt, error) {
	return c.transact(ctx, c.platform, nil, "refillStars", amount)
}

// BalanceOf reads an address's token balance.
func (c *Contracts) BalanceOf(ctx context.Context, account common.Address) (*big.Int, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx}
	if err := c.token.Call(opts, &out, "balanceOf", account); err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// TotalSupply reads the token's total supply.
func (c *Contracts) TotalSupply(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx}
	if err := c.token.Call(opts, &out, "totalSupply"); err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// Rate reads how many tokens one native unit buys.
func (c *Contracts) Rate(ctx context.Context) (*big.Int, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx}
	if err := c.platform.Call(opts, &out, "rate"); err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// FeaturePrice reads the token price of a platform feature.
func (c *Contracts) FeaturePrice(ctx context.Context, feature string) (*big.Int, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx}
	if err := c.platform.Call(opts, &out, "featurePrices", feature); err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

// Owner reads the platform contract owner.
func (c *Contracts) Owner(ctx context.Context) (common.Address, error) {
	var out []interface{}
	opts := &bind.CallOpts{Context: ctx}
	if err := c.platform.Call(opts, &out, "owner"); err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}
