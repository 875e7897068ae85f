package explorer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/go-querystring/query"
	"github.com/hashicorp/go-retryablehttp"
)

// TokenTransfer is one ERC-20 transfer row from the block explorer.
type TokenTransfer struct {
	Hash        string `json:"hash"`
	From        string `json:"from"`
	To          string `json:"to"`
	Value       string `json:"value"`
	TokenSymbol string `json:"tokenSymbol"`
	TimeStamp   string `json:"timeStamp"`
	BlockNumber string `json:"blockNumber"`
}

type transferListResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  []TokenTransfer `json:"result"`
}

// transferQuery is the etherscan-compatible query for token transfers.
type transferQuery struct {
	Module          string `url:"module"`
	Action          string `url:"action"`
	ContractAddress string `url:"contractaddress"`
	Address         string `url:"address,omitempty"`
	Page            int    `url:"page"`
	Offset          int    `url:"offset"`
	Sort            string `url:"sort"`
	APIKey          string `url:"apikey"`
}

// Client reads token activity from an etherscan-compatible explorer API.
type Client struct {
	baseURL      string
	apiKey       string
	tokenAddress string
	http         *retryablehttp.Client
}

func NewClient(baseURL, apiKey, tokenAddress string, httpClient *retryablehttp.Client) *Client {
	return &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		tokenAddress: tokenAddress,
		http:         httpClient,
	}
}

// TokenTransfers returns one page of transfers of the STARS token, newest
// first. Pass an empty address for all holders.
func (c *Client) TokenTransfers(ctx context.Context, address string, page, limit int) ([]TokenTransfer, error) {
	q := transferQuery{
		Module:          "account",
		Action:          "tokentx",
		ContractAddress: c.tokenAddress,
		Address:         address,
		Page:            page,
		Offset:          limit,
		Sort:            "desc",
		APIKey:          c.apiKey,
	}
	values, err := query.Values(q)
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("explorer returned status %d", resp.StatusCode)
	}

	var body transferListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	// The explorer reports "No transactions found" as status 0 with an
	// empty result, which is not an error here.
	if body.Status != "1" && body.Message != "No transactions found" {
		return nil, fmt.Errorf("explorer error: %s", body.Message)
	}
	return body.Result, nil
}
