// Package client queries auth accounts from a chain node's REST API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gofrs/uuid"

	"github.com/public-awesome/accounts/auth"
)

// ErrInvalidAddress reports an address that does not decode as bech32 with
// the configured account prefix.
var ErrInvalidAddress = errors.New("invalid bech32 address")

type Client struct {
	apiEndpoint   string
	accountPrefix string
	timeout       time.Duration
	log           *slog.Logger

	store *Store
}

type ClientOption func(*Client)

func WithAPI(api string) ClientOption {
	return func(c *Client) {
		c.apiEndpoint = api
	}
}

func WithAccountPrefix(prefix string) ClientOption {
	return func(c *Client) {
		c.accountPrefix = prefix
	}
}

func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// WithStore persists a snapshot of every successfully queried account.
func WithStore(store *Store) ClientOption {
	return func(c *Client) {
		c.store = store
	}
}

func New(opts ...ClientOption) *Client {
	c := &Client{
		timeout: 10 * time.Second,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ValidAddress(address string) bool {
	_, err := sdk.GetFromBech32(address, c.accountPrefix)
	return err == nil
}

// QueryAccount fetches the account for address. A chain that does not know
// the address yields (nil, nil): an absent account is not a query failure.
func (c *Client) QueryAccount(ctx context.Context, address string) (*auth.BaseAccount, error) {
	if !c.ValidAddress(address) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAddress, address)
	}
	requestID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", fmt.Sprintf("%s/cosmos/auth/v1beta1/accounts/%s", c.apiEndpoint, address), nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.log.Info("account not found", "request_id", requestID.String(), "address", address)
		return nil, nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("query account %s: status %d: %s", address, resp.StatusCode, body)
	}

	var queryResp auth.QueryAccountResponse
	if err := json.Unmarshal(body, &queryResp); err != nil {
		return nil, err
	}
	if queryResp.Account == nil {
		c.log.Info("account not found", "request_id", requestID.String(), "address", address)
		return nil, nil
	}
	account := queryResp.Account
	c.log.Info("queried account", "request_id", requestID.String(), "address", address, "account_number", account.AccountNumber, "sequence", account.Sequence)

	if c.store != nil {
		if err := c.store.Set(address, []byte(account.String())); err != nil {
			c.log.Error("error persisting account snapshot", "error", err, "address", address)
		}
	}
	return account, nil
}

// CachedAccount returns the last snapshot persisted for address, or nil when
// none was recorded.
func (c *Client) CachedAccount(address string) (*auth.BaseAccount, error) {
	if c.store == nil {
		return nil, nil
	}
	raw, err := c.store.Get(address)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return auth.ParseBaseAccount(string(raw))
}
