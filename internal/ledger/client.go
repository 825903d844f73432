package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/pkg/errors"
)

const DefaultTimeout = 10 * time.Second

// Client wraps the remote ledger API. It holds no state between calls:
// every operation issues one request bound to the configured timeout and
// maps failures onto the not-found/timeout/network taxonomy.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// AccountBalance looks up the e8s balance of a ledger account. The address
// is passed through as-is; format validation is the caller's concern.
func (c *Client) AccountBalance(ctx context.Context, address string) (Account, error) {
	const op = "account balance"

	var body wireBalance
	path := "/accounts/" + url.PathEscape(address)
	if err := c.get(ctx, op, path, &body); err != nil {
		return Account{}, err
	}
	if body.Balance.val == nil {
		return Account{}, netErr(op, errors.New("balance missing from response"))
	}
	return Account{Address: address, Balance: body.Balance.val}, nil
}

// Transaction looks up a single transaction by its 64-character hex hash.
func (c *Client) Transaction(ctx context.Context, hash string) (Transaction, error) {
	const op = "transaction"

	var body wireTransaction
	path := "/transactions/" + url.PathEscape(hash)
	if err := c.get(ctx, op, path, &body); err != nil {
		return Transaction{}, err
	}
	tx, err := mapTransaction(body)
	if err != nil {
		return Transaction{}, netErr(op, err)
	}
	return tx, nil
}

// Transactions returns up to limit transactions, newest first, skipping
// offset entries below maxIndex. A window that would extend past the start
// of the ledger yields an empty slice, not an error, so callers can page
// freely without tracking the exact ledger length.
func (c *Client) Transactions(ctx context.Context, limit int, maxIndex, offset int64) ([]Transaction, error) {
	const op = "transactions"

	if limit <= 0 {
		return []Transaction{}, nil
	}
	end := maxIndex - offset
	start := end - int64(limit) + 1
	if end < 0 || start < 0 {
		return []Transaction{}, nil
	}

	var body wireTransactionList
	path := fmt.Sprintf("/transactions?start=%d&end=%d&limit=%d", start, end, limit)
	if err := c.get(ctx, op, path, &body); err != nil {
		return nil, err
	}

	txs := make([]Transaction, 0, len(body.Blocks))
	for _, w := range body.Blocks {
		tx, err := mapTransaction(w)
		if err != nil {
			return nil, netErr(op, err)
		}
		txs = append(txs, tx)
	}
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].BlockIndex > txs[j].BlockIndex
	})
	return txs, nil
}

// LastBlockIndex returns the highest known block index.
func (c *Client) LastBlockIndex(ctx context.Context) (int64, error) {
	const op = "last block index"

	var body wireHeight
	if err := c.get(ctx, op, "/blocks/height", &body); err != nil {
		return 0, err
	}
	if body.Height < 0 {
		return 0, netErr(op, errors.Errorf("negative height %d", body.Height))
	}
	return body.Height, nil
}

func (c *Client) get(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return netErr(op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return &Error{Kind: KindTimeout, Op: op, Err: err}
		}
		return netErr(op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Op: op}
	case resp.StatusCode != http.StatusOK:
		return netErr(op, errors.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return netErr(op, errors.Wrap(err, "decode response"))
	}
	return nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}

func netErr(op string, err error) error {
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}
