package oracle

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/phoenixdao/phxledger/pkg/clients"
	"go.uber.org/zap"
)

// Payment is a single incoming native-asset transfer against a watched
// account, in page order.
type Payment struct {
	From        string
	To          string
	Amount      float64
	PagingToken string
}

type accountResponse struct {
	Balances []struct {
		Balance   string `json:"balance"`
		AssetType string `json:"asset_type"`
	} `json:"balances"`
}

type paymentsResponse struct {
	Embedded struct {
		Records []struct {
			Type        string `json:"type"`
			From        string `json:"from"`
			To          string `json:"to"`
			Amount      string `json:"amount"`
			AssetType   string `json:"asset_type"`
			PagingToken string `json:"paging_token"`
		} `json:"records"`
	} `json:"_embedded"`
}

// Client reads account balances and payment pages from a Horizon endpoint.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(horizonURL string, client clients.HTTPClientI) *Client {
	return &Client{url: horizonURL, client: client}
}

// NativeBalance returns the account's native-asset balance. Accounts the
// network has never funded do not exist on it, so a 404 reads as zero.
func (c *Client) NativeBalance(address string) (float64, error) {
	statusCode, respBody, _, err := c.client.Get(c.url+"/accounts/"+address, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch account %s: %w", address, err)
	}
	if statusCode == http.StatusNotFound {
		return 0, nil
	}
	if statusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d fetching account %s", statusCode, address)
	}

	var resp accountResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return 0, fmt.Errorf("failed to decode account %s: %w", address, err)
	}
	for _, b := range resp.Balances {
		if b.AssetType != "native" {
			continue
		}
		amount, err := strconv.ParseFloat(b.Balance, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse balance for %s: %w", address, err)
		}
		return amount, nil
	}
	return 0, nil
}

// Payments returns one page of incoming native payments to the account after
// the cursor, along with the cursor to resume from. An empty next cursor
// means the page was empty.
func (c *Client) Payments(account, cursor string, limit int) ([]Payment, string, error) {
	q := url.Values{}
	q.Set("order", "asc")
	q.Set("limit", strconv.Itoa(limit))
	if cursor != "" {
		q.Set("cursor", cursor)
	}

	statusCode, respBody, _, err := c.client.Get(c.url+"/accounts/"+account+"/payments?"+q.Encode(), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch payments for %s: %w", account, err)
	}
	if statusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %d fetching payments for %s", statusCode, account)
	}

	var resp paymentsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, "", fmt.Errorf("failed to decode payments for %s: %w", account, err)
	}

	var payments []Payment
	var next string
	for _, rec := range resp.Embedded.Records {
		next = rec.PagingToken
		if rec.Type != "payment" || rec.AssetType != "native" || rec.To != account {
			continue
		}
		amount, err := strconv.ParseFloat(rec.Amount, 64)
		if err != nil {
			zap.L().Warn("skipping payment with bad amount", zap.String("pagingToken", rec.PagingToken), zap.Error(err))
			continue
		}
		payments = append(payments, Payment{
			From:        rec.From,
			To:          rec.To,
			Amount:      amount,
			PagingToken: rec.PagingToken,
		})
	}
	return payments, next, nil
}
