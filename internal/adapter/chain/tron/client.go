// Package tron reads transactions from a TRON full node and derives
// TRON addresses for new wallets.
package tron

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wallet-settlement/config"
	"wallet-settlement/internal/core/domain"
	"wallet-settlement/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

const (
	getTransactionPath = "/wallet/gettransactionbyid"
	apiKeyHeader       = "TRON-PRO-API-KEY"
	contractRetSuccess = "SUCCESS"
)

// Client implements ports.ChainClient against the node HTTP API.
type Client struct {
	http *resty.Client
}

// NewClient creates a chain client. APIKey is optional.
func NewClient(cfg config.ChainConfig) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(cfg.NodeURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if cfg.APIKey != "" {
		rc.SetHeader(apiKeyHeader, cfg.APIKey)
	}
	return &Client{http: rc}
}

type getTransactionRequest struct {
	Value   string `json:"value"`
	Visible bool   `json:"visible"`
}

type nodeTransaction struct {
	TxID string `json:"txID"`
	Ret  []struct {
		ContractRet string `json:"contractRet"`
	} `json:"ret"`
	RawData struct {
		Contract []struct {
			Type      string `json:"type"`
			Parameter struct {
				Value struct {
					Amount    int64  `json:"amount"`
					ToAddress string `json:"to_address"`
				} `json:"value"`
			} `json:"parameter"`
		} `json:"contract"`
	} `json:"raw_data"`
}

// GetTransaction fetches hash with base58 addresses. The node answers an
// unknown hash with an empty object, reported as ports.ErrChainTxNotFound.
func (c *Client) GetTransaction(ctx context.Context, hash string) (*domain.ChainTx, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(getTransactionRequest{Value: hash, Visible: true}).
		Post(getTransactionPath)
	if err != nil {
		return nil, &ports.NetworkError{Op: "chain get transaction", Err: err}
	}
	if resp.IsError() {
		return nil, &ports.NetworkError{Op: "chain get transaction", Err: fmt.Errorf("unexpected status %d", resp.StatusCode())}
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("{}")) {
		return nil, ports.ErrChainTxNotFound
	}

	var nt nodeTransaction
	if err := json.Unmarshal(body, &nt); err != nil {
		return nil, &ports.NetworkError{Op: "chain get transaction", Err: fmt.Errorf("decode response: %w", err)}
	}
	if nt.TxID == "" {
		return nil, ports.ErrChainTxNotFound
	}

	tx := &domain.ChainTx{
		Hash:    nt.TxID,
		Success: len(nt.Ret) > 0 && nt.Ret[0].ContractRet == contractRetSuccess,
	}
	for _, ct := range nt.RawData.Contract {
		tx.Contracts = append(tx.Contracts, domain.ChainContract{
			Type:      ct.Type,
			ToAddress: ct.Parameter.Value.ToAddress,
			Amount:    ct.Parameter.Value.Amount,
		})
	}
	return tx, nil
}
