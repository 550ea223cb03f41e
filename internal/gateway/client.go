package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nulzo/modeldocs/internal/httpclient"
	"github.com/nulzo/modeldocs/pkg/schema"
	"go.uber.org/zap"
)

const (
	modelsPath  = "/v1/models"
	pricingPath = "/api/pricing"
)

// Client fetches the live model catalog and pricing table from the gateway.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL returns the configured gateway root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Models retrieves every model currently exposed by the gateway.
func (c *Client) Models(ctx context.Context) ([]schema.Model, error) {
	var list schema.ModelList
	url := c.baseURL + modelsPath
	if err := httpclient.Fetch(ctx, c.client, url, &list); err != nil {
		return nil, fmt.Errorf("failed to fetch model list: %w", err)
	}

	c.logger.Debug("Fetched model list",
		zap.String("url", url),
		zap.Int("models", len(list.Data)),
	)
	return list.Data, nil
}

// Pricing retrieves the gateway's pricing table.
func (c *Client) Pricing(ctx context.Context) ([]schema.ModelPricing, error) {
	var list schema.PricingList
	url := c.baseURL + pricingPath
	if err := httpclient.Fetch(ctx, c.client, url, &list); err != nil {
		return nil, fmt.Errorf("failed to fetch pricing list: %w", err)
	}

	c.logger.Debug("Fetched pricing list",
		zap.String("url", url),
		zap.Int("entries", len(list.Data)),
	)
	return list.Data, nil
}
