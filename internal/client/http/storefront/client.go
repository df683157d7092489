// Package storefront is a typed client for the storefront HTTP API.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/sm107-uiuc/sparemate-hub/internal/converter"
	"github.com/sm107-uiuc/sparemate-hub/internal/model"
	storefrontv1 "github.com/sm107-uiuc/sparemate-hub/shared/pkg/api/storefront/v1"
)

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("storefront api: %d %s", e.Status, e.Message)
}

type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
}

// NewTransport is the production transport, traced with otelhttp.
func NewTransport() http.RoundTripper {
	return otelhttp.NewTransport(http.DefaultTransport)
}

func NewClient(baseURL, apiKey string, transport http.RoundTripper) (*Client, error) {
	const op = "storefront.NewClient"

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%s: parse base url: %w", op, err)
	}
	if transport == nil {
		transport = NewTransport()
	}

	return &Client{
		baseURL: u,
		apiKey:  apiKey,
		http:    &http.Client{Transport: transport},
	}, nil
}

func (c *Client) Cart(ctx context.Context) ([]model.CartItemView, error) {
	var resp storefrontv1.CartResponse
	if err := c.do(ctx, http.MethodGet, "/api/cart", nil, nil, &resp); err != nil {
		return nil, err
	}
	return converter.CartItemsFromAPI(resp.Cart), nil
}

func (c *Client) AddToCart(ctx context.Context, partID string, quantity int) ([]model.CartItemView, error) {
	req := storefrontv1.AddToCartRequest{PartID: partID, Quantity: quantity}

	var resp storefrontv1.CartResponse
	if err := c.do(ctx, http.MethodPost, "/api/cart", nil, req, &resp); err != nil {
		return nil, err
	}
	return converter.CartItemsFromAPI(resp.Cart), nil
}

func (c *Client) RemoveFromCart(ctx context.Context, partID string) ([]model.CartItemView, error) {
	var resp storefrontv1.CartResponse
	if err := c.do(ctx, http.MethodDelete, "/api/cart/"+url.PathEscape(partID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return converter.CartItemsFromAPI(resp.Cart), nil
}

func (c *Client) UpdateQuantity(ctx context.Context, partID string, quantity int) ([]model.CartItemView, error) {
	req := storefrontv1.UpdateQuantityRequest{Quantity: &quantity}

	var resp storefrontv1.CartResponse
	if err := c.do(ctx, http.MethodPut, "/api/cart/"+url.PathEscape(partID), nil, req, &resp); err != nil {
		return nil, err
	}
	return converter.CartItemsFromAPI(resp.Cart), nil
}

func (c *Client) Checkout(ctx context.Context) (*model.CheckoutSummary, error) {
	var resp storefrontv1.CheckoutResponse
	if err := c.do(ctx, http.MethodPost, "/api/checkout", nil, nil, &resp); err != nil {
		return nil, err
	}
	return converter.CheckoutSummaryFromAPI(resp.Summary), nil
}

func (c *Client) ListParts(ctx context.Context, filter model.PartsFilter, sortBy model.SortOption) ([]*model.Part, error) {
	var resp storefrontv1.PartsResponse
	if err := c.do(ctx, http.MethodGet, "/api/parts", partsQuery(filter, sortBy), nil, &resp); err != nil {
		return nil, err
	}
	return converter.PartsFromAPI(resp.Parts), nil
}

func (c *Client) Part(ctx context.Context, partID string) (*model.Part, error) {
	var resp storefrontv1.PartResponse
	if err := c.do(ctx, http.MethodGet, "/api/parts/"+url.PathEscape(partID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return converter.PartFromAPI(resp.Part), nil
}

func (c *Client) Order(ctx context.Context, orderID string) (*model.Order, error) {
	var resp storefrontv1.OrderResponse
	if err := c.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return converter.OrderFromAPI(resp.Order), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("storefront: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("storefront: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(storefrontv1.HeaderAPIKey, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("storefront: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("storefront: decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body storefrontv1.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		apiErr.Message = body.Error
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	return apiErr
}

func partsQuery(f model.PartsFilter, sortBy model.SortOption) url.Values {
	q := url.Values{}
	if f.Query != "" {
		q.Set("q", f.Query)
	}
	for _, c := range f.Categories {
		q.Add("category", string(c))
	}
	for _, m := range f.Manufacturers {
		q.Add("manufacturer", m)
	}
	if f.PriceRange != nil {
		q.Set("minPrice", strconv.FormatFloat(f.PriceRange.Min, 'f', -1, 64))
		q.Set("maxPrice", strconv.FormatFloat(f.PriceRange.Max, 'f', -1, 64))
	}
	if c := strings.TrimSpace(f.Compatibility); c != "" {
		q.Set("compatibility", c)
	}
	if f.InStockOnly {
		q.Set("inStock", "true")
	}
	if sortBy != "" && sortBy != model.SortRelevance {
		q.Set("sort", string(sortBy))
	}
	return q
}
