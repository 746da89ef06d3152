package backendhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/metrics"
)

// gatewayTokenHeader carries the platform gateway's claims token, sent
// alongside the bearer token on every call.
const gatewayTokenHeader = "X-Gateway-Authorization"

// Backend endpoint paths. Listings are store-scoped; mutations echo the
// version for optimistic concurrency.
const (
	pathFetchOrder       = "/Customer/GetOrderAdminToken"
	pathListOrders       = "/Customer/FetchOrderSpecificStatus"
	pathListOrdersStatus = "/Customer/DealerOrder"
	pathApproveOrder     = "/Customer/ApproveOrder"
	pathUpdateOrderState = "/Customer/UpdateOrderState"
)

// Client implements ports.OrderGateway over the backend's HTTP JSON API.
//
// Every call is single-flight: no retries, no implicit timeout beyond what
// the injected http.Client enforces. Backend failures are translated into
// the errs taxonomy and propagate unchanged to the application layer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   ports.SessionStore
	metrics    *metrics.GatewayMetrics
}

var _ ports.OrderGateway = (*Client)(nil)

// NewClient creates a gateway client for the given backend base URL.
// Credentials are read from the session store on every call, so a session
// refreshed by the external auth flow takes effect immediately.
func NewClient(
	baseURL string,
	httpClient *http.Client,
	sessions ports.SessionStore,
	gatewayMetrics *metrics.GatewayMetrics,
) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		sessions:   sessions,
		metrics:    gatewayMetrics,
	}
}

// GetOrder fetches a single raw order record by id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (order.RawOrderRecord, error) {
	var record order.RawOrderRecord
	err := c.call(ctx, "GetOrder", pathFetchOrder, fetchOrderRequest{OrderID: orderID},
		&record, c.mapOrderError(orderID, 0))
	if err != nil {
		return order.RawOrderRecord{}, err
	}
	return record, nil
}

// ListOrders fetches the store's order listing. An empty statusFilter uses
// the default listing endpoint; a concrete status uses the filter endpoint.
func (c *Client) ListOrders(
	ctx context.Context, storeKey string, statusFilter order.Status,
) ([]order.RawOrderRecord, error) {
	path := pathListOrders
	payload := listOrdersRequest{StoreKey: storeKey}
	if statusFilter != "" {
		path = pathListOrdersStatus
		payload.OrderStatus = statusFilter.String()
	}

	var response listOrdersResponse
	err := c.call(ctx, "ListOrders", path, payload, &response, nil)
	if err != nil {
		return nil, err
	}
	return response.Results, nil
}

// ApproveOrder requests the backend set the approval flag at the given
// version.
func (c *Client) ApproveOrder(ctx context.Context, orderID string, version int) error {
	return c.call(ctx, "ApproveOrder", pathApproveOrder,
		approveOrderRequest{OrderID: orderID, Version: version},
		nil, c.mapOrderError(orderID, version))
}

// UpdateOrderState submits a status transition at the given version. A
// backend refusal that is neither a version conflict nor a missing order
// surfaces as a transition rejection: the backend is the final authority
// and may refuse transitions the local table allows.
func (c *Client) UpdateOrderState(
	ctx context.Context, orderID string, version int, target order.Status,
) error {
	return c.call(ctx, "UpdateOrderState", pathUpdateOrderState,
		updateOrderStateRequest{OrderID: orderID, Version: version, OrderState: target.String()},
		nil, func(status int, body []byte) error {
			switch status {
			case http.StatusNotFound:
				return errs.NewObjectNotFoundErrorWithCause("orderId", orderID, httpError(status, body))
			case http.StatusConflict:
				return errs.NewVersionConflictErrorWithCause(orderID, version, httpError(status, body))
			case http.StatusBadRequest, http.StatusUnprocessableEntity:
				return errs.NewTransitionRejectedErrorWithCause(orderID, target.String(), httpError(status, body))
			default:
				return nil
			}
		})
}

// errorMapper translates a non-2xx response into a taxonomy error, or
// returns nil to fall through to the generic transport failure.
type errorMapper func(status int, body []byte) error

// mapOrderError is the mapper shared by fetch and approve: 404 means the
// order id is unknown, 409 means the echoed version is stale.
func (c *Client) mapOrderError(orderID string, version int) errorMapper {
	return func(status int, body []byte) error {
		switch status {
		case http.StatusNotFound:
			return errs.NewObjectNotFoundErrorWithCause("orderId", orderID, httpError(status, body))
		case http.StatusConflict:
			return errs.NewVersionConflictErrorWithCause(orderID, version, httpError(status, body))
		default:
			return nil
		}
	}
}

// call performs one POST round trip: marshal, send with session
// credentials, translate failure, decode success into out when non-nil.
func (c *Client) call(
	ctx context.Context, operation, path string, payload any, out any, mapError errorMapper,
) error {
	start := time.Now()
	err := c.doCall(ctx, path, payload, out, mapError)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	if c.metrics != nil {
		c.metrics.Observe(operation, outcome, float64(time.Since(start).Milliseconds()))
	}

	return err
}

func (c *Client) doCall(
	ctx context.Context, path string, payload any, out any, mapError errorMapper,
) error {
	session, err := c.sessions.Load(ctx)
	if err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.NewTransportFailureError(path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errs.NewTransportFailureError(path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+session.Credentials.BearerToken)
	req.Header.Set(gatewayTokenHeader, session.Credentials.GatewayToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewTransportFailureError(path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewTransportFailureError(path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if mapError != nil {
			if mapped := mapError(resp.StatusCode, respBody); mapped != nil {
				return mapped
			}
		}
		return errs.NewTransportFailureError(path, httpError(resp.StatusCode, respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errs.NewTransportFailureError(path, err)
	}
	return nil
}

// httpError builds the cause error for a failed response, preferring the
// backend's message field when the body carries one.
func httpError(status int, body []byte) error {
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("backend returned %d: %s", status, envelope.Message)
	}
	return fmt.Errorf("backend returned %d", status)
}
