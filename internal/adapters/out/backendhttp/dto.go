// Package backendhttp implements the OrderGateway port against the
// order-management backend's JSON API.
//
// Request and response payloads mirror the backend's wire contract: order
// listings are store-scoped (the `STOREKEY` field), mutations echo the
// optimistic-concurrency version, and the status filter travels as the
// backend's `ORDERSTATUS` tag.
package backendhttp

import "orderdesk/internal/core/domain/model/order"

type fetchOrderRequest struct {
	OrderID string `json:"orderId"`
}

type listOrdersRequest struct {
	StoreKey string `json:"STOREKEY"`
	// OrderStatus is only set for the status-filter endpoint.
	OrderStatus string `json:"ORDERSTATUS,omitempty"`
}

type approveOrderRequest struct {
	OrderID string `json:"orderid"`
	Version int    `json:"version"`
}

type updateOrderStateRequest struct {
	OrderID    string `json:"orderid"`
	Version    int    `json:"version"`
	OrderState string `json:"orderState"`
}

type listOrdersResponse struct {
	Results []order.RawOrderRecord `json:"results"`
}

type errorResponse struct {
	Message string `json:"message"`
}
