package fulfillment

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/domain/shared"
	"github.com/billymitchell/J-Charles-Shipment-Processing/internal/domain/shipment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecord() *shipment.ShipmentRecord {
	sourceID := "S-1"
	carrier := "UPS"
	method := "Ground"
	return &shipment.ShipmentRecord{
		TrackingNumber: "T1",
		SourceID:       &sourceID,
		CarrierCode:    &carrier,
		ShipmentMethod: &method,
		OrderItems: []shipment.LineItem{
			{Identifier: "SKU-1", Quantity: 2},
		},
	}
}

func TestNewClient_RequiresEndpoint(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestSubmitShipment_Success(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"order":"created"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{Endpoint: server.URL})
	require.NoError(t, err)

	response, err := client.SubmitShipment(context.Background(), testRecord())
	require.NoError(t, err)
	assert.JSONEq(t, `{"order":"created"}`, string(response))

	assert.Equal(t, "T1", received["tracking_number"])
	assert.Equal(t, "S-1", received["source_id"])
	assert.Equal(t, "UPS", received["carrier_code"])
	assert.Equal(t, "Ground", received["shipment_method"])
	items, ok := received["order_items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 1)
}

func TestSubmitShipment_RejectionCarriesDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"duplicate shipment"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.SubmitShipment(context.Background(), testRecord())
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UPSTREAM_REJECTED", domainErr.Code)
	assert.Equal(t, "T1", domainErr.Details["tracking_number"])
	assert.Contains(t, domainErr.Details["upstream_status"], "422")

	// The exact request body sent is preserved in the details
	requestBody, ok := domainErr.Details["request_body"].(json.RawMessage)
	require.True(t, ok)
	assert.Contains(t, string(requestBody), `"tracking_number":"T1"`)

	// The upstream response body is parsed JSON
	responseBody, ok := domainErr.Details["response_body"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "duplicate shipment", responseBody["error"])
}

func TestSubmitShipment_RejectionWithNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client, err := NewClient(Config{Endpoint: server.URL})
	require.NoError(t, err)

	_, err = client.SubmitShipment(context.Background(), testRecord())
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "upstream exploded", domainErr.Details["response_body"])
}

func TestSubmitShipment_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Closed server: connection refused

	client, err := NewClient(Config{Endpoint: server.URL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.SubmitShipment(context.Background(), testRecord())
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", domainErr.Code)
	assert.Equal(t, "T1", domainErr.Details["tracking_number"])
}

func TestSubmitShipment_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server detects the client disconnect and
		// cancels the request context; otherwise Close deadlocks.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := NewClient(Config{Endpoint: server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = client.SubmitShipment(ctx, testRecord())
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", domainErr.Code)
}
