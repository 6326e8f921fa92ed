package integrationtests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "vehicle-marketplace/internal/auctionService"
	interaction "vehicle-marketplace/internal/interactionService"
	model "vehicle-marketplace/internal/models"
	"vehicle-marketplace/internal/repository"
	"vehicle-marketplace/internal/server"
	vehicle "vehicle-marketplace/internal/vehicleService"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter wires the full HTTP stack on top of an in-memory store and
// returns both, so tests can seed data directly.
func SetupTestRouter() (*gin.Engine, *repository.MemoryStore) {
	gin.SetMode(gin.TestMode)
	store := repository.NewMemoryStore()

	interactionSvc := interaction.NewInteractionService(store, nil)
	auctionSvc := auction.NewAuctionService(store, store)
	vehicleSvc := vehicle.NewVehicleService(store, interactionSvc)

	router := server.SetupRouter(server.Services{
		Auction:     auctionSvc,
		Vehicle:     vehicleSvc,
		Interaction: interactionSvc,
		Tracker:     interactionSvc,
	})
	return router, store
}

// SeedVehicle stores a vehicle directly in the repository
func SeedVehicle(t *testing.T, store *repository.MemoryStore, v model.Vehicle) {
	t.Helper()
	if err := store.CreateVehicle(context.Background(), v); err != nil {
		t.Fatalf("failed to seed vehicle %s: %v", v.VehicleID, err)
	}
}

// ExecuteRequest executes an HTTP request as the given user and returns the
// response recorder. An empty userID sends an anonymous request.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, userID string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request and parses the JSON envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, userID string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := ExecuteRequest(t, router, method, url, userID, reqBody)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// DataObject extracts the "data" field as an object, failing the test otherwise
func DataObject(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return data
}

// DataArray extracts the "data" field as an array, failing the test otherwise
func DataArray(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not an array: %v", resp)
	}
	return data
}
