package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vehicle-marketplace/internal/marketerrors"
	model "vehicle-marketplace/internal/models"
	"vehicle-marketplace/services/vehicle/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *MockVehicleServiceInterface, *MockInteractionTracker, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockService := NewMockVehicleServiceInterface(ctrl)
	mockTracker := NewMockInteractionTracker(ctrl)
	handler := NewVehicleHandler(mockService, mockTracker)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/vehicles", handler.CreateVehicleHandler)
	router.GET("/vehicles/search", handler.SearchVehiclesHandler)
	router.GET("/vehicles/compare", handler.CompareVehiclesHandler)
	router.GET("/vehicles/:vehicle_id", handler.GetVehicleHandler)
	router.GET("/vehicles/:vehicle_id/suggestions", handler.SimilarVehiclesHandler)
	router.GET("/users/:user_id/recommendations", handler.RecommendationsHandler)

	return router, mockService, mockTracker, ctrl
}

// Test CreateVehicleHandler
func TestCreateVehicleHandler(t *testing.T) {
	router, mockService, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	validBody := helpers.CreateVehicleRequest{
		Title:     "2020 Toyota Camry SE",
		Brand:     "Toyota",
		Model:     "Camry",
		Year:      2020,
		Condition: "used",
		Price:     20000,
		Location:  "Berlin",
	}

	tests := []struct {
		name           string
		userHeader     string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			userHeader:  "seller1",
			requestBody: validBody,
			mockSetup: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Vehicle{VehicleID: uuid.NewString(), Brand: "Toyota", UserID: "seller1", Status: model.VehicleAvailable}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "vehicle created successfully",
		},
		{
			name:           "missing_user_header",
			userHeader:     "",
			requestBody:    validBody,
			mockSetup:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "missing X-User-ID header",
		},
		{
			name:           "invalid_json",
			userHeader:     "seller1",
			requestBody:    `{not json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:       "service_rejects_input",
			userHeader: "seller1",
			requestBody: helpers.CreateVehicleRequest{
				Title: "incomplete", Brand: "Toyota", Model: "Camry", Price: 1,
			},
			mockSetup: func() {
				mockService.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(model.Vehicle{}, marketerrors.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/vehicles", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			if tc.userHeader != "" {
				req.Header.Set("X-User-ID", tc.userHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test GetVehicleHandler view tracking
func TestGetVehicleHandler(t *testing.T) {
	router, mockService, mockTracker, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	camry := model.Vehicle{VehicleID: "veh1", Brand: "Toyota", Model: "Camry"}

	t.Run("tracks_view_for_acting_user", func(t *testing.T) {
		mockService.EXPECT().Get(gomock.Any(), "veh1").Return(camry, nil)
		mockTracker.EXPECT().
			Track(gomock.Any(), "user1", "veh1", model.InteractionView, model.InteractionMeta{}).
			Return(model.UserInteraction{InteractionID: uuid.NewString()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/vehicles/veh1", nil)
		req.Header.Set("X-User-ID", "user1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("anonymous_request_skips_tracking", func(t *testing.T) {
		mockService.EXPECT().Get(gomock.Any(), "veh1").Return(camry, nil)

		req := httptest.NewRequest(http.MethodGet, "/vehicles/veh1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("tracking_failure_does_not_break_response", func(t *testing.T) {
		mockService.EXPECT().Get(gomock.Any(), "veh1").Return(camry, nil)
		mockTracker.EXPECT().
			Track(gomock.Any(), "user1", "veh1", model.InteractionView, model.InteractionMeta{}).
			Return(model.UserInteraction{}, errors.New("log store down"))

		req := httptest.NewRequest(http.MethodGet, "/vehicles/veh1", nil)
		req.Header.Set("X-User-ID", "user1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("vehicle_not_found", func(t *testing.T) {
		mockService.EXPECT().Get(gomock.Any(), "ghost").Return(model.Vehicle{}, marketerrors.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/vehicles/ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test SearchVehiclesHandler search tracking
func TestSearchVehiclesHandler(t *testing.T) {
	router, mockService, mockTracker, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	t.Run("tracks_query_and_filters", func(t *testing.T) {
		mockTracker.EXPECT().
			Track(gomock.Any(), "user1", "", model.InteractionSearch, model.InteractionMeta{
				SearchQuery: "toyota camry",
				Location:    "Berlin",
				PriceRange:  &model.PriceRange{Min: 10000, Max: 30000},
			}).
			Return(model.UserInteraction{}, nil)
		mockService.EXPECT().
			List(gomock.Any(), gomock.Any(), 1, 10).
			Return([]model.Vehicle{}, int64(0), nil)

		req := httptest.NewRequest(http.MethodGet, "/vehicles/search?q=toyota+camry&location=Berlin&price_min=10000&price_max=30000", nil)
		req.Header.Set("X-User-ID", "user1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("anonymous_search_is_not_tracked", func(t *testing.T) {
		mockService.EXPECT().
			List(gomock.Any(), gomock.Any(), 1, 10).
			Return([]model.Vehicle{{VehicleID: "veh1"}}, int64(1), nil)

		req := httptest.NewRequest(http.MethodGet, "/vehicles/search?brand=Toyota", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		meta := resp["meta"].(map[string]any)
		require.Equal(t, 1.0, meta["total"])
	})
}

// Test CompareVehiclesHandler
func TestCompareVehiclesHandler(t *testing.T) {
	router, mockService, mockTracker, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	t.Run("success_with_tracking", func(t *testing.T) {
		mockService.EXPECT().
			Compare(gomock.Any(), []string{"veh1", "veh2"}).
			Return([]model.Vehicle{{VehicleID: "veh1"}, {VehicleID: "veh2"}}, nil)
		mockTracker.EXPECT().
			Track(gomock.Any(), "user1", "", model.InteractionCompare, model.InteractionMeta{VehicleIDs: []string{"veh1", "veh2"}}).
			Return(model.UserInteraction{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/vehicles/compare?ids=veh1,veh2", nil)
		req.Header.Set("X-User-ID", "user1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing_ids_param", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/vehicles/compare", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("one_vehicle_missing", func(t *testing.T) {
		mockService.EXPECT().
			Compare(gomock.Any(), []string{"veh1", "ghost"}).
			Return(nil, marketerrors.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/vehicles/compare?ids=veh1,ghost", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// Test SimilarVehiclesHandler
func TestSimilarVehiclesHandler(t *testing.T) {
	router, mockService, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			Similar(gomock.Any(), "veh1", 4).
			Return([]model.Vehicle{{VehicleID: "veh2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/vehicles/veh1/suggestions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("empty_result_is_empty_array", func(t *testing.T) {
		mockService.EXPECT().
			Similar(gomock.Any(), "veh1", 4).
			Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/vehicles/veh1/suggestions", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp["data"].([]any), 0)
	})
}

// Test RecommendationsHandler
func TestRecommendationsHandler(t *testing.T) {
	router, mockService, _, ctrl := newTestRouter(t)
	defer ctrl.Finish()

	t.Run("success_with_limit", func(t *testing.T) {
		mockService.EXPECT().
			Recommend(gomock.Any(), "user1", 5).
			Return([]model.Vehicle{{VehicleID: "veh1"}, {VehicleID: "veh2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/user1/recommendations?limit=5", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp["data"].([]any), 2)
	})

	t.Run("service_generic_error", func(t *testing.T) {
		mockService.EXPECT().
			Recommend(gomock.Any(), "user1", 8).
			Return(nil, errors.New("DB connection failed"))

		req := httptest.NewRequest(http.MethodGet, "/users/user1/recommendations", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
