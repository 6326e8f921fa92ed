package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vehicle-marketplace/internal/marketerrors"
	model "vehicle-marketplace/internal/models"
	"vehicle-marketplace/services/interaction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Test TrackInteractionHandler
func TestTrackInteractionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockInteractionServiceInterface(ctrl)
	handler := NewInteractionHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/interactions", handler.TrackInteractionHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		userHeader     string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:       "success_view",
			userHeader: "user1",
			requestBody: helpers.TrackInteractionRequest{
				VehicleID:       "veh1",
				InteractionType: "view",
				Metadata:        model.InteractionMeta{Duration: 30},
			},
			mockSetup: func() {
				mockService.EXPECT().
					Track(gomock.Any(), "user1", "veh1", model.InteractionView, model.InteractionMeta{Duration: 30}).
					Return(model.UserInteraction{
						InteractionID: uuid.NewString(),
						UserID:        "user1",
						VehicleID:     "veh1",
						Type:          model.InteractionView,
						Meta:          model.InteractionMeta{Duration: 30},
						CreatedAt:     now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "interaction tracked successfully",
			validateData: func(t *testing.T, data map[string]any) {
				interactionID := data["interaction_id"].(string)
				require.NotEmpty(t, interactionID)
				_, parseErr := uuid.Parse(interactionID)
				require.NoError(t, parseErr, "InteractionID should be a valid UUID")
				require.Equal(t, "user1", data["user_id"])
				require.Equal(t, "veh1", data["vehicle_id"])
				require.Equal(t, "view", data["interaction_type"])
			},
		},
		{
			name:       "success_search_without_vehicle",
			userHeader: "user1",
			requestBody: helpers.TrackInteractionRequest{
				InteractionType: "search",
				Metadata:        model.InteractionMeta{SearchQuery: "toyota"},
			},
			mockSetup: func() {
				mockService.EXPECT().
					Track(gomock.Any(), "user1", "", model.InteractionSearch, model.InteractionMeta{SearchQuery: "toyota"}).
					Return(model.UserInteraction{
						InteractionID: uuid.NewString(),
						UserID:        "user1",
						Type:          model.InteractionSearch,
						Meta:          model.InteractionMeta{SearchQuery: "toyota"},
						CreatedAt:     now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "interaction tracked successfully",
		},
		{
			name:       "missing_user_header",
			userHeader: "",
			requestBody: helpers.TrackInteractionRequest{
				VehicleID:       "veh1",
				InteractionType: "view",
			},
			mockSetup:      func() {},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "missing X-User-ID header",
		},
		{
			name:           "invalid_json",
			userHeader:     "user1",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_interaction_type",
			userHeader:     "user1",
			requestBody:    helpers.TrackInteractionRequest{VehicleID: "veh1"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:       "service_rejects_unknown_type",
			userHeader: "user1",
			requestBody: helpers.TrackInteractionRequest{
				VehicleID:       "veh1",
				InteractionType: "purchase",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Track(gomock.Any(), "user1", "veh1", model.InteractionType("purchase"), model.InteractionMeta{}).
					Return(model.UserInteraction{}, marketerrors.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:       "service_rejects_mismatched_metadata",
			userHeader: "user1",
			requestBody: helpers.TrackInteractionRequest{
				VehicleID:       "veh1",
				InteractionType: "bid",
				Metadata:        model.InteractionMeta{Duration: 5},
			},
			mockSetup: func() {
				mockService.EXPECT().
					Track(gomock.Any(), "user1", "veh1", model.InteractionBid, model.InteractionMeta{Duration: 5}).
					Return(model.UserInteraction{}, marketerrors.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request details",
		},
		{
			name:       "service_generic_error",
			userHeader: "user1",
			requestBody: helpers.TrackInteractionRequest{
				VehicleID:       "veh1",
				InteractionType: "favorite",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Track(gomock.Any(), "user1", "veh1", model.InteractionFavorite, model.InteractionMeta{}).
					Return(model.UserInteraction{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
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

			req := httptest.NewRequest(http.MethodPost, "/interactions", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			if tc.userHeader != "" {
				req.Header.Set("X-User-ID", tc.userHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			err = json.Unmarshal(w.Body.Bytes(), &resp)
			require.NoError(t, err)

			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusCreated {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}
