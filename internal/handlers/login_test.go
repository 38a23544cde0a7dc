package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avdeev-dev/gw-audio-transcriber/internal/models"
	"github.com/avdeev-dev/gw-audio-transcriber/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		checkBody    func(t *testing.T, body map[string]any)
	}{
		{
			name: "success excludes password",
			body: `{"email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret").
					Return(&models.UserDB{ID: userID, Email: "john@example.com", Password: "$2a$10$digest", Name: "John"}, nil)
			},
			expectedCode: 200,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "Login successful", body["message"])
				user := body["user"].(map[string]any)
				assert.Equal(t, userID.String(), user["id"])
				assert.Equal(t, "John", user["name"])
				assert.NotContains(t, user, "password")
			},
		},
		{
			name: "unknown email",
			body: `{"email":"ghost@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost@example.com", "secret").
					Return(nil, services.ErrUserDoesNotExist)
			},
			expectedCode: 400,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, map[string]any{"error": "Invalid credentials"}, body)
			},
		},
		{
			name: "wrong password",
			body: `{"email":"john@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "wrong").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedCode: 400,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, map[string]any{"error": "Invalid credentials"}, body)
			},
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			expectedCode: 400,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, map[string]any{"error": "Invalid credentials"}, body)
			},
		},
		{
			name: "store failure is passed through",
			body: `{"email":"john@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john@example.com", "secret").
					Return(nil, errors.New("connection refused"))
			},
			expectedCode: 500,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "connection refused", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			tt.checkBody(t, body)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginHandler_NoUserExistenceLeak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	handler := NewLoginHandler(mockSvc)

	mockSvc.EXPECT().
		Login(gomock.Any(), "ghost@example.com", "pw").
		Return(nil, services.ErrUserDoesNotExist)
	mockSvc.EXPECT().
		Login(gomock.Any(), "real@example.com", "pw").
		Return(nil, services.ErrInvalidCredentials)

	bodies := make([]string, 0, 2)
	codes := make([]int, 0, 2)
	for _, email := range []string{"ghost@example.com", "real@example.com"} {
		payload, _ := json.Marshal(LoginRequest{Email: email, Password: "pw"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(payload))
		rr := httptest.NewRecorder()
		handler(rr, req)

		bodies = append(bodies, rr.Body.String())
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, codes[0], codes[1])
	assert.Equal(t, bodies[0], bodies[1])
}
