package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jwtService := NewMockJWTServiceInterface(ctrl)

	var gotOperator string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOperator, _ = r.Context().Value(OperatorKey).(string)
		w.WriteHeader(http.StatusOK)
	})
	protected := AuthMiddleware(jwtService)(next)

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Valid token",
			header: "Bearer good-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("good-token").Return(&Claims{Operator: "admin"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			header:       "",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			header:       "Basic dXNlcjpwYXNz",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Invalid token",
			header: "Bearer bad-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("bad-token").Return(nil, assert.AnError)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			gotOperator = ""

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, "admin", gotOperator)
			}
		})
	}
}
