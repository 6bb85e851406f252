package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/formsight/formsight/internal/middleware"

	"github.com/stretchr/testify/assert"
)

type fakeLoginChecker struct {
	loggedSessions map[string]bool
	err            error
}

func (f *fakeLoginChecker) IsLogged(_ context.Context, token string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.loggedSessions[token], nil
}

func TestAuthMiddlewareHandler_AuthCheck(t *testing.T) {
	loginChecker := &fakeLoginChecker{
		loggedSessions: map[string]bool{
			"valid-token": true,
		},
	}
	authMiddleware := middleware.NewAuthMiddlewareHandler(
		"detectorRequestsSecret",
		loginChecker,
	)

	testCases := []struct {
		name               string
		path               string
		method             string
		token              string
		expectedStatusCode int
	}{
		{
			name:               "AllowedPathWithoutToken",
			path:               "/session/status",
			method:             "GET",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "AllowedPrefixWithoutToken",
			path:               "/session/exercise/strength",
			method:             "POST",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "NotAllowedPathWithoutToken",
			path:               "/exercise/yoga/thresholds",
			method:             "PUT",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "ValidToken",
			path:               "/exercise/yoga/thresholds",
			method:             "PUT",
			token:              "valid-token",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "InvalidToken",
			path:               "/exercise/yoga/thresholds",
			method:             "PUT",
			token:              "invalid-token",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "DetectorRequestValidSecret",
			path:               "/session/analyze",
			method:             "POST",
			token:              "detectorRequestsSecret",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "DetectorRequestInvalidSecret",
			path:               "/session/analyze",
			method:             "POST",
			token:              "invalid-token",
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "DetectorStreamValidSecret",
			path:               "/session/analyze/stream",
			method:             "GET",
			token:              "detectorRequestsSecret",
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "OptionsAlwaysAllowed",
			path:               "/exercise/yoga/thresholds",
			method:             "OPTIONS",
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(tc.method, tc.path, nil)
			assert.NoError(t, err)
			if tc.token != "" {
				req.Header.Add("X-FORMSIGHT-TOKEN", tc.token)
			}

			rr := httptest.NewRecorder()
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
			authMiddleware.AuthCheck()(handler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatusCode, rr.Code)
		})
	}
}
