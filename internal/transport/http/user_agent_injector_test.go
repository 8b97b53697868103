package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/restlog/internal/utils"
	mock_utils "github.com/oshokin/restlog/internal/utils/mocks"
)

// TestNewUserAgentInjector tests the NewUserAgentInjector function.
func TestNewUserAgentInjector(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockProvider := mock_utils.NewMockUserAgentProvider(ctrl)

	injector := NewUserAgentInjector(http.DefaultTransport, mockProvider)

	assert.NotNil(t, injector)
	assert.Implements(t, (*http.RoundTripper)(nil), injector)
}

// TestUserAgentInjector_RoundTrip tests header injection with present, missing and empty headers.
func TestUserAgentInjector_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		presetUserAgent  *string
		providerCalls    int
		expectedReceived string
	}{
		{
			name:             "existing user agent is kept",
			presetUserAgent:  ptr("ExistingAgent/1.0"),
			providerCalls:    0,
			expectedReceived: "ExistingAgent/1.0",
		},
		{
			name:             "missing user agent is injected",
			presetUserAgent:  nil,
			providerCalls:    1,
			expectedReceived: "TestAgent/1.0",
		},
		{
			name:             "empty user agent is injected",
			presetUserAgent:  ptr(""),
			providerCalls:    1,
			expectedReceived: "TestAgent/1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			mockProvider := mock_utils.NewMockUserAgentProvider(ctrl)
			mockProvider.EXPECT().GetUserAgent().Return("TestAgent/1.0").Times(tt.providerCalls)

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.expectedReceived, r.Header.Get(userAgentHeader))
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			//nolint:noctx // Test code, context not needed.
			req, err := http.NewRequest(http.MethodGet, server.URL, nil)
			require.NoError(t, err)

			if tt.presetUserAgent != nil {
				req.Header.Set(userAgentHeader, *tt.presetUserAgent)
			}

			resp, err := NewUserAgentInjector(http.DefaultTransport, mockProvider).RoundTrip(req)
			require.NoError(t, err)

			defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

			assert.Equal(t, http.StatusOK, resp.StatusCode)

			// The caller's request is never modified.
			if tt.presetUserAgent == nil {
				assert.Empty(t, req.Header.Values(userAgentHeader))
			}
		})
	}
}

// TestUserAgentInjector_RoundTrip_ErrorHandling tests error handling in RoundTrip.
func TestUserAgentInjector_RoundTrip_ErrorHandling(t *testing.T) {
	t.Parallel()

	injector := NewUserAgentInjector(http.DefaultTransport, utils.NewStaticUserAgentProvider("TestAgent/1.0"))

	// Create request with invalid URL that will definitely fail.
	req, err := http.NewRequest(http.MethodGet, "http://[::1]:0", nil) //nolint:noctx // Test code, context not needed.
	require.NoError(t, err)

	resp, err := injector.RoundTrip(req) //nolint:bodyclose // Body is empty on error.
	require.Error(t, err)
	assert.Nil(t, resp)
}

// TestUserAgentInjector_InFrontOfLogTransport tests that the logged request carries the injected header.
func TestUserAgentInjector_InFrontOfLogTransport(t *testing.T) {
	t.Parallel()

	var seen string

	next := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get(userAgentHeader)

		return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody, Request: r}, nil
	})

	li, log := newTestInterceptor(t, true)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).Times(2)

	chain := NewUserAgentInjector(NewLogTransport(next, li), utils.NewStaticUserAgentProvider(""))

	//nolint:noctx // Test code, context not needed.
	req, err := http.NewRequest(http.MethodHead, "http://example.invalid/", http.NoBody)
	require.NoError(t, err)

	resp, err := chain.RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	assert.Equal(t, utils.DefaultUserAgent(), seen)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func ptr[T any](v T) *T {
	return &v
}
