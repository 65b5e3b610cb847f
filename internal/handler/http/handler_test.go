package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vocab-keeper/internal/config"
	"github.com/MKhiriev/go-vocab-keeper/internal/logger"
	"github.com/MKhiriev/go-vocab-keeper/internal/mock"
	"github.com/MKhiriev/go-vocab-keeper/internal/service"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "handler-test-key",
		TokenIssuer:   "go-vocab-keeper",
		TokenDuration: time.Hour,
		Version:       "test-version",
	}
}

func testServerConfig() config.Server {
	return config.Server{RequestTimeout: 5 * time.Second}
}

// apiFixture serves the full router over mocked card and progress services
// and a real token verifier.
type apiFixture struct {
	router   *chi.Mux
	cards    *mock.MockCardService
	progress *mock.MockProgressService
	token    string
}

func newAPIFixture(t *testing.T) apiFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	appInfo := mock.NewMockAppInfoService(ctrl)
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test-version").AnyTimes()

	auth := service.NewAuthService(testAppConfig(), logger.Nop())
	token, err := auth.CreateToken(t.Context(), "user-1")
	require.NoError(t, err)

	f := apiFixture{
		cards:    mock.NewMockCardService(ctrl),
		progress: mock.NewMockProgressService(ctrl),
		token:    token.SignedString,
	}
	f.router = NewHandler(&service.Services{
		AuthService:     auth,
		CardService:     f.cards,
		ProgressService: f.progress,
		AppInfoService:  appInfo,
	}, testServerConfig(), logger.Nop()).Init()
	return f
}

func (f apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+f.token)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{RateLimit: 60}, log)
	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, 60, h.rateLimit)
	assert.Equal(t, defaultRequestTimeout, h.requestTimeout)
}

var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/api/cards"},
	{http.MethodGet, "/api/cards/ids"},
	{http.MethodPost, "/api/cards/upsert"},
	{http.MethodGet, "/api/progress"},
	{http.MethodPost, "/api/progress/upsert"},
	{http.MethodPost, "/api/progress/increment"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	router := newAPIFixture(t).router

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newAPIFixture(t).router

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodListsAllowed(t *testing.T) {
	router := newAPIFixture(t).router

	tests := []struct {
		method, path, allow string
	}{
		{method: http.MethodPost, path: "/api/version", allow: "GET"},
		{method: http.MethodGet, path: "/api/cards/upsert", allow: "POST"},
		{method: http.MethodDelete, path: "/api/progress", allow: "GET"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.allow, rec.Header().Get("Allow"))
		})
	}
}

func TestInit_RateLimit(t *testing.T) {
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v").AnyTimes()

	router := NewHandler(
		&service.Services{AppInfoService: appInfo},
		config.Server{RateLimit: 2},
		logger.Nop(),
	).Init()

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
