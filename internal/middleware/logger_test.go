package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jstoebel/exercises/pkg/configpkg"
)

func newEngine(logger zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(RequestLogger(logger))
	engine.GET("/ping", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.String(http.StatusOK, "pong")
	})
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	return engine
}

func TestRequestLoggerGeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer

	engine := newEngine(zerolog.New(&buf))

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	requestID := recorder.Header().Get(RequestIDHeader)
	require.NotEmpty(t, requestID)

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		require.Equal(t, requestID, entry["request_id"])
	}
}

func TestRequestLoggerKeepsIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer

	engine := newEngine(zerolog.New(&buf))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)

	require.Equal(t, "req-42", recorder.Header().Get(RequestIDHeader))
	require.Contains(t, buf.String(), `"request_id":"req-42"`)
}

func TestRequestLoggerRecoversPanic(t *testing.T) {
	var buf bytes.Buffer

	engine := newEngine(zerolog.New(&buf))

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Contains(t, buf.String(), "panic message: boom")
}

func TestCreateLogger(t *testing.T) {
	prod := CreateLogger(configpkg.Config{Environment: "production"})
	require.Equal(t, zerolog.InfoLevel, prod.GetLevel())

	dev := CreateLogger(configpkg.Config{Environment: "development"})
	require.Equal(t, zerolog.TraceLevel, dev.GetLevel())
}
