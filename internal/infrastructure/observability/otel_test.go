package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-chat/internal/config"
)

func TestSplitEndpoint(t *testing.T) {
	tests := []struct {
		raw          string
		wantEndpoint string
		wantInsecure bool
	}{
		{raw: "otel-collector:4318", wantEndpoint: "otel-collector:4318", wantInsecure: true},
		{raw: "http://otel-collector:4318/", wantEndpoint: "otel-collector:4318", wantInsecure: true},
		{raw: "https://otlp.example.com", wantEndpoint: "otlp.example.com", wantInsecure: false},
		{raw: "", wantEndpoint: "", wantInsecure: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			endpoint, insecure := splitEndpoint(tt.raw)
			assert.Equal(t, tt.wantEndpoint, endpoint)
			assert.Equal(t, tt.wantInsecure, insecure)
		})
	}
}

func TestParseHeaders(t *testing.T) {
	got := parseHeaders("authorization=Bearer x, broken, empty=,x-team = chat")
	assert.Equal(t, map[string]string{"authorization": "Bearer x", "x-team": "chat"}, got)
}

func TestSetup_WithoutEndpoint(t *testing.T) {
	ctx := context.Background()
	shutdown, err := Setup(ctx, &config.Config{ServiceName: "chat-api", ServiceNamespace: "jan"}, zerolog.Nop())
	require.NoError(t, err)

	spanCtx, span := StartSpan(ctx, "chat-api", "test")
	assert.NotEmpty(t, GetTraceID(spanCtx))
	assert.NotEmpty(t, GetSpanID(spanCtx))
	span.End()

	assert.NoError(t, shutdown(ctx))
}
