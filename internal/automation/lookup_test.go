package automation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/victoreder/admin-hublabel-sub000/internal/config"
)

func TestAssetURLFetchesWorkflow(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"nodes":[{"url":"https://cdn.example.com/app.zip"}]}`))
	}))
	defer server.Close()

	svc := NewLookupService(config.AutomationConfig{
		BaseURL:          server.URL,
		APIKey:           "tok-1",
		ExcludeSubstring: "make.com",
	}, nil, zap.NewNop())

	url, err := svc.AssetURL(context.Background(), "wf-42")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if url != "https://cdn.example.com/app.zip" {
		t.Fatalf("got %q", url)
	}
	if gotPath != "/workflow/wf-42" {
		t.Fatalf("path: %q", gotPath)
	}
	if gotAuth != "Token tok-1" {
		t.Fatalf("auth: %q", gotAuth)
	}
}

func TestAssetURLNoUsableLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"hook":"https://hook.us1.make.com/abc"}`))
	}))
	defer server.Close()

	svc := NewLookupService(config.AutomationConfig{
		BaseURL:          server.URL,
		ExcludeSubstring: "make.com",
	}, nil, zap.NewNop())

	_, err := svc.AssetURL(context.Background(), "wf-42")
	if err != ErrNoAssetURL {
		t.Fatalf("got %v, want ErrNoAssetURL", err)
	}
}

func TestAssetURLUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewLookupService(config.AutomationConfig{BaseURL: server.URL}, nil, zap.NewNop())

	if _, err := svc.AssetURL(context.Background(), "wf-42"); err == nil {
		t.Fatal("expected error for upstream failure")
	}
}
