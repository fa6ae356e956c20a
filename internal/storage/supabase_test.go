package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/victoreder/admin-hublabel-sub000/internal/config"
)

func TestParsePublicURL(t *testing.T) {
	cases := []struct {
		name       string
		url        string
		wantBucket string
		wantPath   string
		wantOK     bool
	}{
		{
			name:       "plain object",
			url:        "https://proj.supabase.co/storage/v1/object/public/instalacoes/1709290000000-contrato.pdf",
			wantBucket: "instalacoes",
			wantPath:   "1709290000000-contrato.pdf",
			wantOK:     true,
		},
		{
			name:       "nested path",
			url:        "https://proj.supabase.co/storage/v1/object/public/docs/2024/03/arquivo.png",
			wantBucket: "docs",
			wantPath:   "2024/03/arquivo.png",
			wantOK:     true,
		},
		{
			name:   "signed url is not public",
			url:    "https://proj.supabase.co/storage/v1/object/sign/instalacoes/contrato.pdf",
			wantOK: false,
		},
		{
			name:   "unrelated url",
			url:    "https://example.com/files/contrato.pdf",
			wantOK: false,
		},
		{
			name:   "empty",
			url:    "",
			wantOK: false,
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			bucket, path, ok := ParsePublicURL(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if bucket != tt.wantBucket || path != tt.wantPath {
				t.Fatalf("got %q/%q, want %q/%q", bucket, path, tt.wantBucket, tt.wantPath)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"contrato.pdf", "contrato.pdf"},
		{"meu contrato final.pdf", "meu_contrato_final.pdf"},
		{"relatório-2024.xlsx", "relat_rio-2024.xlsx"},
		{"  espaços  ", "espa_os"},
		{"", "arquivo"},
		{"   ", "arquivo"},
		{"a/b\\c.txt", "a_b_c.txt"},
	}

	for _, tt := range cases {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveAllDeletesOnlyMatchingURLs(t *testing.T) {
	var mu sync.Mutex
	var deleted []string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("unexpected method %s", r.Method)
		}
		mu.Lock()
		deleted = append(deleted, r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(config.StorageConfig{
		BaseURL:    server.URL,
		ServiceKey: "svc-key",
		Bucket:     "instalacoes",
	}, zap.NewNop())

	client.RemoveAll(context.Background(), []string{
		server.URL + "/storage/v1/object/public/instalacoes/1-contrato.pdf",
		"https://example.com/files/unrelated.pdf",
		server.URL + "/storage/v1/object/public/instalacoes/2-logo.png",
	})

	mu.Lock()
	defer mu.Unlock()
	if len(deleted) != 2 {
		t.Fatalf("deletes: got %d (%v), want 2", len(deleted), deleted)
	}
	want := []string{
		"/storage/v1/object/instalacoes/1-contrato.pdf",
		"/storage/v1/object/instalacoes/2-logo.png",
	}
	for i, path := range want {
		if deleted[i] != path {
			t.Errorf("delete %d: got %s, want %s", i, deleted[i], path)
		}
	}
}

func TestRemoveAllSwallowsServerErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(config.StorageConfig{BaseURL: server.URL, Bucket: "instalacoes"}, zap.NewNop())

	// Must not panic or error out; failures are logged only.
	client.RemoveAll(context.Background(), []string{
		server.URL + "/storage/v1/object/public/instalacoes/1-contrato.pdf",
	})
}

func TestUploadBuildsTimestampedPublicURL(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(config.StorageConfig{
		BaseURL:    server.URL,
		ServiceKey: "svc-key",
		Bucket:     "instalacoes",
	}, zap.NewNop())

	arquivo, err := client.Upload(context.Background(), "meu contrato.pdf", []byte("conteudo"), "application/pdf")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if arquivo.Name != "meu contrato.pdf" {
		t.Fatalf("name: %q", arquivo.Name)
	}
	if gotAuth != "Bearer svc-key" {
		t.Fatalf("auth header: %q", gotAuth)
	}
	if gotContentType != "application/pdf" {
		t.Fatalf("content type: %q", gotContentType)
	}
	if string(gotBody) != "conteudo" {
		t.Fatalf("body: %q", gotBody)
	}
	if !strings.HasPrefix(gotPath, "/storage/v1/object/instalacoes/") {
		t.Fatalf("upload path: %q", gotPath)
	}
	if !strings.HasSuffix(gotPath, "-meu_contrato.pdf") {
		t.Fatalf("upload path should end with the sanitized filename: %q", gotPath)
	}

	bucket, objectPath, ok := ParsePublicURL(arquivo.URL)
	if !ok {
		t.Fatalf("returned URL is not a public object URL: %q", arquivo.URL)
	}
	if bucket != "instalacoes" {
		t.Fatalf("bucket: %q", bucket)
	}
	if !strings.HasSuffix(objectPath, "-meu_contrato.pdf") {
		t.Fatalf("object path: %q", objectPath)
	}
}
