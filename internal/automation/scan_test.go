package automation

import (
	"encoding/json"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return doc
}

func TestFindAssetURLNestedDocument(t *testing.T) {
	doc := decode(t, `{
		"name": "publicar versao",
		"nodes": [
			{"type": "trigger", "webhook": "internal-id"},
			{"type": "http", "params": {"url": "https://cdn.example.com/app-1.4.3.zip"}}
		]
	}`)

	url, ok := FindAssetURL(doc, "")
	if !ok {
		t.Fatal("expected a url")
	}
	if url != "https://cdn.example.com/app-1.4.3.zip" {
		t.Fatalf("got %q", url)
	}
}

func TestFindAssetURLSkipsExcludedSubstring(t *testing.T) {
	doc := decode(t, `{
		"hook": "https://hook.us1.make.com/abc123",
		"release": "https://cdn.example.com/app.zip"
	}`)

	url, ok := FindAssetURL(doc, "make.com")
	if !ok {
		t.Fatal("expected a url")
	}
	if url != "https://cdn.example.com/app.zip" {
		t.Fatalf("excluded url leaked through: %q", url)
	}
}

func TestFindAssetURLDeterministicKeyOrder(t *testing.T) {
	doc := decode(t, `{
		"b_link": "https://second.example.com/x",
		"a_link": "https://first.example.com/x"
	}`)

	// Keys are visited sorted, so a_link wins on every run.
	for i := 0; i < 10; i++ {
		url, ok := FindAssetURL(doc, "")
		if !ok || url != "https://first.example.com/x" {
			t.Fatalf("run %d: got %q, %v", i, url, ok)
		}
	}
}

func TestFindAssetURLIgnoresNonURLStrings(t *testing.T) {
	doc := decode(t, `{
		"id": "wf-123",
		"note": "veja https://example.com no navegador",
		"count": 42,
		"enabled": true,
		"empty": null
	}`)

	if url, ok := FindAssetURL(doc, ""); ok {
		t.Fatalf("expected no url, got %q", url)
	}
}

func TestFindAssetURLNotFound(t *testing.T) {
	doc := decode(t, `{"nodes": [{"hook": "https://hook.us1.make.com/abc"}]}`)

	if _, ok := FindAssetURL(doc, "make.com"); ok {
		t.Fatal("all urls excluded, expected not found")
	}
}
