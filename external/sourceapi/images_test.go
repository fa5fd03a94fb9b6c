package sourceapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestImageResolver_ReturnsURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/images/team/44" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		fmt.Fprint(w, `{"result":"Success","data":{"url":"https://img.example.com/team/44.png"}}`)
	}))
	t.Cleanup(server.Close)

	resolver := NewImageResolver(ImageResolverConfig{BaseURL: server.URL})
	if got := resolver.EntityImage("team", 44); got != "https://img.example.com/team/44.png" {
		t.Fatalf("unexpected image url %q", got)
	}
}

func TestImageResolver_FailureYieldsEmptyString(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	resolver := NewImageResolver(ImageResolverConfig{BaseURL: server.URL})
	if got := resolver.EntityImage("player", 9); got != "" {
		t.Fatalf("expected empty url on failure, got %q", got)
	}
}

func TestImageResolver_NonSuccessEnvelopeYieldsEmptyString(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"result":"Error","message":"no image"}`)
	}))
	t.Cleanup(server.Close)

	resolver := NewImageResolver(ImageResolverConfig{BaseURL: server.URL})
	if got := resolver.EntityImage("coach", 3); got != "" {
		t.Fatalf("expected empty url, got %q", got)
	}
}

func TestImageResolver_InvalidInputsYieldEmptyString(t *testing.T) {
	t.Parallel()

	resolver := NewImageResolver(ImageResolverConfig{BaseURL: "http://host"})
	if got := resolver.EntityImage("", 1); got != "" {
		t.Fatalf("expected empty url for empty kind, got %q", got)
	}
	if got := resolver.EntityImage("team", 0); got != "" {
		t.Fatalf("expected empty url for zero id, got %q", got)
	}
}
