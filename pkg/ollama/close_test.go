package ollama

import (
	"net/http"
	"testing"
	"time"

	"github.com/user/moodlog/internal/config"
)

func TestClose_Idempotent(t *testing.T) {
	cfg := config.OllamaConfig{BaseURL: "http://localhost:11434", Timeout: time.Second}
	c, err := NewClient(cfg, &http.Client{Transport: &http.Transport{}})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("first Close returned error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
}

func TestClose_NilClient(t *testing.T) {
	var c *Client
	if err := c.Close(); err != nil {
		t.Fatalf("Close on nil client returned error: %v", err)
	}
}

func TestRenderTemplate(t *testing.T) {
	out, err := RenderTemplate("Hello {{.Name}}", map[string]string{"Name": "world"})
	if err != nil {
		t.Fatalf("RenderTemplate error: %v", err)
	}
	if out != "Hello world" {
		t.Fatalf("unexpected render output %q", out)
	}

	if _, err := RenderTemplate("{{.Broken", nil); err == nil {
		t.Fatalf("expected parse error for broken template")
	}
}
