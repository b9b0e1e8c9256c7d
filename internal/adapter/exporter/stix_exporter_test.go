package exporter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/hive-corporation/lookout/internal/core/domain"
)

func TestSTIXExport(t *testing.T) {
	iocs := []domain.IOC{
		{Type: domain.IPAddress, Value: "203.0.113.7"},
		{Type: domain.Domain, Value: "evil.example.com"},
		{Type: domain.URL, Value: "http://evil.example.com/x"},
		{Type: domain.Hash, Value: "d41d8cd98f00b204e9800998ecf8427e"},
	}

	data, err := NewSTIXExporter().Export(iocs)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var bundle STIXBundle
	if err := json.Unmarshal([]byte(data), &bundle); err != nil {
		t.Fatalf("Export() produced invalid JSON: %v", err)
	}

	if bundle.Type != "bundle" || bundle.SpecVersion != "2.1" {
		t.Errorf("bundle header = %s/%s, want bundle/2.1", bundle.Type, bundle.SpecVersion)
	}
	if !strings.HasPrefix(bundle.ID, "bundle--") {
		t.Errorf("bundle ID %q missing bundle-- prefix", bundle.ID)
	}
	if len(bundle.Objects) != 4 {
		t.Fatalf("bundle has %d objects, want 4", len(bundle.Objects))
	}

	wantPatterns := []string{
		"[ipv4-addr:value = '203.0.113.7']",
		"[domain-name:value = 'evil.example.com']",
		"[url:value = 'http://evil.example.com/x']",
		"[file:hashes.'MD5' = 'd41d8cd98f00b204e9800998ecf8427e']",
	}
	for i, want := range wantPatterns {
		if bundle.Objects[i].Pattern != want {
			t.Errorf("object %d pattern = %q, want %q", i, bundle.Objects[i].Pattern, want)
		}
		if !strings.HasPrefix(bundle.Objects[i].ID, "indicator--") {
			t.Errorf("object %d ID %q missing indicator-- prefix", i, bundle.Objects[i].ID)
		}
	}
}

func TestSTIXExportEmpty(t *testing.T) {
	data, err := NewSTIXExporter().Export(nil)
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}

	var bundle STIXBundle
	if err := json.Unmarshal([]byte(data), &bundle); err != nil {
		t.Fatalf("Export() produced invalid JSON: %v", err)
	}
	if len(bundle.Objects) != 0 {
		t.Errorf("empty export has %d objects, want 0", len(bundle.Objects))
	}
}

func TestDetectHashType(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		expected string
	}{
		{"MD5", 32, "MD5"},
		{"SHA-1", 40, "SHA-1"},
		{"SHA-256", 64, "SHA-256"},
		{"Unknown defaults", 10, "SHA-256"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectHashType(strings.Repeat("a", tt.length)); got != tt.expected {
				t.Errorf("detectHashType(len %d) = %q, want %q", tt.length, got, tt.expected)
			}
		})
	}
}
