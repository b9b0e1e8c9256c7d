package exporter

import (
	"strings"
	"testing"

	"github.com/hive-corporation/lookout/internal/core/domain"
	"github.com/hive-corporation/lookout/internal/core/ports"
)

func TestExportersServeAsFeedExporters(t *testing.T) {
	iocs := []domain.IOC{
		{Type: domain.Domain, Value: "evil.example.com"},
	}

	tests := []struct {
		name string
		feed ports.FeedExporter
		want string
	}{
		{"STIX", NewSTIXExporter(), "[domain-name:value = 'evil.example.com']"},
		{"CEF", NewCEFExporter(), "src=evil.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := tt.feed.Export(iocs)
			if err != nil {
				t.Fatalf("Export() error: %v", err)
			}
			if !strings.Contains(data, tt.want) {
				t.Errorf("Export() output missing %q: %s", tt.want, data)
			}
		})
	}
}
