package exporter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hive-corporation/lookout/internal/core/domain"
)

// STIXExporter serializes extracted IOCs as a STIX 2.1 bundle for SIEM
// ingestion.
type STIXExporter struct{}

func NewSTIXExporter() *STIXExporter {
	return &STIXExporter{}
}

// Export generates a STIX 2.1 formatted bundle from extracted indicators.
func (e *STIXExporter) Export(iocs []domain.IOC) (string, error) {
	bundle := STIXBundle{
		Type:        "bundle",
		ID:          fmt.Sprintf("bundle--%s", uuid.New().String()),
		SpecVersion: "2.1",
		Objects:     []STIXObject{},
	}

	for _, ioc := range iocs {
		bundle.Objects = append(bundle.Objects, e.convertToSTIX(ioc))
	}

	jsonData, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal STIX bundle: %w", err)
	}

	return string(jsonData), nil
}

func (e *STIXExporter) convertToSTIX(ioc domain.IOC) STIXObject {
	now := time.Now().UTC()

	return STIXObject{
		Type:           "indicator",
		SpecVersion:    "2.1",
		ID:             fmt.Sprintf("indicator--%s", uuid.New().String()),
		Created:        now.Format(time.RFC3339),
		Modified:       now.Format(time.RFC3339),
		Name:           fmt.Sprintf("%s Indicator", strings.ToUpper(string(ioc.Type))),
		Pattern:        e.buildPattern(ioc),
		PatternType:    "stix",
		ValidFrom:      now.Format(time.RFC3339),
		IndicatorTypes: []string{"malicious-activity"},
	}
}

func (e *STIXExporter) buildPattern(ioc domain.IOC) string {
	switch ioc.Type {
	case domain.IPAddress:
		return fmt.Sprintf("[ipv4-addr:value = '%s']", ioc.Value)
	case domain.Domain:
		return fmt.Sprintf("[domain-name:value = '%s']", ioc.Value)
	case domain.URL:
		return fmt.Sprintf("[url:value = '%s']", ioc.Value)
	case domain.Hash:
		return fmt.Sprintf("[file:hashes.'%s' = '%s']", detectHashType(ioc.Value), ioc.Value)
	default:
		return fmt.Sprintf("[x-custom:value = '%s']", ioc.Value)
	}
}

// detectHashType maps digest length to the algorithm name STIX expects.
func detectHashType(hash string) string {
	switch len(hash) {
	case 32:
		return "MD5"
	case 40:
		return "SHA-1"
	case 64:
		return "SHA-256"
	default:
		return "SHA-256" // default
	}
}

// STIX 2.1 data structures

type STIXBundle struct {
	Type        string       `json:"type"`
	ID          string       `json:"id"`
	SpecVersion string       `json:"spec_version"`
	Objects     []STIXObject `json:"objects"`
}

type STIXObject struct {
	Type           string   `json:"type"`
	SpecVersion    string   `json:"spec_version"`
	ID             string   `json:"id"`
	Created        string   `json:"created"`
	Modified       string   `json:"modified"`
	Name           string   `json:"name"`
	Pattern        string   `json:"pattern"`
	PatternType    string   `json:"pattern_type"`
	ValidFrom      string   `json:"valid_from"`
	IndicatorTypes []string `json:"indicator_types"`
}
