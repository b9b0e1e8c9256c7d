package ports

import (
	"context"

	"github.com/hive-corporation/lookout/internal/core/domain"
)

// ReportSource supplies one report text blob to scan. Sources are local by
// design; nothing in the scan path touches the network.
type ReportSource interface {
	Fetch(ctx context.Context) (string, error)
	Name() string
}

// FeedExporter serializes extracted indicators into a SIEM-ingestible feed.
type FeedExporter interface {
	Export(iocs []domain.IOC) (string, error)
}
