package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hive-corporation/lookout/internal/adapter/exporter"
	"github.com/hive-corporation/lookout/internal/adapter/source"
	"github.com/hive-corporation/lookout/internal/core/domain"
	"github.com/hive-corporation/lookout/internal/core/ports"
)

// scanner extracts IOCs from a batch of local report files and writes the
// union as a json, stix or cef feed.
func main() {
	dir := flag.String("dir", "", "Directory of report files to scan")
	out := flag.String("out", "", "Output file (default: stdout)")
	format := flag.String("format", "json", "Output format: json, stix or cef")
	timeout := flag.Duration("timeout", time.Minute, "Overall scan timeout")
	flag.Parse()

	paths := flag.Args()
	if *dir != "" {
		entries, err := os.ReadDir(*dir)
		if err != nil {
			log.Fatalf("❌ Error reading directory %s: %v", *dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			paths = append(paths, filepath.Join(*dir, entry.Name()))
		}
	}

	if len(paths) == 0 {
		log.Fatalf("❌ No reports to scan (pass file paths or -dir)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sources := make([]ports.ReportSource, 0, len(paths))
	for _, path := range paths {
		sources = append(sources, source.NewFileSource(path))
	}

	iocChannel := make(chan domain.IOC, 2000)
	var wg sync.WaitGroup

	log.Printf("🚀 Scanning %d reports...", len(sources))
	for _, src := range sources {
		wg.Add(1)
		go func(s ports.ReportSource) {
			defer wg.Done()

			text, err := s.Fetch(ctx)
			if err != nil {
				log.Printf("❌ Failed to read report %s: %v", s.Name(), err)
				return
			}

			iocs := domain.Extract(text)
			log.Printf("✅ %s yielded %d IOCs", s.Name(), iocs.Len())

			for _, ioc := range iocs.Values() {
				select {
				case iocChannel <- ioc:
				case <-ctx.Done():
					return // Abort on timeout
				}
			}
		}(src)
	}

	go func() {
		wg.Wait()
		close(iocChannel)
	}()

	// Union of all per-report extractions.
	results := domain.NewSet()
	for ioc := range iocChannel {
		results.Add(ioc)
	}

	output, err := render(results.Values(), *format)
	if err != nil {
		log.Fatalf("❌ Error rendering results: %v", err)
	}

	if *out == "" {
		fmt.Print(output)
	} else {
		if err := os.WriteFile(*out, []byte(output), 0o644); err != nil {
			log.Fatalf("❌ Error writing %s: %v", *out, err)
		}
		log.Printf("💾 Feed written to %s", *out)
	}

	log.Printf("🏁 Scan finished: %d unique IOCs from %d reports", results.Len(), len(sources))
}

func render(iocs []domain.IOC, format string) (string, error) {
	var feed ports.FeedExporter
	switch format {
	case "stix":
		feed = exporter.NewSTIXExporter()
	case "cef":
		feed = exporter.NewCEFExporter()
	case "json":
		records := make([]jsonRecord, 0, len(iocs))
		for _, ioc := range iocs {
			records = append(records, jsonRecord{Type: string(ioc.Type), Value: ioc.Value})
		}
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal results: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format %q (use json, stix or cef)", format)
	}
	return feed.Export(iocs)
}

type jsonRecord struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
