package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hive-corporation/lookout/internal/adapter/exporter"
	"github.com/hive-corporation/lookout/internal/core/domain"
)

type RestHandler struct {
	cefExporter  *exporter.CEFExporter
	stixExporter *exporter.STIXExporter
}

func NewRestHandler() *RestHandler {
	return &RestHandler{
		cefExporter:  exporter.NewCEFExporter(),
		stixExporter: exporter.NewSTIXExporter(),
	}
}

// Health check endpoint
func (h *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "lookout-api",
	}
	writeJSON(w, http.StatusOK, response)
}

// Extract runs the IOC extractor over the posted text and returns the
// classified indicators. Empty text is a valid request with an empty result.
func (h *RestHandler) Extract(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeExtractRequest(w, r)
	if !ok {
		return
	}

	timer := StartTimer()
	iocs := domain.Extract(req.Text)
	timer.ObserveDuration()

	RecordExtraction(len(req.Text), iocs)

	records := make([]IOCRecord, 0, iocs.Len())
	for _, ioc := range iocs.Values() {
		records = append(records, IOCRecord{
			Type:  string(ioc.Type),
			Value: ioc.Value,
		})
	}

	response := ExtractResponse{
		ScanID: uuid.New().String(),
		Count:  len(records),
		IOCs:   records,
	}
	writeJSON(w, http.StatusOK, response)
}

// ExtractExport extracts IOCs and serializes them as a SIEM feed.
func (h *RestHandler) ExtractExport(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeExtractRequest(w, r)
	if !ok {
		return
	}

	timer := StartTimer()
	iocs := domain.Extract(req.Text)
	timer.ObserveDuration()

	RecordExtraction(len(req.Text), iocs)

	format := r.URL.Query().Get("format")
	switch format {
	case "cef":
		data, err := h.cefExporter.Export(iocs.Values())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to export CEF feed")
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(data)); err != nil {
			log.Printf("Error writing CEF response: %v", err)
		}

	case "stix":
		data, err := h.stixExporter.Export(iocs.Values())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to export STIX feed")
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(data)); err != nil {
			log.Printf("Error writing STIX response: %v", err)
		}

	default:
		writeError(w, http.StatusBadRequest, "unsupported format (use 'cef' or 'stix')")
	}
}

// Helper functions

func decodeExtractRequest(w http.ResponseWriter, r *http.Request) (ExtractRequest, bool) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RecordRejectedRequest("invalid_payload")
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return ExtractRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// Request/response payloads

type ExtractRequest struct {
	Text string `json:"text"`
}

type IOCRecord struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type ExtractResponse struct {
	ScanID string      `json:"scan_id"`
	Count  int         `json:"count"`
	IOCs   []IOCRecord `json:"iocs"`
}
