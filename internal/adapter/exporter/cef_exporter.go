package exporter

import (
	"fmt"
	"strings"

	"github.com/hive-corporation/lookout/internal/core/domain"
)

// CEFExporter serializes extracted IOCs in Common Event Format.
type CEFExporter struct{}

func NewCEFExporter() *CEFExporter {
	return &CEFExporter{}
}

// Export generates one CEF line per indicator.
// Format: CEF:Version|Device Vendor|Device Product|Device Version|Signature ID|Name|Severity|Extension
func (e *CEFExporter) Export(iocs []domain.IOC) (string, error) {
	var output strings.Builder

	for _, ioc := range iocs {
		output.WriteString(e.formatCEF(ioc))
		output.WriteString("\n")
	}

	return output.String(), nil
}

func (e *CEFExporter) formatCEF(ioc domain.IOC) string {
	vendor := "Lookout"
	product := "IOCExtract"
	version := "1.0"
	signatureID := string(ioc.Type)
	name := fmt.Sprintf("%s IOC Detected", strings.ToUpper(string(ioc.Type)))
	severity := 5 // extraction carries no reputation signal, fixed mid-range

	extensions := []string{
		fmt.Sprintf("src=%s", escapeField(ioc.Value)),
		"cs1Label=IOCType",
		fmt.Sprintf("cs1=%s", escapeField(string(ioc.Type))),
	}

	return fmt.Sprintf("CEF:0|%s|%s|%s|%s|%s|%d|%s",
		vendor, product, version, signatureID, name, severity, strings.Join(extensions, " "))
}

func escapeField(s string) string {
	// Escape special characters in CEF fields
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "=", "\\=")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	return s
}
