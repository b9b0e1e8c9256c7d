package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hive-corporation/lookout/internal/core/domain"
)

// lookout scans text for indicators of compromise and prints them as a
// single JSON line. The text comes from the first positional argument or,
// when absent, from standard input.
func main() {
	flag.Parse()

	var text string
	if flag.NArg() > 0 {
		text = flag.Arg(0)
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("❌ error reading stdin: %v", err)
		}
		text = string(data)
	}

	iocs := domain.Extract(text)

	records := make([]record, 0, iocs.Len())
	for _, ioc := range iocs.Values() {
		records = append(records, record{Type: string(ioc.Type), Value: ioc.Value})
	}

	output, err := json.Marshal(records)
	if err != nil {
		log.Fatalf("❌ error encoding results: %v", err)
	}

	fmt.Println(string(output))
}

type record struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}
