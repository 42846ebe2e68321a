package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

// TestEvent corresponds to a single line of `go test -json` output. Only
// the fields needed to recover the plain benchmark text are decoded.
type TestEvent struct {
	Action string `json:"Action"`
	Output string `json:"Output,omitempty"`
}

// bench2txt filters a `go test -json -bench` stream back into the plain
// text format that benchstat and similar tools consume:
//
//	go test -json -bench . ./benchmarks | bench2txt > new.txt
func main() {
	dec := json.NewDecoder(os.Stdin)

	for {
		var event TestEvent
		if err := dec.Decode(&event); err != nil {
			if err == io.EOF {
				break
			}
			log.Fatalf("decoding test event: %v", err)
		}

		// Benchmark lines arrive as "output" actions with the newline
		// already attached.
		if event.Action == "output" {
			fmt.Print(event.Output)
		}
	}
}
