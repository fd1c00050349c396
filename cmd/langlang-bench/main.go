// Command langlang-bench parses a JSON file with this module's
// combinator-built grammar and, for comparison, walks it with
// github.com/buger/jsonparser's streaming scanner, reporting how long
// each took.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/buger/jsonparser"
	"github.com/s-leroux/Pegparse/internal/jsongrammar"
)

func main() {
	path := flag.String("file", "", "Path to a JSON file to parse")
	flag.Parse()

	if *path == "" {
		log.Fatal("missing -file")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("can't read %s: %s", *path, err)
	}

	grammarElapsed, grammarOK := runGrammar(string(data))
	scannerElapsed, scannerErr := runScanner(data)

	fmt.Printf("pegparse grammar : %v (ok=%v)\n", grammarElapsed, grammarOK)
	if scannerErr != nil {
		fmt.Printf("jsonparser scan  : error: %s\n", scannerErr)
	} else {
		fmt.Printf("jsonparser scan  : %v\n", scannerElapsed)
	}
}

func runGrammar(input string) (time.Duration, bool) {
	start := time.Now()
	_, ok, err := jsongrammar.Parse(input)
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("pegparse grammar failed: %s", err)
	}
	return elapsed, ok
}

// runScanner walks every value of a top-level JSON object with
// jsonparser's zero-allocation streaming API, the closest peer in the
// pack to a hand-rolled byte-level PEG VM.
func runScanner(data []byte) (time.Duration, error) {
	start := time.Now()
	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, offset int) error {
		return nil
	})
	return time.Since(start), err
}
