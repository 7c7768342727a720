package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/benshabbat/receipt-scanner/internal/catalog"
	"github.com/benshabbat/receipt-scanner/internal/engine"
	"github.com/benshabbat/receipt-scanner/internal/export"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		in          = flag.String("in", "", "OCR text file to parse (default: stdin)")
		out         = flag.String("out", "", "write the parsed receipt as XLSX to this path")
		maxPrice    = flag.Float64("max-price", 0, "per-item price ceiling override")
		catalogPath = flag.String("catalog", "", "JSON catalog override file")
		verbose     = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	var raw []byte
	var err error
	if *in != "" {
		raw, err = os.ReadFile(*in)
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		printError("Error: read input: %v\n", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		if cat, err = catalog.LoadFile(*catalogPath); err != nil {
			printError("Error: load catalog: %v\n", err)
			os.Exit(1)
		}
	}

	eng := engine.New(engine.Config{}, cat, logger)
	rec, err := eng.ParseWithBounds(string(raw), *maxPrice)
	if err != nil {
		printError("Error: parse: %v\n", err)
		os.Exit(1)
	}

	encoded, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		printError("Error: encode receipt: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))

	if *out != "" {
		data, err := export.NewService("Receipt", logger).ReceiptXLSX(rec)
		if err != nil {
			printError("Error: export: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			printError("Error: write %s: %v\n", *out, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s (%d bytes)\n", *out, len(data))
	}
}
