package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/media_consumer/pkg/decode"
)

// CLI-приложение: прогоняет payload'ы сообщений через декодер записей.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	format := decode.InputFormat(*formatStr)

	path := *inputPath
	// stdin вариант: считаем, что jsonl
	if path == "" {
		path = "/dev/stdin"
		if format == decode.FormatAuto {
			format = decode.FormatJSONL
		}
	}

	summary, err := decode.ValidateFile(context.Background(), path, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation ok (%s)\n", summary)
}
