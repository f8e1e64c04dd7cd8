package decode

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// JSONLResult — статистика проверки потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// ValidateFile — прогоняет файл (JSON или JSONL) через DecodeMedia и пишет канонические записи в writer.
// Возвращает сводку вида "N valid / M invalid".
func ValidateFile(ctx context.Context, filePath string, format InputFormat, ow io.Writer) (string, error) {
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		default:
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		media, err := DecodeMedia(raw)
		if err != nil {
			return "0 valid / 1 invalid", err
		}
		if err := writeCanonical(ow, media); err != nil {
			return "", err
		}
		return "1 valid / 0 invalid", nil

	case FormatJSONL:
		res, err := ValidateJSONLStream(ctx, file, ow)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount), nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// ValidateJSONLStream — декодирует каждую непустую строку, валидные пишет одной строкой в writer.
// Невалидные строки только считаются.
func ValidateJSONLStream(ctx context.Context, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}

		media, err := DecodeMedia(line)
		if err != nil {
			res.InvalidLinesCount++
			continue
		}
		if err := writeCanonical(ow, media); err != nil {
			return res, err
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

func writeCanonical(ow io.Writer, v any) error {
	out, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	out = append(out, '\n')
	if _, err := ow.Write(out); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
