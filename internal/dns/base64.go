package dns

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// FormatBase64Block renders b as base64 split into lines of width characters,
// each prefixed with indent. When closeParen is set the block is terminated
// with " )" to close a multi-line record opened with "(", otherwise each line
// ends in a newline.
func FormatBase64Block(b []byte, width int, indent string, closeParen bool) string {
	enc := base64.StdEncoding.EncodeToString(b)
	if width <= 0 {
		width = len(enc)
	}

	var sb strings.Builder
	if enc == "" {
		if closeParen {
			sb.WriteString(indent)
			sb.WriteString(")")
		}
		return sb.String()
	}
	for i := 0; i < len(enc); i += width {
		end := min(i+width, len(enc))
		sb.WriteString(indent)
		sb.WriteString(enc[i:end])
		if end == len(enc) && closeParen {
			sb.WriteString(" )")
		} else {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// DecodeBase64Tokens concatenates whitespace-separated base64 tokens and decodes them.
func DecodeBase64Tokens(tokens []string) ([]byte, error) {
	joined := strings.Join(tokens, "")
	b, err := base64.StdEncoding.DecodeString(joined)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return b, nil
}
