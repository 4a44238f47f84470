package preview

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/CptPotato/gex/internal/log"
)

// Loader produces preview lines for expanded entries. The file is read
// from disk on every call: previews are never cached, so what is shown
// always reflects the file as it is right now.
type Loader struct {
	MaxLines int    // Cap on preview lines, 0 for unlimited.
	Style    string // Chroma style name for highlighting.
}

// sniffLen bounds how much of the file is examined for binary content.
const sniffLen = 8192

// Lines returns the preview for the file at rel under root, one string
// per line, syntax-highlighted when a lexer matches the file name.
// Any failure (missing file, permission, binary content) yields nil:
// the entry simply shows no preview.
func (l Loader) Lines(root, rel string) []string {
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		log.Printf("preview %s: %v", rel, err)
		return nil
	}
	if looksBinary(data) {
		return nil
	}

	lines := strings.Split(string(data), "\n")
	// A trailing newline is a line terminator, not an empty last line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		lines[i] = strings.ReplaceAll(line, "\t", "    ")
	}

	var trailer string
	if l.MaxLines > 0 && len(lines) > l.MaxLines {
		trailer = fmt.Sprintf("… (+%d more lines)", len(lines)-l.MaxLines)
		lines = lines[:l.MaxLines]
	}

	lines = highlight(lines, rel, l.Style)
	if trailer != "" {
		lines = append(lines, trailer)
	}
	return lines
}

// looksBinary reports whether the data starts with a NUL byte within
// the sniff window, the same heuristic git uses for binary detection.
func looksBinary(data []byte) bool {
	n := len(data)
	if n > sniffLen {
		n = sniffLen
	}
	return bytes.IndexByte(data[:n], 0) >= 0
}

// highlight runs each line through chroma independently so ANSI state
// never bleeds from one row into the next. Files with no matching
// lexer come back unchanged.
func highlight(lines []string, filename, styleName string) []string {
	lexer := lexers.Match(filepath.Base(filename))
	if lexer == nil {
		return lines
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
			continue
		}
		iterator, err := lexer.Tokenise(nil, line)
		if err != nil {
			out[i] = line
			continue
		}
		var buf bytes.Buffer
		if err := formatter.Format(&buf, style, iterator); err != nil {
			out[i] = line
			continue
		}
		h := buf.String()
		h = strings.TrimSuffix(h, "\033[0m")
		h = strings.TrimSuffix(h, "\n")
		h = strings.ReplaceAll(h, "\n", "")
		out[i] = h + "\033[0m"
	}
	return out
}
