package tui

import (
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// HighlightSpan styles the rune columns [StartCol, EndCol) of one line.
type HighlightSpan struct {
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

// Highlighter colours one line at a time. Spans out of range are clipped
// and overlapping spans after the first are dropped.
type Highlighter interface {
	HighlightLine(row int, text string) ([]HighlightSpan, error)
}

// ChromaHighlighter highlights with a chroma lexer chosen by file name.
type ChromaHighlighter struct {
	lexer chroma.Lexer
	style *chroma.Style
}

// NewChromaHighlighter picks a lexer for filename and the named chroma
// style. It returns nil when no lexer matches, which disables highlighting.
func NewChromaHighlighter(filename, styleName string) *ChromaHighlighter {
	lexer := lexers.Match(filename)
	if lexer == nil {
		return nil
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &ChromaHighlighter{lexer: chroma.Coalesce(lexer), style: style}
}

// HighlightLine lexes text on its own, so constructs spanning lines are
// coloured per line.
func (h *ChromaHighlighter) HighlightLine(_ int, text string) ([]HighlightSpan, error) {
	it, err := h.lexer.Tokenise(nil, text)
	if err != nil {
		return nil, err
	}

	lineLen := len([]rune(text))
	var spans []HighlightSpan
	col := 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		start := col
		col += len([]rune(tok.Value))
		if start >= lineLen {
			break
		}
		entry := h.style.Get(tok.Type)
		if !entry.Colour.IsSet() {
			continue
		}
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			st = st.Bold(true)
		}
		if entry.Italic == chroma.Yes {
			st = st.Italic(true)
		}
		spans = append(spans, HighlightSpan{StartCol: start, EndCol: min(col, lineLen), Style: st})
	}
	return spans, nil
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := min(max(sp.StartCol, 0), lineLen)
		end := min(max(sp.EndCol, 0), lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol < out[j].EndCol
	})

	merged := out[:0]
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func spanAt(spans []HighlightSpan, col int) (lipgloss.Style, bool) {
	i := sort.Search(len(spans), func(i int) bool { return spans[i].EndCol > col })
	if i < len(spans) && spans[i].StartCol <= col {
		return spans[i].Style, true
	}
	return lipgloss.Style{}, false
}
