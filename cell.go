package weft

import (
	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"
)

// CellKind tags which variant of the Cell sum type a value holds.
type CellKind uint8

const (
	// CellChar is a glyph cell carrying grapheme contents.
	CellChar CellKind = iota
	// CellContinuation is the right half of a preceding double-wide glyph.
	CellContinuation
)

// Cell is a single grid position: either a glyph cell with grapheme
// contents, a double-wide flag and a style, or a continuation sentinel
// standing in for the right half of the glyph to its left.
type Cell struct {
	Kind     CellKind
	Contents string
	Double   bool
	Style    Style
}

// BlankCell is the value every empty grid position holds.
func BlankCell() Cell {
	return Cell{Kind: CellChar, Contents: " ", Style: DefaultStyle()}
}

// NewCharCell builds a glyph cell.
func NewCharCell(contents string, double bool, style Style) Cell {
	return Cell{Kind: CellChar, Contents: contents, Double: double, Style: style}
}

// ContinuationCell builds a continuation sentinel.
func ContinuationCell() Cell {
	return Cell{Kind: CellContinuation}
}

// Equal reports structural equality of kind, contents, double flag and
// style.
func (c Cell) Equal(other Cell) bool {
	if c.Kind != other.Kind {
		return false
	}
	if c.Kind == CellContinuation {
		return true
	}
	return c.Contents == other.Contents && c.Double == other.Double && c.Style.Equal(other.Style)
}

// widthFunc is the active WidthOracle. New resets it to defaultWidthOracle
// or a Config-supplied override each time a Terminal is constructed,
// answering spec §9's "implementations may offer a configurable width
// oracle."
var widthFunc WidthOracle = defaultWidthOracle

// defaultWidthOracle measures the display width of a single grapheme
// cluster, folding fullwidth/halfwidth variants first so CJK punctuation
// measures consistently, then asking go-runewidth for the column count.
func defaultWidthOracle(cluster string) int {
	folded := width.Narrow.String(cluster)
	if folded == "" {
		folded = cluster
	}
	return runewidth.StringWidth(folded)
}

// graphemeWidth measures cluster's display width via the active
// WidthOracle.
func graphemeWidth(cluster string) int {
	return widthFunc(cluster)
}

// splitGraphemes breaks s into grapheme clusters using uniseg, matching the
// unit a Cell's Contents field is measured in.
func splitGraphemes(s string) []string {
	var clusters []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if cluster == "" {
			break
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

// isControl reports whether cluster is a control character (or the CR LF
// pair, which segments as one cluster) that the grid silently drops rather
// than writing.
func isControl(cluster string) bool {
	if len(cluster) == 0 {
		return true
	}
	r := []rune(cluster)
	if r[0] < 0x20 || r[0] == 0x7f {
		return true
	}
	return false
}
