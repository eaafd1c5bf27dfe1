package grapheme

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// First returns the first grapheme cluster of text, or "".
func First(text string) string {
	if text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	if !g.Next() {
		return ""
	}
	return g.Str()
}

// Last returns the last grapheme cluster of text, or "".
func Last(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return ""
	}
	return clusters[len(clusters)-1]
}

// DropLast removes the trailing grapheme cluster from text.
func DropLast(text string) string {
	clusters := Split(text)
	if len(clusters) == 0 {
		return ""
	}
	return Join(clusters[:len(clusters)-1])
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Printable returns the grapheme clusters of text that can occupy a box:
// whitespace and control clusters are dropped.
func Printable(text string) []string {
	clusters := Split(text)
	out := clusters[:0]
	for _, c := range clusters {
		if IsSpace(c) || isControl(c) {
			continue
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func isControl(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsControl(r) {
			return false
		}
	}
	return true
}
