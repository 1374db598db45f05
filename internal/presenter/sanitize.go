package presenter

import (
	"html/template"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// summaryTags are the elements kept when rendering catalog summaries. Attributes are always dropped.
var summaryTags = map[atom.Atom]bool{
	atom.P:      true,
	atom.B:      true,
	atom.I:      true,
	atom.U:      true,
	atom.Em:     true,
	atom.Strong: true,
	atom.Br:     true,
}

// SanitizeSummary renders summary markup keeping only simple formatting tags.
// Text is escaped, script and style content is dropped, and tags left open are closed.
func SanitizeSummary(raw string) template.HTML {
	var (
		out  strings.Builder
		open []string
		skip int
	)

	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		tok := z.Token()

		switch tt {
		case html.TextToken:
			if skip == 0 {
				out.WriteString(html.EscapeString(tok.Data))
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			if tok.DataAtom == atom.Script || tok.DataAtom == atom.Style {
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			if !summaryTags[tok.DataAtom] || skip > 0 {
				continue
			}
			if tok.DataAtom == atom.Br {
				out.WriteString("<br>")
				continue
			}
			out.WriteString("<" + tok.Data + ">")
			open = append(open, tok.Data)
		case html.EndTagToken:
			if tok.DataAtom == atom.Script || tok.DataAtom == atom.Style {
				if skip > 0 {
					skip--
				}
				continue
			}
			if len(open) > 0 && open[len(open)-1] == tok.Data {
				out.WriteString("</" + tok.Data + ">")
				open = open[:len(open)-1]
			}
		}
	}

	for i := len(open) - 1; i >= 0; i-- {
		out.WriteString("</" + open[i] + ">")
	}

	return template.HTML(out.String()) //nolint:gosec // built from an allowlist above
}
