package vgmdb

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDocument(t *testing.T, htmlContent string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		t.Fatalf("failed to parse test document: %v", err)
	}
	return doc
}

// testPanel describes one language panel for trackListHTML.
type testPanel struct {
	id       string
	language string
	discs    []testDisc
}

type testDisc struct {
	title  string
	tracks []string
}

// trackListHTML renders a navigation list and one .tl panel per testPanel
// the way VGMdb lays them out.
func trackListHTML(panels ...testPanel) string {
	var sb strings.Builder

	sb.WriteString(`<ul id="tlnav">`)
	for _, p := range panels {
		fmt.Fprintf(&sb, `<li><a rel="%s">%s</a></li>`, p.id, p.language)
	}
	sb.WriteString(`</ul>`)

	sb.WriteString(`<div id="tracklist">`)
	for _, p := range panels {
		fmt.Fprintf(&sb, `<span class="tl" id="%s">`, p.id)
		for _, d := range p.discs {
			fmt.Fprintf(&sb, `<span style="font-size:8pt"><b>%s</b></span><br>`, d.title)
			sb.WriteString(`<table class="role" width="100%">`)
			for i, track := range d.tracks {
				fmt.Fprintf(&sb, `<tr class="rolebit"><td class="smallfont"><span class="label">%d</span></td><td class="smallfont" width="100%%"> %s </td><td>1:00</td></tr>`, i+1, track)
			}
			sb.WriteString(`</table><br>`)
		}
		sb.WriteString(`</span>`)
	}
	sb.WriteString(`</div>`)

	return sb.String()
}
