package vgmdb

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/handiism/vgmdb-tagger/internal/model"
)

// ExtractTitle collects the language spans of a title container.
//
// VGMdb wraps each rendering of a title in a span like:
//
//	<span class="albumtitle" lang="ja">タイトル<em>*</em></span>
//
// Text inside <em> elements is an annotation marker and is skipped at any
// depth. Spans without a lang attribute are ignored. An empty or nil
// container yields an empty map.
func ExtractTitle(container *goquery.Selection) model.MultiLanguageString {
	title := model.MultiLanguageString{}
	if container == nil {
		return title
	}

	container.Find(".albumtitle[lang]").Each(func(_ int, span *goquery.Selection) {
		lang, _ := span.Attr("lang")
		var sb strings.Builder
		for _, n := range span.Nodes {
			collectText(n, &sb)
		}
		title.Insert(lang, sb.String())
	})

	return title
}

// collectText appends the text below n, skipping <em> subtrees.
func collectText(n *html.Node, sb *strings.Builder) {
	switch {
	case n.Type == html.TextNode:
		sb.WriteString(n.Data)
		return
	case n.Type == html.ElementNode && n.Data == "em":
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
