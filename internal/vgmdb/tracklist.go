package vgmdb

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/handiism/vgmdb-tagger/internal/model"
)

// Selectors for the track list region. These mirror VGMdb's markup and are
// not configurable.
const (
	selTrackListNav = "#tlnav"
	selTrackList    = "#tracklist"
	selPanel        = ".tl"
	selDiscMarker   = `[style="font-size:8pt"] b`
	selTrackName    = `td[width="100%"]`
)

// panel is one language rendering of the track list.
type panel struct {
	language string
	discs    []panelDisc
}

type panelDisc struct {
	title  string
	tracks []string
}

// AlignTrackList extracts every language panel of the track list and merges
// them into one disc sequence.
//
// The navigation list maps panel ids to language labels:
//
//	<ul id="tlnav"><li><a rel="tl1">Japanese</a></li><li><a rel="tl2">English</a></li></ul>
//	<div id="tracklist">
//	  <span class="tl" id="tl1">
//	    <span style="font-size:8pt"><b>Disc 1</b></span> ...
//	    <table><tr><td>1</td><td width="100%">Track</td></tr></table>
//	  </span>
//	</div>
//
// Panels are merged with mergePanel in document order.
//
// Returns:
//   - ErrMissingStructure if the navigation, the track list, a disc's
//     table or a track name cell is missing
//   - ErrUnresolvedLanguage if a panel id has no navigation entry
func AlignTrackList(doc *goquery.Document) ([]model.Disc, error) {
	nav := doc.Find(selTrackListNav).First()
	if nav.Length() == 0 {
		return nil, fmt.Errorf("%w: track list navigation", ErrMissingStructure)
	}
	list := doc.Find(selTrackList).First()
	if list.Length() == 0 {
		return nil, fmt.Errorf("%w: track list", ErrMissingStructure)
	}

	var discs []model.Disc
	var err error
	list.Find(selPanel).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		var p panel
		p, err = parsePanel(nav, sel)
		if err != nil {
			return false
		}
		discs = mergePanel(discs, p)
		return true
	})
	if err != nil {
		return nil, err
	}

	return discs, nil
}

// mergePanel folds one language panel into the established disc sequence.
//
// When discs is empty the panel establishes it: one Disc per panel disc,
// every track name wrapped in a fresh MultiLanguageString. Otherwise the
// panel is zipped against discs by position, disc by disc and track by
// track, and the shorter side wins. Established tracks with no counterpart
// in the panel do not receive the panel's language; surplus panel entries
// are dropped. The panel's disc titles are discarded.
func mergePanel(discs []model.Disc, p panel) []model.Disc {
	if len(discs) == 0 {
		discs = make([]model.Disc, 0, len(p.discs))
		for _, pd := range p.discs {
			disc := model.Disc{Title: pd.title, Tracks: make([]model.Track, 0, len(pd.tracks))}
			for _, name := range pd.tracks {
				disc.Tracks = append(disc.Tracks, model.Track{
					Name: model.MultiLanguageString{p.language: name},
				})
			}
			discs = append(discs, disc)
		}
		return discs
	}

	for i := 0; i < len(discs) && i < len(p.discs); i++ {
		tracks := discs[i].Tracks
		names := p.discs[i].tracks
		for j := 0; j < len(tracks) && j < len(names); j++ {
			tracks[j].Name.Insert(p.language, names[j])
		}
	}
	return discs
}

// parsePanel resolves the panel's language and reads its discs.
func parsePanel(nav, sel *goquery.Selection) (panel, error) {
	ref, _ := sel.Attr("id")
	language, err := resolveLanguage(nav, ref)
	if err != nil {
		return panel{}, err
	}

	p := panel{language: language}
	var markerErr error
	sel.Find(selDiscMarker).EachWithBreak(func(_ int, marker *goquery.Selection) bool {
		table, err := discTable(marker)
		if err != nil {
			markerErr = err
			return false
		}

		disc := panelDisc{title: marker.Text()}
		table.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
			cell := row.Find(selTrackName).First()
			if cell.Length() == 0 {
				markerErr = fmt.Errorf("%w: track name cell in %q (%s)", ErrMissingStructure, disc.title, language)
				return false
			}
			disc.tracks = append(disc.tracks, strings.TrimSpace(cell.Text()))
			return true
		})
		if markerErr != nil {
			return false
		}

		p.discs = append(p.discs, disc)
		return true
	})
	if markerErr != nil {
		return panel{}, markerErr
	}

	return p, nil
}

// resolveLanguage finds the navigation entry whose rel equals ref.
func resolveLanguage(nav *goquery.Selection, ref string) (string, error) {
	if ref != "" {
		entry := nav.Find("[rel]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			rel, _ := s.Attr("rel")
			return rel == ref
		}).First()
		if entry.Length() > 0 {
			return entry.Text(), nil
		}
	}
	return "", fmt.Errorf("%w: panel %q", ErrUnresolvedLanguage, ref)
}

// discTable returns the first table among the following siblings of the
// marker's parent.
func discTable(marker *goquery.Selection) (*goquery.Selection, error) {
	siblings := marker.Parent().NextAll()
	for i := 0; i < siblings.Length(); i++ {
		if s := siblings.Eq(i); goquery.NodeName(s) == "table" {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: table for disc %q", ErrMissingStructure, marker.Text())
}
