package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/gamestats"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/normalize"
)

// ExtractReferees reads the officials section. Lower-division pages often
// omit it; nil means "no referees recorded", not an error.
func ExtractReferees(doc *goquery.Document) []gamestats.Referee {
	section := doc.Find("#referees")
	if section.Length() == 0 {
		return nil
	}

	var referees []gamestats.Referee
	section.Find(".referee").Each(func(_ int, sel *goquery.Selection) {
		name := normalize.Fold(sel.Text())
		if name != "" {
			referees = append(referees, gamestats.Referee{Name: name})
		}
	})
	if len(referees) == 0 {
		return nil
	}
	return referees
}

// ExtractLocation reads the optional venue block: a name, usually wrapped in
// a link to an external map. Nil when the page has no location.
func ExtractLocation(doc *goquery.Document) *gamestats.Location {
	section := doc.Find("#location")
	if section.Length() == 0 {
		return nil
	}

	location := &gamestats.Location{}
	if link := section.Find("a").First(); link.Length() > 0 {
		location.Name = strings.TrimSpace(link.Text())
		location.MapsLink = link.AttrOr("href", "")
	} else {
		location.Name = strings.TrimSpace(section.Text())
	}
	if location.Name == "" {
		return nil
	}
	return location
}
