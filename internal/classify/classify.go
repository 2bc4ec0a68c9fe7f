// Package classify turns raw game-log lines into typed events. Lines are
// matched against an ordered catalog of categories; each category carries
// per-locale regular expressions and a builder that fills the event from the
// match groups. The first matching category wins, and within a category the
// first matching locale pattern wins, so precedence is fully defined by
// catalog order.
package classify

import (
	"regexp"
	"strings"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/gamestats"
)

// Context carries the per-game facts a builder needs, mainly which short
// team code is the home side.
type Context struct {
	HomeTeamShort string
	AwayTeamShort string
}

// IsHome reports whether a team code scraped from a log line refers to the
// home side. Log lines abbreviate multi-word codes to their first token, so
// a prefix match is accepted.
func (c Context) IsHome(team string) bool {
	t := strings.TrimSpace(team)
	if t == "" || c.HomeTeamShort == "" {
		return false
	}
	return t == c.HomeTeamShort || strings.HasPrefix(c.HomeTeamShort, t)
}

type builderFunc func(groups []string, ctx Context) gamestats.GameEvent

type localePattern struct {
	locale string
	re     *regexp.Regexp
}

// Category is one entry of the decision list.
type Category struct {
	Name     string
	patterns []localePattern
	build    builderFunc
}

// Classifier matches raw event text against an ordered category list. It is
// read-only after construction and safe to share across games.
type Classifier struct {
	categories []Category
}

// NewClassifier builds a classifier over the given catalog. Use
// DefaultCatalog for the built-in patterns.
func NewClassifier(catalog []Category) *Classifier {
	return &Classifier{categories: catalog}
}

// Classify matches rawText against the catalog. The returned event carries
// the action, actor, team and any advantage change the category derives; the
// caller merges in row-level fields (time, quarter, score). ok is false when
// no category matched, in which case an Unknown event is returned so batch
// processing can continue.
func (c *Classifier) Classify(rawText string, ctx Context) (gamestats.GameEvent, bool) {
	text := strings.TrimSpace(rawText)
	for _, cat := range c.categories {
		for _, lp := range cat.patterns {
			m := lp.re.FindStringSubmatch(text)
			if m == nil {
				continue
			}
			event := cat.build(m, ctx)
			event.RawText = rawText
			return event, true
		}
	}
	return gamestats.GameEvent{
		RawText: rawText,
		Action:  "Unknown",
		Actor:   gamestats.UnknownActor(),
		Team:    "Unknown",
	}, false
}
