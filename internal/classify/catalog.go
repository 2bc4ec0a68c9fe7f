package classify

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/gamestats"
)

// Category names. Catalog files refer to these; each name is bound to a
// fixed builder because the group semantics are part of the taxonomy.
const (
	CatStartingLineupAdded       = "StartingLineupAdded"
	CatPointsAdded               = "PointsAdded"
	CatFoulAdded                 = "FoulAdded"
	CatFoulDeleted               = "FoulDeleted"
	CatPointsDeleted             = "PointsDeleted"
	CatLastPointsDifferentPlayer = "LastPointsForDifferentPlayer"
	CatPlayerInQuarter           = "PlayerInQuarter"
	CatPlayerInQuarterDeleted    = "PlayerInQuarterDeleted"
	CatPlayerAdded               = "PlayerAdded"
	CatChangeOfLicenseNumber     = "ChangeOfLicenseNumber"
	CatTimeoutAdded              = "TimeoutAdded"
	CatTimeoutDeleted            = "TimeoutDeleted"
	CatTimeoutLost               = "TimeoutLost"
	CatDeletedFromStartingLineup = "DeletedFromStartingLineup"
	CatSignalEndOfGame           = "SignalEndOfGame"
	CatOther                     = "Other"
)

// Team codes in log lines are a single unbroken uppercase token.
const teamCode = `([A-Z0-9.\-']+)`

// defaultPatterns holds the built-in per-locale regexes in precedence order.
// The FLBB live pages log in English or French depending on the table
// official, so every run carries both locales.
var defaultPatterns = []struct {
	category string
	patterns map[string]string
}{
	{CatStartingLineupAdded, map[string]string{
		"en": `^Starting five added:?\s+(.+?)\s+\((.+)\)$`,
		"fr": `^Cinq de base ajoute:?\s+(.+?)\s+\((.+)\)$`,
	}},
	{CatPointsAdded, map[string]string{
		"en": `^([123])P\s+(.+?)\s+` + teamCode + `$`,
	}},
	{CatFoulAdded, map[string]string{
		"en": `^(P[123]|T1|U[12]|D)\s+(.+?)\s+` + teamCode + `$`,
	}},
	{CatFoulDeleted, map[string]string{
		"en": `^Deleted\s+(P[123]|T1|U[12]|D)\s+(.+?)\s+` + teamCode + `$`,
		"fr": `^Faute supprimee\s+(P[123]|T1|U[12]|D)\s+(.+?)\s+` + teamCode + `$`,
	}},
	{CatPointsDeleted, map[string]string{
		"en": `^Deleted\s+([123])P\s+(.+?)\s+` + teamCode + `$`,
		"fr": `^Points supprimes\s+([123])P\s+(.+?)\s+` + teamCode + `$`,
	}},
	{CatLastPointsDifferentPlayer, map[string]string{
		"en": `^Last points scored by\s+(.+?)\s+\((.+)\)$`,
		"fr": `^Derniers points marques par\s+(.+?)\s+\((.+)\)$`,
	}},
	{CatPlayerInQuarter, map[string]string{
		"en": `^Player in quarter\s+([1-4])\s+(.+?)\s+` + teamCode + `$`,
		"fr": `^Joueur entre au quart-temps\s+([1-4])\s+(.+?)\s+` + teamCode + `$`,
	}},
	{CatPlayerInQuarterDeleted, map[string]string{
		"en": `^Deleted player in quarter\s+([1-4])\s+(.+?)\s+` + teamCode + `$`,
		"fr": `^Joueur supprime du quart-temps\s+([1-4])\s+(.+?)\s+` + teamCode + `$`,
	}},
	{CatPlayerAdded, map[string]string{
		"en": `^Player added:?\s+(.+?)\s+\((.+)\)$`,
		"fr": `^Joueur ajoute:?\s+(.+?)\s+\((.+)\)$`,
	}},
	{CatChangeOfLicenseNumber, map[string]string{
		"en": `(?i)^change of licen[cs]e number\b.*$`,
		"fr": `(?i)^changement de (numero de )?licence\b.*$`,
	}},
	{CatTimeoutAdded, map[string]string{
		"en": `^Timeout\s+` + teamCode + `$`,
		"fr": `^Temps mort\s+` + teamCode + `$`,
	}},
	{CatTimeoutDeleted, map[string]string{
		"en": `^(Timeout) deleted\s+` + teamCode + `$`,
		"fr": `^(Temps mort) supprime\s+` + teamCode + `$`,
	}},
	{CatTimeoutLost, map[string]string{
		"en": `^(Timeout) lost\s+` + teamCode + `$`,
		"fr": `^(Temps mort) perdu\s+` + teamCode + `$`,
	}},
	{CatDeletedFromStartingLineup, map[string]string{
		"en": `^Deleted from starting five:?\s+(.+?)\s+\((.+)\)$`,
		"fr": `^Supprime du cinq de base:?\s+(.+?)\s+\((.+)\)$`,
	}},
	{CatSignalEndOfGame, map[string]string{
		"en": `(?i)^(?:signal )?end of (?:the )?game\b.*$`,
		"fr": `(?i)^fin du match\b.*$`,
	}},
	{CatOther, map[string]string{
		"en": `(?i)^(?:game started|quarter (?:started|ended)|score adjusted)\b.*$`,
		"fr": `(?i)^(?:debut du match|(?:debut|fin) du quart-temps)\b.*$`,
	}},
}

// builders binds category names to their event builders.
var builders = map[string]builderFunc{
	CatStartingLineupAdded:       playerEvent("Starting line-up added", 1, 2),
	CatPointsAdded:               buildPointsAdded,
	CatFoulAdded:                 buildFoulAdded,
	CatFoulDeleted:               buildFoulDeleted,
	CatPointsDeleted:             buildPointsDeleted,
	CatLastPointsDifferentPlayer: playerEvent("Last Points For Different Player", 1, 2),
	CatPlayerInQuarter:           buildPlayerInQuarter("Player in"),
	CatPlayerInQuarterDeleted:    buildPlayerInQuarter("Player in deleted"),
	CatPlayerAdded:               playerEvent("Player added", 1, 2),
	CatChangeOfLicenseNumber:     systemEvent("Change Of License Number"),
	CatTimeoutAdded:              coachEvent("Timeout", 1),
	CatTimeoutDeleted:            coachEvent("Timeout Deleted", 2),
	CatTimeoutLost:               coachEvent("Timeout Lost", 2),
	CatDeletedFromStartingLineup: playerEvent("Deleted From Starting Line-up", 1, 2),
	CatSignalEndOfGame:           systemEvent("Signal End Of Game"),
	CatOther:                     otherEvent,
}

// DefaultCatalog returns the built-in catalog in taxonomy order.
func DefaultCatalog() []Category {
	catalog := make([]Category, 0, len(defaultPatterns))
	for _, entry := range defaultPatterns {
		cat, err := newCategory(entry.category, entry.patterns)
		if err != nil {
			// Built-in patterns are compile-time constants; a failure
			// here is a programming error.
			panic(err)
		}
		catalog = append(catalog, cat)
	}
	return catalog
}

func newCategory(name string, patterns map[string]string) (Category, error) {
	build, ok := builders[name]
	if !ok {
		return Category{}, fmt.Errorf("unknown event category %q", name)
	}
	cat := Category{Name: name, build: build}
	for _, locale := range localeOrder(patterns) {
		re, err := regexp.Compile(patterns[locale])
		if err != nil {
			return Category{}, fmt.Errorf("compiling %s pattern for %s: %w", locale, name, err)
		}
		cat.patterns = append(cat.patterns, localePattern{locale: locale, re: re})
	}
	return cat, nil
}

// localeOrder keeps "en" first, "fr" second, anything else alphabetical.
func localeOrder(patterns map[string]string) []string {
	order := make([]string, 0, len(patterns))
	for _, preferred := range []string{"en", "fr"} {
		if _, ok := patterns[preferred]; ok {
			order = append(order, preferred)
		}
	}
	rest := make([]string, 0, len(patterns))
	for locale := range patterns {
		if locale != "en" && locale != "fr" {
			rest = append(rest, locale)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func playerEvent(action string, actorGroup, teamGroup int) builderFunc {
	return func(m []string, _ Context) gamestats.GameEvent {
		return gamestats.GameEvent{
			Action: action,
			Actor:  gamestats.PlayerActor(strings.TrimSpace(m[actorGroup])),
			Team:   strings.TrimSpace(m[teamGroup]),
		}
	}
}

func systemEvent(action string) builderFunc {
	return func(_ []string, _ Context) gamestats.GameEvent {
		return gamestats.GameEvent{Action: action, Actor: gamestats.SystemActor()}
	}
}

func coachEvent(action string, teamGroup int) builderFunc {
	return func(m []string, _ Context) gamestats.GameEvent {
		return gamestats.GameEvent{
			Action: action,
			Actor:  gamestats.CoachActor(),
			Team:   strings.TrimSpace(m[teamGroup]),
		}
	}
}

func otherEvent(_ []string, _ Context) gamestats.GameEvent {
	return gamestats.GameEvent{Action: "Other", Actor: gamestats.SystemActor()}
}

func buildPointsAdded(m []string, ctx Context) gamestats.GameEvent {
	points, _ := strconv.Atoi(m[1])
	team := strings.TrimSpace(m[3])
	change := points
	if !ctx.IsHome(team) {
		change = -points
	}
	return gamestats.GameEvent{
		Action:          fmt.Sprintf("%dP Points Added", points),
		Actor:           gamestats.PlayerActor(strings.TrimSpace(m[2])),
		Team:            team,
		AdvantageChange: &change,
	}
}

func buildPointsDeleted(m []string, _ Context) gamestats.GameEvent {
	points, _ := strconv.Atoi(m[1])
	return gamestats.GameEvent{
		Action: fmt.Sprintf("%dP Points Deleted", points),
		Actor:  gamestats.PlayerActor(strings.TrimSpace(m[2])),
		Team:   strings.TrimSpace(m[3]),
	}
}

func buildFoulAdded(m []string, _ Context) gamestats.GameEvent {
	return gamestats.GameEvent{
		Action: fmt.Sprintf("%s Foul Added", m[1]),
		Actor:  gamestats.PlayerActor(strings.TrimSpace(m[2])),
		Team:   strings.TrimSpace(m[3]),
	}
}

func buildFoulDeleted(m []string, _ Context) gamestats.GameEvent {
	return gamestats.GameEvent{
		Action: fmt.Sprintf("%s Foul Deleted", m[1]),
		Actor:  gamestats.PlayerActor(strings.TrimSpace(m[2])),
		Team:   strings.TrimSpace(m[3]),
	}
}

func buildPlayerInQuarter(action string) builderFunc {
	return func(m []string, _ Context) gamestats.GameEvent {
		event := gamestats.GameEvent{
			Action: action,
			Actor:  gamestats.PlayerActor(strings.TrimSpace(m[2])),
			Team:   strings.TrimSpace(m[3]),
		}
		if quarter, err := strconv.Atoi(m[1]); err == nil {
			event.Quarter = &quarter
		}
		return event
	}
}
