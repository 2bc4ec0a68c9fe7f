package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"

	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/classify"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/extract"
	"github.com/Marcin-Rybarczyk/flbb-statistics-public/internal/normalize"
)

// Parses one cached game page and prints the resulting record, for eyeballing
// extractor output without running the whole batch.
//
// Usage: go run scripts/dump-game.go <page.html> [game-id]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: dump-game <page.html> [game-id]")
		os.Exit(1)
	}
	gameID := ""
	if len(os.Args) > 2 {
		gameID = os.Args[2]
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening page: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing HTML: %v\n", err)
		os.Exit(1)
	}

	deps := extract.Deps{
		Names:      normalize.New(normalize.AliasMap{}),
		Classifier: classify.NewClassifier(classify.DefaultCatalog()),
	}
	record, err := extract.Assemble(doc, gameID, deps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error extracting game: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding record: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
