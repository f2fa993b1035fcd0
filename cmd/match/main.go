// Package main implements a one-shot offline matcher. It runs the full
// strategy chain against a catalog file (or the compiled-in fallback
// catalog) without any network dependencies, which makes it handy for
// tuning keyword groups and rules overlays.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"novena-backend/application/services"
	"novena-backend/domain/matching"
	"novena-backend/domain/novena"
	"novena-backend/infrastructure/config"
)

func main() {
	catalogPath := flag.String("catalog", "", "path to a JSON catalog file (defaults to the built-in catalog)")
	rulesPath := flag.String("rules", "", "path to a YAML rules overlay")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: match [flags] <intention>")
		flag.PrintDefaults()
		os.Exit(2)
	}
	intention := flag.Arg(0)

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to create logger: %v", err)
		}
	}

	catalog := novena.FallbackCatalog()
	if *catalogPath != "" {
		loaded, err := loadCatalog(*catalogPath)
		if err != nil {
			log.Fatalf("Failed to load catalog: %v", err)
		}
		catalog = loaded
	}

	reasons := matching.NewReasonCache()
	matcher := services.NewMatchService(
		nil, // no catalog service; the catalog is passed per call
		nil, // no AI client offline
		reasons,
		matching.NewRandomPicker(),
		nil,
		logger,
	)

	if *rulesPath != "" {
		overlay, err := config.LoadRules(*rulesPath)
		if err != nil {
			log.Fatalf("Failed to load rules: %v", err)
		}
		matcher.ReloadRules(overlay.PatronSaintGroups(), overlay.Reasons)
	}

	result := matcher.MatchWithCatalog(context.Background(), intention, catalog)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

func loadCatalog(path string) (novena.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []novena.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	catalog := make(novena.Catalog, 0, len(entries))
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			continue
		}
		catalog = append(catalog, entries[i])
	}
	return catalog, nil
}
