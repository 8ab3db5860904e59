//go:build js && wasm

package main

import (
	"context"
	"encoding/json"
	"syscall/js"

	"github.com/kittclouds/newsrank/internal/search"
	"github.com/kittclouds/newsrank/internal/store"
	"github.com/kittclouds/newsrank/pkg/resorank"
)

// Version info
const Version = "0.3.0"

// The library lives for the page; rankings are rebuilt per call.
var library = store.NewMemStore()

func main() {
	println("[NewsRank] WASM Ready v" + Version)

	// Register exports
	js.Global().Set("NewsRank", js.ValueOf(map[string]interface{}{
		"version":     js.FuncOf(getVersion),
		"rank":        js.FuncOf(rank),
		"addArticles": js.FuncOf(addArticles),
		"search":      js.FuncOf(searchArticles),
	}))

	select {}
}

// getVersion returns the module version
func getVersion(this js.Value, args []js.Value) interface{} {
	return Version
}

// rank: [textsJSON string, query string, configJSON string?]
// Returns: JSON array of results
func rank(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("requires 2+ args: textsJSON, query, [configJSON]")
	}

	var texts []string
	if err := json.Unmarshal([]byte(args[0].String()), &texts); err != nil {
		return errorResult("texts json: " + err.Error())
	}

	cfg, err := parseConfig(args, 2)
	if err != nil {
		return errorResult("config json: " + err.Error())
	}

	results, err := resorank.NewScorer(cfg).Rank(texts, args[1].String())
	if err != nil {
		return errorResult(err.Error())
	}

	bytes, _ := json.Marshal(results)
	return string(bytes)
}

// addArticles: [articlesJSON string] in news API shape or a bare array
func addArticles(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("requires 1 arg: articlesJSON")
	}

	articles, err := store.ParseArticles([]byte(args[0].String()))
	if err != nil {
		return errorResult(err.Error())
	}

	n, err := store.ImportArticles(context.Background(), library, articles)
	if err != nil {
		return errorResult("import failed: " + err.Error())
	}

	bytes, _ := json.Marshal(map[string]int{"imported": n})
	return string(bytes)
}

// searchArticles: [query string, configJSON string?]
// Returns: {"query", "results"} like the HTTP search endpoint
func searchArticles(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("requires 1+ args: query, [configJSON]")
	}

	cfg, err := parseConfig(args, 1)
	if err != nil {
		return errorResult("config json: " + err.Error())
	}

	svc := search.NewService(library, resorank.NewScorer(cfg), nil)
	resp, err := svc.Search(context.Background(), args[0].String())
	if err != nil {
		return errorResult(err.Error())
	}

	bytes, _ := json.Marshal(resp)
	return string(bytes)
}

// parseConfig overlays the optional JSON config at args[idx] on the defaults.
func parseConfig(args []js.Value, idx int) (resorank.Config, error) {
	cfg := resorank.DefaultConfig()
	if len(args) > idx && args[idx].Type() == js.TypeString {
		raw := args[idx].String()
		if raw != "" && raw != "null" {
			if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
				return cfg, err
			}
		}
	}
	return cfg, nil
}

func errorResult(msg string) interface{} {
	result := map[string]interface{}{
		"error": msg,
	}
	jsonBytes, _ := json.Marshal(result)
	return string(jsonBytes)
}
