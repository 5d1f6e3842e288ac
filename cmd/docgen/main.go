package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/vlad/docgen-go/internal/docs"
	"github.com/vlad/docgen-go/internal/manifest"
)

func main() {
	// Define flags
	manifestPath := flag.String("manifest", "", "Path to the YAML documentation manifest")
	width := flag.Int("width", 0, "Target line width (0 = terminal width, or 72 when not a terminal)")
	shortMode := flag.Bool("short", false, "Render short descriptions only")
	jsonOutput := flag.Bool("json", false, "Enable JSON output")

	// Parse flags
	flag.Parse()

	if *manifestPath == "" {
		color.Red("Error: specify --manifest flag")
		flag.Usage()
		os.Exit(1)
	}

	m, err := manifest.Load(*manifestPath)
	if err != nil {
		color.Red("Error loading manifest: %v", err)
		os.Exit(1)
	}

	opts := []docs.Option{docs.WithWidth(renderWidth(*width))}
	if *shortMode {
		opts = append(opts, docs.Short())
	}

	set, err := m.Build(opts...)
	if err != nil {
		color.Red("Error building documentation: %v", err)
		os.Exit(1)
	}

	if *jsonOutput {
		json.NewEncoder(os.Stdout).Encode(renderedByName(set))
	} else {
		fmt.Print(set.Render())
	}
}

// renderWidth resolves the effective render width: an explicit flag wins,
// then the terminal width, then the default.
func renderWidth(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return docs.DefaultWidth
}

func renderedByName(set *manifest.Set) map[string]map[string]string {
	out := map[string]map[string]string{
		"variables": {},
		"functions": {},
		"classes":   {},
	}
	for _, v := range set.Variables {
		out["variables"][v.Name()] = v.Doc()
	}
	for _, fn := range set.Functions {
		out["functions"][fn.Name()] = fn.Doc()
	}
	for _, cl := range set.Classes {
		out["classes"][cl.Name()] = cl.Doc()
	}
	return out
}
