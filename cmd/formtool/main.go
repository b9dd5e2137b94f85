package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	formtool "github.com/goliatone/go-formtool"
	"github.com/goliatone/go-formtool/pkg/openapi"
	"github.com/goliatone/go-formtool/pkg/overlay"
	"github.com/goliatone/go-formtool/pkg/styles/vanilla"
)

func main() {
	opID := flag.String("operation", "", "operation ID to render")
	source := flag.String("source", "", "OpenAPI document path or URL")
	overlayDir := flag.String("overlays", "", "directory of overlay documents")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if *source == "" || *opID == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	doc, err := openapi.LoadSource(ctx, parseSource(*source))
	if err != nil {
		log.Fatalf("load document: %v", err)
	}

	result, err := openapi.New().Import(doc, *opID)
	if err != nil {
		log.Fatalf("import operation: %v", err)
	}

	if *overlayDir != "" {
		store, err := overlay.LoadFS(os.DirFS(*overlayDir))
		if err != nil {
			log.Fatalf("load overlays: %v", err)
		}
		if spec, ok := store.Form(*opID); ok {
			overlay.Apply(result.Builder, spec)
		}
	}

	form, err := result.Builder.Build()
	if err != nil {
		log.Fatalf("build form: %v", err)
	}

	state := formtool.NewState().Seed(result.Defaults)
	html, err := formtool.Render(ctx, form, vanilla.Must(vanilla.New()), state)
	if err != nil {
		log.Fatalf("render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, html, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("form written to %s\n", *output)
		return
	}
	fmt.Println(string(html))
}

func parseSource(raw string) openapi.Source {
	path := strings.TrimSpace(raw)
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return openapi.SourceFromURL(path)
	}
	return openapi.SourceFromFile(path)
}
