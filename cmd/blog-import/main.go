package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	cms "github.com/sproux/cms"
)

func main() {
	if err := runImport(os.Args[1:]); err != nil {
		log.Fatalf("blog import: %v", err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("blog-import", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	directory := fs.String("dir", ".", "Directory to import, relative to the content root")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")
	seed := fs.Bool("seed", false, "Seed the demo site content before importing")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := cms.DefaultConfig()
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat
	cfg.Seed = *seed

	module, err := cms.New(cfg)
	if err != nil {
		return fmt.Errorf("build module: %w", err)
	}

	ctx := context.Background()
	imported, err := module.Posts().ImportDirectory(ctx, os.DirFS(*contentDir), *directory)
	if err != nil {
		return fmt.Errorf("import %s: %w", *contentDir, err)
	}

	for _, post := range imported {
		fmt.Printf("imported %s (%s) [%s]\n", post.Slug, post.ID, post.Status)
	}
	fmt.Printf("%d post(s) imported\n", len(imported))
	return nil
}
