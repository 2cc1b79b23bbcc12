package markdown

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// FrontMatter carries the structured metadata parsed from a document header.
type FrontMatter struct {
	Title      string         `yaml:"title"`
	Slug       string         `yaml:"slug"`
	Excerpt    string         `yaml:"excerpt"`
	Author     string         `yaml:"author"`
	Date       time.Time      `yaml:"date"`
	Status     string         `yaml:"status"`
	Tags       []string       `yaml:"tags"`
	Categories []string       `yaml:"categories"`
	CoverImage string         `yaml:"cover_image"`
	Custom     map[string]any `yaml:",inline"`
}

// Document pairs parsed frontmatter with the remaining Markdown body.
type Document struct {
	Path        string
	FrontMatter FrontMatter
	Body        []byte
}

// ParseDocument extracts metadata and Markdown body content from the provided
// source bytes.
func ParseDocument(filePath string, source []byte) (*Document, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter %s: %w", filePath, err)
	}
	if meta.Custom == nil {
		meta.Custom = map[string]any{}
	}
	return &Document{
		Path:        filePath,
		FrontMatter: meta,
		Body:        body,
	}, nil
}

// LoadDir reads every Markdown file under dir (non-recursive) and parses its
// frontmatter. Results are sorted by path so seeding stays deterministic.
func LoadDir(fsys fs.FS, dir string) ([]*Document, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read markdown dir %s: %w", dir, err)
	}

	docs := make([]*Document, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isMarkdown(entry.Name()) {
			continue
		}
		filePath := path.Join(dir, entry.Name())
		source, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("read markdown file %s: %w", filePath, err)
		}
		doc, err := ParseDocument(filePath, source)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

func isMarkdown(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".md" || ext == ".markdown"
}
