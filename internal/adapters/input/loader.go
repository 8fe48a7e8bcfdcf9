// Package input provides adapters for loading batch templates.
package input

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

// templateFile is the on-disk YAML shape.
type templateFile struct {
	Owner     ownerEntry      `yaml:"owner"`
	Templates []templateEntry `yaml:"templates"`
}

type ownerEntry struct {
	Name       string `yaml:"name"`
	ID         uint32 `yaml:"id"`
	Language   string `yaml:"language"`
	Region     string `yaml:"region"`
	Generation int    `yaml:"generation"`
	Version    int    `yaml:"version"`
}

type templateEntry struct {
	Name       string   `yaml:"name"`
	Species    int      `yaml:"species"`
	Form       int      `yaml:"form"`
	Shiny      string   `yaml:"shiny"`
	Ball       int      `yaml:"ball"`
	Generation int      `yaml:"generation"`
	Version    int      `yaml:"version"`
	Lines      []string `yaml:"lines"`
}

// FileSource loads an owner identity and templates from a YAML file.
// It implements domain.TemplateSource.
//
// Attribute values that fail to parse do not abort the load: they are
// recorded on the template's InvalidLines so the engine can reject that
// template while the rest of the batch stays loadable.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for the given path.
// Returns domain.ErrTemplateFileNotFound if the file does not exist.
func NewFileSource(path string) (*FileSource, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTemplateFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat template file: %w", err)
	}
	return &FileSource{path: path}, nil
}

// Load reads and decodes the template file.
func (s *FileSource) Load(_ context.Context) (*domain.IdentityContext, []*domain.Template, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read template file: %w", err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("%w: %w", domain.ErrTemplateFileInvalid, err)
	}

	if len(file.Templates) == 0 {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrNoTemplates, s.path)
	}

	templates := make([]*domain.Template, 0, len(file.Templates))
	for _, entry := range file.Templates {
		templates = append(templates, decodeTemplate(entry))
	}

	return decodeOwner(file.Owner), templates, nil
}

// Close releases resources held by the source. FileSource holds none.
func (s *FileSource) Close() error {
	return nil
}

// decodeOwner maps the owner entry to an identity context. A nameless
// owner yields nil so callers can substitute their default identity.
func decodeOwner(entry ownerEntry) *domain.IdentityContext {
	if entry.Name == "" {
		return nil
	}
	return &domain.IdentityContext{
		TrainerName: entry.Name,
		TrainerID:   entry.ID,
		Language:    entry.Language,
		Region:      entry.Region,
		Generation:  entry.Generation,
		Version:     entry.Version,
	}
}

func decodeTemplate(entry templateEntry) *domain.Template {
	tmpl := &domain.Template{
		Name:       entry.Name,
		Species:    entry.Species,
		Form:       entry.Form,
		Ball:       entry.Ball,
		Generation: entry.Generation,
		Version:    entry.Version,
	}

	shiny, ok := parseShiny(entry.Shiny)
	if !ok {
		tmpl.InvalidLines = append(tmpl.InvalidLines, "shiny: "+entry.Shiny)
	}
	tmpl.Shiny = shiny

	for _, line := range entry.Lines {
		if !applyLine(tmpl, line) {
			tmpl.InvalidLines = append(tmpl.InvalidLines, line)
		}
	}

	return tmpl
}

// parseShiny maps the textual shiny value to its tri-state hint. The
// empty string means "never".
func parseShiny(value string) (domain.ShinyHint, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "never":
		return domain.ShinyNever, true
	case "star":
		return domain.ShinyStar, true
	case "square":
		return domain.ShinySquare, true
	default:
		return domain.ShinyNever, false
	}
}

// applyLine parses one free-form "Key: Value" attribute line onto the
// template. It reports false for lines it cannot understand.
func applyLine(tmpl *domain.Template, line string) bool {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return false
	}
	value = strings.TrimSpace(value)

	switch strings.ToLower(strings.TrimSpace(key)) {
	case "ball":
		ball, err := strconv.Atoi(value)
		if err != nil || ball <= 0 {
			return false
		}
		tmpl.Ball = ball
	case "shiny":
		shiny, ok := parseShiny(value)
		if !ok {
			return false
		}
		tmpl.Shiny = shiny
	case "nickname":
		if value == "" {
			return false
		}
		tmpl.Name = value
	default:
		return false
	}
	return true
}
