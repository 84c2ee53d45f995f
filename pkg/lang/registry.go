package lang

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Registry is an immutable extension -> Rule lookup table. It is built
// once at process start and passed by reference into the engine; there is
// no lazily initialised global state.
type Registry struct {
	rules  []*Rule
	byExt  map[string]*Rule
	byName map[string]*Rule
}

// Descriptor is the externally visible summary of one registered language.
type Descriptor struct {
	Name       string
	Extensions []string
}

// NewRegistry builds the registry from the builtin language table.
func NewRegistry() *Registry {
	registry := &Registry{
		byExt:  make(map[string]*Rule),
		byName: make(map[string]*Rule),
	}

	for _, spec := range builtins {
		rule, err := spec.compile()
		if err != nil {
			// The builtin table is fixed at compile time; a bad pattern
			// cannot be handled at runtime.
			panic(fmt.Sprintf("lang: builtin pattern for %s: %v", spec.Name, err))
		}

		registry.register(rule)
	}

	return registry
}

func (r *Registry) register(rule *Rule) {
	if existing, ok := r.byName[strings.ToLower(rule.Name)]; ok {
		r.remove(existing)
	}

	r.rules = append(r.rules, rule)
	r.byName[strings.ToLower(rule.Name)] = rule

	for _, ext := range rule.Extensions {
		r.byExt[strings.ToLower(ext)] = rule
	}
}

func (r *Registry) remove(rule *Rule) {
	for i, candidate := range r.rules {
		if candidate == rule {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)

			break
		}
	}

	delete(r.byName, strings.ToLower(rule.Name))

	for _, ext := range rule.Extensions {
		if r.byExt[strings.ToLower(ext)] == rule {
			delete(r.byExt, strings.ToLower(ext))
		}
	}
}

// LookupExtension resolves a file extension (without the dot, any case)
// to its language rule.
func (r *Registry) LookupExtension(ext string) (*Rule, bool) {
	rule, ok := r.byExt[strings.ToLower(strings.TrimPrefix(ext, "."))]

	return rule, ok
}

// LookupName resolves a language name (case-insensitive) to its rule.
func (r *Registry) LookupName(name string) (*Rule, bool) {
	rule, ok := r.byName[strings.ToLower(name)]

	return rule, ok
}

// Names returns all registered language names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for _, rule := range r.rules {
		names = append(names, rule.Name)
	}

	sort.Strings(names)

	return names
}

// Languages returns descriptors for every registered language, sorted by
// name, with extensions sorted.
func (r *Registry) Languages() []Descriptor {
	result := make([]Descriptor, 0, len(r.rules))

	for _, rule := range r.rules {
		extensions := append([]string(nil), rule.Extensions...)
		sort.Strings(extensions)
		result = append(result, Descriptor{Name: rule.Name, Extensions: extensions})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// yamlRule is the on-disk shape of a custom language rule.
type yamlRule struct {
	Name             string   `yaml:"name"`
	Extensions       []string `yaml:"extensions"`
	LineComment      string   `yaml:"line_comment"`
	BlockOpen        string   `yaml:"block_open"`
	BlockClose       string   `yaml:"block_close"`
	DocComment       string   `yaml:"doc_comment"`
	Style            string   `yaml:"style"`
	FunctionPatterns []string `yaml:"function_patterns"`
	ClassPattern     string   `yaml:"class_pattern"`
}

// LoadRulesFile merges custom language rules from a YAML file over the
// builtins. A custom rule with the name of a builtin replaces it.
func (r *Registry) LoadRulesFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read rules file: %w", err)
	}

	var entries []yamlRule
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse rules file: %w", err)
	}

	for _, entry := range entries {
		if entry.Name == "" || len(entry.Extensions) == 0 {
			return fmt.Errorf("rules file %s: every rule needs a name and extensions", path)
		}

		style, err := parseStyle(entry.Style)
		if err != nil {
			return fmt.Errorf("rules file %s: language %s: %w", path, entry.Name, err)
		}

		spec := builtinSpec{
			Name:             entry.Name,
			Extensions:       entry.Extensions,
			LineComment:      entry.LineComment,
			BlockOpen:        entry.BlockOpen,
			BlockClose:       entry.BlockClose,
			DocComment:       entry.DocComment,
			Style:            style,
			FunctionPatterns: entry.FunctionPatterns,
			ClassPattern:     entry.ClassPattern,
		}

		rule, err := spec.compile()
		if err != nil {
			return fmt.Errorf("rules file %s: language %s: %w", path, entry.Name, err)
		}

		r.register(rule)
	}

	return nil
}

func parseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "", "brace":
		return StyleBrace, nil
	case "indent":
		return StyleIndent, nil
	case "plain":
		return StylePlain, nil
	default:
		return StyleBrace, fmt.Errorf("unknown style %q", s)
	}
}
