package lang

import "regexp"

// builtinSpec is the compile-free form of a Rule used for the builtin
// table and for rules parsed from YAML files.
type builtinSpec struct {
	Name             string
	Extensions       []string
	LineComment      string
	BlockOpen        string
	BlockClose       string
	DocComment       string
	Style            Style
	FunctionPatterns []string
	ClassPattern     string
}

// builtins lists every language the engine understands out of the box.
// Patterns are matched against the trimmed code portion of a line.
var builtins = []builtinSpec{
	{
		Name:        "Rust",
		Extensions:  []string{"rs"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "///",
		FunctionPatterns: []string{
			`^\s*fn\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*(->\s*[^\{]*)?\s*\{`,
			`^\s*pub\s+fn\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*(->\s*[^\{]*)?\s*\{`,
		},
		ClassPattern: `^\s*(pub\s+)?struct\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "C",
		Extensions:  []string{"c"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "///",
		FunctionPatterns: []string{
			`^\s*[a-zA-Z0-9_*&\[\]]+\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*\{`,
			`^\s*void\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*\{`,
		},
	},
	{
		Name:        "C++",
		Extensions:  []string{"cpp", "cc", "cxx", "hpp", "h"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "///",
		FunctionPatterns: []string{
			`^\s*[a-zA-Z0-9_*&<>\[\]]+\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*(const\s*)?\{`,
			`^\s*void\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*(const\s*)?\{`,
		},
		ClassPattern: `^\s*class\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "Go",
		Extensions:  []string{"go"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/",
		FunctionPatterns: []string{
			`^\s*func\s+[a-zA-Z0-9_]+\s*\([^)]*\)`,
			`^\s*func\s+\([^)]*\)\s+[a-zA-Z0-9_]+\s*\([^)]*\)`,
		},
		ClassPattern: `^\s*type\s+[a-zA-Z0-9_]+\s+(struct|interface)\s*\{`,
	},
	{
		Name:        "Python",
		Extensions:  []string{"py"},
		LineComment: "#", BlockOpen: `"""`, BlockClose: `"""`, DocComment: "'''",
		Style: StyleIndent,
		FunctionPatterns: []string{
			`^\s*def\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*(->\s*[^:]*)?:`,
			`^\s*async\s+def\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*(->\s*[^:]*)?:`,
		},
		ClassPattern: `^\s*class\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "JavaScript",
		Extensions:  []string{"js", "jsx", "mjs", "cjs"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "/**",
		FunctionPatterns: []string{
			`^\s*function\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*\{`,
			`^\s*const\s+[a-zA-Z0-9_]+\s*=\s*\([^)]*\)\s*=>`,
			`^\s*let\s+[a-zA-Z0-9_]+\s*=\s*\([^)]*\)\s*=>`,
			`^\s*var\s+[a-zA-Z0-9_]+\s*=\s*\([^)]*\)\s*=>`,
		},
		ClassPattern: `^\s*(export\s+)?class\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "TypeScript",
		Extensions:  []string{"ts", "tsx"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "///",
		FunctionPatterns: []string{
			`^\s*function\s+[a-zA-Z0-9_]+\s*\([^)]*\)`,
			`^\s*(export\s+)?(public\s+|private\s+|protected\s+)?(static\s+)?[a-zA-Z0-9_<>,\[\]]+\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*\{`,
		},
		ClassPattern: `^\s*(export\s+)?class\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "Java",
		Extensions:  []string{"java"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "/**",
		FunctionPatterns: []string{
			`^\s*(public\s+|private\s+|protected\s+)?(static\s+)?[a-zA-Z0-9_<>,\[\]]+\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*\{`,
		},
		ClassPattern: `^\s*(public\s+|private\s+|protected\s+)?class\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "C#",
		Extensions:  []string{"cs"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "///",
		FunctionPatterns: []string{
			`^\s*(public\s+|private\s+|protected\s+)?(static\s+)?[a-zA-Z0-9_<>,\[\]]+\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*\{`,
		},
		ClassPattern: `^\s*(public\s+|private\s+|protected\s+)?class\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "Swift",
		Extensions:  []string{"swift"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "///",
		FunctionPatterns: []string{
			`^\s*func\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*(->\s*[^{]*)?\{`,
		},
		ClassPattern: `^\s*class\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "Kotlin",
		Extensions:  []string{"kt", "kts"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "/**",
		FunctionPatterns: []string{
			`^\s*fun\s+[a-zA-Z0-9_]+\s*\([^)]*\)`,
		},
		ClassPattern: `^\s*class\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "Dart",
		Extensions:  []string{"dart"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "///",
		FunctionPatterns: []string{
			`^\s*[a-zA-Z0-9_<>]+\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*(async\s*)?\{`,
		},
		ClassPattern: `^\s*class\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "Ruby",
		Extensions:  []string{"rb"},
		LineComment: "#", BlockOpen: "=begin", BlockClose: "=end",
	},
	{
		Name:        "PHP",
		Extensions:  []string{"php"},
		LineComment: "//", BlockOpen: "/*", BlockClose: "*/", DocComment: "/**",
		FunctionPatterns: []string{
			`^\s*function\s+[a-zA-Z0-9_]+\s*\([^)]*\)\s*\{`,
		},
		ClassPattern: `^\s*class\s+[a-zA-Z0-9_]+`,
	},
	{
		Name:        "Lua",
		Extensions:  []string{"lua"},
		LineComment: "--", BlockOpen: "--[[", BlockClose: "]]",
	},
	{
		Name:        "Shell",
		Extensions:  []string{"sh", "bash"},
		LineComment: "#",
	},
	{
		Name:        "Perl",
		Extensions:  []string{"pl", "pm"},
		LineComment: "#",
	},
	{
		Name:        "SQL",
		Extensions:  []string{"sql"},
		LineComment: "--", BlockOpen: "/*", BlockClose: "*/",
	},
	{
		Name:        "HTML",
		Extensions:  []string{"html", "htm"},
		BlockOpen:   "<!--", BlockClose: "-->",
	},
	{
		Name:        "XML",
		Extensions:  []string{"xml"},
		BlockOpen:   "<!--", BlockClose: "-->",
	},
	{
		Name:        "CSS",
		Extensions:  []string{"css"},
		BlockOpen:   "/*", BlockClose: "*/",
	},
	{
		Name:        "YAML",
		Extensions:  []string{"yaml", "yml"},
		LineComment: "#",
	},
	{
		Name:        "TOML",
		Extensions:  []string{"toml"},
		LineComment: "#",
	},
	{
		Name:       "Markdown",
		Extensions: []string{"md", "markdown"},
		Style:      StylePlain,
	},
	{
		Name:       "JSON",
		Extensions: []string{"json"},
		Style:      StylePlain,
	},
	{
		Name:       "Text",
		Extensions: []string{"txt"},
		Style:      StylePlain,
	},
}

// compile turns a spec into an immutable Rule. Invalid patterns are a
// programming error in the builtin table and a user error in YAML files.
func (s builtinSpec) compile() (*Rule, error) {
	rule := &Rule{
		Name:        s.Name,
		Extensions:  s.Extensions,
		LineComment: s.LineComment,
		DocComment:  s.DocComment,
		Style:       s.Style,
	}

	if s.BlockOpen != "" {
		rule.BlockComment = &Delimiters{Open: s.BlockOpen, Close: s.BlockClose}
	}

	for _, pat := range s.FunctionPatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, err
		}

		rule.FunctionPatterns = append(rule.FunctionPatterns, re)
	}

	if s.ClassPattern != "" {
		re, err := regexp.Compile(s.ClassPattern)
		if err != nil {
			return nil, err
		}

		rule.ClassPattern = re
	}

	return rule, nil
}
