package ast

import (
	"context"
	"fmt"
	"strings"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Dialect selects the grammar used for parsing. The javascript grammar
// covers JSX and decorators natively; typescript and tsx add type
// annotation syntax.
type Dialect string

const (
	DialectJavaScript Dialect = "javascript"
	DialectTypeScript Dialect = "typescript"
	DialectTSX        Dialect = "tsx"
)

// DialectForFile picks a dialect from a file name extension. Unknown
// extensions default to javascript.
func DialectForFile(name string) Dialect {
	switch {
	case strings.HasSuffix(name, ".tsx"):
		return DialectTSX
	case strings.HasSuffix(name, ".ts"):
		return DialectTypeScript
	default:
		return DialectJavaScript
	}
}

// ParseError reports input that could not be parsed even with tree-sitter's
// error recovery.
type ParseError struct {
	Dialect Dialect
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s", e.Dialect, e.Reason)
}

// File is one parsed code unit. The underlying tree-sitter tree owns C
// memory; call Close when the file is no longer needed.
type File struct {
	Source  []byte
	Dialect Dialect

	// Recovered is true when the source contained syntax errors that
	// tree-sitter recovered from. The resulting AST is partial.
	Recovered bool

	tree *tree_sitter.Tree
}

// Root returns the root node of the parsed tree.
func (f *File) Root() Node {
	return Node{ts: f.tree.RootNode(), src: f.Source}
}

// Close releases the tree-sitter tree.
func (f *File) Close() {
	if f.tree != nil {
		f.tree.Close()
		f.tree = nil
	}
}

// Parser wraps the tree-sitter grammars for the supported dialects. A new
// tree-sitter parser is created per Parse call, so a Parser is safe for
// concurrent use.
type Parser struct {
	languages map[Dialect]*tree_sitter.Language
}

// NewParser creates a Parser with the javascript, typescript, and tsx
// grammars registered.
func NewParser() *Parser {
	return &Parser{
		languages: map[Dialect]*tree_sitter.Language{
			DialectJavaScript: tree_sitter.NewLanguage(tree_sitter_javascript.Language()),
			DialectTypeScript: tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
			DialectTSX:        tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()),
		},
	}
}

// Dialects returns the dialects this parser can handle.
func (p *Parser) Dialects() []Dialect {
	out := make([]Dialect, 0, len(p.languages))
	for d := range p.languages {
		out = append(out, d)
	}
	return out
}

// Parse parses source under the given dialect. Recoverable syntax errors
// produce a partial File with Recovered set; a *ParseError is returned only
// when nothing usable could be recovered.
func (p *Parser) Parse(_ context.Context, source []byte, dialect Dialect) (*File, error) {
	lang, ok := p.languages[dialect]
	if !ok {
		return nil, &ParseError{Dialect: dialect, Reason: "unsupported dialect"}
	}

	if len(strings.TrimSpace(string(source))) == 0 {
		return nil, &ParseError{Dialect: dialect, Reason: "empty source"}
	}

	parser := tree_sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("set language %s: %w", dialect, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &ParseError{Dialect: dialect, Reason: "tree-sitter returned nil tree"}
	}

	root := tree.RootNode()
	if root.HasError() && root.NamedChildCount() == 0 {
		tree.Close()
		return nil, &ParseError{Dialect: dialect, Reason: "no recoverable syntax"}
	}

	return &File{
		Source:    source,
		Dialect:   dialect,
		Recovered: root.HasError(),
		tree:      tree,
	}, nil
}
