package ast

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse parses source or fails the test. The file is closed on cleanup.
func mustParse(t *testing.T, source string, dialect Dialect) *File {
	t.Helper()
	file, err := NewParser().Parse(context.Background(), []byte(source), dialect)
	require.NoError(t, err)
	t.Cleanup(file.Close)
	return file
}

func TestDialectForFile(t *testing.T) {
	assert.Equal(t, DialectTSX, DialectForFile("App.tsx"))
	assert.Equal(t, DialectTypeScript, DialectForFile("user.controller.ts"))
	assert.Equal(t, DialectJavaScript, DialectForFile("index.js"))
	assert.Equal(t, DialectJavaScript, DialectForFile("Makefile"))
	assert.Equal(t, DialectJavaScript, DialectForFile(""))
}

func TestParser_ParseJavaScript(t *testing.T) {
	file := mustParse(t, `function greet(name) { return "hi " + name; }`, DialectJavaScript)

	root := file.Root()
	assert.Equal(t, KindProgram, root.Kind())
	assert.False(t, file.Recovered)

	fns := Functions(root)
	require.Len(t, fns, 1)
	assert.Equal(t, "greet", fns[0].Name())
	assert.False(t, fns[0].IsAsync())
}

func TestParser_ParseTypeScriptAnnotations(t *testing.T) {
	file := mustParse(t, `function add(a: number, b: number): number { return a + b; }`, DialectTypeScript)

	fns := Functions(file.Root())
	require.Len(t, fns, 1)

	params := fns[0].Params()
	require.Len(t, params, 2)
	assert.Equal(t, "a", params[0].Name())
	assert.Equal(t, "number", params[0].TypeAnnotation())
	assert.Equal(t, "b", params[1].Name())
	assert.Equal(t, "number", params[1].TypeAnnotation())
}

func TestParser_EmptySourceIsParseError(t *testing.T) {
	_, err := NewParser().Parse(context.Background(), []byte("   \n\t"), DialectJavaScript)
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, DialectJavaScript, parseErr.Dialect)
}

func TestParser_UnsupportedDialectIsParseError(t *testing.T) {
	_, err := NewParser().Parse(context.Background(), []byte("let x = 1;"), Dialect("ruby"))
	require.Error(t, err)

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Reason, "unsupported")
}

func TestParser_RecoversFromPartialSyntaxErrors(t *testing.T) {
	// A valid function followed by garbage: tree-sitter recovers the function.
	file := mustParse(t, "function ok() { return 1; }\n%%%%", DialectJavaScript)

	assert.True(t, file.Recovered)
	fns := Functions(file.Root())
	require.Len(t, fns, 1)
	assert.Equal(t, "ok", fns[0].Name())
}

func TestParser_Dialects(t *testing.T) {
	assert.ElementsMatch(t,
		[]Dialect{DialectJavaScript, DialectTypeScript, DialectTSX},
		NewParser().Dialects())
}
