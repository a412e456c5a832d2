package extract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/introspect/internal/ast"
)

// parse parses source under the given dialect or fails the test.
func parse(t *testing.T, source string, dialect ast.Dialect) ast.Node {
	t.Helper()
	file, err := ast.NewParser().Parse(context.Background(), []byte(source), dialect)
	require.NoError(t, err)
	t.Cleanup(file.Close)
	return file.Root()
}

func parseJS(t *testing.T, source string) ast.Node {
	t.Helper()
	return parse(t, source, ast.DialectJavaScript)
}

func parseTS(t *testing.T, source string) ast.Node {
	t.Helper()
	return parse(t, source, ast.DialectTypeScript)
}
