package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dusk-indust/introspect/internal/intent"
	"github.com/dusk-indust/introspect/internal/registry"
)

func TestDependencyExtractor_ClassifiesImports(t *testing.T) {
	src := `import express from "express";
import { readFile } from "node:fs";
import session from "./auth/session.js";
const _ = require("lodash");`
	deps := NewDependencyExtractor(registry.Default()).Extract(parseJS(t, src))

	require.Len(t, deps, 4)

	assert.Equal(t, "express", deps[0].Name)
	assert.Equal(t, intent.DepExternal, deps[0].Type)
	assert.Equal(t, "Web framework", deps[0].Purpose)
	assert.False(t, deps[0].Critical)

	assert.Equal(t, "node:fs", deps[1].Name)
	assert.Equal(t, intent.DepSystem, deps[1].Type)
	assert.Equal(t, "File system access", deps[1].Purpose)

	assert.Equal(t, "./auth/session.js", deps[2].Name)
	assert.Equal(t, intent.DepInternal, deps[2].Type)
	assert.True(t, deps[2].Critical)

	assert.Equal(t, "lodash", deps[3].Name)
	assert.Equal(t, intent.DepExternal, deps[3].Type)
	assert.Equal(t, "Utility functions", deps[3].Purpose)
}

func TestDependencyExtractor_DeduplicatesFirstSeen(t *testing.T) {
	src := `import a from "express";
import b from "express";
const c = require("express");`
	deps := NewDependencyExtractor(registry.Default()).Extract(parseJS(t, src))

	require.Len(t, deps, 1)
	assert.Equal(t, "express", deps[0].Name)
}

func TestDependencyExtractor_IgnoresDynamicRequire(t *testing.T) {
	src := `const mod = require(name);`
	deps := NewDependencyExtractor(registry.Default()).Extract(parseJS(t, src))

	assert.Empty(t, deps)
}
