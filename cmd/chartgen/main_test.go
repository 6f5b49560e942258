package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/chart/element"
	"github.com/tinywasm/chart/errs"
)

const pie = `
type: pie
title: Share
values: [1, 1, 2]
labels: [x, y, z]
colours: [red, blue]
`

func writeDef(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHTMLOutput(t *testing.T) {
	out, err := execute(t, writeDef(t, "share.yaml", pie))
	require.NoError(t, err)
	assert.Contains(t, out, `<div class="container"`)
	assert.Contains(t, out, `>Share</h3>`)
	assert.Contains(t, out, `stroke-dashoffset="-50"`)
}

func TestJSONOutput(t *testing.T) {
	out, err := execute(t, "--format", "json", "--title", "Override", writeDef(t, "share.yaml", pie))
	require.NoError(t, err)

	var root element.Node
	require.NoError(t, json.Unmarshal([]byte(out), &root))
	assert.Equal(t, "container", root.Region)
	assert.Equal(t, "Override", root.Children[0].Text)
}

func TestTypeAndColourFlags(t *testing.T) {
	out, err := execute(t, "-t", "vbar", "--colour", "green", writeDef(t, "share.yaml", pie))
	require.NoError(t, err)
	assert.Contains(t, out, "background-color:green")
	assert.Contains(t, out, "rotate(-45deg)")
}

func TestLineChart(t *testing.T) {
	out, err := execute(t, "-t", "line", writeDef(t, "share.yaml", pie))
	require.NoError(t, err)
	assert.Contains(t, out, "<polyline")
}

func TestEChartsOutputFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out", "share.html")
	_, err := execute(t, "-f", "echarts", "-o", dest, writeDef(t, "share.toml", `
type = "pie"
title = "Share"
values = [1.0, 3.0]
labels = ["a", "b"]
`))
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<title>Share</title>")
}

func TestErrors(t *testing.T) {
	_, err := execute(t, "-f", "pdf", writeDef(t, "share.yaml", pie))
	assert.Error(t, err)

	_, err = execute(t, writeDef(t, "share.csv", "a,1"))
	assert.ErrorIs(t, err, errs.ErrUnsupportedFormat)

	_, err = execute(t, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "-t", "pie", writeDef(t, "zero.yaml", "type: pie\nvalues: [0]\nlabels: [a]\n"))
	assert.ErrorIs(t, err, errs.ErrDegenerateInput)

	_, err = execute(t)
	assert.Error(t, err)
}
