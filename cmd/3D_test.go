package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun3D(t *testing.T) {
	dir := t.TempDir()
	deck := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(deck, []byte(exampleFile), 0644))

	{ // Missing and unreadable decks
		_, err := processInput3D(&Model3D{})
		assert.Error(t, err)
		_, err = processInput3D(&Model3D{ICFile: filepath.Join(dir, "nope.yaml")})
		assert.Error(t, err)
	}

	m3d := &Model3D{
		ICFile:   deck,
		DumpFile: filepath.Join(dir, "fields.txt"),
		Steps:    2,
		Verify:   true,
	}
	ip, err := processInput3D(m3d)
	require.NoError(t, err)
	assert.Equal(t, "Point Charge", ip.Title)
	assert.Equal(t, 2, ip.Steps)
	assert.Equal(t, [3]int{3, 3, 3}, ip.Cells)

	require.NoError(t, Run3D(m3d, ip))
	data, err := os.ReadFile(m3d.DumpFile)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "ScalarGrid(1, 1, 1) = ")
	assert.Contains(t, out, "VectorGrid(2, 2, 2) = [")
	assert.Equal(t, 2+2*27, strings.Count(out, "\n"))
}
