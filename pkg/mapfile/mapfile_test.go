package mapfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aloe-os/symtool/pkg/mapfile"
	"github.com/aloe-os/symtool/pkg/mapline"
)

func TestBuildLookup(t *testing.T) {
	t.Parallel()

	content := "80010000 alpha\n" +
		"80020000 beta\n" +
		"junk line without address\n" +
		"80030000 gamma\n"

	lookup := mapfile.BuildLookup(content, mapline.DefaultWindow())

	assert.Equal(t, map[string]uint32{
		"alpha": 0x80010000,
		"beta":  0x80020000,
		"gamma": 0x80030000,
	}, lookup)
}

func TestBuildLookupDuplicateSymbolLastWins(t *testing.T) {
	t.Parallel()

	content := "80010000 shared\n80020000 shared\n"
	lookup := mapfile.BuildLookup(content, mapline.DefaultWindow())

	assert.Equal(t, uint32(0x80020000), lookup["shared"])
}

func TestBuildLookupNoTrailingNewline(t *testing.T) {
	t.Parallel()

	lookup := mapfile.BuildLookup("80010000 last_line", mapline.DefaultWindow())
	assert.Equal(t, uint32(0x80010000), lookup["last_line"])
}

func TestReadRenames(t *testing.T) {
	t.Parallel()

	input := strings.NewReader(
		"new_alpha 80010000\n" +
			"no address on this line\n" +
			"new_beta 80020000\n")

	renames, err := mapfile.ReadRenames(input, mapline.DefaultWindow(), nil)
	require.NoError(t, err)

	assert.Equal(t, map[uint32]string{
		0x80010000: "new_alpha",
		0x80020000: "new_beta",
	}, renames)
}

func TestReadRenamesDuplicateAddressLastWins(t *testing.T) {
	t.Parallel()

	input := strings.NewReader("first 80010000\nsecond 80010000\n")

	renames, err := mapfile.ReadRenames(input, mapline.DefaultWindow(), nil)
	require.NoError(t, err)

	assert.Equal(t, map[uint32]string{0x80010000: "second"}, renames)
}

func TestReadRenamesReportsInvalidUTF8(t *testing.T) {
	t.Parallel()

	input := strings.NewReader("good 80010000\nbad\xff\xfe line\n")

	var skipped []int
	renames, err := mapfile.ReadRenames(input, mapline.DefaultWindow(), func(lineNo int, _ error) {
		skipped = append(skipped, lineNo)
	})
	require.NoError(t, err)

	assert.Equal(t, []int{2}, skipped)
	assert.Equal(t, map[uint32]string{0x80010000: "good"}, renames)
}

func TestReadRenamesLongLine(t *testing.T) {
	t.Parallel()

	// Well past any page-sized scanner buffer.
	long := strings.Repeat("a", 1<<17)
	input := strings.NewReader(long + " 80010000\nnext 80020000\n")

	renames, err := mapfile.ReadRenames(input, mapline.DefaultWindow(), nil)
	require.NoError(t, err)

	assert.Len(t, renames[0x80010000], 1<<17)
	assert.Equal(t, "next", renames[0x80020000])
}

func TestReadRenamesEmptyInput(t *testing.T) {
	t.Parallel()

	renames, err := mapfile.ReadRenames(strings.NewReader(""), mapline.DefaultWindow(), nil)
	require.NoError(t, err)
	assert.Empty(t, renames)
}
