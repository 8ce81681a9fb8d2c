package mahjong_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_trainer/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCount_RedFiveNormalised(t *testing.T) {
	tiles, err := mahjong.ParseTiles("055m")
	require.NoError(t, err)
	c := mahjong.ToCount(tiles)
	assert.Equal(t, 3, c[mahjong.MakeKind(mahjong.SuitCharacter, 5)])
	assert.Equal(t, 3, c.Total())
	assert.Equal(t, "555m", c.String())
}

func TestToCount_OrderIndependent(t *testing.T) {
	tiles, err := mahjong.ParseTiles("1m2m3m4m5m6m7p8p9p2s3s4s5z")
	require.NoError(t, err)
	reversed := slices.Clone(tiles)
	slices.Reverse(reversed)

	a := mahjong.ToCount(tiles)
	b := mahjong.ToCount(reversed)
	assert.Equal(t, a, b)
	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, "123456m789p234s5z", a.String())
}

func TestHandCount_Validate(t *testing.T) {
	c := mahjong.MustParseCount("123m456m789m123p1z")
	require.NoError(t, c.Validate())
	require.NoError(t, c.Validate(13))
	err := c.Validate(14)
	assert.True(t, errors.Is(err, mahjong.ErrInvalidHandSize))

	var over mahjong.HandCount
	over[0] = 5
	assert.True(t, errors.Is(over.Validate(), mahjong.ErrTileOverflow))

	_, err = mahjong.ParseCount("11111m")
	assert.True(t, errors.Is(err, mahjong.ErrTileOverflow))
}

func TestHandCount_AddRemoveIsCopy(t *testing.T) {
	c := mahjong.MustParseCount("123m")
	k := mahjong.MakeKind(mahjong.SuitCharacter, 4)
	added := c.Add(k)
	assert.Equal(t, 3, c.Total())
	assert.Equal(t, 4, added.Total())
	assert.Equal(t, c, added.Remove(k))
	assert.Equal(t, []mahjong.TileKind{0, 1, 2}, c.Kinds())
}
