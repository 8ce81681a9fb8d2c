package evalcache_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/kevin-chtw/tw_trainer/evalcache"
	"github.com/kevin-chtw/tw_trainer/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_MatchesEngine(t *testing.T) {
	c, err := evalcache.New(16)
	require.NoError(t, err)

	hand := mahjong.MustParseCount("1112345678999m")
	for range 2 {
		sh, err := c.Shanten(hand)
		require.NoError(t, err)
		assert.Equal(t, 0, sh)

		ws, err := c.Waits(hand)
		require.NoError(t, err)
		want, _ := mahjong.Waits(hand)
		assert.Equal(t, want, ws)
	}
	assert.Equal(t, 2, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestCache_UkeireRecomputesAvailability(t *testing.T) {
	c, err := evalcache.New(16)
	require.NoError(t, err)

	hand := mahjong.MustParseCount("1m2m3m4m5m6m7p8p9p2s3s4s5z")
	r, err := c.Ukeire(hand, mahjong.FullWall(hand))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Total)

	r, err = c.Ukeire(hand, mahjong.Unseen(hand, mahjong.MustParseCount("55z")))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Total)
	assert.Equal(t, []mahjong.TileKind{mahjong.KindWhite}, r.Waits)
}

func TestCache_Improvements(t *testing.T) {
	c, err := evalcache.New(0)
	require.NoError(t, err)

	hand := mahjong.MustParseCount("123m456m789m11p56z")
	got, err := c.Improvements(hand, mahjong.FullWall(hand))
	require.NoError(t, err)
	want, err := mahjong.Improvements(hand, mahjong.FullWall(hand))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 2, c.Len())

	// 命中缓存后按新的 avail 重新计算张数
	visible := mahjong.MustParseCount("555z")
	got, err = c.Improvements(hand, mahjong.Unseen(hand, visible))
	require.NoError(t, err)
	want, err = mahjong.Improvements(hand, mahjong.Unseen(hand, visible))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 0, got.Counts[mahjong.KindWhite])
	assert.Equal(t, 2, c.Len())

	// 听牌时走听牌缓存
	tenpai := mahjong.MustParseCount("1112345678999m")
	got, err = c.Improvements(tenpai, mahjong.FullWall(tenpai))
	require.NoError(t, err)
	assert.Equal(t, 23, got.Total)
	assert.Equal(t, 4, c.Len())
}

func TestCache_ErrorsNotCached(t *testing.T) {
	c, err := evalcache.New(16)
	require.NoError(t, err)

	_, err = c.Shanten(mahjong.MustParseCount("123m"))
	assert.True(t, errors.Is(err, mahjong.ErrInvalidHandSize))
	_, err = c.Waits(mahjong.MustParseCount("123m"))
	assert.True(t, errors.Is(err, mahjong.ErrInvalidHandSize))
	assert.Equal(t, 0, c.Len())
}

func TestCache_Eviction(t *testing.T) {
	c, err := evalcache.New(1)
	require.NoError(t, err)

	_, err = c.Shanten(mahjong.MustParseCount("123m456m789m123p1z"))
	require.NoError(t, err)
	_, err = c.Shanten(mahjong.MustParseCount("123m456m789m123p2z"))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestCache_Concurrent(t *testing.T) {
	c, err := evalcache.New(64)
	require.NoError(t, err)

	hands := []string{
		"1112345678999m",
		"123m456m789m11p56z",
		"112233m1122p11s1z",
		"19m19p19s1234567z",
	}
	var wg sync.WaitGroup
	for range 8 {
		for _, h := range hands {
			wg.Add(1)
			go func() {
				defer wg.Done()
				hc := mahjong.MustParseCount(h)
				got, err := c.Shanten(hc)
				assert.NoError(t, err)
				want, _ := mahjong.Shanten(hc)
				assert.Equal(t, want, got)
			}()
		}
	}
	wg.Wait()
	assert.Equal(t, len(hands), c.Len())
}
