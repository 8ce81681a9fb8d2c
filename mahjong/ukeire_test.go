package mahjong_test

import (
	"context"
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_trainer/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(t *testing.T, s string) []mahjong.TileKind {
	t.Helper()
	ks, err := mahjong.ParseKinds(s)
	require.NoError(t, err)
	return ks
}

func TestWaits_Tanki(t *testing.T) {
	c := mahjong.MustParseCount("1m2m3m4m5m6m7p8p9p2s3s4s5z")
	sh, err := mahjong.Shanten(c)
	require.NoError(t, err)
	assert.Equal(t, 0, sh)

	ws, err := mahjong.Waits(c)
	require.NoError(t, err)
	assert.Equal(t, kinds(t, "5z"), ws)
}

func TestWaits_NineGates(t *testing.T) {
	c := mahjong.MustParseCount("1112345678999m")
	ws, err := mahjong.Waits(c)
	require.NoError(t, err)
	assert.Equal(t, kinds(t, "123456789m"), ws)

	par, err := mahjong.WaitsParallel(context.Background(), c, 4)
	require.NoError(t, err)
	assert.Equal(t, ws, par)
}

func TestWaits_ThirteenSided(t *testing.T) {
	ws, err := mahjong.Waits(mahjong.MustParseCount("19m19p19s1234567z"))
	require.NoError(t, err)
	assert.ElementsMatch(t, mahjong.TerminalsAndHonors[:], ws)
}

func TestWaitsParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mahjong.WaitsParallel(ctx, mahjong.MustParseCount("1112345678999m"), 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// 听牌 ⇔ 至少有一张听牌
func TestWaits_TenpaiIffWaits(t *testing.T) {
	hands := []string{
		"1m2m3m4m5m6m7p8p9p2s3s4s5z",
		"123m456m11p56z789s",
		"112233m1122p11s1z",
		"147m258p369s1234z",
		"19m19p19s1234566z",
		"13579m2468p1357s",
		"234m567p22s345s66z",
		"12m45m78m12p45p79s1z",
		"1111m234p567s789s",
	}
	for _, hand := range hands {
		c := mahjong.MustParseCount(hand)
		sh, err := mahjong.Shanten(c)
		require.NoError(t, err)
		ws, err := mahjong.Waits(c)
		require.NoError(t, err)
		assert.Equal(t, sh == 0, len(ws) > 0, "%s shanten=%d waits=%s", hand, sh, mahjong.KindsName(ws))
	}
}

func TestUkeire(t *testing.T) {
	c := mahjong.MustParseCount("1m2m3m4m5m6m7p8p9p2s3s4s5z")
	discards := mahjong.MustParseCount("55z19m")

	r, err := mahjong.Ukeire(c, mahjong.Unseen(c, discards))
	require.NoError(t, err)
	assert.Equal(t, 1, r.Total)
	assert.Equal(t, map[mahjong.TileKind]int{mahjong.KindWhite: 1}, r.Counts)
	assert.Equal(t, []mahjong.TileKind{mahjong.KindWhite}, r.Waits)

	// 一张都不剩仍然算听牌
	r, err = mahjong.Ukeire(c, func(mahjong.TileKind) int { return 0 })
	require.NoError(t, err)
	assert.Equal(t, 0, r.Total)
	assert.Equal(t, []mahjong.TileKind{mahjong.KindWhite}, r.Waits)

	_, err = mahjong.Ukeire(c, func(mahjong.TileKind) int { return 5 })
	assert.True(t, errors.Is(err, mahjong.ErrInvalidAvailability))
}

func TestUkeire_SumsAcrossWaits(t *testing.T) {
	c := mahjong.MustParseCount("1112345678999m")
	r, err := mahjong.Ukeire(c, mahjong.FullWall(c))
	require.NoError(t, err)
	sum := 0
	for _, n := range r.Counts {
		sum += n
	}
	assert.Equal(t, sum, r.Total)
	// 1m、9m 各剩 1 张，2m-8m 各剩 3 张
	assert.Equal(t, 1+1+3*7, r.Total)
}

func TestImprovements(t *testing.T) {
	c := mahjong.MustParseCount("123m456m789m11p56z")
	r, err := mahjong.Improvements(c, mahjong.FullWall(c))
	require.NoError(t, err)
	assert.Equal(t, kinds(t, "1p56z"), r.Waits)
	assert.Equal(t, 2+3+3, r.Total)

	tenpai := mahjong.MustParseCount("112233m1122p11s1z")
	imp, err := mahjong.Improvements(tenpai, mahjong.FullWall(tenpai))
	require.NoError(t, err)
	uk, err := mahjong.Ukeire(tenpai, mahjong.FullWall(tenpai))
	require.NoError(t, err)
	assert.Equal(t, uk, imp)
	assert.Equal(t, 3, uk.Total)
}

func TestRemaining(t *testing.T) {
	hand := mahjong.MustParseCount("111m")
	rest := mahjong.Remaining(hand, mahjong.MustParseCount("1m2m"), mahjong.MustParseCount("2m"))
	assert.Equal(t, 0, rest[0])
	assert.Equal(t, 2, rest[1])
	assert.Equal(t, 4, rest[mahjong.KindRed])

	avail := mahjong.Unseen(hand)
	assert.Equal(t, 1, avail(0))
	assert.Equal(t, 0, avail(mahjong.TileKindNull))
}

// 空听：唯一的听牌已经全在手里
func TestWaits_Karaten(t *testing.T) {
	c := mahjong.MustParseCount("1111m234p567s789s")
	sh, err := mahjong.Shanten(c)
	require.NoError(t, err)
	assert.Equal(t, 0, sh)

	ws, err := mahjong.Waits(c)
	require.NoError(t, err)
	assert.Equal(t, kinds(t, "1m"), ws)

	r, err := mahjong.Ukeire(c, mahjong.FullWall(c))
	require.NoError(t, err)
	assert.Equal(t, 0, r.Total)
	assert.Equal(t, kinds(t, "1m"), r.Waits)

	par, err := mahjong.WaitsParallel(context.Background(), c, 3)
	require.NoError(t, err)
	assert.Equal(t, ws, par)
}
