package trainer_test

import (
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_trainer/mahjong"
	"github.com/kevin-chtw/tw_trainer/trainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := trainer.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.CacheSize)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 18, cfg.MaxDraws)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	t.Setenv("TRAINER_WORKERS", "9")

	cfg, err := trainer.LoadConfig("testdata/trainer.yaml")
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.CacheSize)
	assert.Equal(t, 9, cfg.Workers)
	assert.Equal(t, 200, cfg.Simulations)
	assert.Equal(t, 12, cfg.MaxDraws)
	assert.Equal(t, 1, cfg.Tolerance)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "./testdata/scenarios", cfg.ScenarioDir)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := trainer.LoadConfig("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestLoadScenarios(t *testing.T) {
	ss, err := trainer.LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	require.Len(t, ss, 2)

	assert.Equal(t, "tanki", ss[0].Name)
	assert.Equal(t, 14, ss[0].Hand.Total())
	assert.Equal(t, 2, ss[0].Visible[mahjong.KindWhite])
	assert.Equal(t, []mahjong.TileKind{mahjong.KindWhite}, ss[0].Best)
	assert.NotEmpty(t, ss[0].Note)

	assert.Equal(t, "honors", ss[1].Name)
	assert.Len(t, ss[1].Best, 3)
}

func TestLoadScenarios_Invalid(t *testing.T) {
	_, err := trainer.LoadScenarios("testdata/broken")
	assert.True(t, errors.Is(err, mahjong.ErrInvalidHandSize))
}

func TestScenario_Answer(t *testing.T) {
	ss, err := trainer.LoadScenarios("testdata/scenarios")
	require.NoError(t, err)
	coach := trainer.NewCoach(trainer.WithTolerance(1))

	tanki := ss[0]
	fb, err := tanki.Answer(coach, mahjong.KindWhite)
	require.NoError(t, err)
	assert.Equal(t, trainer.VerdictOptimal, fb.Verdict)

	fb, err = tanki.Answer(coach, mahjong.KindGreen)
	require.NoError(t, err)
	assert.Equal(t, trainer.VerdictMistake, fb.Verdict)

	honors := ss[1]
	for _, k := range honors.Best {
		fb, err = honors.Answer(coach, k)
		require.NoError(t, err)
		assert.Equal(t, trainer.VerdictOptimal, fb.Verdict, k.String())
	}
}
