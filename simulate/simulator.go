package simulate

import (
	"context"
	"math/rand"
	"time"

	"github.com/kevin-chtw/tw_trainer/mahjong"
	"github.com/kevin-chtw/tw_trainer/trainer"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// Result 多局模拟的统计
type Result struct {
	Runs     int
	Tenpai   int // 期间听过牌的局数
	Complete int // 和牌局数
	// 和牌局的平均摸牌数
	AvgDraws float64
}

func (r Result) TenpaiRate() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.Tenpai) / float64(r.Runs)
}

func (r Result) CompleteRate() float64 {
	if r.Runs == 0 {
		return 0
	}
	return float64(r.Complete) / float64(r.Runs)
}

type Simulator struct {
	ev      trainer.Evaluator
	workers int
	seed    int64
}

type Option func(*Simulator)

func WithWorkers(n int) Option {
	return func(s *Simulator) {
		s.workers = n
	}
}

// WithSeed 固定随机种子，第 i 局使用 seed+i
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.seed = seed
	}
}

func New(ev trainer.Evaluator, opts ...Option) *Simulator {
	s := &Simulator{ev: ev, workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	if s.ev == nil {
		s.ev = trainer.Engine{}
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	return s
}

// NewFromConfig 按配置创建
func NewFromConfig(cfg *trainer.Config, ev trainer.Evaluator) *Simulator {
	return New(ev, WithWorkers(cfg.Workers), WithSeed(cfg.Seed))
}

type runResult struct {
	tenpai   bool
	complete bool
	draws    int
}

// TenpaiRate 从 hand（13 或 14 张）开始，每局至多摸 draws 张，打牌按 RankDiscards 的第一名，
// 统计 runs 局中听牌与和牌的比例。avail 为开局时各种牌剩余张数。
func (s *Simulator) TenpaiRate(ctx context.Context, hand mahjong.HandCount, avail mahjong.Availability, draws, runs int) (Result, error) {
	if err := hand.Validate(mahjong.TileCountHand, mahjong.TileCountFull); err != nil {
		return Result{}, err
	}
	if runs <= 0 {
		return Result{}, nil
	}

	results := make([]runResult, runs)
	g, ctx := errgroup.WithContext(ctx)
	if s.workers > 0 {
		g.SetLimit(s.workers)
	}
	for i := range runs {
		g.Go(func() error {
			rnd := rand.New(rand.NewSource(s.seed + int64(i)))
			wall, err := NewWall(avail, rnd)
			if err != nil {
				return err
			}
			r, err := s.play(ctx, hand, avail, wall, draws)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Runs: runs}
	totalDraws := 0
	for _, r := range results {
		if r.tenpai {
			res.Tenpai++
		}
		if r.complete {
			res.Complete++
			totalDraws += r.draws
		}
	}
	if res.Complete > 0 {
		res.AvgDraws = float64(totalDraws) / float64(res.Complete)
	}
	logger.Log.Debugf("simulate %s: runs=%d tenpai=%d complete=%d", hand, res.Runs, res.Tenpai, res.Complete)
	return res, nil
}

func (s *Simulator) play(ctx context.Context, hand mahjong.HandCount, avail mahjong.Availability, wall *Wall, draws int) (runResult, error) {
	var r runResult
	var seen mahjong.HandCount
	known := func(k mahjong.TileKind) int {
		return max(avail(k)-seen[k], 0)
	}

	c := hand
	for {
		if err := ctx.Err(); err != nil {
			return r, err
		}
		if c.Total() == mahjong.TileCountFull {
			ok, err := mahjong.IsComplete(c)
			if err != nil {
				return r, err
			}
			if ok {
				r.complete, r.tenpai = true, true
				return r, nil
			}
			ranked, err := trainer.RankDiscards(s.ev, c, known)
			if err != nil {
				return r, err
			}
			c = c.Remove(ranked[0].Discard)
		}

		sh, err := s.ev.Shanten(c)
		if err != nil {
			return r, err
		}
		if sh == 0 {
			r.tenpai = true
		}
		if r.draws >= draws {
			return r, nil
		}
		k := wall.Draw()
		if k == mahjong.TileKindNull {
			return r, nil
		}
		r.draws++
		seen[k]++
		c = c.Add(k)
	}
}
