package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/kevin-chtw/tw_trainer/mahjong"
	"github.com/kevin-chtw/tw_trainer/simulate"
	"github.com/kevin-chtw/tw_trainer/trainer"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// 单次 Simulate 请求的局数上限
const maxSimulateRuns = 2000

// Analyzer 牌形分析服务，客户端直接调用
type Analyzer struct {
	component.Base
	ev        trainer.Evaluator
	coach     *trainer.Coach
	sim       *simulate.Simulator
	draws     int
	runs      int
	maxRuns   int
	scenarios []*trainer.Scenario
}

func NewAnalyzer(cfg *trainer.Config, ev trainer.Evaluator) *Analyzer {
	return &Analyzer{
		ev:      ev,
		coach:   trainer.NewCoach(trainer.WithEvaluator(ev), trainer.WithTolerance(cfg.Tolerance)),
		sim:     simulate.NewFromConfig(cfg, ev),
		draws:   cfg.MaxDraws,
		runs:    cfg.Simulations,
		maxRuns: min(max(cfg.Simulations, 1)*10, maxSimulateRuns),
	}
}

// LoadScenarios 读取题库目录，目录不存在时题库为空
func (a *Analyzer) LoadScenarios(dir string) error {
	ss, err := trainer.LoadScenarios(dir)
	if err != nil {
		return err
	}
	a.scenarios = ss
	logger.Log.Infof("loaded %d scenarios from %s", len(ss), dir)
	return nil
}

func (a *Analyzer) scenario(name string) *trainer.Scenario {
	for _, s := range a.scenarios {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func recoverPanic(err *error) {
	if r := recover(); r != nil {
		logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
		*err = fmt.Errorf("internal error: %v", r)
	}
}

func parseDiscard(s string) (mahjong.TileKind, error) {
	ks, err := mahjong.ParseKinds(s)
	if err != nil {
		return mahjong.TileKindNull, err
	}
	if len(ks) != 1 {
		return mahjong.TileKindNull, mahjong.ErrInvalidTile.WithContext("discard", s)
	}
	return ks[0], nil
}

func newReviewAck(fb trainer.Feedback) *ReviewAck {
	return &ReviewAck{
		Discard:     fb.Discard.String(),
		DiscardName: fb.Discard.Name(),
		Verdict:     fb.Verdict.String(),
		Shanten:     fb.Shanten,
		ShantenLoss: fb.ShantenLoss,
		UkeireLoss:  fb.UkeireLoss,
		Best:        names(fb.Best),
	}
}

func parseHand(hand, visible string, sizes ...int) (mahjong.HandCount, mahjong.HandCount, error) {
	c, err := mahjong.ParseCount(hand)
	if err != nil {
		return c, c, err
	}
	if err := c.Validate(sizes...); err != nil {
		return c, c, err
	}
	v, err := mahjong.ParseCount(visible)
	if err != nil {
		return c, v, err
	}
	for i := range mahjong.NumKinds {
		if c[i]+v[i] > mahjong.CopiesPerKind {
			return c, v, mahjong.ErrTileOverflow.WithContext("tile", mahjong.TileKind(i).String()).WithContext("reason", "hand plus visible")
		}
	}
	return c, v, nil
}

func names(ks []mahjong.TileKind) []string {
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = k.String()
	}
	return out
}

func newUkeireAck(r mahjong.UkeireResult) *UkeireAck {
	ack := &UkeireAck{Waits: names(r.Waits), Total: r.Total, Counts: make(map[string]int, len(r.Counts))}
	for k, n := range r.Counts {
		ack.Counts[k.String()] = n
	}
	return ack
}

func (a *Analyzer) Shanten(ctx context.Context, req *HandReq) (ack *ShantenAck, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	c, _, err := parseHand(req.Hand, "", mahjong.TileCountHand)
	if err != nil {
		logger.Log.Warnf("shanten %q: %v", req.Hand, err)
		return nil, err
	}
	r, err := mahjong.CalcShanten(c)
	if err != nil {
		return nil, err
	}
	return &ShantenAck{
		Shanten:         r.Value,
		Shape:           r.Shape.String(),
		Standard:        r.Standard,
		SevenPairs:      r.SevenPairs,
		ThirteenOrphans: r.ThirteenOrphans,
	}, nil
}

// Waits 听牌及剩余张数，手牌未听牌时 waits 为空
func (a *Analyzer) Waits(ctx context.Context, req *HandReq) (ack *UkeireAck, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	c, v, err := parseHand(req.Hand, req.Visible, mahjong.TileCountHand)
	if err != nil {
		logger.Log.Warnf("waits %q: %v", req.Hand, err)
		return nil, err
	}
	r, err := a.ev.Ukeire(c, mahjong.Unseen(c, v))
	if err != nil {
		return nil, err
	}
	return newUkeireAck(r), nil
}

// Ukeire 听牌时同 Waits，否则为改良进张
func (a *Analyzer) Ukeire(ctx context.Context, req *HandReq) (ack *UkeireAck, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	c, v, err := parseHand(req.Hand, req.Visible, mahjong.TileCountHand)
	if err != nil {
		logger.Log.Warnf("ukeire %q: %v", req.Hand, err)
		return nil, err
	}
	r, err := a.ev.Improvements(c, mahjong.Unseen(c, v))
	if err != nil {
		return nil, err
	}
	return newUkeireAck(r), nil
}

func (a *Analyzer) Rank(ctx context.Context, req *HandReq) (ack *RankAck, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	c, v, err := parseHand(req.Hand, req.Visible, mahjong.TileCountFull)
	if err != nil {
		logger.Log.Warnf("rank %q: %v", req.Hand, err)
		return nil, err
	}
	ranked, err := trainer.RankDiscards(a.ev, c, mahjong.Unseen(c, v))
	if err != nil {
		return nil, err
	}
	ack = &RankAck{Best: names(trainer.BestDiscards(ranked))}
	for _, d := range ranked {
		ack.Candidates = append(ack.Candidates, CandidateAck{
			Discard: d.Discard.String(),
			Shanten: d.Shanten,
			Total:   d.Total(),
			Loss:    d.Loss,
			Accept:  names(d.Accept.Waits),
		})
	}
	return ack, nil
}

func (a *Analyzer) Review(ctx context.Context, req *ReviewReq) (ack *ReviewAck, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	c, v, err := parseHand(req.Hand, req.Visible, mahjong.TileCountFull)
	if err != nil {
		logger.Log.Warnf("review %q: %v", req.Hand, err)
		return nil, err
	}
	discard, err := parseDiscard(req.Discard)
	if err != nil {
		return nil, err
	}
	fb, err := a.coach.Review(c, discard, v)
	if err != nil {
		return nil, err
	}
	logger.Log.Infof("review %s discard %s: %s", c, discard, fb.Verdict)
	return newReviewAck(fb), nil
}

// Scenarios 题库列表
func (a *Analyzer) Scenarios(ctx context.Context, req *ScenarioListReq) (*ScenarioListAck, error) {
	ack := &ScenarioListAck{Scenarios: make([]ScenarioAck, 0, len(a.scenarios))}
	for _, s := range a.scenarios {
		sa := ScenarioAck{Name: s.Name, Hand: s.Hand.String(), Note: s.Note}
		sa.Visible = s.Visible.String()
		ack.Scenarios = append(ack.Scenarios, sa)
	}
	return ack, nil
}

// Answer 回答题库中的一道题
func (a *Analyzer) Answer(ctx context.Context, req *AnswerReq) (ack *ReviewAck, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	s := a.scenario(req.Scenario)
	if s == nil {
		return nil, fmt.Errorf("scenario %q not found", req.Scenario)
	}
	discard, err := parseDiscard(req.Discard)
	if err != nil {
		return nil, err
	}
	fb, err := s.Answer(a.coach, discard)
	if err != nil {
		return nil, err
	}
	logger.Log.Infof("scenario %s discard %s: %s", s.Name, discard, fb.Verdict)
	return newReviewAck(fb), nil
}

// Simulate 蒙特卡洛模拟，draws/runs 为 0 时使用配置值，runs 最多为配置值的 10 倍
func (a *Analyzer) Simulate(ctx context.Context, req *SimulateReq) (ack *SimulateAck, err error) {
	defer recoverPanic(&err)
	if req == nil {
		return nil, errors.New("nil request")
	}
	c, v, err := parseHand(req.Hand, req.Visible, mahjong.TileCountHand, mahjong.TileCountFull)
	if err != nil {
		logger.Log.Warnf("simulate %q: %v", req.Hand, err)
		return nil, err
	}
	draws, runs := req.Draws, req.Runs
	if draws <= 0 {
		draws = a.draws
	}
	if runs <= 0 {
		runs = a.runs
	}
	runs = min(runs, a.maxRuns)

	res, err := a.sim.TenpaiRate(ctx, c, mahjong.Unseen(c, v), draws, runs)
	if err != nil {
		return nil, err
	}
	return &SimulateAck{
		Runs:         res.Runs,
		TenpaiRate:   res.TenpaiRate(),
		CompleteRate: res.CompleteRate(),
		AvgDraws:     res.AvgDraws,
	}, nil
}
