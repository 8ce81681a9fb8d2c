package trainer

import (
	"github.com/kevin-chtw/tw_trainer/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

type Verdict int

const (
	VerdictOptimal Verdict = iota
	VerdictAcceptable
	VerdictMistake
)

func (v Verdict) String() string {
	switch v {
	case VerdictOptimal:
		return "optimal"
	case VerdictAcceptable:
		return "acceptable"
	case VerdictMistake:
		return "mistake"
	}
	return "unknown"
}

// Feedback 一次打牌的点评
type Feedback struct {
	Discard     mahjong.TileKind
	Verdict     Verdict
	Shanten     int
	ShantenLoss int
	UkeireLoss  int
	Best        []mahjong.TileKind
	Candidates  []DiscardCandidate
}

type coachOptions struct {
	evaluator Evaluator
	tolerance int
}

// CoachOption 点评选项函数类型
type CoachOption func(*coachOptions)

// WithEvaluator 指定牌形计算，默认不带缓存
func WithEvaluator(ev Evaluator) CoachOption {
	return func(o *coachOptions) {
		o.evaluator = ev
	}
}

// WithTolerance 向听数不变时，进张少于最优不超过 n 张算可以接受
func WithTolerance(n int) CoachOption {
	return func(o *coachOptions) {
		o.tolerance = max(n, 0)
	}
}

type Coach struct {
	ev        Evaluator
	tolerance int
}

func NewCoach(opts ...CoachOption) *Coach {
	options := &coachOptions{evaluator: Engine{}}
	for _, opt := range opts {
		opt(options)
	}
	return &Coach{ev: options.evaluator, tolerance: options.tolerance}
}

// Review 点评从 14 张手牌 hand 中打出 discard。visible 为场上可见的牌。
func (c *Coach) Review(hand mahjong.HandCount, discard mahjong.TileKind, visible ...mahjong.HandCount) (Feedback, error) {
	if err := hand.Validate(mahjong.TileCountFull); err != nil {
		return Feedback{}, err
	}
	if !discard.IsValid() || !hand.Has(discard) {
		return Feedback{}, mahjong.ErrInvalidTile.WithContext("discard", discard.String()).WithContext("hand", hand.String())
	}

	ranked, err := RankDiscards(c.ev, hand, mahjong.Unseen(hand, visible...))
	if err != nil {
		return Feedback{}, err
	}

	best := ranked[0]
	var chosen DiscardCandidate
	for _, d := range ranked {
		if d.Discard == discard {
			chosen = d
			break
		}
	}

	fb := Feedback{
		Discard:     discard,
		Shanten:     chosen.Shanten,
		ShantenLoss: chosen.Shanten - best.Shanten,
		UkeireLoss:  best.Total() - chosen.Total(),
		Best:        BestDiscards(ranked),
		Candidates:  ranked,
	}
	switch {
	case fb.ShantenLoss > 0:
		fb.Verdict = VerdictMistake
	case fb.UkeireLoss <= 0:
		fb.Verdict = VerdictOptimal
	case fb.UkeireLoss <= c.tolerance:
		fb.Verdict = VerdictAcceptable
	default:
		fb.Verdict = VerdictMistake
	}
	logger.Log.Debugf("review %s discard %s: %s shanten=%d loss=%d", hand, discard, fb.Verdict, fb.Shanten, fb.UkeireLoss)
	return fb, nil
}
