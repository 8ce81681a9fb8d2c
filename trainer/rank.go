package trainer

import (
	"cmp"
	"slices"

	"github.com/kevin-chtw/tw_trainer/mahjong"
)

// DiscardCandidate 打出某张牌之后的结果
type DiscardCandidate struct {
	Discard mahjong.TileKind
	Shanten int
	// 听牌时为听牌进张，否则为改良进张
	Accept mahjong.UkeireResult
	// 同向听数中最优候选的进张数减去本候选的进张数
	Loss int
}

func (d DiscardCandidate) Total() int {
	return d.Accept.Total
}

// RankDiscards 对 14 张手牌的每种可打的牌排序：向听数升序，进张降序，牌序升序。
// avail 按 14 张手牌计算，打出的牌已经看得见，不需要再扣除。
func RankDiscards(ev Evaluator, c14 mahjong.HandCount, avail mahjong.Availability) ([]DiscardCandidate, error) {
	if err := c14.Validate(mahjong.TileCountFull); err != nil {
		return nil, err
	}

	kinds := c14.Kinds()
	out := make([]DiscardCandidate, 0, len(kinds))
	for _, k := range kinds {
		c13 := c14.Remove(k)
		sh, err := ev.Shanten(c13)
		if err != nil {
			return nil, err
		}
		var acc mahjong.UkeireResult
		if sh == 0 {
			acc, err = ev.Ukeire(c13, avail)
		} else {
			acc, err = ev.Improvements(c13, avail)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, DiscardCandidate{Discard: k, Shanten: sh, Accept: acc})
	}

	best := make(map[int]int)
	for _, d := range out {
		best[d.Shanten] = max(best[d.Shanten], d.Total())
	}
	for i := range out {
		out[i].Loss = best[out[i].Shanten] - out[i].Total()
	}

	slices.SortFunc(out, func(a, b DiscardCandidate) int {
		return cmp.Or(
			cmp.Compare(a.Shanten, b.Shanten),
			cmp.Compare(b.Total(), a.Total()),
			cmp.Compare(a.Loss, b.Loss),
			cmp.Compare(a.Discard, b.Discard),
		)
	})
	return out, nil
}

// BestDiscards 与第一名向听数、进张数都相同的候选
func BestDiscards(ranked []DiscardCandidate) []mahjong.TileKind {
	if len(ranked) == 0 {
		return nil
	}
	var out []mahjong.TileKind
	for _, d := range ranked {
		if d.Shanten != ranked[0].Shanten || d.Total() != ranked[0].Total() {
			break
		}
		out = append(out, d.Discard)
	}
	return out
}
