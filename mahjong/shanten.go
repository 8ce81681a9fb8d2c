package mahjong

// ShantenResult 各牌型的向听数及最小值
type ShantenResult struct {
	Value           int
	Shape           Shape // 取得最小值的牌型
	Standard        int
	SevenPairs      int
	ThirteenOrphans int
}

// Shanten 13 张手牌的向听数，0 为听牌。
// 一般型按 8 - 2*面子 - min(搭子, 4-面子) - 雀头 计算，十三幺在已有幺九对子时再减 1；
// 这样算出的值满足：听牌当且仅当有听牌张，摸一张最多减少 1 向听。
func Shanten(c HandCount) (int, error) {
	r, err := CalcShanten(c)
	if err != nil {
		return MaxShanten, err
	}
	return r.Value, nil
}

// CalcShanten 分别计算一般型、七对、十三幺并取最小
func CalcShanten(c HandCount) (ShantenResult, error) {
	if err := c.Validate(TileCountHand); err != nil {
		return ShantenResult{Value: MaxShanten}, err
	}
	r := calcShanten(&c)
	r.Value = max(r.Value, 0)
	return r, nil
}

func calcShanten(c *HandCount) ShantenResult {
	r := ShantenResult{
		Standard:        standardShanten(c),
		SevenPairs:      sevenPairsShanten(c),
		ThirteenOrphans: thirteenOrphansShanten(c),
	}
	r.Value, r.Shape = r.Standard, ShapeStandard
	if r.SevenPairs < r.Value {
		r.Value, r.Shape = r.SevenPairs, ShapeSevenPairs
	}
	if r.ThirteenOrphans < r.Value {
		r.Value, r.Shape = r.ThirteenOrphans, ShapeThirteenOrphans
	}
	return r
}

// shanten 不校验张数。14 张时和牌为 -1，用于计算有效进张。
func shanten(c *HandCount) int {
	return calcShanten(c).Value
}

// sevenPairsShanten 有 4 张相同的牌时七对不成立
func sevenPairsShanten(c *HandCount) int {
	pairs, singles := 0, 0
	for _, v := range c {
		switch {
		case v >= 4:
			return ShantenNone
		case v >= 2:
			pairs++
		case v == 1:
			singles++
		}
	}
	return 6 - pairs + max(0, 7-pairs-singles)
}

func thirteenOrphansShanten(c *HandCount) int {
	distinct := 0
	pair := false
	for _, k := range TerminalsAndHonors {
		if c[k] > 0 {
			distinct++
			if c[k] >= 2 {
				pair = true
			}
		}
	}
	sh := 13 - distinct
	if pair {
		sh--
	}
	return sh
}

func standardShanten(c *HandCount) int {
	s := &shantenSearch{count: *c, best: MaxShanten, left: c.Total()}
	s.walk(0, 0, 0, 0)
	return s.best
}

// shantenSearch 一般型向听数搜索。melds 面子数，partials 搭子数，pair 雀头 0/1；
// 跳过一张牌表示该牌最终要被换掉。left 为未处理的张数。
type shantenSearch struct {
	count HandCount
	best  int
	left  int
}

func (s *shantenSearch) walk(from, melds, partials, pair int) {
	if melds > MeldCount {
		return
	}
	sh := MaxShanten - 2*melds - min(partials, MeldCount-melds) - pair
	if sh < s.best {
		s.best = sh
	}
	// 每张剩余的牌最多再减少 2/3 向听
	if sh-2*s.left/3 >= s.best {
		return
	}

	i := from
	for i < NumKinds && s.count[i] == 0 {
		i++
	}
	if i == NumKinds {
		return
	}
	k := TileKind(i)

	if s.count[i] >= 3 {
		s.take(i, i, i)
		s.walk(i, melds+1, partials, pair)
		s.put(i, i, i)
	}
	if canStartRun(k) && s.count[i+1] > 0 && s.count[i+2] > 0 {
		s.take(i, i+1, i+2)
		s.walk(i, melds+1, partials, pair)
		s.put(i, i+1, i+2)
	}
	if s.count[i] >= 2 {
		s.take(i, i)
		if pair == 0 {
			s.walk(i, melds, partials, 1)
		}
		s.walk(i, melds, partials+1, pair)
		s.put(i, i)
	}
	if k.IsSuited() {
		r := k.Rank()
		if r <= 8 && s.count[i+1] > 0 {
			s.take(i, i+1)
			s.walk(i, melds, partials+1, pair)
			s.put(i, i+1)
		}
		if r <= 7 && s.count[i+2] > 0 {
			s.take(i, i+2)
			s.walk(i, melds, partials+1, pair)
			s.put(i, i+2)
		}
	}

	s.take(i)
	s.walk(i, melds, partials, pair)
	s.put(i)
}

func (s *shantenSearch) take(idx ...int) {
	for _, i := range idx {
		s.count[i]--
	}
	s.left -= len(idx)
}

func (s *shantenSearch) put(idx ...int) {
	for _, i := range idx {
		s.count[i]++
	}
	s.left += len(idx)
}
