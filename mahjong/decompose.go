package mahjong

import "slices"

// Meld 面子，First 为刻子的牌或顺子的第一张
type Meld struct {
	Type  MeldType
	First TileKind
}

func (m Meld) Kinds() []TileKind {
	if m.Type == MeldRun {
		return []TileKind{m.First, m.First + 1, m.First + 2}
	}
	return []TileKind{m.First, m.First, m.First}
}

func (m Meld) String() string {
	return KindsName(m.Kinds())
}

// Decomposition 和牌判定结果。Shape 为 ShapeStandard 时 Pair、Melds 有效；
// 七对与十三幺时 Pair 为对子（十三幺为重复的那张），Melds 为空。
type Decomposition struct {
	Shape Shape
	Pair  TileKind
	Melds []Meld
}

func (d Decomposition) Complete() bool {
	return d.Shape != ShapeIncomplete
}

// Decompose 判断 14 张手牌是否和牌。优先级：七对、十三幺、一般型。
func Decompose(c HandCount) (Decomposition, error) {
	if err := c.Validate(TileCountFull); err != nil {
		return Decomposition{}, err
	}
	return decompose(c), nil
}

// IsComplete 14 张是否和牌
func IsComplete(c HandCount) (bool, error) {
	d, err := Decompose(c)
	if err != nil {
		return false, err
	}
	return d.Complete(), nil
}

// StandardDecompositions lists every distinct pair + four melds partition.
func StandardDecompositions(c HandCount) ([]Decomposition, error) {
	if err := c.Validate(TileCountFull); err != nil {
		return nil, err
	}
	var out []Decomposition
	seen := make(map[string]struct{})
	s := &standardSearch{count: c, pair: TileKindNull, collect: func(pair TileKind, melds []Meld) {
		sorted := slices.Clone(melds)
		slices.SortFunc(sorted, compareMeld)
		key := pair.String()
		for _, m := range sorted {
			key += "|" + m.Type.String() + m.First.String()
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, Decomposition{Shape: ShapeStandard, Pair: pair, Melds: sorted})
	}}
	s.walk(0)
	return out, nil
}

func decompose(c HandCount) Decomposition {
	if pair, ok := sevenPairs(&c); ok {
		return Decomposition{Shape: ShapeSevenPairs, Pair: pair}
	}
	if pair, ok := thirteenOrphans(&c); ok {
		return Decomposition{Shape: ShapeThirteenOrphans, Pair: pair}
	}
	var d Decomposition
	s := &standardSearch{count: c, pair: TileKindNull, collect: func(pair TileKind, melds []Meld) {
		d = Decomposition{Shape: ShapeStandard, Pair: pair, Melds: slices.Clone(melds)}
	}, stopFirst: true}
	s.walk(0)
	return d
}

// isComplete 不做校验，供听牌枚举的 34 次尝试使用
func isComplete(c *HandCount) bool {
	if _, ok := sevenPairs(c); ok {
		return true
	}
	if _, ok := thirteenOrphans(c); ok {
		return true
	}
	s := &standardSearch{count: *c, pair: TileKindNull, stopFirst: true}
	return s.walk(0)
}

// sevenPairs 恰好 7 种牌且每种 2 张，返回最小的对子
func sevenPairs(c *HandCount) (TileKind, bool) {
	kinds := 0
	first := TileKindNull
	for k, v := range c {
		switch v {
		case 0:
		case 2:
			kinds++
			if first == TileKindNull {
				first = TileKind(k)
			}
		default:
			return TileKindNull, false
		}
	}
	return first, kinds == 7
}

// thirteenOrphans 13 种幺九牌各至少一张，恰好一种两张，且没有其他牌
func thirteenOrphans(c *HandCount) (TileKind, bool) {
	pair := TileKindNull
	distinct := 0
	for i, v := range c {
		if v == 0 {
			continue
		}
		k := TileKind(i)
		if !k.IsTerminalOrHonor() || v > 2 {
			return TileKindNull, false
		}
		if v == 2 {
			if pair != TileKindNull {
				return TileKindNull, false
			}
			pair = k
		}
		distinct++
	}
	return pair, pair != TileKindNull && distinct == len(TerminalsAndHonors)
}

// standardSearch 一般型拆解：对当前最小的牌依次尝试刻子、顺子、雀头，
// 进入分支前扣减，返回后恢复。
type standardSearch struct {
	count     HandCount
	pair      TileKind
	melds     []Meld
	collect   func(pair TileKind, melds []Meld)
	stopFirst bool
}

func (s *standardSearch) walk(from int) bool {
	i := from
	for i < NumKinds && s.count[i] == 0 {
		i++
	}
	if i == NumKinds {
		if len(s.melds) != MeldCount || s.pair == TileKindNull {
			return false
		}
		if s.collect != nil {
			s.collect(s.pair, s.melds)
		}
		return s.stopFirst
	}

	k := TileKind(i)
	if s.count[i] >= 3 && len(s.melds) < MeldCount {
		s.count[i] -= 3
		s.melds = append(s.melds, Meld{Type: MeldTriplet, First: k})
		done := s.walk(i)
		s.melds = s.melds[:len(s.melds)-1]
		s.count[i] += 3
		if done {
			return true
		}
	}
	if canStartRun(k) && s.count[i+1] > 0 && s.count[i+2] > 0 && len(s.melds) < MeldCount {
		s.count[i]--
		s.count[i+1]--
		s.count[i+2]--
		s.melds = append(s.melds, Meld{Type: MeldRun, First: k})
		done := s.walk(i)
		s.melds = s.melds[:len(s.melds)-1]
		s.count[i]++
		s.count[i+1]++
		s.count[i+2]++
		if done {
			return true
		}
	}
	if s.pair == TileKindNull && s.count[i] >= 2 {
		s.count[i] -= 2
		s.pair = k
		done := s.walk(i)
		s.pair = TileKindNull
		s.count[i] += 2
		if done {
			return true
		}
	}
	return false
}

func compareMeld(a, b Meld) int {
	if a.First != b.First {
		return int(a.First) - int(b.First)
	}
	return int(a.Type) - int(b.Type)
}

// canStartRun 数牌且点数不超过 7
func canStartRun(k TileKind) bool {
	return k.IsSuited() && k.Rank() <= 7
}
