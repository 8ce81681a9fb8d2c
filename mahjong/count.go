package mahjong

import (
	"strconv"
	"strings"
)

// HandCount 每种牌的张数。数组是值类型，赋值即拷贝，各组件之间不会共享可变状态。
type HandCount [NumKinds]int

// ToCount counts tiles by kind. Red fives count as the plain rank 5.
func ToCount(tiles []Tile) HandCount {
	var c HandCount
	for _, t := range tiles {
		if t.Kind.IsValid() {
			c[t.Kind]++
		}
	}
	return c
}

// ParseCount parses MPSZ notation and validates the copy limit.
func ParseCount(s string) (HandCount, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return HandCount{}, err
	}
	c := ToCount(tiles)
	if err := c.Validate(); err != nil {
		return HandCount{}, err
	}
	return c, nil
}

// MustParseCount panics on malformed input; meant for fixtures.
func MustParseCount(s string) HandCount {
	c, err := ParseCount(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c HandCount) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Validate checks 0 <= count <= 4 for every kind and, when sizes are given,
// that the total equals one of them.
func (c HandCount) Validate(sizes ...int) error {
	for k, v := range c {
		if v < 0 || v > CopiesPerKind {
			return ErrTileOverflow.WithContext("tile", TileKind(k).String()).WithContext("count", v)
		}
	}
	if len(sizes) == 0 {
		return nil
	}
	total := c.Total()
	for _, n := range sizes {
		if total == n {
			return nil
		}
	}
	return ErrInvalidHandSize.WithContext("total", total).WithContext("want", sizes)
}

func (c HandCount) Add(k TileKind) HandCount {
	c[k]++
	return c
}

func (c HandCount) Remove(k TileKind) HandCount {
	c[k]--
	return c
}

func (c HandCount) Has(k TileKind) bool {
	return k.IsValid() && c[k] > 0
}

// Kinds 手牌中出现的牌种，升序
func (c HandCount) Kinds() []TileKind {
	var res []TileKind
	for k, v := range c {
		if v > 0 {
			res = append(res, TileKind(k))
		}
	}
	return res
}

// Key 用作缓存键
func (c HandCount) Key() string {
	var b [NumKinds]byte
	for i, v := range c {
		b[i] = byte('0' + v)
	}
	return string(b[:])
}

// String 以 MPSZ 写法输出，例如 123m456p77z
func (c HandCount) String() string {
	var sb strings.Builder
	for s := SuitBegin; s < SuitEnd; s++ {
		wrote := false
		for r := 1; r <= RankCountBySuit[s]; r++ {
			for range c[MakeKind(s, r)] {
				sb.WriteString(strconv.Itoa(r))
				wrote = true
			}
		}
		if wrote {
			sb.WriteByte(suitLetters[s])
		}
	}
	return sb.String()
}
