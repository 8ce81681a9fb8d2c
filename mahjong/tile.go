package mahjong

import (
	"strconv"
	"strings"
)

// TileKind 34 种牌之一，按花色、点数排序
type TileKind uint8

const TileKindNull TileKind = 0xFF

var (
	KindEast  = MakeKind(SuitHonor, 1) // 东
	KindSouth = MakeKind(SuitHonor, 2) // 南
	KindWest  = MakeKind(SuitHonor, 3) // 西
	KindNorth = MakeKind(SuitHonor, 4) // 北
	KindWhite = MakeKind(SuitHonor, 5) // 白
	KindGreen = MakeKind(SuitHonor, 6) // 发
	KindRed   = MakeKind(SuitHonor, 7) // 中
)

// TerminalsAndHonors 十三幺所需的 13 种牌
var TerminalsAndHonors = [13]TileKind{
	MakeKind(SuitCharacter, 1), MakeKind(SuitCharacter, 9),
	MakeKind(SuitCircle, 1), MakeKind(SuitCircle, 9),
	MakeKind(SuitBamboo, 1), MakeKind(SuitBamboo, 9),
	KindEast, KindSouth, KindWest, KindNorth,
	KindWhite, KindGreen, KindRed,
}

var honorNames = [7]string{"East", "South", "West", "North", "White", "Green", "Red"}

// MakeKind returns TileKindNull when rank is out of range for the suit.
func MakeKind(suit Suit, rank int) TileKind {
	if suit < SuitBegin || suit >= SuitEnd || rank < 1 || rank > RankCountBySuit[suit] {
		return TileKindNull
	}
	return TileKind(KindBeginBySuit[suit] + rank - 1)
}

func (k TileKind) IsValid() bool {
	return k < NumKinds
}

func (k TileKind) Suit() Suit {
	switch {
	case !k.IsValid():
		return SuitUndefined
	case k >= 27:
		return SuitHonor
	default:
		return Suit(k / 9)
	}
}

func (k TileKind) Rank() int {
	s := k.Suit()
	if s == SuitUndefined {
		return 0
	}
	return int(k) - KindBeginBySuit[s] + 1
}

func (k TileKind) Info() (Suit, int) {
	return k.Suit(), k.Rank()
}

func (k TileKind) IsSuited() bool { // 数牌
	return k.IsValid() && k.Suit() != SuitHonor
}

func (k TileKind) IsHonor() bool { // 字牌
	return k.Suit() == SuitHonor
}

func (k TileKind) IsTerminal() bool { // 老头牌
	return k.IsSuited() && (k.Rank() == 1 || k.Rank() == 9)
}

func (k TileKind) IsTerminalOrHonor() bool { // 幺九牌
	return k.IsTerminal() || k.IsHonor()
}

// String 返回 MPSZ 写法，例如 5m、7z
func (k TileKind) String() string {
	s, r := k.Info()
	if s == SuitUndefined {
		return "?"
	}
	return strconv.Itoa(r) + string(suitLetters[s])
}

func (k TileKind) Name() string {
	s, r := k.Info()
	switch s {
	case SuitCharacter:
		return "Man " + strconv.Itoa(r)
	case SuitCircle:
		return "Pin " + strconv.Itoa(r)
	case SuitBamboo:
		return "Sou " + strconv.Itoa(r)
	case SuitHonor:
		return honorNames[r-1]
	default:
		return ""
	}
}

// AllKinds 34 种牌，升序
func AllKinds() []TileKind {
	res := make([]TileKind, NumKinds)
	for i := range res {
		res[i] = TileKind(i)
	}
	return res
}

// Tile 一张实体牌，Red 只影响显示
type Tile struct {
	Kind TileKind
	Red  bool
}

func NewTile(kind TileKind) Tile {
	return Tile{Kind: kind}
}

// RedFive returns the red alias of rank 5 in a suit.
func RedFive(suit Suit) Tile {
	return Tile{Kind: MakeKind(suit, 5), Red: true}
}

func (t Tile) String() string {
	if t.Red {
		return "0" + string(suitLetters[t.Kind.Suit()])
	}
	return t.Kind.String()
}

func KindsName(kinds []TileKind) string {
	var names []string
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

// ParseTiles 解析 MPSZ 写法："123m406p77z"、"1m2m3m"，0 表示红五。
// 空白与逗号会被忽略。
func ParseTiles(s string) ([]Tile, error) {
	var tiles []Tile
	var digits []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		case c == ' ' || c == ',' || c == '\t':
		default:
			suit := suitOfLetter(c)
			if suit == SuitUndefined || len(digits) == 0 {
				return nil, ErrInvalidTile.WithContext("input", s).WithContext("pos", i)
			}
			for _, d := range digits {
				t, ok := makeParsedTile(suit, int(d-'0'))
				if !ok {
					return nil, ErrInvalidTile.WithContext("input", s).WithContext("tile", string(d)+string(c))
				}
				tiles = append(tiles, t)
			}
			digits = digits[:0]
		}
	}
	if len(digits) > 0 {
		return nil, ErrInvalidTile.WithContext("input", s).WithContext("reason", "missing suit letter")
	}
	return tiles, nil
}

// ParseKinds is ParseTiles with red fives folded into their kind.
func ParseKinds(s string) ([]TileKind, error) {
	tiles, err := ParseTiles(s)
	if err != nil {
		return nil, err
	}
	kinds := make([]TileKind, len(tiles))
	for i, t := range tiles {
		kinds[i] = t.Kind
	}
	return kinds, nil
}

func suitOfLetter(c byte) Suit {
	for s, l := range suitLetters {
		if l == c {
			return Suit(s)
		}
	}
	return SuitUndefined
}

func makeParsedTile(suit Suit, n int) (Tile, bool) {
	if n == 0 {
		if suit == SuitHonor {
			return Tile{}, false
		}
		return RedFive(suit), true
	}
	k := MakeKind(suit, n)
	if !k.IsValid() {
		return Tile{}, false
	}
	return NewTile(k), true
}
