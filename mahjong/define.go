package mahjong

// 花色
type Suit int

const (
	SuitUndefined Suit = -1
	SuitCharacter Suit = iota - 1 // 万 m
	SuitCircle                    // 筒 p
	SuitBamboo                    // 条 s
	SuitHonor                     // 字 z
	SuitEnd
	SuitBegin = SuitCharacter
)

// 每个花色的点数数量与在 34 种牌中的起始序号
var RankCountBySuit = [SuitEnd]int{9, 9, 9, 7}
var KindBeginBySuit = [SuitEnd]int{0, 9, 18, 27}

var suitLetters = [SuitEnd]byte{'m', 'p', 's', 'z'}

const (
	NumKinds      = 34
	CopiesPerKind = 4
)

const (
	TileCountHand = 13
	TileCountFull = 14
	MeldCount     = 4
)

const (
	MaxShanten  = 8  // 一般型最差上界
	ShantenNone = 99 // 该牌型不成立
)

// Shape 和牌牌型
type Shape int

const (
	ShapeIncomplete Shape = iota
	ShapeStandard
	ShapeSevenPairs
	ShapeThirteenOrphans
)

func (s Shape) String() string {
	switch s {
	case ShapeStandard:
		return "standard"
	case ShapeSevenPairs:
		return "seven-pairs"
	case ShapeThirteenOrphans:
		return "thirteen-orphans"
	default:
		return "incomplete"
	}
}

type MeldType int

const (
	MeldTriplet MeldType = iota // 刻子
	MeldRun                     // 顺子
)

func (t MeldType) String() string {
	if t == MeldRun {
		return "run"
	}
	return "triplet"
}
