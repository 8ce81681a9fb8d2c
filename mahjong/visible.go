package mahjong

// Unseen 4 减去手牌与所有可见牌（牌河、副露、宝牌指示牌）中的张数，最少为 0
func Unseen(hand HandCount, visible ...HandCount) Availability {
	rest := remaining(hand, visible...)
	return func(k TileKind) int {
		if !k.IsValid() {
			return 0
		}
		return rest[k]
	}
}

// FullWall 只扣除自己的手牌
func FullWall(hand HandCount) Availability {
	return Unseen(hand)
}

// Remaining 各种牌还剩几张
func Remaining(hand HandCount, visible ...HandCount) HandCount {
	return remaining(hand, visible...)
}

func remaining(hand HandCount, visible ...HandCount) HandCount {
	var rest HandCount
	for i := range NumKinds {
		n := CopiesPerKind - hand[i]
		for _, v := range visible {
			n -= v[i]
		}
		rest[i] = max(n, 0)
	}
	return rest
}
