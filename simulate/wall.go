package simulate

import (
	"math/rand"

	"github.com/kevin-chtw/tw_trainer/mahjong"
)

// Wall 剩余牌墙，按 avail 给出的张数生成并洗乱
type Wall struct {
	tiles []mahjong.TileKind
}

func NewWall(avail mahjong.Availability, rnd *rand.Rand) (*Wall, error) {
	total := 0
	var counts [mahjong.NumKinds]int
	for i := range mahjong.NumKinds {
		n := avail(mahjong.TileKind(i))
		if n < 0 || n > mahjong.CopiesPerKind {
			return nil, mahjong.ErrInvalidAvailability.WithContext("tile", mahjong.TileKind(i).String()).WithContext("count", n)
		}
		counts[i] = n
		total += n
	}

	// 填充并同时随机化牌墙
	w := &Wall{tiles: make([]mahjong.TileKind, total)}
	i := 0
	for k, count := range counts {
		for range count {
			pos := rnd.Intn(i + 1)
			if pos != i {
				w.tiles[i] = w.tiles[pos]
			}
			w.tiles[pos] = mahjong.TileKind(k)
			i++
		}
	}
	return w, nil
}

// Draw 摸牌，牌墙空了返回 TileKindNull
func (w *Wall) Draw() mahjong.TileKind {
	if len(w.tiles) == 0 {
		return mahjong.TileKindNull
	}
	k := w.tiles[0]
	w.tiles = w.tiles[1:]
	return k
}

func (w *Wall) Rest() int {
	return len(w.tiles)
}
