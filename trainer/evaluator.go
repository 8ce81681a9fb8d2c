package trainer

import "github.com/kevin-chtw/tw_trainer/mahjong"

// Evaluator 牌形计算，*evalcache.Cache 和 Engine 都满足
type Evaluator interface {
	Shanten(c mahjong.HandCount) (int, error)
	Waits(c mahjong.HandCount) ([]mahjong.TileKind, error)
	Ukeire(c mahjong.HandCount, avail mahjong.Availability) (mahjong.UkeireResult, error)
	Improvements(c mahjong.HandCount, avail mahjong.Availability) (mahjong.UkeireResult, error)
}

// Engine 不带缓存，直接调用 mahjong 包
type Engine struct{}

func (Engine) Shanten(c mahjong.HandCount) (int, error) {
	return mahjong.Shanten(c)
}

func (Engine) Waits(c mahjong.HandCount) ([]mahjong.TileKind, error) {
	return mahjong.Waits(c)
}

func (Engine) Ukeire(c mahjong.HandCount, avail mahjong.Availability) (mahjong.UkeireResult, error) {
	return mahjong.Ukeire(c, avail)
}

func (Engine) Improvements(c mahjong.HandCount, avail mahjong.Availability) (mahjong.UkeireResult, error) {
	return mahjong.Improvements(c, avail)
}
