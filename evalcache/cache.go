package evalcache

import (
	"github.com/hashicorp/golang-lru/v2"
	"github.com/kevin-chtw/tw_trainer/mahjong"
)

const DefaultSize = 4096

// Cache 按手牌计数缓存向听数、听牌与改良牌，淘汰策略为 LRU。可并发使用。
type Cache struct {
	shanten  *lru.Cache[string, int]
	waits    *lru.Cache[string, []mahjong.TileKind]
	improves *lru.Cache[string, []mahjong.TileKind]
}

func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	sh, err := lru.New[string, int](size)
	if err != nil {
		return nil, err
	}
	ws, err := lru.New[string, []mahjong.TileKind](size)
	if err != nil {
		return nil, err
	}
	imp, err := lru.New[string, []mahjong.TileKind](size)
	if err != nil {
		return nil, err
	}
	return &Cache{shanten: sh, waits: ws, improves: imp}, nil
}

func (c *Cache) Shanten(h mahjong.HandCount) (int, error) {
	key := h.Key()
	if v, ok := c.shanten.Get(key); ok {
		return v, nil
	}
	v, err := mahjong.Shanten(h)
	if err != nil {
		return v, err
	}
	c.shanten.Add(key, v)
	return v, nil
}

// Waits 返回的切片由缓存持有，调用方不要修改
func (c *Cache) Waits(h mahjong.HandCount) ([]mahjong.TileKind, error) {
	key := h.Key()
	if v, ok := c.waits.Get(key); ok {
		return v, nil
	}
	v, err := mahjong.Waits(h)
	if err != nil {
		return nil, err
	}
	c.waits.Add(key, v)
	return v, nil
}

// Ukeire 只缓存听牌集合，剩余张数每次按 avail 重新计算
func (c *Cache) Ukeire(h mahjong.HandCount, avail mahjong.Availability) (mahjong.UkeireResult, error) {
	ws, err := c.Waits(h)
	if err != nil {
		return mahjong.UkeireResult{}, err
	}
	return mahjong.UkeireFromWaits(ws, avail)
}

// Improvements 缓存改良牌集合，剩余张数按 avail 重新计算。听牌时同 Ukeire。
func (c *Cache) Improvements(h mahjong.HandCount, avail mahjong.Availability) (mahjong.UkeireResult, error) {
	base, err := c.Shanten(h)
	if err != nil {
		return mahjong.UkeireResult{}, err
	}
	if base == 0 {
		return c.Ukeire(h, avail)
	}
	key := h.Key()
	if ks, ok := c.improves.Get(key); ok {
		return mahjong.UkeireFromWaits(ks, avail)
	}
	r, err := mahjong.Improvements(h, nil)
	if err != nil {
		return mahjong.UkeireResult{}, err
	}
	c.improves.Add(key, r.Waits)
	return mahjong.UkeireFromWaits(r.Waits, avail)
}

func (c *Cache) Len() int {
	return c.shanten.Len() + c.waits.Len() + c.improves.Len()
}

func (c *Cache) Purge() {
	c.shanten.Purge()
	c.waits.Purge()
	c.improves.Purge()
}
