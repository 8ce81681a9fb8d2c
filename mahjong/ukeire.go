package mahjong

import (
	"context"
	"maps"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Availability 返回某种牌还能摸到的张数，由调用方根据牌河、宝牌指示牌等信息提供
type Availability func(TileKind) int

// UkeireResult 有效进张。Total 恒等于 Counts 之和，Waits 由 Counts 的键排序得到。
type UkeireResult struct {
	Total  int
	Counts map[TileKind]int
	Waits  []TileKind
}

func newUkeireResult(kinds []TileKind, avail Availability) (UkeireResult, error) {
	r := UkeireResult{Counts: make(map[TileKind]int, len(kinds))}
	for _, k := range kinds {
		n := 0
		if avail != nil {
			n = avail(k)
		}
		if n > CopiesPerKind {
			return UkeireResult{}, ErrInvalidAvailability.WithContext("tile", k.String()).WithContext("count", n)
		}
		n = max(n, 0)
		r.Counts[k] = n
		r.Total += n
	}
	r.Waits = slices.Sorted(maps.Keys(r.Counts))
	return r, nil
}

// Waits 13 张手牌听哪些牌。手里已有 4 张的牌也照常尝试，
// 这种听牌（空听）由 Ukeire 计为 0 张。
func Waits(c HandCount) ([]TileKind, error) {
	if err := c.Validate(TileCountHand); err != nil {
		return nil, err
	}
	return waits(c), nil
}

func waits(c HandCount) []TileKind {
	var res []TileKind
	for i := range NumKinds {
		c[i]++
		if isComplete(&c) {
			res = append(res, TileKind(i))
		}
		c[i]--
	}
	return res
}

// Ukeire 听牌及各自剩余张数。剩余 0 张的牌仍列入 Waits，但不计入 Total。
func Ukeire(c HandCount, avail Availability) (UkeireResult, error) {
	ws, err := Waits(c)
	if err != nil {
		return UkeireResult{}, err
	}
	return newUkeireResult(ws, avail)
}

// UkeireFromWaits 用已知的听牌集合重新计算剩余张数
func UkeireFromWaits(ws []TileKind, avail Availability) (UkeireResult, error) {
	return newUkeireResult(ws, avail)
}

// WaitsParallel 与 Waits 结果相同，34 次尝试分给至多 workers 个协程
func WaitsParallel(ctx context.Context, c HandCount, workers int) ([]TileKind, error) {
	if err := c.Validate(TileCountHand); err != nil {
		return nil, err
	}
	var hits [NumKinds]bool
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := range NumKinds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trial := c
			trial[i]++
			hits[i] = isComplete(&trial)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var res []TileKind
	for i, ok := range hits {
		if ok {
			res = append(res, TileKind(i))
		}
	}
	return res, nil
}

// Improvements 摸到后能降低向听数的牌。听牌时与 Ukeire 相同。
func Improvements(c HandCount, avail Availability) (UkeireResult, error) {
	if err := c.Validate(TileCountHand); err != nil {
		return UkeireResult{}, err
	}
	return newUkeireResult(improvements(c), avail)
}

func improvements(c HandCount) []TileKind {
	base := shanten(&c)
	var res []TileKind
	for i := range NumKinds {
		c[i]++
		if shanten(&c) < base {
			res = append(res, TileKind(i))
		}
		c[i]--
	}
	return res
}
