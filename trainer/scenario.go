package trainer

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/kevin-chtw/tw_trainer/mahjong"
	"github.com/spf13/viper"
)

// Scenario 一道何切题
type Scenario struct {
	Name    string
	Hand    mahjong.HandCount
	Visible mahjong.HandCount
	// 期望的最优打法，为空时以 RankDiscards 的结果为准
	Best []mahjong.TileKind
	Note string
}

// LoadScenario 读取一个 yaml 题目文件
//
//	name: tanki
//	hand: 1m2m3m4m5m6m7p8p9p2s3s4s5z6z
//	visible: 55z
//	best: 6z
func LoadScenario(file string) (*Scenario, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(file)
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	s := &Scenario{
		Name: vp.GetString("name"),
		Note: vp.GetString("note"),
	}
	if s.Name == "" {
		s.Name = filepath.Base(file)
	}

	var err error
	if s.Hand, err = mahjong.ParseCount(vp.GetString("hand")); err != nil {
		return nil, fmt.Errorf("scenario %s hand: %w", s.Name, err)
	}
	if err = s.Hand.Validate(mahjong.TileCountFull); err != nil {
		return nil, fmt.Errorf("scenario %s hand: %w", s.Name, err)
	}
	if s.Visible, err = mahjong.ParseCount(vp.GetString("visible")); err != nil {
		return nil, fmt.Errorf("scenario %s visible: %w", s.Name, err)
	}
	for i := range mahjong.NumKinds {
		if s.Hand[i]+s.Visible[i] > mahjong.CopiesPerKind {
			return nil, fmt.Errorf("scenario %s: %w", s.Name,
				mahjong.ErrTileOverflow.WithContext("tile", mahjong.TileKind(i).String()))
		}
	}
	if s.Best, err = mahjong.ParseKinds(vp.GetString("best")); err != nil {
		return nil, fmt.Errorf("scenario %s best: %w", s.Name, err)
	}
	for _, k := range s.Best {
		if !s.Hand.Has(k) {
			return nil, fmt.Errorf("scenario %s: %w", s.Name,
				mahjong.ErrInvalidTile.WithContext("best", k.String()).WithContext("reason", "not in hand"))
		}
	}
	return s, nil
}

// LoadScenarios 读取目录下全部 .yaml/.yml，按文件名排序
func LoadScenarios(dir string) ([]*Scenario, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	slices.Sort(files)

	out := make([]*Scenario, 0, len(files))
	for _, f := range files {
		s, err := LoadScenario(f)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Answer 点评玩家对本题的回答。题目给出了 Best 时以其为准判定是否最优。
func (s *Scenario) Answer(coach *Coach, discard mahjong.TileKind) (Feedback, error) {
	fb, err := coach.Review(s.Hand, discard, s.Visible)
	if err != nil {
		return fb, err
	}
	if len(s.Best) > 0 {
		fb.Best = s.Best
		if slices.Contains(s.Best, discard) {
			fb.Verdict = VerdictOptimal
		} else if fb.Verdict == VerdictOptimal {
			fb.Verdict = VerdictAcceptable
		}
	}
	return fb, nil
}
