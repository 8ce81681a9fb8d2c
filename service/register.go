package service

import (
	"strings"

	"github.com/kevin-chtw/tw_trainer/evalcache"
	"github.com/kevin-chtw/tw_trainer/trainer"
	"github.com/kevin-chtw/tw_trainer/utils"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// SetupLogger 按配置安装日志，dir 为空时输出到 stderr
func SetupLogger(cfg *trainer.Config, dir string) error {
	l, err := utils.Logger(utils.LogOptions{Level: cfg.LogLevel, Dir: dir})
	if err != nil {
		return err
	}
	logger.SetLogger(l)
	return nil
}

// Register 把分析服务注册到 pitaya：handler 名 analyzer，remote 名 evalremote
func Register(app pitaya.Pitaya, cfg *trainer.Config) (*Analyzer, error) {
	cache, err := evalcache.New(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	analyzer := NewAnalyzer(cfg, cache)
	if err := analyzer.LoadScenarios(cfg.ScenarioDir); err != nil {
		return nil, err
	}
	app.Register(analyzer, component.WithName("analyzer"), component.WithNameFunc(strings.ToLower))
	app.RegisterRemote(NewRemote(analyzer), component.WithName("evalremote"), component.WithNameFunc(strings.ToLower))
	logger.Log.Infof("analyzer registered, cache size %d, workers %d", cfg.CacheSize, cfg.Workers)
	return analyzer, nil
}
