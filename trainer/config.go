package trainer

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	CacheSize   int    `mapstructure:"cache_size"`
	Workers     int    `mapstructure:"workers"`
	Simulations int    `mapstructure:"simulations"`
	MaxDraws    int    `mapstructure:"max_draws"`
	Tolerance   int    `mapstructure:"tolerance"`
	Seed        int64  `mapstructure:"seed"`
	LogLevel    string `mapstructure:"log_level"`
	ScenarioDir string `mapstructure:"scenario_dir"`
}

func setDefaults(vp *viper.Viper) {
	vp.SetDefault("cache_size", 4096)
	vp.SetDefault("workers", 4)
	vp.SetDefault("simulations", 1000)
	vp.SetDefault("max_draws", 18)
	vp.SetDefault("tolerance", 2)
	vp.SetDefault("seed", 0)
	vp.SetDefault("log_level", "info")
	vp.SetDefault("scenario_dir", "./scenarios")
}

// LoadConfig 读取 yaml 配置，path 为空时只用默认值和环境变量。
// 环境变量前缀 TRAINER_，例如 TRAINER_CACHE_SIZE，可以写在 .env 里。
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	vp := viper.New()
	setDefaults(vp)
	vp.SetEnvPrefix("trainer")
	vp.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vp.AutomaticEnv()

	if path != "" {
		vp.SetConfigType("yaml")
		vp.SetConfigFile(path)
		if err := vp.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := vp.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
