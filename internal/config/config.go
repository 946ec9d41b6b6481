// internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	TileSize = 64 // размер клетки в пикселях

	MaxDeltaTime = 0.06 // защита от скачков dt после паузы

	StartingMoney = 150
	StartingLives = 20

	// ArrivalTolerance — радиус, в котором вейпоинт считается достигнутым.
	ArrivalTolerance = 4.0

	DefaultProjectileSpeed = 400.0 // pixels per second

	// DefaultKillReward используется, когда в определении врага нет награды.
	DefaultKillReward = 5
	LivesPerLeak      = 1
)

// Config — настройки времени выполнения, читаются из файла через viper.
type Config struct {
	Data  DataConfig  `mapstructure:"data"`
	Redis RedisConfig `mapstructure:"redis"`
	Game  GameConfig  `mapstructure:"game"`
}

// DataConfig задаёт каталоги с ресурсами.
type DataConfig struct {
	MapsDir     string `mapstructure:"maps_dir"`
	WavesDir    string `mapstructure:"waves_dir"`
	TowersFile  string `mapstructure:"towers_file"`
	EnemiesFile string `mapstructure:"enemies_file"`
}

// RedisConfig — подключение к хранилищу снапшотов.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GameConfig — стартовые параметры симуляции.
type GameConfig struct {
	LoopWaves     bool `mapstructure:"loop_waves"`
	StartingMoney int  `mapstructure:"starting_money"`
	StartingLives int  `mapstructure:"starting_lives"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	return Config{
		Data: DataConfig{
			MapsDir:     "data/maps",
			WavesDir:    "data/waves",
			TowersFile:  "data/towers.json",
			EnemiesFile: "data/enemies.json",
		},
		Redis: RedisConfig{Addr: "localhost:6379"},
		Game: GameConfig{
			StartingMoney: StartingMoney,
			StartingLives: StartingLives,
		},
	}
}

// Load читает конфигурацию из файла. Пустой путь возвращает значения
// по умолчанию, переменные окружения имеют приоритет над файлом.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("TOWERSIM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
