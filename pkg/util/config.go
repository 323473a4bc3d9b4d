package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bofo90/RoadOptimization/pkg"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func ReadConfig() error {
	SetDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// defaults + environment are enough to run
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func SetDefaults() {
	viper.SetDefault("ALPHA", pkg.DEFAULT_ALPHA)
	viper.SetDefault("HOUSES", 30)
	viper.SetDefault("MALLS", 10)
	viper.SetDefault("SEED", 0)
	viper.SetDefault("AREA_SIZE", pkg.DEFAULT_AREA_SIZE)
	viper.SetDefault("MST_METHOD", "prim")
	viper.SetDefault("SWEEP_WORKERS", 4)

	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "60s")
	viper.SetDefault("RATE_LIMIT", 10.0)
	viper.SetDefault("RATE_BURST", 20)
}

// NetworkConfig. parameters of one road network run.
type NetworkConfig struct {
	Alpha     float64 `mapstructure:"ALPHA" validate:"gt=0,lt=1"`
	Houses    int     `mapstructure:"HOUSES" validate:"gte=0"`
	Malls     int     `mapstructure:"MALLS" validate:"gte=1"`
	Seed      int64   `mapstructure:"SEED"`
	AreaSize  float64 `mapstructure:"AREA_SIZE" validate:"gt=0"`
	MSTMethod string  `mapstructure:"MST_METHOD" validate:"oneof=prim kruskal"`
}

func LoadNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Alpha:     viper.GetFloat64("ALPHA"),
		Houses:    viper.GetInt("HOUSES"),
		Malls:     viper.GetInt("MALLS"),
		Seed:      viper.GetInt64("SEED"),
		AreaSize:  viper.GetFloat64("AREA_SIZE"),
		MSTMethod: strings.ToLower(viper.GetString("MST_METHOD")),
	}
}

// Validate. checks field ranges and the minimum number of points.
func (c NetworkConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return WrapErrorf(err, ErrInvalidParameter, "invalid network config")
	}
	if c.Houses+c.Malls < pkg.MIN_TOTAL_POINTS {
		return WrapErrorf(nil, ErrInvalidParameter, "the number of points should be at least %d, got %d",
			pkg.MIN_TOTAL_POINTS, c.Houses+c.Malls)
	}
	return nil
}
