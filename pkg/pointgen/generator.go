// Package pointgen draws random houses, malls and a city center inside a square area.
package pointgen

import (
	"github.com/bofo90/RoadOptimization/pkg"
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"github.com/golang/geo/r2"
	"golang.org/x/exp/rand"
)

type Config struct {
	Houses   int
	Malls    int
	Seed     uint64
	AreaSize float64
}

func NewConfig(houses, malls int, seed uint64) Config {
	return Config{
		Houses:   houses,
		Malls:    malls,
		Seed:     seed,
		AreaSize: pkg.DEFAULT_AREA_SIZE,
	}
}

func (c Config) Validate() error {
	if c.Houses < 0 {
		return util.WrapErrorf(nil, util.ErrInvalidParameter, "the number of houses can not be negative, got %d", c.Houses)
	}
	if c.Houses+c.Malls < pkg.MIN_TOTAL_POINTS {
		return util.WrapErrorf(nil, util.ErrInvalidParameter, "the number of points should be at least %d, got %d",
			pkg.MIN_TOTAL_POINTS, c.Houses+c.Malls)
	}
	if c.Malls < pkg.MIN_MALLS {
		return util.WrapErrorf(nil, util.ErrInvalidParameter, "there should be at least %d mall", pkg.MIN_MALLS)
	}
	if c.AreaSize <= 0 {
		return util.WrapErrorf(nil, util.ErrInvalidParameter, "area size must be positive, got %v", c.AreaSize)
	}
	return nil
}

// Generate. houses, then malls, then the city center, uniform in [0, AreaSize)^2. same seed, same points.
func Generate(cfg Config) (*da.PointSet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rd := rand.New(rand.NewSource(cfg.Seed))

	houses := randomPoints(rd, cfg.Houses, cfg.AreaSize)
	malls := randomPoints(rd, cfg.Malls, cfg.AreaSize)
	cityCenter := randomPoint(rd, cfg.AreaSize)

	return da.NewPointSet(houses, malls, cityCenter), nil
}

func randomPoints(rd *rand.Rand, n int, size float64) []r2.Point {
	points := make([]r2.Point, n)
	for i := range points {
		points[i] = randomPoint(rd, size)
	}
	return points
}

func randomPoint(rd *rand.Rand, size float64) r2.Point {
	return r2.Point{X: rd.Float64() * size, Y: rd.Float64() * size}
}
