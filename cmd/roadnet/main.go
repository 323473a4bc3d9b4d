package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/bofo90/RoadOptimization/pkg/engine"
	"github.com/bofo90/RoadOptimization/pkg/logger"
	"github.com/bofo90/RoadOptimization/pkg/pointgen"
	"github.com/bofo90/RoadOptimization/pkg/report"
	"github.com/bofo90/RoadOptimization/pkg/spanningtree"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	houses    = flag.Int("houses", -1, "number of houses (default from config HOUSES)")
	malls     = flag.Int("malls", -1, "number of malls (default from config MALLS)")
	seed      = flag.Int64("seed", -1, "random seed (default from config SEED)")
	alpha     = flag.Float64("alpha", -1, "weight of local roads in (0,1) (default from config ALPHA)")
	mstMethod = flag.String("mst", "", "minimum spanning tree algorithm: prim or kruskal")
	outDir    = flag.String("out", "./data/results", "output directory")
)

func main() {
	flag.Parse()
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := util.ReadConfig(); err != nil {
		log.Fatal("read config", zap.Error(err))
	}
	overrideConfig()

	cfg := util.LoadNetworkConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid config", zap.Error(err))
	}

	method, err := spanningtree.ParseMethod(cfg.MSTMethod)
	if err != nil {
		log.Fatal("invalid mst method", zap.Error(err))
	}

	genCfg := pointgen.NewConfig(cfg.Houses, cfg.Malls, uint64(cfg.Seed))
	genCfg.AreaSize = cfg.AreaSize
	points, err := pointgen.Generate(genCfg)
	if err != nil {
		log.Fatal("generate points", zap.Error(err))
	}

	roadEngine := engine.NewEngine(log, method)
	network, err := roadEngine.Connect(points, cfg.Alpha)
	if err != nil {
		log.Fatal("connect points", zap.Error(err))
	}

	log.Info("result",
		zap.String("title", report.Title(network)),
		zap.Float64("local_length", network.GetLocalLength()),
		zap.Float64("express_length", network.GetExpressLength()),
		zap.Float64("cost", network.GetCost()),
		zap.Int("pruned_malls", len(network.GetPrunedMalls())))

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("create output dir", zap.Error(err))
	}

	numPoints := points.NumberOfPoints()
	geojsonFile := filepath.Join(*outDir, report.ResultFileName(numPoints, cfg.Alpha, uint64(cfg.Seed), ".geojson"))
	if err := report.WriteGeoJSON(geojsonFile, report.ToFeatureCollection(network)); err != nil {
		log.Fatal("write geojson", zap.Error(err))
	}

	networkFile := filepath.Join(*outDir, report.ResultFileName(numPoints, cfg.Alpha, uint64(cfg.Seed), ".network.bz2"))
	if err := network.WriteNetwork(networkFile); err != nil {
		log.Fatal("write network", zap.Error(err))
	}

	log.Info("results written", zap.String("geojson", geojsonFile), zap.String("network", networkFile))
}

// overrideConfig. flags that were set win over config file and environment.
func overrideConfig() {
	if *houses >= 0 {
		viper.Set("HOUSES", *houses)
	}
	if *malls >= 0 {
		viper.Set("MALLS", *malls)
	}
	if *seed >= 0 {
		viper.Set("SEED", *seed)
	}
	if *alpha >= 0 {
		viper.Set("ALPHA", *alpha)
	}
	if *mstMethod != "" {
		viper.Set("MST_METHOD", *mstMethod)
	}
}
