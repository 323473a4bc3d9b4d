package main

import (
	"encoding/csv"
	"flag"
	"os"
	"strconv"

	"github.com/bofo90/RoadOptimization/pkg/engine"
	log "github.com/bofo90/RoadOptimization/pkg/logger"
	"github.com/bofo90/RoadOptimization/pkg/pointgen"
	"github.com/bofo90/RoadOptimization/pkg/spanningtree"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	steps  = flag.Int("steps", 19, "number of alpha values evenly spaced in (0,1)")
	output = flag.String("out", "alpha_sweep.csv", "output csv file")
)

func main() {
	flag.Parse()
	logger, err := log.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	cfg := util.LoadNetworkConfig()

	method, err := spanningtree.ParseMethod(cfg.MSTMethod)
	if err != nil {
		panic(err)
	}

	genCfg := pointgen.NewConfig(cfg.Houses, cfg.Malls, uint64(cfg.Seed))
	genCfg.AreaSize = cfg.AreaSize
	points, err := pointgen.Generate(genCfg)
	if err != nil {
		panic(err)
	}

	roadEngine := engine.NewEngine(logger, method)
	results := roadEngine.Sweep(points, engine.AlphaGrid(*steps), viper.GetInt("SWEEP_WORKERS"))

	fout, err := os.Create(*output)
	if err != nil {
		panic(err)
	}
	defer fout.Close()

	w := csv.NewWriter(fout)
	defer w.Flush()

	if err := w.Write([]string{"alpha", "local_length", "express_length", "cost", "local_share", "malls_kept"}); err != nil {
		panic(err)
	}

	for _, res := range results {
		if res.Err != nil {
			logger.Warn("skipping alpha", zap.Float64("alpha", res.Alpha), zap.Error(res.Err))
			continue
		}
		network := res.Network
		rec := []string{
			formatFloat(res.Alpha),
			formatFloat(network.GetLocalLength()),
			formatFloat(network.GetExpressLength()),
			formatFloat(network.GetCost()),
			formatFloat(network.GetLocalShare()),
			strconv.Itoa(len(network.GetConnectedMalls())),
		}
		if err := w.Write(rec); err != nil {
			panic(err)
		}
	}

	logger.Info("alpha sweep written", zap.String("file", *output), zap.Int("alphas", len(results)))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(util.RoundFloat(f, 6), 'f', -1, 64)
}
