package main

import (
	"context"
	"flag"

	"github.com/bofo90/RoadOptimization/pkg/engine"
	"github.com/bofo90/RoadOptimization/pkg/http"
	"github.com/bofo90/RoadOptimization/pkg/http/usecases"
	"github.com/bofo90/RoadOptimization/pkg/logger"
	"github.com/bofo90/RoadOptimization/pkg/spanningtree"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", false, "limit requests with RATE_LIMIT and RATE_BURST")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}

	method, err := spanningtree.ParseMethod(viper.GetString("MST_METHOD"))
	if err != nil {
		panic(err)
	}
	roadEngine := engine.NewEngine(logger, method)

	api := http.NewServer(logger)

	networkService := usecases.NewNetworkService(logger, roadEngine, viper.GetFloat64("AREA_SIZE"))
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	if _, err := api.Use(ctx, logger, *useRateLimit, networkService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	logger.Info("RoadOptimization Server Stopped", zap.String("signal", signal.String()))
	cleanup()
	_ = api.Wait()
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
