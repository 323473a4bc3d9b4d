package engine

import (
	"sort"

	"github.com/bofo90/RoadOptimization/pkg/concurrent"
	da "github.com/bofo90/RoadOptimization/pkg/datastructure"
	"github.com/bofo90/RoadOptimization/pkg/util"
	"go.uber.org/zap"
)

type SweepResult struct {
	Alpha   float64
	Network *da.RoadNetwork
	Err     error
}

type sweepJob struct {
	pos   int
	alpha float64
}

type sweepOutput struct {
	pos    int
	result SweepResult
}

// Sweep. connects the same points for every alpha on numWorkers goroutines.
// results are returned in the order of alphas; a failing alpha keeps its error and does not stop the others.
func (e *Engine) Sweep(points *da.PointSet, alphas []float64, numWorkers int) []SweepResult {
	numWorkers = util.MinInt(numWorkers, len(alphas))
	if numWorkers < 1 {
		numWorkers = 1
	}
	e.log.Info("running alpha sweep", zap.Int("alphas", len(alphas)), zap.Int("workers", numWorkers))

	workers := concurrent.NewWorkerPool[sweepJob, sweepOutput](numWorkers, len(alphas))
	for i, alpha := range alphas {
		workers.AddJob(sweepJob{pos: i, alpha: alpha})
	}
	workers.Close()

	workers.Start(func(job sweepJob) sweepOutput {
		network, err := e.Connect(points, job.alpha)
		if err != nil {
			e.log.Warn("alpha sweep step failed", zap.Float64("alpha", job.alpha), zap.Error(err))
		}
		return sweepOutput{pos: job.pos, result: SweepResult{Alpha: job.alpha, Network: network, Err: err}}
	})
	workers.Wait()

	outputs := make([]sweepOutput, 0, len(alphas))
	for out := range workers.CollectResults() {
		outputs = append(outputs, out)
	}
	sort.Slice(outputs, func(i, j int) bool { return outputs[i].pos < outputs[j].pos })

	results := make([]SweepResult, len(outputs))
	for i, out := range outputs {
		results[i] = out.result
	}
	return results
}

// AlphaGrid. steps evenly spaced values strictly inside (0, 1)
func AlphaGrid(steps int) []float64 {
	alphas := make([]float64, 0, steps)
	for i := 1; i <= steps; i++ {
		alphas = append(alphas, float64(i)/float64(steps+1))
	}
	return alphas
}
