package main

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/orrery/body"
	"github.com/pthm-cable/orrery/cloud"
	"github.com/pthm-cable/orrery/config"
	"github.com/pthm-cable/orrery/engine"
)

const (
	evalDT        = float32(1.0 / 60.0)
	evalParticles = 2000 // particles per evaluation run, enough to be representative
	settleEps     = 0.6  // mean world-unit distance to target counted as assembled
	residualTail  = 120  // frames of post-settle motion measured for calmness
	calmWeight    = 12.0 // seconds of settle time one world-unit/s of churn is worth
)

// FitnessEvaluator runs headless contraction runs and scores them.
// Lower is better: fast settling with a calm assembled cloud.
type FitnessEvaluator struct {
	params    *ParamVector
	maxFrames int
	seeds     []int64
	baseCfg   *config.Config

	lastSettle float64 // seconds, from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxFrames int, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:    params,
		maxFrames: maxFrames,
		seeds:     seeds,
		baseCfg:   baseCfg,
	}
}

// LastSettle returns the mean settle time from the most recent evaluation.
func (fe *FitnessEvaluator) LastSettle() float64 {
	return fe.lastSettle
}

// Evaluate scores one parameter vector across all seeds. Each run
// contracts the cloud from fully scattered onto a body and measures how
// long the assembly takes plus how much it churns once assembled. Both
// a planet and the star composite are scored so the star floor cannot
// be tuned away for free.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	cfg := *fe.baseCfg
	fe.params.ApplyToConfig(&cfg, raw)

	catalog, err := body.CatalogFromConfig(cfg.Bodies)
	if err != nil {
		return math.Inf(1)
	}
	targets := evalTargets(catalog)

	var total, settleTotal float64
	runs := 0
	for _, seed := range fe.seeds {
		for _, d := range targets {
			fitness, settle := fe.run(&cfg, catalog, d, seed)
			total += fitness
			settleTotal += settle
			runs++
		}
	}
	fe.lastSettle = settleTotal / float64(runs)
	return total / float64(runs)
}

// evalTargets picks the first non-star body and the star, if present.
func evalTargets(catalog *body.Catalog) []body.Descriptor {
	var out []body.Descriptor
	for _, d := range catalog.Bodies() {
		if d.Category != body.CategoryStar {
			out = append(out, d)
			break
		}
	}
	for _, d := range catalog.Bodies() {
		if d.Category == body.CategoryStar {
			out = append(out, d)
			break
		}
	}
	if len(out) == 0 {
		out = append(out, catalog.At(0))
	}
	return out
}

// run performs one scripted contraction and returns (fitness, settle seconds).
func (fe *FitnessEvaluator) run(cfg *config.Config, catalog *body.Catalog, d body.Descriptor, seed int64) (float64, float64) {
	rng := rand.New(rand.NewSource(seed))
	gen := cloud.NewGenerator(evalParticles, float32(cfg.Particles.SpreadRadius), float32(cfg.Particles.RingFraction), rng)
	set := gen.Retarget(gen.NewSet(), d, catalog.Orbiting())
	driver := engine.NewDriver(cfg.Animation, set, d.Category)

	smoothStep := 1 - math.Exp(float64(-cfg.Gesture.SmoothingRate)*float64(evalDT))
	expansion := 1.0

	settleFrame := fe.maxFrames
	prev := snapshot(set.Live)
	var residual float64
	residualFrames := 0

	for frame := 0; frame < fe.maxFrames; frame++ {
		// The gesture adapter's smoothing, scripted: hand closes at t=0.
		expansion += (0 - expansion) * smoothStep
		driver.SetExpansion(float32(expansion))
		driver.Step(evalDT, mgl32.Vec2{})

		if settleFrame == fe.maxFrames {
			if meanDistance(set.Live, set.Target) < settleEps {
				settleFrame = frame
			}
		} else if residualFrames < residualTail {
			residual += meanDistance(set.Live, prev) / float64(evalDT)
			residualFrames++
		}
		copy(prev, set.Live)

		if residualFrames >= residualTail {
			break
		}
	}

	settleSec := float64(settleFrame) * float64(evalDT)
	calm := 0.0
	if residualFrames > 0 {
		calm = residual / float64(residualFrames)
	} else {
		// Never settled inside the frame budget.
		calm = settleEps
	}
	return settleSec + calmWeight*calm, settleSec
}

func snapshot(live []mgl32.Vec3) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(live))
	copy(out, live)
	return out
}

func meanDistance(a, b []mgl32.Vec3) float64 {
	var sum float64
	for i := range a {
		dx := float64(a[i][0] - b[i][0])
		dy := float64(a[i][1] - b[i][1])
		dz := float64(a[i][2] - b[i][2])
		sum += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return sum / float64(len(a))
}
