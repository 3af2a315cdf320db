package simulation

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

// Distribution names accepted in task estimates.
const (
	DistTriangular = "triangular"
	DistPERT       = "pert"
)

// Iteration bounds. Requests outside the range are clamped, not rejected.
const (
	MinIterations     = 100
	DefaultIterations = 10000
	MaxTasks          = 20
)

// TaskEstimate is a three-point estimate for one unit of work.
type TaskEstimate struct {
	Name         string  `json:"name"`
	Optimistic   float64 `json:"optimistic"`
	MostLikely   float64 `json:"most_likely"`
	Pessimistic  float64 `json:"pessimistic"`
	Distribution string  `json:"distribution,omitempty"`
}

// Request describes one simulation run.
type Request struct {
	Iterations int            `json:"iterations,omitempty"`
	Seed       int64          `json:"seed,omitempty"`
	Tasks      []TaskEstimate `json:"tasks"`
}

// TaskResult is the per-task mean contribution across iterations.
type TaskResult struct {
	Name string  `json:"name"`
	Mean float64 `json:"mean"`
}

// Result summarizes the sampled totals.
type Result struct {
	Iterations  int                `json:"iterations"`
	Seed        int64              `json:"seed"`
	Mean        float64            `json:"mean"`
	StdDev      float64            `json:"std_dev"`
	Min         float64            `json:"min"`
	Max         float64            `json:"max"`
	Percentiles map[string]float64 `json:"percentiles"`
	Tasks       []TaskResult       `json:"tasks"`
}

// Validate checks a request, returning a descriptive error for the first
// problem found.
func (r Request) Validate() error {
	if len(r.Tasks) == 0 {
		return fmt.Errorf("at least one task estimate is required")
	}
	if len(r.Tasks) > MaxTasks {
		return fmt.Errorf("at most %d task estimates are allowed, got %d", MaxTasks, len(r.Tasks))
	}
	for i, task := range r.Tasks {
		if task.Optimistic > task.MostLikely || task.MostLikely > task.Pessimistic {
			return fmt.Errorf("task %d (%s): estimates must satisfy optimistic <= most_likely <= pessimistic", i, task.Name)
		}
		if task.Optimistic == task.Pessimistic {
			return fmt.Errorf("task %d (%s): optimistic and pessimistic must differ", i, task.Name)
		}
		switch task.Distribution {
		case "", DistTriangular, DistPERT:
		default:
			return fmt.Errorf("task %d (%s): unknown distribution %q", i, task.Name, task.Distribution)
		}
	}
	return nil
}

// Run executes the Monte Carlo simulation. maxIterations caps the
// iteration count (0 means the package default of 100000).
func Run(req Request, maxIterations int) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	if maxIterations <= 0 {
		maxIterations = 100000
	}
	iterations := req.Iterations
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations < MinIterations {
		iterations = MinIterations
	}
	if iterations > maxIterations {
		iterations = maxIterations
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	totals := make([]float64, iterations)
	taskSums := make([]float64, len(req.Tasks))

	for i := 0; i < iterations; i++ {
		var total float64
		for j, task := range req.Tasks {
			sample := sampleTask(rng, task)
			taskSums[j] += sample
			total += sample
		}
		totals[i] = total
	}

	sort.Float64s(totals)

	mean := sum(totals) / float64(iterations)
	var variance float64
	for _, v := range totals {
		d := v - mean
		variance += d * d
	}
	variance /= float64(iterations)

	result := Result{
		Iterations: iterations,
		Seed:       seed,
		Mean:       mean,
		StdDev:     math.Sqrt(variance),
		Min:        totals[0],
		Max:        totals[iterations-1],
		Percentiles: map[string]float64{
			"p10": percentile(totals, 0.10),
			"p50": percentile(totals, 0.50),
			"p80": percentile(totals, 0.80),
			"p90": percentile(totals, 0.90),
			"p95": percentile(totals, 0.95),
		},
	}

	for j, task := range req.Tasks {
		result.Tasks = append(result.Tasks, TaskResult{
			Name: task.Name,
			Mean: taskSums[j] / float64(iterations),
		})
	}

	return result, nil
}

func sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

// percentile reads from a sorted slice using the nearest-rank method.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := int(math.Ceil(q*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sorted) {
		rank = len(sorted) - 1
	}
	return sorted[rank]
}

func sampleTask(rng *rand.Rand, task TaskEstimate) float64 {
	switch task.Distribution {
	case DistPERT:
		return samplePERT(rng, task.Optimistic, task.MostLikely, task.Pessimistic)
	default:
		return sampleTriangular(rng, task.Optimistic, task.MostLikely, task.Pessimistic)
	}
}

// sampleTriangular draws from Triangular(a, m, b) by inverse CDF.
func sampleTriangular(rng *rand.Rand, a, m, b float64) float64 {
	u := rng.Float64()
	fc := (m - a) / (b - a)
	if u < fc {
		return a + math.Sqrt(u*(b-a)*(m-a))
	}
	return b - math.Sqrt((1-u)*(b-a)*(b-m))
}

// samplePERT draws from the beta-PERT distribution: Beta with
// alpha = 1 + 4(m-a)/(b-a), beta = 1 + 4(b-m)/(b-a), scaled to [a, b].
func samplePERT(rng *rand.Rand, a, m, b float64) float64 {
	alpha := 1 + 4*(m-a)/(b-a)
	beta := 1 + 4*(b-m)/(b-a)
	return a + (b-a)*sampleBeta(rng, alpha, beta)
}

func sampleBeta(rng *rand.Rand, alpha, beta float64) float64 {
	x := sampleGamma(rng, alpha)
	y := sampleGamma(rng, beta)
	if x+y == 0 {
		return 0.5
	}
	return x / (x + y)
}

// sampleGamma draws from Gamma(shape, 1) using Marsaglia-Tsang. PERT
// shapes are always >= 1, but the shape < 1 boost is kept so the sampler
// is correct on its own.
func sampleGamma(rng *rand.Rand, shape float64) float64 {
	if shape < 1 {
		u := rng.Float64()
		return sampleGamma(rng, shape+1) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1 / math.Sqrt(9*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}
