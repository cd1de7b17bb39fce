package configs

import "time"

// Engine controls how the process runs the bidding engine. In RunOnce mode
// main executes a single run in the given mode and exits; otherwise runs
// are triggered over the HTTP API by an external scheduler.
type Engine struct {
	RunOnce bool `env:"RUN_ONCE" envDefault:"false"`
	// Mode is the run mode used by RunOnce ("full" or "report_only").
	Mode string `env:"MODE" envDefault:"full"`
	// EvaluatorURL points at the optional AI keyword-quality service.
	// Empty disables the evaluation stage.
	EvaluatorURL     string        `env:"EVALUATOR_URL"`
	EvaluatorTimeout time.Duration `env:"EVALUATOR_TIMEOUT" envDefault:"30s"`
}
