package pipeline

import (
	"fmt"

	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/core"
	"github.com/VagiaXev/Economy-of-Sri-Lanka/pkg/logger"
)

// Step is one pure table transform: it must not mutate its input.
type Step interface {
	Name() string
	Apply(t *core.Table) (*core.Table, error)
}

// StepFunc adapts a plain function to Step.
type StepFunc struct {
	Label string
	Fn    func(*core.Table) (*core.Table, error)
}

func (s StepFunc) Name() string                              { return s.Label }
func (s StepFunc) Apply(t *core.Table) (*core.Table, error) { return s.Fn(t) }

// Pipeline chains multiple steps.
type Pipeline struct {
	steps []Step
	log   logger.Logger
}

func NewPipeline(log logger.Logger, steps ...Step) *Pipeline {
	if log == nil {
		log = logger.GetDefault()
	}
	return &Pipeline{steps: steps, log: log}
}

// Steps returns the step names in execution order.
func (p *Pipeline) Steps() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

// Run threads t through every step in order and returns the final table.
func (p *Pipeline) Run(t *core.Table) (*core.Table, error) {
	for _, step := range p.steps {
		next, err := step.Apply(t)
		if err != nil {
			return nil, fmt.Errorf("step %s: %w", step.Name(), err)
		}
		p.log.Debug("pipeline step applied", "step", step.Name(), "rows", next.Len(), "columns", len(next.Columns))
		t = next
	}
	return t, nil
}
