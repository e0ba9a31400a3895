package interceptor

import "net/http"

// Stage is a named HTTP middleware.
type Stage struct {
	Name string
	Wrap func(http.Handler) http.Handler
}

// When returns s when enabled is true and a disabled stage otherwise.
// Disabled stages are dropped when the pipeline is assembled.
func When(enabled bool, s Stage) Stage {
	if !enabled {
		return Stage{Name: s.Name}
	}
	return s
}

// Pipeline is an ordered list of stages. The first stage is the outermost.
// Assemble it at startup; it is not safe to call Use while serving.
type Pipeline struct {
	stages []Stage
}

// New creates a pipeline from the given stages.
func New(stages ...Stage) *Pipeline {
	p := &Pipeline{}
	return p.Use(stages...)
}

// Use appends stages. Stages without a Wrap function are skipped.
func (p *Pipeline) Use(stages ...Stage) *Pipeline {
	for _, s := range stages {
		if s.Wrap != nil {
			p.stages = append(p.stages, s)
		}
	}
	return p
}

// Names lists the active stages from outermost to innermost.
func (p *Pipeline) Names() []string {
	names := make([]string, 0, len(p.stages))
	for _, s := range p.stages {
		names = append(names, s.Name)
	}
	return names
}

// Then wraps h with every stage.
func (p *Pipeline) Then(h http.Handler) http.Handler {
	if h == nil {
		h = http.DefaultServeMux
	}
	for i := len(p.stages) - 1; i >= 0; i-- {
		h = p.stages[i].Wrap(h)
	}
	return h
}

// ThenFunc is Then for a handler function.
func (p *Pipeline) ThenFunc(fn http.HandlerFunc) http.Handler {
	return p.Then(fn)
}

// Middleware returns the pipeline as a single middleware, e.g. for chi's
// Router.Use.
func (p *Pipeline) Middleware() func(http.Handler) http.Handler {
	return p.Then
}
