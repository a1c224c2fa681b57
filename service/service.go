package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Service defines the lifecycle of a long-lived subsystem
// Content workers, the tick loop and the status server run as services
//
// Lifecycle:
//  1. Construction
//  2. Register with a Hub
//  3. Start(ctx) - after every dependency started
//  4. Stop() - reverse start order, must be idempotent
type Service interface {
	Name() string

	// Dependencies names services that must start first, nil when none
	Dependencies() []string

	Start(ctx context.Context) error
	Stop() error
}

var (
	ErrDuplicateService  = errors.New("service already registered")
	ErrUnknownDependency = errors.New("unknown service dependency")
	ErrDependencyCycle   = errors.New("service dependency cycle")
)

// Hub starts services in dependency order and stops them in reverse
type Hub struct {
	mu       sync.Mutex
	services map[string]Service
	order    []string // registration order, ties in the start order follow it
	started  []Service
}

func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	name := svc.Name()
	if _, ok := h.services[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateService, name)
	}
	h.services[name] = svc
	h.order = append(h.order, name)
	return nil
}

// StartOrder resolves dependencies into a start sequence
func (h *Hub) StartOrder() ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.resolve()
}

func (h *Hub) resolve() ([]string, error) {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(h.services))
	out := make([]string, 0, len(h.services))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w at %s", ErrDependencyCycle, name)
		}
		state[name] = visiting
		for _, dep := range h.services[name].Dependencies() {
			if _, ok := h.services[dep]; !ok {
				return fmt.Errorf("%w: %s needs %s", ErrUnknownDependency, name, dep)
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[name] = done
		out = append(out, name)
		return nil
	}

	for _, name := range h.order {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Start launches every service, a failure stops those already running
func (h *Hub) Start(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	order, err := h.resolve()
	if err != nil {
		return err
	}
	for _, name := range order {
		svc := h.services[name]
		if err := svc.Start(ctx); err != nil {
			stopErr := h.stopLocked()
			return errors.Join(fmt.Errorf("start %s: %w", name, err), stopErr)
		}
		h.started = append(h.started, svc)
	}
	return nil
}

// Stop halts started services in reverse order
func (h *Hub) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopLocked()
}

func (h *Hub) stopLocked() error {
	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		if err := h.started[i].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", h.started[i].Name(), err))
		}
	}
	h.started = nil
	return errors.Join(errs...)
}

// Func adapts plain start and stop functions into a Service
type Func struct {
	ID       string
	Requires []string
	OnStart  func(ctx context.Context) error
	OnStop   func() error
}

func (f *Func) Name() string { return f.ID }
func (f *Func) Dependencies() []string { return f.Requires }

func (f *Func) Start(ctx context.Context) error {
	if f.OnStart == nil {
		return nil
	}
	return f.OnStart(ctx)
}

func (f *Func) Stop() error {
	if f.OnStop == nil {
		return nil
	}
	return f.OnStop()
}
