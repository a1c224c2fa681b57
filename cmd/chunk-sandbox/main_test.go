package main

import (
	"context"
	"errors"
	"testing"

	"github.com/lixenwraith/tilestream/service"
)

func TestRegisterAllReportsDuplicate(t *testing.T) {
	hub := service.NewHub()
	err := registerAll(hub,
		&service.Func{ID: "content"},
		&service.Func{ID: "scheduler", Requires: []string{"content"}},
		&service.Func{ID: "scheduler"},
	)
	if !errors.Is(err, service.ErrDuplicateService) {
		t.Fatalf("Expected duplicate service error, got %v", err)
	}

	order, err := hub.StartOrder()
	if err != nil {
		t.Fatalf("Expected registered services to resolve, got %v", err)
	}
	if len(order) != 2 || order[0] != "content" || order[1] != "scheduler" {
		t.Errorf("Expected [content scheduler], got %v", order)
	}
}

func TestRegisterAllStartsInOrder(t *testing.T) {
	var started []string
	mk := func(id string, deps ...string) *service.Func {
		return &service.Func{ID: id, Requires: deps, OnStart: func(context.Context) error {
			started = append(started, id)
			return nil
		}}
	}

	hub := service.NewHub()
	if err := registerAll(hub, mk("status", "scheduler"), mk("scheduler", "content"), mk("content")); err != nil {
		t.Fatalf("Expected registration, got %v", err)
	}
	if err := hub.Start(context.Background()); err != nil {
		t.Fatalf("Expected start, got %v", err)
	}
	defer hub.Stop()

	if len(started) != 3 || started[0] != "content" || started[2] != "status" {
		t.Errorf("Expected content first and status last, got %v", started)
	}
}
