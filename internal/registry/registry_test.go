package registry

import (
	"testing"

	"github.com/vovakirdan/chicken-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz-stub", Title: "Stub", Description: "test only"}, func() Game {
		return &stubGame{id: "zz-stub"}
	})

	if !Exists("zz-stub") {
		t.Fatal("stub game should exist after Register")
	}

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("created game ID = %q", g.ID())
	}

	info, ok := Info("zz-stub")
	if !ok || info.Description != "test only" {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	list := List()
	if len(list) == 0 || list[len(list)-1].ID != "zz-stub" {
		t.Errorf("List() should be sorted with stub last, got %+v", list)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}
	if Exists("missing") {
		t.Error("missing game should not exist")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "zz-dup"}, func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "zz-dup"}, func() Game { return &stubGame{id: "zz-dup"} })
}
