package controllers

import (
	"errors"
	"testing"

	"github.com/dailyquil/dailyquil/models"
)

func TestChoosePromptEmpty(t *testing.T) {
	p, err := choosePrompt(nil)
	if !errors.Is(err, errNoPrompts) {
		t.Fatalf("expected errNoPrompts, got %v", err)
	}
	if p != nil {
		t.Errorf("expected nil prompt on empty input")
	}
}

func TestChoosePromptCoversAllCandidates(t *testing.T) {
	prompts := []models.Prompt{{ID: 1}, {ID: 2}, {ID: 3}}

	seen := make(map[uint]bool)
	for i := 0; i < 200; i++ {
		p, err := choosePrompt(prompts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[p.ID] = true
	}
	for _, want := range []uint{1, 2, 3} {
		if !seen[want] {
			t.Errorf("prompt %d was never picked in 200 draws", want)
		}
	}
}

func TestWeightedIndex(t *testing.T) {
	weights := []int{3, 1, 2}

	// Deterministic intn: walk every value in [0, total) and check the
	// bucket boundaries.
	wantByDraw := []int{0, 0, 0, 1, 2, 2}
	for draw, want := range wantByDraw {
		got := weightedIndex(weights, func(int) int { return draw })
		if got != want {
			t.Errorf("draw %d picked index %d, want %d", draw, got, want)
		}
	}
}

func TestWeightedIndexSkipsNonPositiveWeights(t *testing.T) {
	weights := []int{0, 5, -2}
	for draw := 0; draw < 5; draw++ {
		got := weightedIndex(weights, func(int) int { return draw })
		if got != 1 {
			t.Errorf("draw %d picked index %d, want 1", draw, got)
		}
	}
}

func TestWeightedIndexAllZero(t *testing.T) {
	if got := weightedIndex([]int{0, 0}, func(int) int { return 0 }); got != 0 {
		t.Errorf("all-zero weights should fall back to index 0, got %d", got)
	}
}
