package game

import (
	"testing"

	"spherepuzzle/internal/puzzle"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func keys(held ...int32) func(int32) bool {
	return func(key int32) bool {
		for _, k := range held {
			if k == key {
				return true
			}
		}
		return false
	}
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name string
		held []int32
		want puzzle.Input
	}{
		{"none", nil, puzzle.Input{}},
		{"wasd", []int32{rl.KeyW, rl.KeyD}, puzzle.Input{Forward: true, Right: true}},
		{"arrows", []int32{rl.KeyDown, rl.KeyLeft}, puzzle.Input{Back: true, Left: true}},
		{"mixed", []int32{rl.KeyUp, rl.KeyS}, puzzle.Input{Forward: true, Back: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReadInput(keys(tt.held...)); got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}
