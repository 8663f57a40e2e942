package game

import (
	"spherepuzzle/internal/puzzle"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ReadInput maps the held movement keys to a puzzle.Input.
func ReadInput(isDown func(key int32) bool) puzzle.Input {
	return puzzle.Input{
		Forward: isDown(rl.KeyW) || isDown(rl.KeyUp),
		Back:    isDown(rl.KeyS) || isDown(rl.KeyDown),
		Left:    isDown(rl.KeyA) || isDown(rl.KeyLeft),
		Right:   isDown(rl.KeyD) || isDown(rl.KeyRight),
	}
}
