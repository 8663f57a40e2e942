package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"spherepuzzle/internal/config"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestPlaythroughSucceeds(t *testing.T) {
	var out bytes.Buffer
	if err := playthrough(&out, config.Default()); err != nil {
		t.Fatalf("Playthrough failed: %v\n%s", err, out.String())
	}

	text := out.String()
	for _, want := range []string{
		"door refused",
		"Inventory: Key",
		"box unlocked",
		"box on button",
		"Puzzle Complete!",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected output to mention %q", want)
		}
	}
}
