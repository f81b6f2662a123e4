package testutil

import (
	"bufio"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

const lineAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ "

// RandomLine returns a line of numChars characters drawn from ASCII letters
// and spaces, without a terminator.
func RandomLine(rng *rand.Rand, numChars int) string {
	var b strings.Builder
	b.Grow(numChars)
	for i := 0; i < numChars; i++ {
		b.WriteByte(lineAlphabet[rng.Intn(len(lineAlphabet))])
	}
	return b.String()
}

// GenerateLines returns numLines random lines of numChars characters each.
func GenerateLines(rng *rand.Rand, numLines, numChars int) []string {
	lines := make([]string, numLines)
	for i := range lines {
		lines[i] = RandomLine(rng, numChars)
	}
	return lines
}

// WriteRandomFile writes numLines random newline-terminated lines of numChars
// characters to a fresh file under tb.TempDir() and returns its path.
func WriteRandomFile(tb testing.TB, rng *rand.Rand, numLines, numChars int) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), uuid.NewString()+".txt")
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < numLines; i++ {
		if _, err := w.WriteString(RandomLine(rng, numChars)); err != nil {
			tb.Fatalf("failed to write test file: %v", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tb.Fatalf("failed to write test file: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		tb.Fatalf("failed to flush test file: %v", err)
	}
	return path
}
