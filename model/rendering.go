package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer draws generations as text blocks
type TerminalRenderer struct {
	Out io.Writer // defaults to os.Stdout
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Board is the read-only view the renderer needs; every Generation satisfies it
type Board interface {
	Width() int
	Height() int
	IsAlive(x, y int) bool
}

// Render returns the board as lines of blocks, one line per row
func Render(b Board) string {
	var sb strings.Builder
	sb.Grow((b.Width()*len(gridPosBlock) + 1) * b.Height())
	for y := range b.Height() {
		for x := range b.Width() {
			if b.IsAlive(x, y) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display renders the board to the terminal
func (r *TerminalRenderer) Display(b Board) {
	fmt.Fprint(r.out(), Render(b))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
