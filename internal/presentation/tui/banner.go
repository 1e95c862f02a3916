package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the colored exprtree banner to w.
// Colors degrade to plain text when w is not a color-capable terminal.
func PrintBanner(w io.Writer) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"                        _                 ", "#818cf8"},
		{"   _____  ___ __  _ __ | |_ _ __ ___  ___ ", "#a78bfa"},
		{"  / _ \\ \\/ / '_ \\| '__|| __| '__/ _ \\/ _ \\", "#c084fc"},
		{" |  __/>  <| |_) | |   | |_| | |  __/  __/", "#e879f9"},
		{"  \\___/_/\\_\\ .__/|_|    \\__|_|  \\___|\\___|", "#f472b6"},
		{"           |_|                            ", "#fb7185"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w)
}
