package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/qngen/qngen/namegen"
	"golang.org/x/term"
)

// spinWheel redraws freshly drawn names on a single line with a climbing
// delay until the wheel settles, leaving the final name printed.
func spinWheel(gen *namegen.Generator, req namegen.Request) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("--wheel requires a TTY on stdout")
	}

	x := 0.0
	prevWidth := 0
	for {
		name, err := gen.Pick(req)
		if err != nil {
			return err
		}
		s := name.Format(req.Style)

		fmt.Printf("\r%s\r%s", strings.Repeat(" ", prevWidth), s)
		prevWidth = utf8.RuneCountInString(s)

		dur := time.Duration((math.Pow(x, 10) + 0.05) * float64(time.Second))
		x += 0.02
		if x > 1.05 {
			break
		}
		time.Sleep(dur)
	}

	fmt.Println()
	return nil
}
