package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"langton/internal/sims/ant"
	"langton/internal/view"

	"github.com/integrii/flaggy"
)

type options struct {
	size    int
	rules   string
	preset  string
	steps   int
	back    int
	print   bool
	noColor bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseOptions(args []string) (options, error) {
	def := ant.DefaultConfig()
	o := options{size: def.Size, rules: def.Rules, steps: 11000}

	p := flaggy.NewParser("antrun")
	p.Description = "Run a Langton's ant headless and print the result"
	p.ShowHelpOnUnexpected = false
	p.Int(&o.size, "s", "size", "Grid edge length in cells")
	p.String(&o.rules, "r", "rules", "Turn rules, one R or L per cell state")
	p.String(&o.preset, "", "preset", "Named rule preset (overrides --rules)")
	p.Int(&o.steps, "n", "steps", "Number of forward steps")
	p.Int(&o.back, "b", "back", "Steps to undo after the run (at most 3 succeed)")
	p.Bool(&o.print, "p", "print", "Print the final grid")
	p.Bool(&o.noColor, "", "no-color", "Disable ANSI colours")
	if err := p.ParseArgs(args); err != nil {
		return o, err
	}
	if o.steps < 0 || o.back < 0 {
		return o, errors.New("steps and back must not be negative")
	}
	return o, nil
}

func run(args []string, out io.Writer) error {
	o, err := parseOptions(args)
	if err != nil {
		return err
	}
	rules := ant.SanitizeRules(o.rules)
	if o.preset != "" {
		preset, ok := ant.PresetByName(o.preset)
		if !ok {
			return fmt.Errorf("unknown preset %q", o.preset)
		}
		rules = preset.Rules
	}

	engine, err := ant.NewWithConfig(ant.Config{Size: o.size, Rules: rules})
	if err != nil {
		return err
	}

	start := time.Now()
	engine.SetPaused(false)
	for i := 0; i < o.steps; i++ {
		engine.Step()
	}
	undone := 0
	for i := 0; i < o.back; i++ {
		if !engine.StepBack() {
			break
		}
		undone++
	}
	engine.SetPaused(true)
	engine.AddElapsed(time.Since(start))

	console := view.NewConsole(out, !o.noColor)
	if o.print {
		if err := console.Grid(engine); err != nil {
			return err
		}
	}
	stats := view.Stats(engine)
	stats["Undone"] = undone
	return console.Summary("Finished", stats)
}
