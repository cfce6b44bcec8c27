package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	sketchlang "sketchlang-go"
	"sketchlang-go/logger"
)

const appName = "sketch"

const banner = "sketchlang REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

const helpText = `
REPL commands:
  :help     Show this help
  :undo     Undo the last drawn object
  :redo     Redo the last undone object
  :clear    Clear the figure
  :render   Print the rendered figure
  :quit     Exit
`

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func main() {
	cfgPath := flag.String("c", "", "path to a YAML config file")
	outPath := flag.String("o", "", "write the rendered figure to this file")
	format := flag.String("format", "", "output format: svg or tikz (overrides config)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	log := logger.New(os.Stderr, logger.LevelInfo, appName)
	if *verbose {
		log = logger.New(os.Stderr, logger.LevelDebug, appName)
	}

	cfg, err := sketchlang.LoadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Format = *format
	}

	renderer, err := rendererFor(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	interp := sketchlang.NewInterpreter(sketchlang.DefaultRegistry())
	fig := sketchlang.NewFigure(cfg.Dims)

	if flag.NArg() > 0 {
		if err := runScript(flag.Arg(0), interp, fig, log); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		runREPL(cfg, interp, fig, renderer)
	}

	if *outPath == "" && flag.NArg() == 0 {
		return
	}
	output, err := fig.Render(renderer)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(output), 0644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		log.Info("wrote %s", *outPath)
	} else {
		fmt.Println(output)
	}
}

func rendererFor(cfg sketchlang.Config) (sketchlang.Renderer, error) {
	switch cfg.Format {
	case "svg":
		return sketchlang.SVGRenderer{Width: cfg.Width, Height: cfg.Height}, nil
	case "tikz":
		return sketchlang.TikzRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", cfg.Format)
}

// runScript executes a sketch file, one command per line. Blank lines
// and # comments are skipped; the first error aborts the run.
func runScript(path string, interp *sketchlang.Interpreter, fig *sketchlang.Figure, log *logger.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for i, line := range strings.Split(string(data), "\n") {
		cmd := strings.TrimSpace(line)
		if cmd == "" || strings.HasPrefix(cmd, "#") {
			continue
		}
		drawables, err := interp.Run(cmd)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, i+1, err)
		}
		for _, d := range drawables {
			if err := fig.Draw(d); err != nil {
				return fmt.Errorf("%s:%d: %w", path, i+1, err)
			}
			log.Debug("drew %s", d.Repr())
		}
	}
	return nil
}

func runREPL(cfg sketchlang.Config, interp *sketchlang.Interpreter, fig *sketchlang.Figure, renderer sketchlang.Renderer) {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.History); err == nil {
		rl.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.History); err == nil {
			rl.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Println(banner)
	for {
		line, err := rl.Prompt(cfg.Prompt)
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		cmd := strings.TrimSpace(line)
		if cmd == "" {
			continue
		}
		rl.AppendHistory(cmd)

		if strings.HasPrefix(cmd, ":") {
			if done := replCommand(cmd, fig, renderer); done {
				return
			}
			continue
		}

		drawables, err := interp.Run(cmd)
		if err != nil {
			fmt.Println(red(err.Error()))
			continue
		}
		for _, d := range drawables {
			if err := fig.Draw(d); err != nil {
				fmt.Println(red(err.Error()))
				continue
			}
			fmt.Println(green(d.Repr()))
		}
	}
}

// replCommand handles a :command; it reports whether the REPL should
// exit.
func replCommand(cmd string, fig *sketchlang.Figure, renderer sketchlang.Renderer) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Print(helpText)
	case ":undo":
		if !fig.Undo() {
			fmt.Println("nothing to undo")
		}
	case ":redo":
		if !fig.Redo() {
			fmt.Println("nothing to redo")
		}
	case ":clear":
		fig.Clear()
	case ":render":
		out, err := fig.Render(renderer)
		if err != nil {
			fmt.Println(red(err.Error()))
			break
		}
		fmt.Println(out)
	default:
		fmt.Printf("unknown command %s (try :help)\n", cmd)
	}
	return false
}
