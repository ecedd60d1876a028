package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/cellsplit/bubble"
	"github.com/lixenwraith/cellsplit/dsl"
	"github.com/lixenwraith/cellsplit/split"
	"github.com/lixenwraith/cellsplit/terminal"
)

//go:embed demo.cell
var demoLayout string

var (
	configFlag    = flag.String("config", defaultConfigPath, "Config file, ignored when missing")
	layoutFlag    = flag.String("layout", "", "Layout file (default: built-in demo)")
	inlineFlag    = flag.Bool("inline", false, "Print a single frame to stdout and exit")
	widthFlag     = flag.Int("width", 80, "Frame width for -inline")
	heightFlag    = flag.Int("height", 24, "Frame height for -inline")
	teaFlag       = flag.Bool("tea", false, "Run inside a bubbletea program instead of tcell")
	watchFlag     = flag.Bool("watch", false, "Reload the layout file when it changes")
	colorModeFlag = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	debugFlag     = flag.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
)

func main() {
	// Terminal must be usable again before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCELLSPLIT CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	opts, err := resolveOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cellsplit: %v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "cellsplit: %v\n", err)
		os.Exit(1)
	}
}

// resolveOptions combines parsed flags with the config file
func resolveOptions() (options, error) {
	opts := options{
		layout: *layoutFlag,
		color:  *colorModeFlag,
		width:  *widthFlag,
		height: *heightFlag,
		inline: *inlineFlag,
		tea:    *teaFlag,
		watch:  *watchFlag,
		debug:  *debugFlag,
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return opts, err
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	opts.merge(cfg, set)
	return opts, nil
}

func run(opts options) error {
	watchPath, err := opts.watchPath()
	if err != nil {
		return err
	}

	root, name, err := loadLayout(opts.layout)
	if err != nil {
		return err
	}
	log.Printf("layout %q loaded", name)

	colorMode := terminal.ParseColorMode(opts.color)
	view := withChrome(root, name)

	switch {
	case opts.inline:
		return renderInline(view, opts.width, opts.height, colorMode)
	case opts.tea:
		_, err := tea.NewProgram(bubble.New(view), tea.WithAltScreen()).Run()
		return errors.Wrap(err, "bubbletea")
	default:
		return runScreen(view, name, watchPath, colorMode)
	}
}

// loadLayout returns the tree from path, or the embedded demo when path is empty
func loadLayout(path string) (split.Cell, string, error) {
	if path == "" {
		doc, err := dsl.ParseString("demo.cell", demoLayout)
		if err != nil {
			return nil, "", errors.Wrap(err, "parse demo layout")
		}
		root, err := doc.Build()
		return root, "demo", errors.Wrap(err, "build demo layout")
	}

	root, err := dsl.Load(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "load %s", path)
	}
	return root, path, nil
}

func renderInline(view split.Cell, w, h int, mode terminal.ColorMode) error {
	if w <= 0 || h <= 0 {
		return errors.Errorf("invalid frame size %dx%d", w, h)
	}
	buf := terminal.NewBuffer(w, h)
	split.Render(view, buf)
	return errors.Wrap(terminal.NewEncoder(os.Stdout, mode).Encode(buf), "write frame")
}

// runScreen drives the tcell loop until a quit key
// A non-empty watchPath is reloaded on change and swapped in on the next event
func runScreen(view split.Cell, name, watchPath string, mode terminal.ColorMode) error {
	scr, err := terminal.NewScreen(mode)
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := scr.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer scr.Fini()

	if watchPath != "" {
		stop, err := watchLayout(watchPath, func(root split.Cell) {
			scr.PostEvent(tcell.NewEventInterrupt(root))
		})
		if err != nil {
			return err
		}
		defer stop()
	}

	buf := terminal.NewBuffer(scr.Size())
	draw := func() {
		w, h := scr.Size()
		if w != buf.W || h != buf.H {
			buf.Resize(w, h)
		} else {
			buf.Reset()
		}
		split.Render(view, buf)
		scr.Flush(buf)
	}

	draw()
	for {
		switch ev := scr.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			log.Printf("resize %dx%d", w, h)
			scr.Sync()
			draw()
		case *tcell.EventInterrupt:
			if root, ok := ev.Data().(split.Cell); ok {
				view = withChrome(root, name)
				draw()
			}
		case *tcell.EventKey:
			if isQuitKey(ev) {
				return nil
			}
		case nil:
			return nil
		}
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
