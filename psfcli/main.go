package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/psf2"
	"github.com/npillmayer/psf2/psf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'psf2.cli'
func tracer() tracing.Trace {
	return tracing.Select("psf2.cli")
}

func main() {
	initDisplay()
	if err := initTracing(); err != nil {
		fmt.Printf("error configuring tracing: %v\n", err)
		os.Exit(1)
	}

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "PSF2 font file to load")
	size := flag.String("size", "8x16", "Spleen font size to load from -dir, if no -font is given")
	dir := flag.String("dir", ".", "Directory of Spleen font files")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // until the font is loaded
	pterm.Info.Println("Welcome to PSF2 CLI")
	//
	repl, err := readline.New("psf > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	if err := intp.loadFont(*fontname, *dir, *size); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	if err := setTraceLevel(*tlevel); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(5)
	}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// initTracing routes all tracers to the Go logging adapter.
func initTracing() error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.psf2.cli":  "Info",
		"trace.psf2":      "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func setTraceLevel(level string) error {
	switch level {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		return fmt.Errorf("invalid trace level: %s", level)
	}
	tracer().Infof("Trace level is %s", level)
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	font     *psf.Font
	fontname string
	repl     *readline.Instance
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "()"
	}
	return fmt.Sprintf("( font=%s %dx%d, %d glyphs )", intp.fontname,
		intp.font.Width(), intp.font.Height(), intp.font.NumGlyphs())
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		steps, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if intp.execute(steps) {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single step of a command line, e.g. "records:20".
type Op struct {
	code   int
	arg    string
	format string
}

// op-codes, indexing opTable
const (
	QUIT int = iota
	HELP
	INFO
	CHECK
	GLYPH
	INDEX
	RECORDS
	COVERAGE
	TEXT
	PNG
)

type opEntry struct {
	name string
	fn   func(*Intp, *Op) (error, bool)
	rest bool // argument extends to the end of the line
}

var opTable = [...]opEntry{
	QUIT:     {"quit", quitOp, false},
	HELP:     {"help", helpOp, false},
	INFO:     {"info", infoOp, false},
	CHECK:    {"check", checkOp, false},
	GLYPH:    {"glyph", glyphOp, true},
	INDEX:    {"index", indexOp, false},
	RECORDS:  {"records", recordsOp, false},
	COVERAGE: {"coverage", coverageOp, false},
	TEXT:     {"text", textOp, true},
	PNG:      {"png", pngOp, true},
}

func lookupOp(name string) int {
	for code, e := range opTable {
		if e.name == strings.ToLower(name) {
			return code
		}
	}
	return HELP
}

const maxSteps = 32

// parseCommand splits a line into steps, e.g. "info records:10". Text
// arguments, as in "text:Hello World", extend to the end of the line and
// may contain colons; for png the file name follows the last colon.
// Parsing stops after "quit". Unknown commands are replaced by "help".
func parseCommand(line string) ([]Op, error) {
	var steps []Op
	rest := strings.TrimSpace(line)
	for rest != "" {
		if len(steps) == maxSteps {
			return nil, fmt.Errorf("more than %d steps in command", maxSteps)
		}
		word, remainder, _ := strings.Cut(rest, " ")
		name, arg, _ := strings.Cut(word, ":")
		code := lookupOp(name)
		op := Op{code: code}
		if opTable[code].rest {
			_, arg, _ = strings.Cut(rest, ":") // may contain blanks and colons
			remainder = ""
			if code == PNG { // png:<text>:<file>
				if i := strings.LastIndexByte(arg, ':'); i >= 0 {
					arg, op.format = arg[:i], arg[i+1:]
				}
			}
		} else {
			arg, op.format, _ = strings.Cut(arg, ":") // e.g. "records:20"
		}
		op.arg = arg
		tracer().Debugf("parsed step %s: arg=%q format=%q", opTable[code].name, op.arg, op.format)
		steps = append(steps, op)
		if code == QUIT {
			break
		}
		rest = strings.TrimSpace(remainder)
	}
	return steps, nil
}

// execute runs the steps of a command until one of them fails.
// It returns true if the REPL should stop.
func (intp *Intp) execute(steps []Op) bool {
	for i := range steps {
		err, stop := opTable[steps[i].code].fn(intp, &steps[i])
		if err != nil {
			pterm.Error.Println(err)
			return false
		}
		if stop {
			return true
		}
	}
	return false
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

// --- Font Loading -----------------------------------------------------

// loadFont loads a font file, or a Spleen font of a given size from dir.
func (intp *Intp) loadFont(fontname, dir, size string) (err error) {
	if fontname != "" {
		intp.font, err = psf2.LoadFont(fontname)
		intp.fontname = fontname
	} else {
		var s psf2.Size
		if s, err = parseSize(size); err != nil {
			return err
		}
		intp.font, err = psf2.LoadSize(dir, s)
		intp.fontname = s.Filename()
	}
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", intp.fontname, err)
		return err
	}
	tracer().Infof("loaded PSF2 font = %s", intp.fontname)
	return nil
}

func parseSize(size string) (psf2.Size, error) {
	for _, s := range psf2.Sizes {
		if s.String() == size {
			return s, nil
		}
	}
	return 0, fmt.Errorf("no Spleen font of size %q", size)
}

// ----------------------------------------------------------------------

var (
	ErrNoArg  = errors.New("command needs an argument")
	ErrNoFont = errors.New("no font loaded")
)

func (op *Op) hasArg() (string, bool) {
	return op.arg, op.arg != ""
}
