// Package aoc are quick & dirty utilities for running Advent of Code
// puzzle solvers against their sample and real inputs.
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

var log = logrus.New()

// A Puzzle is what a PuzzleFunc gets to work with on each run.
type Puzzle struct {
	Day     int
	Name    string
	Input   []byte
	Sample  bool // Input is the sample from the func's doc comment
	Workers int  // parallelism hint from -workers

	Log *logrus.Entry
}

// PuzzleFunc solves one part of one day. Its result is compared to the
// sample's want= value with fmt.Sprint.
type PuzzleFunc func(p *Puzzle) (any, error)

type sample struct {
	input string
	want  string
}

// Registry holds puzzle funcs by name, in registration order.
type Registry struct {
	puzzles []string
	byName  map[string]PuzzleFunc
	samples map[string]sample
}

func NewRegistry() *Registry {
	return &Registry{
		byName:  map[string]PuzzleFunc{},
		samples: map[string]sample{},
	}
}

func funcName(f PuzzleFunc) string {
	rv := reflect.ValueOf(f)
	rf := runtime.FuncForPC(rv.Pointer())
	if rf == nil {
		panic("no func found")
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func (r *Registry) Add(puzFuncs ...PuzzleFunc) {
	for _, f := range puzFuncs {
		name := funcName(f)
		if _, dup := r.byName[name]; !dup {
			r.puzzles = append(r.puzzles, name)
		}
		r.byName[name] = f
	}
}

// Names returns the registered func names, sorted.
func (r *Registry) Names() []string {
	names := maps.Keys(r.byName)
	slices.Sort(names)
	return names
}

var wantRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// ExtractSamples parses src as Go and records a sample for each func
// whose doc comment has a "want=" line. The sample input is the text
// following that line; if there is none, the previous sample's input is
// reused.
func (r *Registry) ExtractSamples(src []byte) error {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			text := strings.TrimPrefix(c.Text, "//")
			if v, ok := strings.CutPrefix(text, "/*"); ok {
				text = strings.TrimSuffix(v, "*/")
			}
			if m := wantRx.FindStringSubmatch(text); m != nil {
				in := Or(m[2], lastInput)
				r.samples[funcName] = sample{input: in, want: m[1]}
				lastInput = in
			}
		}
	}
	return nil
}

// ReadInput returns the whole contents of the puzzle input at path.
func ReadInput(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading puzzle input: %w", err)
	}
	return b, nil
}

var getDay = regexp.MustCompile(`\d+`)

// Run parses args as command-line flags, runs the selected puzzle on its
// sample (if any) and then on the real input, and prints the result to
// stdout.
func (r *Registry) Run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(stdout)
	flagDay := fs.String("day", "", "func name to run; empty string means latest registered. If it starts with a digit, then \"day\" prefix is assumed.")
	flagInput := fs.String("input", "", "path to puzzle input; empty means <day>.input")
	flagSkipSample := fs.Bool("skip-sample", false, "skip the sample check")
	flagWorkers := fs.Int("workers", runtime.NumCPU(), "parallelism for puzzles that support it")
	flagProfile := fs.Bool("profile", false, "write a CPU profile to the current directory")
	flagVerbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(stdout, "Usage: %s [flags]\n\nPuzzles: %s\n\nFlags:\n", fs.Name(), strings.Join(r.Names(), " "))
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if *flagProfile {
		defer profile.Start(profile.ProfilePath("."), profile.Quiet).Stop()
	}

	if len(r.puzzles) == 0 {
		return errors.New("no puzzles registered")
	}
	name := *flagDay
	if name == "" {
		name = r.puzzles[len(r.puzzles)-1]
	}
	if unicode.IsDigit(rune(name[0])) {
		name = "day" + name
	}
	f, ok := r.byName[name]
	if !ok {
		return fmt.Errorf("puzzle func %v not registered", name)
	}
	m := getDay.FindString(name)
	if m == "" {
		return fmt.Errorf("no digits in func name %q from which to extract day number", name)
	}
	day := Int(m)

	lg := log.WithFields(logrus.Fields{"day": day, "func": name})
	p := &Puzzle{Day: day, Name: name, Workers: *flagWorkers, Log: lg}

	if s, ok := r.samples[name]; !ok {
		lg.Warnf("no sample for %v", name)
	} else if !*flagSkipSample {
		p.Input, p.Sample = []byte(s.input), true
		got, err := f(p)
		if err != nil {
			return fmt.Errorf("%v sample: %w", name, err)
		}
		if fmt.Sprint(got) != s.want {
			return fmt.Errorf("for %v sample, got=%v; want %v", name, got, s.want)
		}
		lg.Info("OK sample result.")
	}

	path := Or(*flagInput, fmt.Sprintf("%d.input", day))
	in, err := ReadInput(path)
	if err != nil {
		return err
	}
	p.Input, p.Sample = in, false
	t0 := time.Now()
	v, err := f(p)
	if err != nil {
		return fmt.Errorf("%v: %w", name, err)
	}
	lg.WithFields(logrus.Fields{"input": path, "took": time.Since(t0).Round(time.Microsecond)}).Debug("solved")
	fmt.Fprintln(stdout, v)
	return nil
}

var std = NewRegistry()

// Add registers puzzle funcs with the default registry.
func Add(puzFuncs ...PuzzleFunc) { std.Add(puzFuncs...) }

// ExtractSamples records the samples in src for the default registry.
func ExtractSamples(src []byte) {
	MustDo(std.ExtractSamples(src))
}

// Main runs the default registry with the process's arguments.
func Main() {
	if err := std.Run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func Int(s string) int {
	return MustGet(strconv.Atoi(s))
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// DigVal returns the value of the ASCII decimal digit b.
func DigVal(b byte) (int, bool) {
	if b >= '0' && b <= '9' {
		return int(b - '0'), true
	}
	return 0, false
}

// Or returns the first non-zero element of list, or else returns the zero T.
//
// This is the proposal from
// https://github.com/golang/go/issues/60204#issuecomment-1581245334.
func Or[T comparable](list ...T) T {
	var zero T
	for _, v := range list {
		if v != zero {
			return v
		}
	}
	return zero
}
