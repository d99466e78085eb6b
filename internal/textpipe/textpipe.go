// Package textpipe builds the line processing pipeline behind the itx
// command.
package textpipe

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	itertools "github.com/jake-scott/go-itertools"
	"github.com/jake-scott/go-itertools/internal/config"
	"github.com/jake-scott/go-itertools/iter/scanner"
	"github.com/jake-scott/go-itertools/option"
	"github.com/jake-scott/go-itertools/pair"
)

// Pipeline reads lines from an input, selects and decorates them according
// to a Config and writes the result to an output.
type Pipeline struct {
	cfg    *config.Config
	match  *regexp.Regexp
	logger zerolog.Logger

	sources []*scanner.Iterator
}

type line = pair.Pair[uint, string]

// New compiles cfg into a Pipeline.
func New(cfg *config.Config, logger zerolog.Logger) (*Pipeline, error) {
	p := &Pipeline{
		cfg:    cfg,
		logger: logger,
	}

	if cfg.Match != "" {
		re, err := regexp.Compile(cfg.Match)
		if err != nil {
			return nil, errors.Wrapf(err, "compiling match expression %q", cfg.Match)
		}
		p.match = re
	}

	return p, nil
}

func (p *Pipeline) stageOptions() []itertools.StageOption {
	return []itertools.StageOption{
		itertools.InheritOptions(true),
		itertools.WithLogger(p.logger),
		itertools.WithTracing(p.cfg.Trace),
	}
}

func (p *Pipeline) lines(r io.Reader) *itertools.Stage[string] {
	src := scanner.New(bufio.NewScanner(r))
	p.sources = append(p.sources, &src)

	return itertools.NewStage[string](&src, p.stageOptions()...)
}

// selectLines numbers every input line from 1 and keeps those that pass the
// configured filters.
func (p *Pipeline) selectLines(r io.Reader) *itertools.Stage[line] {
	numbered := itertools.Map(itertools.Enumerate(p.lines(r)), func(l line) line {
		l.First++
		return l
	})

	if p.match != nil {
		numbered = numbered.Filter(func(l line) bool {
			return p.match.MatchString(l.Second)
		})
	}

	if p.cfg.MinLength > 0 {
		numbered = numbered.Filter(func(l line) bool {
			return utf8.RuneCountInString(l.Second) >= p.cfg.MinLength
		})
	}

	return numbered
}

func (p *Pipeline) render(l line) string {
	n, text := l.Unpack()
	if p.cfg.Number {
		return fmt.Sprintf("%d: %s", n, text)
	}
	return text
}

// Run processes in, and zip when the config names a zip file, writing the
// results to out.
func (p *Pipeline) Run(in io.Reader, zip io.Reader, out io.Writer) error {
	p.sources = nil

	var err error
	if p.cfg.Reduce != config.ReduceNone {
		err = p.reduce(in, out)
	} else {
		err = p.print(in, zip, out)
	}
	if err != nil {
		return err
	}

	for _, src := range p.sources {
		if err := src.Error(); err != nil {
			return errors.Wrap(err, "reading input")
		}
	}

	return nil
}

func (p *Pipeline) print(in io.Reader, zip io.Reader, out io.Writer) error {
	selected := p.selectLines(in)

	var rendered *itertools.Stage[string]
	if zip != nil {
		zipped := itertools.Zip(selected, p.lines(zip))
		rendered = itertools.Map(zipped, func(z pair.Pair[line, string]) string {
			l, other := z.Unpack()
			return p.render(l) + "\t" + other
		})
	} else {
		rendered = itertools.Map(selected, p.render)
	}

	if p.cfg.Limit > 0 {
		rendered = rendered.Take(uint(p.cfg.Limit))
	}

	w := bufio.NewWriter(out)
	for s := range rendered.All() {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}

	return errors.Wrap(w.Flush(), "writing output")
}

func (p *Pipeline) number(l line) option.Option[float64] {
	v, err := strconv.ParseFloat(strings.TrimSpace(l.Second), 64)
	if err != nil {
		p.logger.Warn().Uint("line", l.First).Str("text", l.Second).Msg("skipping non-numeric line")
		return option.None[float64]()
	}
	return option.Some(v)
}

func (p *Pipeline) reduce(in io.Reader, out io.Writer) error {
	selected := p.selectLines(in)
	if p.cfg.Limit > 0 {
		selected = selected.Take(uint(p.cfg.Limit))
	}

	if p.cfg.Reduce == config.ReduceCount {
		_, err := fmt.Fprintln(out, selected.Count())
		return errors.Wrap(err, "writing output")
	}

	parsed := itertools.Map(selected, p.number).Filter(func(o option.Option[float64]) bool {
		return o.IsSome()
	})
	numbers := itertools.Map(parsed, func(o option.Option[float64]) float64 {
		return o.Get()
	})

	var result option.Option[float64]
	switch p.cfg.Reduce {
	case config.ReduceSum:
		result = itertools.Sum(numbers)
	case config.ReduceProduct:
		result = itertools.Product(numbers)
	default:
		return errors.Errorf("unknown reduction %q", p.cfg.Reduce)
	}

	var err error
	if v, ok := result.GetOK(); ok {
		_, err = fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64))
	} else {
		_, err = fmt.Fprintln(out, "none")
	}
	return errors.Wrap(err, "writing output")
}
