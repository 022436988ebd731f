package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/twmerge"
)

// Runner executes one twmerge invocation
type Runner struct {
	options *Options
	merger  *twmerge.Merger
	output  io.Writer
	unique  *twmerge.UniqueWriter
	closers []io.Closer
}

// New creates a runner writing to the output file of options, or stdout
func New(options *Options) (*Runner, error) {
	output := io.Writer(os.Stdout)
	var closers []io.Closer
	if options.Output != "" {
		fs, err := os.OpenFile(options.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open output file %v: %w", options.Output, err)
		}
		output = fs
		closers = append(closers, fs)
	}
	r, err := newRunner(options, output)
	if err != nil {
		for _, c := range closers {
			_ = c.Close()
		}
		return nil, err
	}
	r.closers = append(closers, r.closers...)
	return r, nil
}

func newRunner(options *Options, output io.Writer) (*Runner, error) {
	config, err := loadGroupConfig(options.GroupConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read group config: %w", err)
	}
	merger, err := twmerge.New(&twmerge.Options{
		Config:      config,
		Concurrency: options.Concurrency,
		Template:    options.Format,
	})
	if err != nil {
		return nil, err
	}
	r := &Runner{options: options, merger: merger, output: output}
	if options.Unique {
		uw := twmerge.NewUniqueWriter(output, options.inputSize())
		// flushed before the output file is closed
		r.closers = append(r.closers, uw)
		r.output = uw
		r.unique = uw
	}
	return r, nil
}

// Run executes the mode selected by the options
func (r *Runner) Run(ctx context.Context) error {
	switch {
	case r.options.SampleConfig != "":
		if err := twmerge.GenerateSample(r.options.SampleConfig); err != nil {
			return fmt.Errorf("failed to write sample config: %w", err)
		}
		gologger.Info().Msgf("Sample group config written to %v", r.options.SampleConfig)
		return nil
	case r.options.ListGroups:
		return r.listGroups()
	case r.options.Classify:
		return r.classify()
	}

	if len(r.options.Inputs) > 0 {
		merged := r.merger.Merge(r.options.Inputs...)
		line := r.merger.FormatLine(merged, strings.Join(r.options.Inputs, " "), 1)
		if _, err := io.WriteString(r.output, line+"\n"); err != nil {
			return err
		}
	}
	if len(r.options.lines) > 0 {
		if err := r.merger.ExecuteWithWriter(ctx, r.options.lines, r.output); err != nil {
			return err
		}
		if r.unique != nil {
			gologger.Info().Msgf("Merged %d class lists, %d unique", len(r.options.lines), r.unique.Count())
		} else {
			gologger.Info().Msgf("Merged %d class lists", len(r.options.lines))
		}
	}
	return nil
}

func (r *Runner) listGroups() error {
	gologger.Verbose().Msgf("Variants: %s", strings.Join(r.merger.Variants(), " "))
	for i, id := range r.merger.Groups() {
		if _, err := fmt.Fprintf(r.output, "%d\t%s\n", i+1, id); err != nil {
			return err
		}
	}
	return nil
}

// classify prints `token<TAB>group` for every token of every input
func (r *Runner) classify() error {
	all := append(append([]string{}, r.options.Inputs...), r.options.lines...)
	for _, input := range all {
		for _, token := range strings.Fields(input) {
			c := r.merger.Lookup(token)
			if c.Custom {
				gologger.Verbose().Msgf("%v matched no group", token)
			}
			if _, err := fmt.Fprintf(r.output, "%s\t%s\n", c.Token, c.Group); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close flushes pending output and closes the output file
func (r *Runner) Close() error {
	var firstErr error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.closers = nil
	return firstErr
}

// inputSize estimates the bytes of output, used to size the unique writer storage
func (o *Options) inputSize() int {
	size := 0
	for _, v := range o.Inputs {
		size += len(v) + 1
	}
	for _, v := range o.lines {
		size += len(v) + 1
	}
	return size
}
