package twmerge

import (
	"context"
	"io"
	"strings"

	"github.com/projectdiscovery/gologger"
	errorutil "github.com/projectdiscovery/utils/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of inputs MergeEach merges in parallel by default.
var DefaultConcurrency = 8

// Merger Options
type Options struct {
	// Config extends the built-in table (optional)
	Config *Config
	// Groups are added after the config groups, a group with an
	// existing id extends that group instead
	Groups []Group
	// Concurrency used by MergeEach and ExecuteWithWriter (default DefaultConcurrency)
	Concurrency int
	// Template formats each output line of ExecuteWithWriter, ex: class="{{classes}}"
	Template string
}

// Merger resolves conflicting utility classes.
// It is safe for concurrent use.
type Merger struct {
	Options    *Options
	classifier *Classifier
}

// New creates and returns new merger instance from options
func New(opts *Options) (*Merger, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.Template != "" {
		if err := validateTemplate(opts.Template); err != nil {
			return nil, err
		}
	}
	var provider GroupProvider = DefaultGroupProvider{}
	if opts.Config != nil {
		provider = NewConfigGroupProvider(opts.Config)
	}
	groups, variants, err := provider.GetGroups()
	if err != nil {
		return nil, err
	}
	for _, g := range opts.Groups {
		if g.ID == "" {
			return nil, ErrNoGroupID
		}
		if len(g.Recognizers) == 0 {
			return nil, errorutil.NewWithTag("twmerge", "group %v has no recognizers", g.ID)
		}
		if groups, err = placeGroup(groups, g, "", ""); err != nil {
			return nil, err
		}
	}
	gologger.Verbose().Msgf("Loaded %d groups (table %v)", len(groups), TableVersion)
	return &Merger{
		Options:    opts,
		classifier: NewClassifier(groups, variants...),
	}, nil
}

// Classify returns the group of token, CustomPrefix+token if no group accepts it.
func (m *Merger) Classify(token string) string {
	return m.classifier.Classify(token)
}

// Lookup classifies token and reports the details of the decision.
func (m *Merger) Lookup(token string) Classification {
	return m.classifier.Lookup(token)
}

// Groups returns the group identifiers in table order.
func (m *Merger) Groups() []string {
	return m.classifier.Groups()
}

// Variants returns the recognized variant prefixes, sorted.
func (m *Merger) Variants() []string {
	return m.classifier.Variants()
}

// Merge merges whitespace separated class lists. For every group only the
// last token is kept, at the position where the group first appeared.
// Empty inputs contribute nothing.
func (m *Merger) Merge(inputs ...string) string {
	acc := NewIndexMap(len(inputs) * 4)
	for _, input := range inputs {
		m.fold(acc, input)
	}
	return acc.String()
}

// MergeOptional is Merge for optional inputs; nil entries are skipped.
func (m *Merger) MergeOptional(inputs ...*string) string {
	acc := NewIndexMap(len(inputs) * 4)
	for _, input := range inputs {
		if input == nil {
			continue
		}
		m.fold(acc, *input)
	}
	return acc.String()
}

func (m *Merger) fold(acc *IndexMap, input string) {
	for _, token := range strings.Fields(input) {
		acc.Set(m.classifier.Classify(token), token)
	}
}

// MergeEach merges every input on its own. Result i is the merge of inputs[i].
func (m *Merger) MergeEach(ctx context.Context, inputs []string) ([]string, error) {
	results := make([]string, len(inputs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.Options.Concurrency)
	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = m.Merge(input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// ExecuteWithWriter merges every input on its own and writes one line per
// input to writer, formatted with Options.Template when set.
func (m *Merger) ExecuteWithWriter(ctx context.Context, inputs []string, writer io.Writer) error {
	if writer == nil {
		return errorutil.NewWithTag("twmerge", "writer destination cannot be nil")
	}
	results, err := m.MergeEach(ctx, inputs)
	if err != nil {
		return err
	}
	for i, classes := range results {
		if _, err := io.WriteString(writer, m.FormatLine(classes, inputs[i], i+1)+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// FormatLine applies Options.Template to a merged class string.
func (m *Merger) FormatLine(classes, input string, line int) string {
	if m.Options.Template == "" {
		return classes
	}
	return Format(m.Options.Template, map[string]interface{}{
		VarClasses: classes,
		VarInput:   input,
		VarLine:    line,
	})
}
