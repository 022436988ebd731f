package runner

import (
	"io"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	fileutil "github.com/projectdiscovery/utils/file"
	updateutils "github.com/projectdiscovery/utils/update"
)

type Options struct {
	Inputs             goflags.StringSlice // class lists merged into one result
	List               string              // file with one class list per line
	Output             string
	Format             string
	Config             string
	GroupConfig        string
	SampleConfig       string
	Concurrency        int
	Unique             bool
	Classify           bool
	ListGroups         bool
	DisableUpdateCheck bool
	Verbose            bool
	Silent             bool
	// internal/unexported fields
	lines []string // class lists read from -list or stdin
}

func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Resolve conflicting utility-first CSS classes, last class of a group wins.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringSliceVarP(&opts.Inputs, "input", "i", nil, "class list to merge, later lists override earlier ones (repeatable)", goflags.StringSliceOptions),
		flagSet.StringVarP(&opts.List, "list", "l", "", "file with one class list per line, each line merged on its own (stdin supported)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Output, "output", "o", "", "output file to write merged class lists"),
		flagSet.StringVarP(&opts.Format, "format", "f", "", "output template, ex: 'class=\"{{classes}}\"' (vars: classes, input, line)"),
		flagSet.BoolVarP(&opts.Unique, "unique", "u", false, "drop repeated output lines"),
		flagSet.BoolVarP(&opts.Classify, "classify", "cl", false, "print the group of every input token instead of merging"),
		flagSet.BoolVarP(&opts.ListGroups, "list-groups", "lg", false, "list the groups of the table in classification order"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display twmerge version"),
	)

	flagSet.CreateGroup("config", "Config",
		flagSet.StringVar(&opts.Config, "config", "", `twmerge cli config file (default '$HOME/.config/twmerge/config.yaml')`),
		flagSet.StringVarP(&opts.GroupConfig, "group-config", "gc", "", `group config extending the built-in table (default '$HOME/.config/twmerge/groups.yaml')`),
		flagSet.StringVarP(&opts.SampleConfig, "sample-config", "sc", "", "write a sample group config to the given file and exit"),
		flagSet.IntVarP(&opts.Concurrency, "concurrency", "c", 8, "number of lines merged in parallel"),
	)

	flagSet.CreateGroup("update", "Update",
		flagSet.CallbackVarP(GetUpdateCallback(), "update", "up", "update twmerge to latest version"),
		flagSet.BoolVarP(&opts.DisableUpdateCheck, "disable-update-check", "duc", false, "disable automatic twmerge update check"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Config != "" {
		if err := flagSet.MergeConfigFile(opts.Config); err != nil {
			gologger.Error().Msgf("failed to read config file got %v", err)
		}
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	showBanner()

	if !opts.DisableUpdateCheck {
		latestVersion, err := updateutils.GetVersionCheckCallback("twmerge")()
		if err != nil {
			if opts.Verbose {
				gologger.Error().Msgf("twmerge version check failed: %v", err.Error())
			}
		} else {
			gologger.Info().Msgf("Current twmerge version %v %v", version, updateutils.GetVersionDescription(version, latestVersion))
		}
	}

	if opts.List != "" {
		bin, err := os.ReadFile(opts.List)
		if err != nil {
			gologger.Fatal().Msgf("failed to read list %v got %v", opts.List, err)
		}
		opts.lines = append(opts.lines, splitLines(string(bin))...)
	}

	// read from stdin
	if fileutil.HasStdin() {
		bin, err := io.ReadAll(os.Stdin)
		if err != nil {
			gologger.Error().Msgf("failed to read input from stdin got %v", err)
		}
		opts.lines = append(opts.lines, splitLines(string(bin))...)
	}

	if !opts.hasInput() && !opts.ListGroups && opts.SampleConfig == "" {
		gologger.Fatal().Msgf("twmerge: no input found")
	}

	return opts
}

func (o *Options) hasInput() bool {
	return len(o.Inputs) > 0 || len(o.lines) > 0
}

// splitLines splits data into lines, a trailing newline does not add an empty line
func splitLines(data string) []string {
	data = strings.TrimSuffix(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
	if data == "" {
		return nil
	}
	return strings.Split(data, "\n")
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
