package main

import (
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/b97tsk/almanac"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

const _progressInterval = time.Second

func newLowestCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "lowest",
		Short: "Print the lowest location reachable from the seeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLowest(cmd, v)
		},
	}
}

func runLowest(cmd *cobra.Command, v *viper.Viper) error {
	a, p, err := _load(cmd, v)
	if err != nil {
		return err
	}
	initial, err := _initialRangeSet(a, v)
	if err != nil {
		return err
	}
	if initial.IsEmpty() {
		return almanac.ErrEmptyInput
	}

	verbose := v.GetBool("verbose")
	if verbose {
		log.Printf("%v: %v intervals, %v values", p.From(), initial.Len(), _formatCount(initial.Count()))
	}
	result := p.ResolveFunc(initial, func(st *almanac.Stage, s almanac.RangeSet) {
		if verbose {
			log.Printf("%v: %v intervals, %v values", st.To(), s.Len(), _formatCount(s.Count()))
		}
	})

	min, _ := result.MinStart()
	fmt.Fprintln(cmd.OutOrStdout(), min)
	return nil
}

func newTraceCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "trace [value...]",
		Short: "Print the value of each seed in every domain",
		Long:  "Print the value of each seed in every domain. Without arguments, the almanac's seed values are traced.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, p, err := _load(cmd, v)
			if err != nil {
				return err
			}

			values := a.Seeds
			if len(args) > 0 {
				values = make([]int64, len(args))
				for i, arg := range args {
					n, err := strconv.ParseInt(arg, 10, 64)
					if err != nil {
						return fmt.Errorf("bad value %q", arg)
					}
					values[i] = n
				}
			}

			w := cmd.OutOrStdout()
			for _, value := range values {
				for i, step := range p.Trace(value) {
					if i > 0 {
						fmt.Fprint(w, ", ")
					}
					fmt.Fprintf(w, "%v %v", step.Domain, step.Value)
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
}

func newVerifyCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the interval result against a value-by-value walk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, p, err := _load(cmd, v)
			if err != nil {
				return err
			}
			initial, err := _initialRangeSet(a, v)
			if err != nil {
				return err
			}
			want, err := p.MinimumValue(initial)
			if err != nil {
				return err
			}

			total := initial.Count()
			if limit := v.GetInt64("limit"); total > limit {
				return fmt.Errorf("%v values exceed limit %v", _formatCount(total), _formatCount(limit))
			}

			var (
				limiter = rate.NewLimiter(rate.Every(_progressInterval), 1)
				done    int64
				got     int64 = math.MaxInt64
			)
			limiter.Allow()
			for _, iv := range initial.Intervals() {
				for x := iv.Start; x < iv.End(); x++ {
					if y := p.Lookup(x); y < got {
						got = y
					}
					done++
					if limiter.Allow() {
						log.Printf("checked %v of %v values", _formatCount(done), _formatCount(total))
					}
				}
			}

			if got != want {
				return fmt.Errorf("mismatch: intervals give %v, values give %v", want, got)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK", want)
			return nil
		},
	}
	cmd.Flags().Int64("limit", _defaultLimit, "maximum number of values to walk")
	if err := v.BindPFlag("limit", cmd.Flags().Lookup("limit")); err != nil {
		panic(err)
	}
	return cmd
}

func newConvertCommand(v *viper.Viper) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode the almanac as YAML or text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := _load(cmd, v)
			if err != nil {
				return err
			}
			switch to {
			case "yaml":
				return almanac.EncodeYAML(cmd.OutOrStdout(), a)
			case "text":
				return almanac.EncodeText(cmd.OutOrStdout(), a)
			}
			return fmt.Errorf("unknown output format %q", to)
		},
	}
	cmd.Flags().StringVar(&to, "to", "yaml", "output format: yaml or text")
	return cmd
}

func newDumpCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Dump the built pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := _load(cmd, v)
			if err != nil {
				return err
			}
			cfg := spew.ConfigState{
				Indent:                  "  ",
				DisablePointerAddresses: true,
				DisableCapacities:       true,
			}
			cfg.Fdump(cmd.OutOrStdout(), p)
			return nil
		},
	}
}

func _load(cmd *cobra.Command, v *viper.Viper) (*almanac.Almanac, *almanac.Pipeline, error) {
	name := v.GetString("input")

	var r io.Reader
	if name == "" || name == "-" {
		r = cmd.InOrStdin()
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, nil, err
		}
		defer file.Close()
		r = file
	}

	var (
		a   *almanac.Almanac
		err error
	)
	switch format := _inputFormat(v.GetString("format"), name); format {
	case "text":
		a, err = almanac.Parse(r)
	case "yaml":
		a, err = almanac.DecodeYAML(r)
	default:
		return nil, nil, fmt.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%v: %w", _displayName(name), err)
	}

	if v.GetBool("reorder") {
		a.Stages, err = almanac.Chain(a.Stages, v.GetString("from"))
		if err != nil {
			return nil, nil, err
		}
	}

	p, err := a.Pipeline()
	if err != nil {
		return nil, nil, err
	}
	return a, p, nil
}

func _initialRangeSet(a *almanac.Almanac, v *viper.Viper) (almanac.RangeSet, error) {
	mode, err := almanac.ParseSeedMode(v.GetString("mode"))
	if err != nil {
		return almanac.RangeSet{}, err
	}
	return almanac.BuildInitialRangeSet(a.Seeds, mode)
}

func _inputFormat(format, name string) string {
	if format != _defaultFormat {
		return format
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "text"
}

func _displayName(name string) string {
	if name == "" || name == "-" {
		return "stdin"
	}
	return name
}

func _formatCount(n int64) string {
	if n < 1000 {
		return strconv.FormatInt(n, 10)
	}
	if n < 1_000_000 {
		return fmt.Sprintf("%.1fK", float64(n)/1e3)
	}
	if n < 1_000_000_000 {
		return fmt.Sprintf("%.1fM", float64(n)/1e6)
	}
	return fmt.Sprintf("%.1fG", float64(n)/1e9)
}
