package cli

import (
	"fmt"
	"runtime/debug"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	fp "github.com/Pure-Company/fpidioms"
	"github.com/Pure-Company/fpidioms/internal/config"
	"github.com/Pure-Company/fpidioms/internal/logging"
)

func newPointsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "points",
		Short: "Compare reference identity with value equality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			heading(a.sink(cmd), "points")
			w := a.out(cmd)

			c1, c2 := fp.NewPointClass(1, 2, 3), fp.NewPointClass(1, 2, 3)
			fmt.Fprintf(w, "PointClass equal: %t\n", c1 == c2)

			r1, r2 := fp.PointOf(1, 2, 3), fp.PointOf(1, 2, 3)
			fmt.Fprintf(w, "PointRecord equal: %t (hash match: %t)\n", r1.Equal(r2), r1.Hash() == r2.Hash())

			one, two, three := decimal.NewFromInt(1), decimal.NewFromInt(2), decimal.NewFromInt(3)
			v1 := fp.NewPointWithValueEquality(one, two, three)
			v2 := fp.NewPointWithValueEquality(one, two, three)
			fmt.Fprintf(w, "PointWithValueEquality equal: %t\n", v1.Equal(v2))
			return nil
		},
	}
}

func newTradesCmd(a *app) *cobra.Command {
	var fileFlag string
	cmd := &cobra.Command{
		Use:   "trades",
		Short: "Classify trades by deconstruction and pattern matching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file := fileFlag
			if file == "" {
				file = a.cfg.CasesFile
			}

			cases := config.DefaultTradeCases()
			if file != "" {
				cf, err := config.LoadCaseFile(file)
				if err != nil {
					return err
				}
				cases = cf.Trades
				a.logger.Debug("trades.loaded", zap.String("file", file), zap.Int("count", len(cases)))
			}

			trades, err := config.TradeRecords(cases)
			if err != nil {
				return err
			}

			heading(a.sink(cmd), "trades")
			w := a.out(cmd)
			for _, t := range trades {
				fmt.Fprintf(w, "%s => %s | %s | %s\n", t,
					fp.DescribeTradeGuards(t),
					fp.DescribeTradeRelational(t),
					fp.DescribeTradeProperty(t))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fileFlag, "file", "", "YAML case file with a trades list")
	return cmd
}

func newToolsCmd(a *app) *cobra.Command {
	var (
		kind  string
		value int
	)
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Classify a tool three ways and check they agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tool := parseTool(kind, value)
			labels := []string{
				fp.ClassifyToolImperative(tool),
				fp.ClassifyToolTernary(tool),
				fp.ClassifyToolMatch(tool),
			}
			agree := labels[0] == labels[1] && labels[1] == labels[2]
			if !agree {
				a.logger.Warn("tools.disagree", zap.Strings("labels", labels))
			}

			heading(a.sink(cmd), "tools")
			w := a.out(cmd)
			fmt.Fprintf(w, "imperative: %s\n", labels[0])
			fmt.Fprintf(w, "ternary: %s\n", labels[1])
			fmt.Fprintf(w, "match: %s\n", labels[2])
			fmt.Fprintf(w, "agree: %t\n", agree)
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "drill", "tool kind: drill or hammer")
	cmd.Flags().IntVar(&value, "value", 11, "drill RPM or hammer whacks")
	return cmd
}

func parseTool(kind string, value int) fp.Tool {
	switch strings.ToLower(kind) {
	case "drill":
		return fp.Drill{RPM: value}
	case "hammer":
		return fp.Hammer{Whacks: value}
	default:
		return nil
	}
}

func newFilterCmd(a *app) *cobra.Command {
	var threshold int
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter items with first-class predicates and fire multicast callbacks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items := fp.SampleItems()
			heading(a.sink(cmd), "filter")
			w := a.out(cmd)

			filters := []struct {
				name string
				pred fp.Predicate[fp.Item]
			}{
				{"name starts with B", fp.NameStartsWith("B")},
				{"even id", fp.EvenID},
				{"id > " + strconv.Itoa(threshold), fp.IDGreaterThan(threshold)},
			}
			for _, f := range filters {
				matched := slices.Collect(fp.Filter(slices.Values(items), f.pred))
				fmt.Fprintf(w, "%s: %v\n", f.name, matched)
			}

			item := items[0]
			fp.PrintItemActions(w).Invoke(item)
			winner, _ := fp.TrueThenFalse(w).Invoke(item)
			fmt.Fprintf(w, "... and the winner is : %t\n", winner)
			return nil
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", 2, "threshold for the id predicate builder")
	return cmd
}

func newCurryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "curry A B",
		Short: "Add two numbers one argument at a time",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("first argument: %w", err)
			}
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("second argument: %w", err)
			}

			partial := fp.CurriedAdd(x)
			heading(a.sink(cmd), "curry")
			w := a.out(cmd)
			fmt.Fprintf(w, "CurriedAdd(%d)(%d) = %d\n", x, y, fp.CurriedAdd(x)(y))
			fmt.Fprintf(w, "partial(%d) = %d\n", y, partial(y))
			fmt.Fprintf(w, "Add(%d, %d) = %d\n", x, y, fp.Add(x, y))
			return nil
		},
	}
}

func newRailwayCmd(a *app) *cobra.Command {
	var fail bool
	cmd := &cobra.Command{
		Use:   "railway [value]",
		Short: "Run the imperative, optional-chaining and Either flows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value *string
			if len(args) == 1 {
				value = &args[0]
			}

			first := fp.Step(fp.Translate2)
			if fail {
				first = fp.FailingStep
			}
			steps := []fp.Step{first, fp.Lift(strings.ToUpper), fp.Lift(fp.Normalize)}

			heading(a.sink(cmd), "railway")
			w := a.out(cmd)

			input := ""
			if value != nil {
				input = *value
			}
			fmt.Fprintf(w, "imperative (default steps): %s\n", fp.ImperativeBranchesDefault(input))
			fmt.Fprintf(w, "half railway: %s\n", fp.HalfRailway(value))

			either := fp.RailwayPipeline(input, first)
			fmt.Fprintf(w, "either: %s\n", fp.Fold(either,
				func(e *fp.Error) string { return "Failed (" + e.Error() + ")" },
				func(s string) string { return "Ok (" + s + ")" },
			))

			results := []fp.Result{
				fp.Classify(fp.RunImperative(input, steps...)),
				optionalResult(fp.RunOptional(&input, steps...)),
				fp.Classify(fp.RunEither(input, steps...)),
			}
			fmt.Fprintf(w, "imperative/optional/either: %s/%s/%s\n", results[0], results[1], results[2])
			a.logger.Debug("railway.done", zap.Bool("fail", fail), zap.Stringer("result", results[2]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fail, "fail", false, "make the first step fail")
	return cmd
}

func optionalResult(s *string) fp.Result {
	if s == nil {
		return fp.Failed
	}
	return fp.Ok
}

func newOutParamCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "outparam [quantity...]",
		Short: "Write through a pointer, then return an Outcome instead",
		RunE: func(cmd *cobra.Command, args []string) error {
			heading(a.sink(cmd), "outparam")
			w := a.out(cmd)

			myInt := 1
			fp.Foo(&myInt)
			fmt.Fprintf(w, "after Foo: %d\n", myInt)

			if len(args) == 0 {
				args = []string{"42", "zero", "-3"}
			}
			for _, arg := range args {
				o := fp.ParseQuantity(arg)
				if o.Succeeded {
					fmt.Fprintf(w, "%q: ok %d\n", arg, o.Data)
				} else {
					fmt.Fprintf(w, "%q: failed %s\n", arg, o.Err)
				}
			}
			return nil
		},
	}
}

func newTailCallCmd(a *app) *cobra.Command {
	var (
		unbounded bool
		limit     int64
		maxStack  int
	)
	cmd := &cobra.Command{
		Use:   "tailcall",
		Short: "Count with a trampoline, or recurse until the stack runs out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.TailCallLimit
			}
			heading(a.sink(cmd), "tailcall")
			w := a.out(cmd)

			if unbounded {
				debug.SetMaxStack(maxStack)
				a.logger.Warn("tailcall.unbounded",
					zap.Int("max_stack_bytes", maxStack),
					zap.String("expect", "fatal stack overflow"))
				fp.Add1(0, func(n int64) { fmt.Fprintf(w, "%d\n", n) })
				return nil
			}

			n := fp.CountTo(0, limit, logging.Progress(a.logger, "trampoline"))
			fmt.Fprintf(w, "trampoline reached %d in constant stack\n", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&unbounded, "unbounded", false, "run the recursion with no base case; the process will crash")
	cmd.Flags().Int64Var(&limit, "limit", 1_000_000, "trampoline target")
	cmd.Flags().IntVar(&maxStack, "max-stack", 64<<20, "goroutine stack cap in bytes for --unbounded")
	return cmd
}
