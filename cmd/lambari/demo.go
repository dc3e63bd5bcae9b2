package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hexengraf/lambari/pkg/diag"
	"github.com/hexengraf/lambari/pkg/lambari"
	"github.com/hexengraf/lambari/pkg/scope"
	"github.com/hexengraf/lambari/pkg/types"
)

func demoCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a sample program through the semantic core and render it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(*cfg)
		},
	}
	cmd.Flags().BoolVar(&cfg.Broken, "broken", false, "Inject semantic errors to demonstrate diagnostics")
	return cmd
}

func runDemo(cfg Config) error {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	semCfg := lambari.LoadConfig()
	if cfg.ConfigFile != "" {
		var err error
		semCfg, err = lambari.LoadConfigFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
	}
	slog.Debug("semantic configuration", "param_check", semCfg.ParamCheck)

	lines := diag.NewLineCounter()
	reporter := diag.NewReporter(os.Stderr, lines)
	an := lambari.New(scope.New(), reporter)
	an.Config = semCfg

	prog := buildDemoProgram(an, lines, cfg.Broken)
	an.Finish()

	if cfg.Debug {
		slog.Debug("syntax tree", "nodes", pretty.Sprint(prog))
	}

	fmt.Println(prog.Render(0))

	if n := reporter.Total(); n > 0 {
		return errors.Errorf("%d semantic errors", n)
	}
	return nil
}

// buildDemoProgram stands in for the parser's action stack: it constructs
// nodes bottom-up in lexical order, advancing the line counter the way the
// scanner would.
func buildDemoProgram(an *lambari.Analyzer, lines *diag.LineCounter, broken bool) *lambari.Block {
	prog := an.Block()

	decl := an.Declaration(types.Of(types.Int))
	decl.Add("i")
	decl.AddInit("total", an.Constant(types.Of(types.Int), "0"))
	prog.Add(decl)
	lines.Advance()

	fun := an.Fun(types.Of(types.Float), "average")
	params := an.ParamList()
	params.Add(types.Of(types.Float), "sum")
	params.Add(types.Of(types.Int), "count")

	an.Scope.Enter()
	declareParams(an, params)
	body := an.Block()
	body.Add(an.Return(an.Operation(types.Divide, an.Variable("sum"), an.Variable("count"))))
	an.Scope.Leave()

	fun.Bind(params, body)
	prog.Add(fun)
	lines.Advance()

	init := an.Assignment(an.Variable("i"), an.Constant(types.Of(types.Int), "0"))
	test := an.Comparison(types.LessThan, an.Variable("i"), an.Constant(types.Of(types.Int), "10"))
	update := an.Assignment(an.Variable("i"),
		an.Operation(types.Plus, an.Variable("i"), an.Constant(types.Of(types.Int), "1")))
	loopBody := an.Block()
	loopBody.Add(an.Assignment(an.Variable("total"),
		an.Operation(types.Plus, an.Variable("total"), an.Variable("i"))))
	prog.Add(an.Loop(init, test, update, loopBody))
	lines.Advance()

	cond := an.Comparison(types.GreaterThan, an.Variable("total"), an.Constant(types.Of(types.Int), "0"))
	an.Scope.Enter()
	accepted := an.Block()
	args := an.ExpressionList()
	args.Add(an.Variable("total"))
	args.Add(an.Constant(types.Of(types.Int), "10"))
	avg := an.Declaration(types.Of(types.Float))
	avg.AddInit("avg", an.FunCall("average", args))
	accepted.Add(avg)
	an.Scope.Leave()
	prog.Add(an.Conditional(cond, accepted, nil))
	lines.Advance()

	if broken {
		injectErrors(an, lines, prog)
	}

	return prog
}

// injectErrors adds one statement per diagnostic kind worth showing off.
func injectErrors(an *lambari.Analyzer, lines *diag.LineCounter, prog *lambari.Block) {
	dup := an.Declaration(types.Of(types.Float))
	dup.Add("i")
	prog.Add(dup)
	lines.Advance()

	prog.Add(an.Assignment(an.Variable("i"), an.Constant(types.Of(types.Bool), "true")))
	lines.Advance()

	prog.Add(an.Assignment(an.Variable("i"),
		an.Operation(types.Plus, an.Variable("i"), an.Constant(types.Of(types.Bool), "false"))))
	lines.Advance()

	shortArgs := an.ExpressionList()
	shortArgs.Add(an.Constant(types.Of(types.Float), "1.0"))
	prog.Add(an.Assignment(an.Variable("total"),
		an.Cast(types.Of(types.Int), an.FunCall("average", shortArgs))))
	lines.Advance()

	fwd := an.Fun(types.Of(types.Void), "ghost")
	fwd.Bind(an.ParamList(), nil)
	prog.Add(fwd)
	lines.Advance()
}

func declareParams(an *lambari.Analyzer, params *lambari.ParamList) {
	for _, p := range params.Params() {
		if err := an.Scope.Declare(p.Name, p.Type); err != nil {
			an.Diags.MultipleDefinition(p.Name)
		}
	}
}
