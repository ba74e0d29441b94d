package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tangzhangming/topy/internal/config"
	"github.com/tangzhangming/topy/internal/emitter"
	"github.com/tangzhangming/topy/internal/i18n"
	"github.com/tangzhangming/topy/internal/radical"
	"github.com/tangzhangming/topy/internal/sign"
)

// combineCmd 合并根式乘积，输出重写后的表达式
func combineCmd(args []string) {
	fs := flag.NewFlagSet("combine", flag.ExitOnError)
	exprFlag := fs.String("e", "", i18n.T(i18n.MsgCombineOptExpr))
	assume := fs.String("assume", "", i18n.T(i18n.MsgCombineOptAssume))
	python := fs.Bool("python", false, i18n.T(i18n.MsgCombineOptPython))
	strict := fs.Bool("strict", false, i18n.T(i18n.MsgCombineOptStrict))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgCombineUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgCombineDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgCombineArgInput))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 && *exprFlag == "" {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	if err := combineInput(fs.Arg(0), *exprFlag, *assume, *python, *strict); err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}
}

// combineInput 对输入里的每个条目做根式合并
func combineInput(input, exprFlag, assume string, python, strict bool) error {
	source, name, err := readSource(input, exprFlag)
	if err != nil {
		return err
	}

	cfg, _, err := config.FindAndLoad(configDir(input, exprFlag))
	if err != nil {
		return &configError{err: err}
	}

	assumptions, err := sign.Parse(assume)
	if err != nil {
		return &assumeError{err: err}
	}

	prog, _, err := parseSource(source, name, false)
	if err != nil {
		return err
	}

	opts := radical.Options{StrictOddNegative: strict || cfg.Python.StrictRadicals}
	profile := emitter.NewProfile(cfg.Python.Module, cfg.Python.SqrtStyle, cfg.Python.IdentifierStyle)
	em := emitter.New(profile)

	for _, item := range prog.Items {
		e := item.Expr
		if item.Def != nil {
			e = item.Def.Body
		}
		combined, ds := radical.Combine(e, assumptions, opts)
		printDiagnostics(ds)
		if python {
			s, eds := em.Emit(combined)
			printDiagnostics(eds)
			fmt.Println(s)
		} else {
			fmt.Println(combined.String())
		}
	}

	return nil
}
