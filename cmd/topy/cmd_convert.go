package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tangzhangming/topy/internal/i18n"
)

// convertCmd 将符号定义翻译为 Python
func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	exprFlag := fs.String("e", "", i18n.T(i18n.MsgConvertOptExpr))
	output := fs.String("o", "", i18n.T(i18n.MsgConvertOptOutput))
	appendMode := fs.Bool("append", false, i18n.T(i18n.MsgConvertOptAppend))
	assume := fs.String("assume", "", i18n.T(i18n.MsgConvertOptAssume))
	combine := fs.Bool("combine", false, i18n.T(i18n.MsgConvertOptCombine))
	strict := fs.Bool("strict", false, i18n.T(i18n.MsgConvertOptStrict))
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgConvertOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgConvertUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgConvertDescription))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgConvertArgInput))
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

	opts := convertOptions{
		expr:    *exprFlag,
		output:  *output,
		append:  *appendMode,
		assume:  *assume,
		combine: *combine,
		strict:  *strict,
		verbose: *verbose,
	}

	if err := convertInput(fs.Arg(0), opts); err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}
}
