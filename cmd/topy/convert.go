package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"

	"github.com/tangzhangming/topy/internal/config"
	"github.com/tangzhangming/topy/internal/defs"
	"github.com/tangzhangming/topy/internal/diag"
	"github.com/tangzhangming/topy/internal/emitter"
	"github.com/tangzhangming/topy/internal/i18n"
	"github.com/tangzhangming/topy/internal/parser"
	"github.com/tangzhangming/topy/internal/radical"
	"github.com/tangzhangming/topy/internal/sign"
)

// convertOptions convert 命令选项
type convertOptions struct {
	expr    string
	output  string
	append  bool
	assume  string
	combine bool
	strict  bool
	verbose bool
}

// convertInput 转换输入文件、标准输入或 -e 表达式
func convertInput(input string, opts convertOptions) error {
	source, name, err := readSource(input, opts.expr)
	if err != nil {
		return err
	}

	// 查找并加载 topy.toml 配置
	cfg, configPath, err := config.FindAndLoad(configDir(input, opts.expr))
	if err != nil {
		return &configError{err: err}
	}

	if opts.verbose {
		if configPath != "" {
			printInfo(i18n.T(i18n.MsgUsingConfig, configPath))
		} else {
			printInfo(i18n.T(i18n.MsgNoConfig))
		}
	}

	assumptions, err := sign.Parse(opts.assume)
	if err != nil {
		return &assumeError{err: err}
	}

	prog, store, err := parseSource(source, name, opts.verbose)
	if err != nil {
		return err
	}

	text, diags := renderProgram(prog, store, cfg, assumptions, opts)
	printDiagnostics(diags)

	if opts.output == "" {
		fmt.Print(text)
		return nil
	}

	if err := writeOutput(opts.output, text, opts.append); err != nil {
		printDiagnostics([]diag.Diagnostic{{Kind: diag.WriteFailure, Subject: opts.output, Err: err}})
		return err
	}
	if opts.verbose {
		printInfo(i18n.T(i18n.MsgConvertCompleted, opts.output))
	}
	return nil
}

// readSource 取得待解析的源文本：-e 表达式、标准输入（-）或文件
func readSource(input, exprFlag string) (source, name string, err error) {
	if exprFlag != "" {
		return exprFlag, "<expr>", nil
	}
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", &readFileError{path: "<stdin>", err: err}
		}
		return string(data), "<stdin>", nil
	}
	if _, err := os.Stat(input); err != nil {
		return "", "", &accessError{err: err}
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return "", "", &readFileError{path: input, err: err}
	}
	return string(data), input, nil
}

// configDir 配置查找的起始目录，非文件输入从当前目录起查
func configDir(input, exprFlag string) string {
	if exprFlag != "" || input == "-" {
		return "."
	}
	return filepath.Dir(input)
}

// parseSource 解析源文本，返回条目和定义表
func parseSource(source, name string, verbose bool) (*parser.Program, *defs.Store, error) {
	if verbose {
		printInfo(i18n.T(i18n.MsgParsing, name))
	}

	prog, errs := parser.Parse(source)
	if len(errs) > 0 {
		return nil, nil, &parseError{path: name, msg: errs[0]}
	}

	store := defs.NewStore()
	for _, item := range prog.Items {
		if item.Def != nil {
			store.Add(item.Def)
		}
	}
	return prog, store, nil
}

// renderProgram 渲染全部定义和独立表达式。
// 单个条目的诊断不阻断其余条目。
func renderProgram(prog *parser.Program, store *defs.Store, cfg *config.Config,
	assumptions sign.AssumptionSet, opts convertOptions) (string, []diag.Diagnostic) {

	profile := emitter.NewProfile(cfg.Python.Module, cfg.Python.SqrtStyle, cfg.Python.IdentifierStyle)
	em := emitter.New(profile)
	radOpts := radical.Options{StrictOddNegative: opts.strict || cfg.Python.StrictRadicals}

	var lines []string
	var diags []diag.Diagnostic

	if profile.Module == "numpy" {
		lines = append(lines, "import numpy as np", "")
	} else {
		lines = append(lines, "import math", "")
	}

	// 按源文件顺序输出；同名的后续定义跳过（取第一条）
	emitted := make(map[string]bool)
	for _, item := range prog.Items {
		if item.Def == nil {
			e := item.Expr
			if opts.combine {
				var cds []diag.Diagnostic
				e, cds = radical.Combine(e, assumptions, radOpts)
				diags = append(diags, cds...)
			}
			s, eds := em.Emit(e)
			diags = append(diags, eds...)
			lines = append(lines, s)
			continue
		}

		name := item.Def.Name
		if emitted[name] {
			continue
		}
		emitted[name] = true

		if opts.verbose {
			if n := len(store.Get(name)); n > 1 {
				printInfo(i18n.T(i18n.MsgMultipleDefs, name, n))
			}
			printInfo(i18n.T(i18n.MsgConverting, name))
		}

		sig, ds := store.Extract(name, profile.Style)
		diags = append(diags, ds...)
		if sig == nil {
			continue
		}

		body := sig.Body
		if opts.combine {
			var cds []diag.Diagnostic
			body, cds = radical.Combine(body, assumptions, radOpts)
			diags = append(diags, cds...)
		}

		line, eds := em.EmitSignature(&defs.Signature{Name: sig.Name, Params: sig.Params, Body: body})
		diags = append(diags, eds...)
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n") + "\n", diags
}

// writeOutput 写出目标文件。目标目录不存在时逐级创建；
// 追加模式在新内容后补一个换行作为分隔
func writeOutput(path, content string, appendMode bool) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &createDirError{path: dir, err: pkgerrors.Wrap(err, "create output dir")}
	}

	if appendMode {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return &writeFileError{path: path, err: pkgerrors.Wrap(err, "open for append")}
		}
		defer f.Close()
		if _, err := f.WriteString(content + "\n"); err != nil {
			return &writeFileError{path: path, err: pkgerrors.Wrap(err, "append output")}
		}
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return &writeFileError{path: path, err: pkgerrors.Wrap(err, "write output")}
	}
	return nil
}

// printDiagnostics 逐条打印诊断，不中断流程
func printDiagnostics(ds []diag.Diagnostic) {
	for _, d := range ds {
		printWarning(i18n.T(i18n.MsgDiagnostic, d.String()))
	}
}

// 错误类型定义
type accessError struct {
	err error
}

func (e *accessError) Error() string {
	return i18n.T(i18n.ErrCannotAccessInput, e.err)
}

type configError struct {
	err error
}

func (e *configError) Error() string {
	return i18n.T(i18n.ErrCannotLoadConfig, e.err)
}

type assumeError struct {
	err error
}

func (e *assumeError) Error() string {
	return i18n.T(i18n.ErrBadAssumptions, e.err)
}

type readFileError struct {
	path string
	err  error
}

func (e *readFileError) Error() string {
	return i18n.T(i18n.ErrCannotReadFile, e.path, e.err)
}

type parseError struct {
	path string
	msg  string
}

func (e *parseError) Error() string {
	return i18n.T(i18n.ErrParseError, e.path, e.msg)
}

type createDirError struct {
	path string
	err  error
}

func (e *createDirError) Error() string {
	return i18n.T(i18n.ErrCannotCreateDir, e.path, e.err)
}

type writeFileError struct {
	path string
	err  error
}

func (e *writeFileError) Error() string {
	return i18n.T(i18n.ErrCannotWriteFile, e.path, e.err)
}
