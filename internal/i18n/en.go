package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Parser errors
	ErrExpectedToken:    "line %d:%d: expected %s, got %s",
	ErrUnexpectedToken:  "line %d:%d: unexpected token %s",
	ErrBadDefinitionLHS: "line %d:%d: left-hand side of := must be a function pattern",
	ErrBadNumber:        "line %d:%d: cannot parse number %q",
	ErrWrongArity:       "%s expects %d argument(s), got %d",
	ErrBadRational:      "%s expects two integer arguments",

	// Usage and help
	MsgUsage:          "Usage: topy <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdConvert:     "  convert    translate definitions and expressions to Python",
	MsgCmdCombine:     "  combine    merge products of square roots into one radical",
	MsgCmdVersion:     "  version    print version",
	MsgCmdHelp:        "  help       show this help",
	MsgUseHelp:        "Use \"topy <command> -h\" for command options.",
	MsgUnknownCommand: "unknown command: %s",

	// Convert command
	MsgConvertUsage:       "Usage: topy convert <input> [options]",
	MsgConvertDescription: "Translate symbolic definitions and expressions to Python source.",
	MsgConvertArgInput:    "  input      source file in FullForm notation, or - for stdin",
	MsgConvertOptExpr:     "translate a single expression given on the command line",
	MsgConvertOptOutput:   "output file (empty prints to stdout)",
	MsgConvertOptAppend:   "append to the output file instead of overwriting",
	MsgConvertOptAssume:   "sign assumptions, e.g. \"a>0, b<0\"",
	MsgConvertOptCombine:  "combine products of radicals before emitting",
	MsgConvertOptStrict:   "decline radical combination on an odd number of negative bases",
	MsgConvertOptVerbose:  "verbose output",
	MsgConvertCompleted:   "Wrote %s",

	// Combine command
	MsgCombineUsage:       "Usage: topy combine <input> [options]",
	MsgCombineDescription: "Combine products of half-integer powers into a single radical.",
	MsgCombineArgInput:    "  input      source file in FullForm notation, or - for stdin",
	MsgCombineOptExpr:     "combine a single expression given on the command line",
	MsgCombineOptAssume:   "sign assumptions, e.g. \"a>0, b<0\"",
	MsgCombineOptPython:   "print the result as Python instead of FullForm",
	MsgCombineOptStrict:   "decline on an odd number of negative bases",

	// Common errors
	ErrInputRequired:     "error: input file or -e expression required",
	ErrCannotAccessInput: "cannot access input: %v",
	ErrCannotLoadConfig:  "cannot load config: %v",
	ErrCannotReadFile:    "cannot read file %s: %v",
	ErrParseError:        "parse error in %s: %s",
	ErrCannotCreateDir:   "cannot create directory %s: %v",
	ErrCannotWriteFile:   "cannot write file %s: %v",
	ErrBadAssumptions:    "cannot parse assumptions: %v",

	// Info messages
	MsgUsingConfig:  "Using config %s",
	MsgNoConfig:     "No topy.toml found, using defaults",
	MsgParsing:      "Parsing %s",
	MsgConverting:   "Converting %s",
	MsgDiagnostic:   "warning: %s",
	MsgMultipleDefs: "note: %s has %d definitions, using the first",
}
