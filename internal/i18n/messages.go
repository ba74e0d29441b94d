package i18n

// Message keys for parser errors
const (
	ErrExpectedToken    = "parser.expected_token"    // args: line, column, expected, got
	ErrUnexpectedToken  = "parser.unexpected_token"  // args: line, column, got
	ErrBadDefinitionLHS = "parser.bad_definition_lhs" // args: line, column
	ErrBadNumber        = "parser.bad_number"        // args: line, column, literal
	ErrWrongArity       = "parser.wrong_arity"       // args: head, expected, got
	ErrBadRational      = "parser.bad_rational"      // args: head
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdConvert     = "cli.cmd_convert"
	MsgCmdCombine     = "cli.cmd_combine"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Convert command
	MsgConvertUsage       = "cli.convert_usage"
	MsgConvertDescription = "cli.convert_description"
	MsgConvertArgInput    = "cli.convert_arg_input"
	MsgConvertOptExpr     = "cli.convert_opt_expr"
	MsgConvertOptOutput   = "cli.convert_opt_output"
	MsgConvertOptAppend   = "cli.convert_opt_append"
	MsgConvertOptAssume   = "cli.convert_opt_assume"
	MsgConvertOptCombine  = "cli.convert_opt_combine"
	MsgConvertOptStrict   = "cli.convert_opt_strict"
	MsgConvertOptVerbose  = "cli.convert_opt_verbose"
	MsgConvertCompleted   = "cli.convert_completed" // args: path

	// Combine command
	MsgCombineUsage       = "cli.combine_usage"
	MsgCombineDescription = "cli.combine_description"
	MsgCombineArgInput    = "cli.combine_arg_input"
	MsgCombineOptExpr     = "cli.combine_opt_expr"
	MsgCombineOptAssume   = "cli.combine_opt_assume"
	MsgCombineOptPython   = "cli.combine_opt_python"
	MsgCombineOptStrict   = "cli.combine_opt_strict"

	// Common errors
	ErrInputRequired     = "cli.input_required"
	ErrCannotAccessInput = "cli.cannot_access_input" // args: error
	ErrCannotLoadConfig  = "cli.cannot_load_config"  // args: error
	ErrCannotReadFile    = "cli.cannot_read_file"    // args: path, error
	ErrParseError        = "cli.parse_error"         // args: path, message
	ErrCannotCreateDir   = "cli.cannot_create_dir"   // args: path, error
	ErrCannotWriteFile   = "cli.cannot_write_file"   // args: path, error
	ErrBadAssumptions    = "cli.bad_assumptions"     // args: error

	// Info messages
	MsgUsingConfig  = "cli.using_config"  // args: configPath
	MsgNoConfig     = "cli.no_config"
	MsgParsing      = "cli.parsing"       // args: path
	MsgConverting   = "cli.converting"    // args: name
	MsgDiagnostic   = "cli.diagnostic"    // args: diagnostic
	MsgMultipleDefs = "cli.multiple_defs" // args: name, count
)
