package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Parser errors
	ErrExpectedToken:    "第 %d 行第 %d 列: 期望 %s，实际为 %s",
	ErrUnexpectedToken:  "第 %d 行第 %d 列: 意外的 token %s",
	ErrBadDefinitionLHS: "第 %d 行第 %d 列: := 左端必须是函数模式",
	ErrBadNumber:        "第 %d 行第 %d 列: 无法解析数字 %q",
	ErrWrongArity:       "%s 需要 %d 个参数，实际为 %d 个",
	ErrBadRational:      "%s 需要两个整数参数",

	// Usage and help
	MsgUsage:          "用法: topy <命令> [参数]",
	MsgCommands:       "命令:",
	MsgCmdConvert:     "  convert    将定义和表达式翻译为 Python",
	MsgCmdCombine:     "  combine    将根式乘积合并为单个根式",
	MsgCmdVersion:     "  version    显示版本号",
	MsgCmdHelp:        "  help       显示帮助信息",
	MsgUseHelp:        "使用 \"topy <命令> -h\" 查看命令选项。",
	MsgUnknownCommand: "未知命令: %s",

	// Convert command
	MsgConvertUsage:       "用法: topy convert <输入> [选项]",
	MsgConvertDescription: "将符号定义和表达式翻译为 Python 源码。",
	MsgConvertArgInput:    "  输入       FullForm 格式的源文件，- 表示标准输入",
	MsgConvertOptExpr:     "翻译命令行里给出的单个表达式",
	MsgConvertOptOutput:   "输出文件（留空输出到标准输出）",
	MsgConvertOptAppend:   "追加到输出文件而不是覆盖",
	MsgConvertOptAssume:   "符号正负假设，如 \"a>0, b<0\"",
	MsgConvertOptCombine:  "生成前先合并根式乘积",
	MsgConvertOptStrict:   "负底数个数为奇数时拒绝合并",
	MsgConvertOptVerbose:  "显示详细信息",
	MsgConvertCompleted:   "已写入 %s",

	// Combine command
	MsgCombineUsage:       "用法: topy combine <输入> [选项]",
	MsgCombineDescription: "将半整数幂乘积合并为单个根式。",
	MsgCombineArgInput:    "  输入       FullForm 格式的源文件，- 表示标准输入",
	MsgCombineOptExpr:     "合并命令行里给出的单个表达式",
	MsgCombineOptAssume:   "符号正负假设，如 \"a>0, b<0\"",
	MsgCombineOptPython:   "以 Python 而不是 FullForm 输出结果",
	MsgCombineOptStrict:   "负底数个数为奇数时拒绝合并",

	// Common errors
	ErrInputRequired:     "错误: 需要输入文件或 -e 表达式",
	ErrCannotAccessInput: "无法访问输入: %v",
	ErrCannotLoadConfig:  "无法加载配置: %v",
	ErrCannotReadFile:    "无法读取文件 %s: %v",
	ErrParseError:        "%s 解析错误: %s",
	ErrCannotCreateDir:   "无法创建目录 %s: %v",
	ErrCannotWriteFile:   "无法写入文件 %s: %v",
	ErrBadAssumptions:    "无法解析假设: %v",

	// Info messages
	MsgUsingConfig:  "使用配置 %s",
	MsgNoConfig:     "未找到 topy.toml，使用默认配置",
	MsgParsing:      "正在解析 %s",
	MsgConverting:   "正在转换 %s",
	MsgDiagnostic:   "警告: %s",
	MsgMultipleDefs: "提示: %s 有 %d 条定义，使用第一条",
}
