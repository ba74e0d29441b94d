package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config topy 项目配置
type Config struct {
	Python PythonConfig `toml:"python"`
}

// PythonConfig 目标 Python 代码配置
type PythonConfig struct {
	Module          string `toml:"module"`           // 数值库："math" 或 "numpy"
	SqrtStyle       string `toml:"sqrt_style"`       // 根式渲染："call" 或 "pow"
	IdentifierStyle string `toml:"identifier_style"` // 标识符风格："preserve" 或 "snake"
	StrictRadicals  bool   `toml:"strict_radicals"`  // 奇数个负底数时拒绝合并
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Python: PythonConfig{
			Module:          "math",
			SqrtStyle:       "call",
			IdentifierStyle: "preserve",
		},
	}
}

// FindAndLoad 从指定目录向上查找 topy.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 topy.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, "topy.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}

	// 缺省字段回填默认值
	if config.Python.Module == "" {
		config.Python.Module = "math"
	}
	if config.Python.SqrtStyle == "" {
		config.Python.SqrtStyle = "call"
	}
	if config.Python.IdentifierStyle == "" {
		config.Python.IdentifierStyle = "preserve"
	}

	return &config, nil
}
