package core

import (
	"github.com/zhouchenh/lrucache/internal/common"
	"os"
	"path/filepath"
	"runtime"
)

var (
	name    = "lruCache"
	version = "1.0.0"
	build   = ""
	intro   = "A capacity-bounded cache with least recently used eviction."
)

// DefaultConfigFileName is looked up in the config directory and then in
// the working directory when no config path is given.
const DefaultConfigFileName = "config.json"

// StdinPath selects standard input as the config source.
const StdinPath = "-"

func Name() string {
	return name
}

func Version() string {
	return version
}

func VersionStatement() []string {
	statement := common.Concatenate(Name(), " ", Version())
	if build != "" {
		statement = common.Concatenate(statement, " ", build)
	}
	return []string{
		common.Concatenate(statement, " (", runtime.GOOS, "/", runtime.GOARCH, ")"),
		intro,
	}
}

// EnvKey builds an environment variable name such as
// LRUCACHE_CONFIG_FILE_PATH.
func EnvKey(key ...interface{}) string {
	args := append([]interface{}{Name()}, key...)
	return common.UpperString(common.SnakeCaseConcatenate(args...))
}

func ConfigFileEnvKey() string {
	return EnvKey("config", "file", "path")
}

func ConfigDirEnvKey() string {
	return EnvKey("config", "dir", "path")
}

// OpenConfig resolves the config source. An explicit path is opened as
// given or relative to the config directory; StdinPath selects standard
// input; an empty path tries the file named by the environment, then
// DefaultConfigFileName in the config directory, then in the working
// directory.
func OpenConfig(path string) (*os.File, error) {
	switch path {
	case StdinPath:
		return os.Stdin, nil
	case "":
		candidates := []string{os.Getenv(ConfigFileEnvKey())}
		if dir := os.Getenv(ConfigDirEnvKey()); dir != "" {
			candidates = append(candidates, filepath.Join(dir, DefaultConfigFileName))
		}
		for _, candidate := range candidates {
			if candidate == "" {
				continue
			}
			if file, err := os.Open(candidate); err == nil {
				return file, nil
			}
		}
		return os.Open(DefaultConfigFileName)
	default:
		return OpenFile(path)
	}
}

// OpenFile opens path as given, then relative to the config directory
// named by the environment. The error of the first attempt is returned
// when both fail.
func OpenFile(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err == nil {
		return file, nil
	}
	if dir := os.Getenv(ConfigDirEnvKey()); dir != "" && !filepath.IsAbs(path) {
		if file, dirErr := os.Open(filepath.Join(dir, path)); dirErr == nil {
			return file, nil
		}
	}
	return nil, err
}
