package elmconfig

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bioinfo/elmdb/elmapi"
)

// Configuration keys
const (
	EndpointKey       = "endpoint"
	NamespaceKey      = "namespace"
	TimeoutKey        = "timeout"
	RetriesKey        = "retries"
	LogLevelKey       = "log_level"
	TraceFileKey      = "trace.file"
	TraceMaxSizeKey   = "trace.max_size_mb"
	TraceMaxBackupKey = "trace.max_backups"
)

const DefaultLogLevel = "warn"

type TraceConfig struct {
	File       string // rotating copy of the wire trace; empty means stderr only
	MaxSizeMB  int
	MaxBackups int
}

type Config struct {
	Endpoint  string // empty unless set in the file, the caller falls back to other resolvers
	Namespace string
	Timeout   time.Duration
	Retries   int
	LogLevel  string
	Trace     TraceConfig

	// Path of the file the values were read from, empty if none was.
	Source string
}

// Default config file location
func DefaultConfigPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "elmdb", "elmdb.yaml")
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	c, _ := load(newViper(), "")
	return c
}

// Load reads the config file at path, or the default location when path is empty.
// A missing file at the default location is not an error.
func Load(path string) (*Config, error) {
	v := newViper()
	if path == "" {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Debugf("No config file at %s, using defaults", path)
			return load(v, "")
		}
	}

	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	log.Debugf("Read config from %s", path)
	return load(v, path)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(NamespaceKey, elmapi.DefaultNamespace)
	v.SetDefault(TimeoutKey, elmapi.DefaultClientTimeout)
	v.SetDefault(RetriesKey, 0)
	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(TraceMaxSizeKey, 10)
	v.SetDefault(TraceMaxBackupKey, 3)
	return v
}

func load(v *viper.Viper, source string) (*Config, error) {
	c := &Config{
		Endpoint:  strings.TrimSpace(v.GetString(EndpointKey)),
		Namespace: strings.TrimSpace(v.GetString(NamespaceKey)),
		Timeout:   v.GetDuration(TimeoutKey),
		Retries:   v.GetInt(RetriesKey),
		LogLevel:  v.GetString(LogLevelKey),
		Trace: TraceConfig{
			File:       expandHome(v.GetString(TraceFileKey)),
			MaxSizeMB:  v.GetInt(TraceMaxSizeKey),
			MaxBackups: v.GetInt(TraceMaxBackupKey),
		},
		Source: source,
	}
	if c.Timeout < 0 {
		return nil, errors.Errorf("%s: negative %s %v", source, TimeoutKey, c.Timeout)
	}
	if c.Retries < 0 {
		return nil, errors.Errorf("%s: negative %s %d", source, RetriesKey, c.Retries)
	}
	if c.Namespace == "" {
		c.Namespace = elmapi.DefaultNamespace
	}
	return c, nil
}

// TraceWriter returns where wire traces go: stderr, plus the rotating trace file if one is configured.
func (c *Config) TraceWriter(stderr io.Writer) io.Writer {
	if c.Trace.File == "" {
		return stderr
	}
	if err := os.MkdirAll(filepath.Dir(c.Trace.File), 0755); err != nil {
		log.Warnf("Not writing trace to %s: %v", c.Trace.File, err)
		return stderr
	}
	return io.MultiWriter(stderr, &lumberjack.Logger{
		Filename:   c.Trace.File,
		MaxSize:    c.Trace.MaxSizeMB,
		MaxBackups: c.Trace.MaxBackups,
	})
}

func expandHome(p string) string {
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(os.Getenv("HOME"), p[2:])
	}
	return p
}
