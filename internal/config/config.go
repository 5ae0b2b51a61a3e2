package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Paths    PathsConfig  `mapstructure:"paths"`
	ESpeak   ESpeakConfig `mapstructure:"espeak"`
	Server   ServerConfig `mapstructure:"server"`
	Output   OutputConfig `mapstructure:"output"`
	LogLevel string       `mapstructure:"log_level"`
}

type PathsConfig struct {
	// DictionaryPath points at a cmudict-format file; empty selects
	// the embedded seed dictionary.
	DictionaryPath string `mapstructure:"dictionary_path"`
	OutputDir      string `mapstructure:"output_dir"`
}

type ESpeakConfig struct {
	BinaryPath        string `mapstructure:"binary_path"`
	Voice             string `mapstructure:"voice"`
	PauseBetweenWords bool   `mapstructure:"pause_between_words"`
}

type ServerConfig struct {
	ListenAddr     string `mapstructure:"listen_addr"`
	Workers        int    `mapstructure:"workers"`
	MaxTextBytes   int    `mapstructure:"max_text_bytes"`
	RequestTimeout int    `mapstructure:"request_timeout"` // seconds
}

type OutputConfig struct {
	Audio               bool `mapstructure:"audio"`
	Comparison          bool `mapstructure:"comparison"`
	PreservePunctuation bool `mapstructure:"preserve_punctuation"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			DictionaryPath: "",
			OutputDir:      "output",
		},
		ESpeak: ESpeakConfig{
			BinaryPath:        "",
			Voice:             "en",
			PauseBetweenWords: true,
		},
		Server: ServerConfig{
			ListenAddr:     ":8080",
			Workers:        2,
			MaxTextBytes:   4096,
			RequestTimeout: 30,
		},
		Output: OutputConfig{
			Audio:               true,
			Comparison:          true,
			PreservePunctuation: true,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.String("paths-dictionary-path", defaults.Paths.DictionaryPath, "Path to cmudict-format dictionary (empty: embedded seed)")
	fs.String("dictionary", defaults.Paths.DictionaryPath, "Path to cmudict-format dictionary (alias for --paths-dictionary-path)")
	fs.String("paths-output-dir", defaults.Paths.OutputDir, "Directory for generated audio artifacts")
	fs.String("espeak-binary-path", defaults.ESpeak.BinaryPath, "Path to espeak-ng/espeak executable (empty: search PATH)")
	fs.String("espeak-voice", defaults.ESpeak.Voice, "espeak voice passed as -v")
	fs.Bool("espeak-pause-between-words", defaults.ESpeak.PauseBetweenWords, "Insert a pause marker between words in phoneme-mode audio")
	fs.String("server-listen-addr", defaults.Server.ListenAddr, "HTTP listen address")
	fs.Int("server-workers", defaults.Server.Workers, "Max concurrent transliteration requests")
	fs.Int("server-max-text-bytes", defaults.Server.MaxTextBytes, "Maximum request text size in bytes")
	fs.Int("server-request-timeout", defaults.Server.RequestTimeout, "Per-request timeout in seconds")
	fs.Bool("output-audio", defaults.Output.Audio, "Generate traditional/new WAV artifacts")
	fs.Bool("output-comparison", defaults.Output.Comparison, "Also write a joined comparison.wav")
	fs.Bool("output-preserve-punctuation", defaults.Output.PreservePunctuation, "Keep punctuation in the transliterated sentence")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("ALTENGLISH")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	if err := v.BindEnv("espeak.binary_path", "ALTENGLISH_ESPEAK", "ESPEAK_PATH"); err != nil {
		return Config{}, fmt.Errorf("bind espeak env vars: %w", err)
	}
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("altenglish")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("paths.dictionary_path", c.Paths.DictionaryPath)
	v.SetDefault("paths.output_dir", c.Paths.OutputDir)
	v.SetDefault("espeak.binary_path", c.ESpeak.BinaryPath)
	v.SetDefault("espeak.voice", c.ESpeak.Voice)
	v.SetDefault("espeak.pause_between_words", c.ESpeak.PauseBetweenWords)
	v.SetDefault("server.listen_addr", c.Server.ListenAddr)
	v.SetDefault("server.workers", c.Server.Workers)
	v.SetDefault("server.max_text_bytes", c.Server.MaxTextBytes)
	v.SetDefault("server.request_timeout", c.Server.RequestTimeout)
	v.SetDefault("output.audio", c.Output.Audio)
	v.SetDefault("output.comparison", c.Output.Comparison)
	v.SetDefault("output.preserve_punctuation", c.Output.PreservePunctuation)
	v.SetDefault("log_level", c.LogLevel)
}

// bindFlags binds each registered flag to its dotted config key. Unchanged
// flags fall through to config-file, env and default values, so only flags
// the user actually set override anything.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"paths.dictionary_path":       "paths-dictionary-path",
		"paths.output_dir":            "paths-output-dir",
		"espeak.binary_path":          "espeak-binary-path",
		"espeak.voice":                "espeak-voice",
		"espeak.pause_between_words":  "espeak-pause-between-words",
		"server.listen_addr":          "server-listen-addr",
		"server.workers":              "server-workers",
		"server.max_text_bytes":       "server-max-text-bytes",
		"server.request_timeout":      "server-request-timeout",
		"output.audio":                "output-audio",
		"output.comparison":           "output-comparison",
		"output.preserve_punctuation": "output-preserve-punctuation",
		"log_level":                   "log-level",
	}
	for key, name := range bindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	// --dictionary is a convenience alias for --paths-dictionary-path.
	// Viper keeps a single pflag per key, so rebind only when the alias
	// was actually set.
	if alias := fs.Lookup("dictionary"); alias != nil && alias.Changed {
		if err := v.BindPFlag("paths.dictionary_path", alias); err != nil {
			return fmt.Errorf("bind flag dictionary: %w", err)
		}
	}
	return nil
}
