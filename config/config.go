// Package config loads the service configuration from yaml files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxAttempts    = 5
	defaultAttemptTimeout = 10 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// PubSub configuration for publishing dispatch tasks
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// AMQP configuration for the alternative dispatch-task transport
	AMQP *AMQPConfig `json:"amqp" yaml:"amqp"`

	// Dispatch configuration for the notification dispatcher
	Dispatch DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Matching configuration for the event/subscription matcher
	Matching MatchingConfig `json:"matching" yaml:"matching"`

	// Channels configuration for delivery channels
	Channels ChannelsConfig `json:"channels" yaml:"channels"`

	// Firebase configuration for the push channel
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines the task publishing configuration
type PubSubConfig struct {
	// Provider selects the publisher implementation: "google" or "local"
	Provider      string `json:"provider" yaml:"provider"`
	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
	// VerifyPushAuth enables Google ID token verification on push endpoints
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
}

// AMQPConfig defines the RabbitMQ consumer configuration
type AMQPConfig struct {
	URL      string `json:"url" yaml:"url"`
	Exchange string `json:"exchange" yaml:"exchange"`
	Queue    string `json:"queue" yaml:"queue"`
	// Workers is the number of concurrent dispatch workers draining the queue
	Workers int `json:"workers" yaml:"workers"`
}

// DispatchConfig bounds the retry behaviour of the dispatcher
type DispatchConfig struct {
	// MaxAttempts is the total attempt budget per dispatch task
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`
	// AttemptTimeout is the per-attempt delivery deadline
	AttemptTimeout time.Duration `json:"attemptTimeout" yaml:"attemptTimeout"`
}

// MatchingConfig tunes the matching query engine
type MatchingConfig struct {
	// CompareFields lists the event content fields inspected by NeedsUpdate.
	// Defaults to ["title"] when empty.
	CompareFields []string `json:"compareFields" yaml:"compareFields"`
}

// ChannelsConfig enables and configures the delivery channels
type ChannelsConfig struct {
	Webhook *WebhookChannelConfig `json:"webhook" yaml:"webhook"`
	Email   *EmailChannelConfig   `json:"email" yaml:"email"`
	Push    *PushChannelConfig    `json:"push" yaml:"push"`
}

// WebhookChannelConfig configures the webhook delivery channel
type WebhookChannelConfig struct {
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// EmailChannelConfig configures the email digest channel
type EmailChannelConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// PushChannelConfig configures the FCM push channel
type PushChannelConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// FirebaseConfig defines Firebase credentials for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// LoadWithEnv loads a yaml config file and applies environment variable
// overrides on top. Env keys are canonicalized against the yaml structure so
// DISPATCH_MAXATTEMPTS overrides dispatch.maxAttempts.
func LoadWithEnv[T any](fileName string, searchPaths ...string) (*T, error) {
	k := koanf.New(".")

	var loaded bool
	for _, searchPath := range searchPaths {
		path := filepath.Join(searchPath, fileName+".yaml")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "load %s config failed", path)
		}
		loaded = true

		break
	}
	if !loaded {
		return nil, errors.Errorf("no %s.yaml found in search paths", fileName)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, k.Raw()), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env overrides failed")
	}

	cfg := new(T)
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "yaml",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", fileName)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", ".", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Dispatch.MaxAttempts <= 0 {
		cfg.Dispatch.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Dispatch.AttemptTimeout <= 0 {
		cfg.Dispatch.AttemptTimeout = defaultAttemptTimeout
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
