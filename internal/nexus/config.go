// Package nexus loads configuration structs from the environment and an
// optional env or yaml file, then validates them.
package nexus

import (
	"context"
	"flag"
	"fmt"
	"os"
	"reflect"
	"time"

	"dario.cat/mergo"
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// ConfigError represents domain-specific configuration errors
type ConfigError struct {
	Code    string
	Message string
	Field   string
	Cause   error
}

func (e ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("[%s] %s (field: %s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e ConfigError) Unwrap() error {
	return e.Cause
}

const (
	ErrCodeInvalidType  = "CONFIG_INVALID_TYPE"
	ErrCodeFileNotFound = "CONFIG_FILE_NOT_FOUND"
	ErrCodeValidation   = "CONFIG_VALIDATION_FAILED"
	ErrCodeEnvironment  = "CONFIG_ENV_READ_FAILED"
	ErrCodeMerge        = "CONFIG_MERGE_FAILED"
	ErrCodeSelfCheck    = "CONFIG_SELF_CHECK_FAILED"
)

// Validator handles configuration validation
type Validator interface {
	Validate(ctx context.Context, cfg interface{}) error
}

// SelfValidator is implemented by configs that check their own invariants
// after loading, such as fee ranges or key lengths.
type SelfValidator interface {
	Validate() error
}

// LoaderOptions contains configuration for the loader
type LoaderOptions struct {
	DefaultFileName string
	FileFlag        string
	FileName        string
	OnlyEnvironment bool
	Validator       Validator
	Timeout         time.Duration
}

// Loader reads configuration from the environment and an optional file
type Loader struct {
	options LoaderOptions
}

// LoaderOption is a functional option for configuring the loader
type LoaderOption func(*LoaderOptions)

// WithDefaultFileName sets the file used when no flag is given and it exists
func WithDefaultFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.DefaultFileName = fileName
	}
}

// WithFileName sets a specific configuration file name
func WithFileName(fileName string) LoaderOption {
	return func(o *LoaderOptions) {
		o.FileName = fileName
		o.FileFlag = ""
	}
}

// WithOnlyEnvironment configures loader to only read from environment
func WithOnlyEnvironment() LoaderOption {
	return func(o *LoaderOptions) {
		o.OnlyEnvironment = true
		o.FileFlag = ""
		o.FileName = ""
	}
}

// WithValidator sets a custom validator
func WithValidator(v Validator) LoaderOption {
	return func(o *LoaderOptions) {
		o.Validator = v
	}
}

// WithTimeout sets the timeout for loading operations
func WithTimeout(timeout time.Duration) LoaderOption {
	return func(o *LoaderOptions) {
		o.Timeout = timeout
	}
}

// NewLoader creates a new configuration loader with options
func NewLoader(opts ...LoaderOption) *Loader {
	options := LoaderOptions{
		DefaultFileName: ".env",
		FileFlag:        "config",
		Validator:       &DefaultValidator{},
		Timeout:         30 * time.Second,
	}

	for _, opt := range opts {
		opt(&options)
	}

	return &Loader{options: options}
}

// Load loads configuration from all configured sources
func (l *Loader) Load(cfg interface{}) error {
	return l.LoadWithContext(context.Background(), cfg)
}

// LoadWithContext loads configuration with context support
func (l *Loader) LoadWithContext(ctx context.Context, cfg interface{}) error {
	if l.options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.options.Timeout)
		defer cancel()
	}

	if err := validateInputType(cfg); err != nil {
		return err
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return &ConfigError{Code: ErrCodeEnvironment, Message: "failed to read environment variables", Cause: err}
	}

	if !l.options.OnlyEnvironment {
		if fileName := l.resolveFileName(); fileName != "" {
			if err := loadFromFile(cfg, fileName); err != nil {
				return err
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := l.options.Validator.Validate(ctx, cfg); err != nil {
		return &ConfigError{Code: ErrCodeValidation, Message: "configuration validation failed", Cause: err}
	}

	if sv, ok := cfg.(SelfValidator); ok {
		if err := sv.Validate(); err != nil {
			return &ConfigError{Code: ErrCodeSelfCheck, Message: "configuration self check failed", Cause: err}
		}
	}

	return nil
}

func validateInputType(cfg interface{}) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return &ConfigError{
			Code:    ErrCodeInvalidType,
			Message: fmt.Sprintf("configuration must be a pointer to struct, got %T", cfg),
		}
	}
	return nil
}

// loadFromFile reads fileName into a fresh copy and merges its non-zero
// values over cfg.
func loadFromFile(cfg interface{}, fileName string) error {
	fileCfg := reflect.New(reflect.ValueOf(cfg).Elem().Type()).Interface()

	if err := cleanenv.ReadConfig(fileName, fileCfg); err != nil {
		return &ConfigError{
			Code:    ErrCodeFileNotFound,
			Message: "failed to read configuration file",
			Field:   fileName,
			Cause:   err,
		}
	}

	if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
		return &ConfigError{Code: ErrCodeMerge, Message: "failed to merge configuration sources", Cause: err}
	}

	return nil
}

func (l *Loader) resolveFileName() string {
	if l.options.FileName != "" {
		return l.options.FileName
	}
	if l.options.FileFlag == "" {
		return ""
	}
	if fileName := l.getFileNameFromFlag(); fileName != "" {
		return fileName
	}
	return l.getDefaultFileIfExists()
}

func (l *Loader) getFileNameFromFlag() string {
	if f := flag.Lookup(l.options.FileFlag); f != nil {
		return f.Value.String()
	}

	var fileName string
	flag.StringVar(&fileName, l.options.FileFlag, "", "Specify configuration file")
	flag.Parse()
	return fileName
}

func (l *Loader) getDefaultFileIfExists() string {
	if l.options.DefaultFileName == "" {
		return ""
	}
	if _, err := os.Stat(l.options.DefaultFileName); err == nil {
		return l.options.DefaultFileName
	}
	return ""
}

// DefaultValidator validates `validate` struct tags with go-playground/validator
type DefaultValidator struct {
	validator *validator.Validate
}

func (v *DefaultValidator) Validate(_ context.Context, cfg interface{}) error {
	if v.validator == nil {
		v.validator = validator.New()
	}
	return v.validator.Struct(cfg)
}
