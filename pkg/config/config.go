package config

import (
	"errors"
	"fmt"
	"os"

	"lintang/gridcalc/domain"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/joho/godotenv"
)

const (
	EnvUnit     = "GRIDCALC_UNIT"
	EnvLogLevel = "GRIDCALC_LOG_LEVEL"
)

// Config holds the defaults a gridcalc run starts from. Flags override them.
type Config struct {
	Unit     string `validate:"required,oneof=km mi nm"`
	LogLevel string `validate:"required,oneof=trace debug info warn error disabled"`
}

// Load reads the given env files, or an optional .env in the working directory
// when none are given, then the environment. Only the default .env may be missing.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		if len(files) > 0 || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load config: %w", err)
		}
	}

	cfg := Config{
		Unit:     getEnv(EnvUnit, "km"),
		LogLevel: getEnv(EnvLogLevel, "warn"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field and joins the translated messages into one coded error.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		return domain.WrapErrorf(err, domain.ErrBadParamInput, "invalid config: %v", errors.Join(vv...))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
