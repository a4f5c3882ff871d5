package file

import (
	"fmt"

	"mining-profit/pkg/domain/model"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

const (
	// EnvPrefix 環境変数の接頭辞
	EnvPrefix = "MPH"
)

// LoadConfig 既定値に設定ファイル（TOML、省略可）、環境変数、override を順に重ねて検証する
func LoadConfig(path string, override func(*model.Config)) (*model.Config, error) {
	conf := model.NewDefaultConfig()
	if path != "" {
		if _, err := toml.DecodeFile(path, conf); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, conf); err != nil {
		return nil, err
	}
	if override != nil {
		override(conf)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// ApplyCredentialEnv config.json の値を環境変数で上書き
func ApplyCredentialEnv(c *model.Credentials) error {
	var env struct {
		FixerAPIAccessKey string `envconfig:"FIXER_API_ACCESS_KEY"`
	}
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return err
	}
	if env.FixerAPIAccessKey != "" {
		c.FixerAPIAccessKey = env.FixerAPIAccessKey
	}
	return nil
}
