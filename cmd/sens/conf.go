package main

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rendau/sens/adapters/sms"
	"github.com/rendau/sens/tools"
)

type confSt struct {
	Debug         bool          `mapstructure:"DEBUG"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	HttpTimeout   time.Duration `mapstructure:"HTTP_TIMEOUT"`
	ServiceId     string        `mapstructure:"SENS_SERVICE_ID"`
	SecretKey     string        `mapstructure:"SENS_SECRET_KEY"`
	AccessKey     string        `mapstructure:"SENS_ACCESS_KEY"`
	CallingNumber string        `mapstructure:"SENS_CALLING_NUMBER"`
}

func defaultConf() confSt {
	return confSt{
		LogLevel:    "info",
		HttpTimeout: 30 * time.Second,
	}
}

// loadConf reads the environment, optionally seeded from envFile.
func loadConf(envFile string) (*confSt, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !(errors.Is(err, os.ErrNotExist) && envFile == defaultEnvFile) {
			return nil, err
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	tools.SetViperDefaultsFromObj(v, defaultConf())

	conf := &confSt{}

	err := v.Unmarshal(conf)
	if err != nil {
		return nil, err
	}

	if conf.ServiceId == "" || conf.SecretKey == "" || conf.AccessKey == "" {
		return nil, errors.New("SENS_SERVICE_ID, SENS_SECRET_KEY and SENS_ACCESS_KEY are required")
	}

	return conf, nil
}

func (c *confSt) credential() sms.CredentialSt {
	return sms.CredentialSt{
		ServiceId: c.ServiceId,
		SecretKey: c.SecretKey,
		AccessKey: c.AccessKey,
	}
}
