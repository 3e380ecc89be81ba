// Package config loads the yaml configuration shared by the api and the cli.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/x-xyz/dasgo/domain/das"
)

const DefaultFile = "infra/configs/config.yaml"

// Init reads file into v on top of Setup.
func Init(v *viper.Viper, file string) error {
	Setup(v)
	v.SetConfigType("yaml")
	v.SetConfigFile(file)
	return v.ReadInConfig()
}

// Setup registers the defaults. Keys can be overridden from the environment
// with dots replaced by underscores, das.network is read from DAS_NETWORK.
func Setup(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.address", ":9090")
	v.SetDefault("das.network", das.NetworkMainnet)
	v.SetDefault("das.timeout", 10*time.Second)
	v.SetDefault("das.probeTimeout", 5*time.Second)
}

// Das is the resolver section
type Das struct {
	Network        string
	Url            string
	AvatarResolver string
	IdenticonUrl   string
	Timeout        time.Duration
	ProbeTimeout   time.Duration
}

func LoadDas(v *viper.Viper) Das {
	return Das{
		Network:        v.GetString("das.network"),
		Url:            v.GetString("das.url"),
		AvatarResolver: v.GetString("das.avatarResolver"),
		IdenticonUrl:   v.GetString("das.identiconUrl"),
		Timeout:        v.GetDuration("das.timeout"),
		ProbeTimeout:   v.GetDuration("das.probeTimeout"),
	}
}
