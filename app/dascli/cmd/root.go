// Package cmd implements dascli, a command line client of the das indexer.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/x-xyz/dasgo/base/config"
	bCtx "github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/base/log"
	"github.com/x-xyz/dasgo/domain/das"
	"github.com/x-xyz/dasgo/stores/das/usecase"
)

// opener builds the usecase once flags and config are known
type opener func(c bCtx.Ctx, cfg *usecase.UsecaseCfg, probeTimeout time.Duration) (das.Usecase, error)

type app struct {
	v    *viper.Viper
	open opener

	uc das.Usecase
}

func Execute() error {
	return newRootCmd(usecase.Open).Execute()
}

func newRootCmd(open opener) *cobra.Command {
	a := &app{
		v:    viper.New(),
		open: open,
	}

	rootCmd := &cobra.Command{
		Use:               "dascli",
		Short:             "Resolve .bit accounts from the terminal",
		Long:              "dascli queries the das indexer for .bit account info, records, owners and reverse records.",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "yaml config file")
	flags.String("network", das.NetworkMainnet, "mainnet, testnet or auto")
	flags.String("url", "", "indexer url, overrides the network endpoint")
	flags.Duration("timeout", 0, "request timeout")
	flags.Duration("probe-timeout", 0, "per network probe timeout of auto")
	flags.Bool("debug", false, "debug logs")
	if err := bindFlags(a.v, flags); err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newAccountCmd(a),
		newAccountIdCmd(a),
		newRecordsCmd(a),
		newRecordCmd(a),
		newAddrsCmd(a),
		newOwnerCmd(a),
		newReverseCmd(a),
		newAvatarCmd(a),
		newStyleCmd(a),
		newPingCmd(a),
	)

	return rootCmd
}

var flagKeys = map[string]string{
	"network":       "das.network",
	"url":           "das.url",
	"timeout":       "das.timeout",
	"probe-timeout": "das.probeTimeout",
	"debug":         "debug",
}

// bindFlags lets explicitly set flags win over config and environment
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	file, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if file != "" {
		if err := config.Init(a.v, file); err != nil {
			return err
		}
	} else {
		config.Setup(a.v)
	}

	if err := log.Configure(log.Options{
		Debug:       a.v.GetBool("debug"),
		Development: true,
	}); err != nil {
		return err
	}

	// commands that never reach the indexer skip opening the usecase
	if cmd.Annotations["offline"] == "true" {
		return nil
	}

	c := a.ctx(cmd)
	cfg := config.LoadDas(a.v)
	uc, err := a.open(c, &usecase.UsecaseCfg{
		Network:        cfg.Network,
		Url:            cfg.Url,
		HttpClient:     http.Client{Timeout: cfg.Timeout},
		Timeout:        cfg.Timeout,
		AvatarResolver: cfg.AvatarResolver,
		IdenticonUrl:   cfg.IdenticonUrl,
	}, cfg.ProbeTimeout)
	if err != nil {
		c.WithField("err", err).Debug("usecase.Open failed")
		return err
	}
	a.uc = uc
	return nil
}

// ctx tags every log line of an invocation with its own request id
func (a *app) ctx(cmd *cobra.Command) bCtx.Ctx {
	c := bCtx.Background()
	if cmd.Context() != nil {
		c = bCtx.From(cmd.Context())
	}
	return bCtx.WithValues(c, map[string]interface{}{
		"requestID": uuid.NewString(),
		"command":   cmd.Name(),
	})
}

func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
