package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/x-xyz/dasgo/domain/das"
)

func newAccountCmd(a *app) *cobra.Command {
	var infoOnly bool
	cmd := &cobra.Command{
		Use:   "account <account>",
		Short: "Show an account with its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.ctx(cmd)
			if infoOnly {
				res, err := a.uc.GetAccountData(c, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			}
			res, err := a.uc.Account(c, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().BoolVar(&infoOnly, "info", false, "account info only, without records")
	return cmd
}

func newAccountIdCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "account-id <account id>",
		Short: "Show an account by its id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.uc.Resolver().AccountById(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newRecordsCmd(a *app) *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "records <account>",
		Short: "List the records of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.uc.Resolver().Records(a.ctx(cmd), args[0], key)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "only records with this key")
	return cmd
}

func newRecordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "record <account> <key> [key...]",
		Short: "Print record values",
		Long:  "With a single key its value is printed, with several keys a key to value object.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := a.ctx(cmd)
			if len(args) == 2 {
				res, err := a.uc.Record(c, args[0], args[1])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
				return err
			}
			res, err := a.uc.Records(c, args[0], args[1:])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newAddrsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "addrs <account> <chain>",
		Short: "List the addresses of an account on a chain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.uc.Resolver().Addrs(a.ctx(cmd), args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newOwnerCmd(a *app) *cobra.Command {
	var coinType string
	cmd := &cobra.Command{
		Use:   "owner <address>",
		Short: "List the accounts owned by a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.uc.Resolver().AccountsForOwner(a.ctx(cmd), args[0], das.CoinType(coinType))
			if err != nil {
				return err
			}
			for _, account := range res {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), account.Account); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&coinType, "coin-type", string(das.CoinTypeETH), "coin type of the key")
	return cmd
}

func newReverseCmd(a *app) *cobra.Command {
	var coinType, chainId string
	cmd := &cobra.Command{
		Use:   "reverse <address>",
		Short: "Print the reverse record of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.uc.Resolver().ReverseRecord(a.ctx(cmd), das.KeyDescriptor{
				Type: das.KeyTypeBlockchain,
				KeyInfo: das.KeyInfo{
					CoinType: das.CoinType(coinType),
					ChainId:  das.ChainId(chainId),
					Key:      args[0],
				},
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
			return err
		},
	}
	cmd.Flags().StringVar(&coinType, "coin-type", string(das.CoinTypeETH), "coin type of the key")
	cmd.Flags().StringVar(&chainId, "chain-id", "", "chain id of the key")
	return cmd
}

func newAvatarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <account>",
		Short: "Print the avatar resolver answer of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.uc.Resolver().GetAvatar(a.ctx(cmd), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newStyleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "style <account>",
		Short:       "Print the dotted and hashed styles of an account",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"offline": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			account := args[0]
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "supported\t%t\ndotted\t%s\nhashed\t%s\n",
				das.IsSupportedAccount(account), das.ToDottedStyle(account), das.ToHashedStyle(account))
			return err
		},
	}
}

func newPingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the indexer is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.uc.Resolver().Ping(a.ctx(cmd)); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tok\n", a.uc.Network(), a.uc.Url())
			return err
		},
	}
}
