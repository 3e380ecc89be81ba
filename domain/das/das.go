package das

import (
	"encoding/json"

	"github.com/x-xyz/dasgo/base/ctx"
)

// Resolver maps account requests onto indexer calls
type Resolver interface {
	Account(ctx ctx.Ctx, account string) (*Account, error)
	AccountById(ctx ctx.Ctx, accountId string) (*Account, error)
	// Records returns every record of account, or only those whose key equals
	// the lower-cased key when one is given
	Records(ctx ctx.Ctx, account string, key ...string) ([]AccountRecord, error)
	Addrs(ctx ctx.Ctx, account string, chain string) ([]AccountRecord, error)
	// AccountsForOwner defaults coinType to CoinTypeETH when empty
	AccountsForOwner(ctx ctx.Ctx, address string, coinType CoinType) ([]OwnedAccount, error)
	ReverseRecord(ctx ctx.Ctx, descriptor KeyDescriptor) (string, error)
	GetAvatar(ctx ctx.Ctx, account string) (json.RawMessage, error)
	// Ping is a liveness call against the indexer
	Ping(ctx ctx.Ctx) error

	IsSupportedAccount(account string) bool
	ToDottedStyle(account string) string
	ToHashedStyle(account string) string
}

// Usecase composes resolver calls into account views
type Usecase interface {
	GetAccountData(ctx ctx.Ctx, account string) (*Account, error)
	Record(ctx ctx.Ctx, account string, key string) (string, error)
	Records(ctx ctx.Ctx, account string, keys []string) (map[string]string, error)
	Account(ctx ctx.Ctx, account string) (*AccountView, error)

	Resolver() Resolver
	Network() string
	Url() string
}
