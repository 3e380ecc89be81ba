// Package providertest serves indexer fixtures through the provider
// interface, for tests of the packages built on top of it.
package providertest

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/stretchr/testify/mock"
	bCtx "github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/domain/das"
)

var ErrUnreachable = errors.New("indexer unreachable")

const (
	ImacAccount   = "imac.bit"
	ImacAccountId = "0x5728088435fb8788472a9ca601fbc0b9cbea8be3"
	ImacEthOwner  = "0x1d643fac9a463c9d544506006a6348c234da485f"
	ImacTronOwner = "TPhEgBBVpNZZ4vpeEvh2jMo9WejuTbb5a2"
	ImacBtc       = "bc1qx9t2l3pyny2spqpqlye8svce70nppwtaxwdrp4"

	// ErrnoAccountNotExist is what the indexer answers for unknown accounts
	ErrnoAccountNotExist = 20007
)

// Indexer is an in-memory indexer. Its zero value knows no account.
type Indexer struct {
	Accounts map[string]das.AccountInfo
	Records  map[string][]das.AccountRecord
	// Owners is keyed by coin type and lower-cased key, joined by ":"
	Owners  map[string][]das.OwnedAccount
	Reverse map[string]string
	// Err makes every request fail with it
	Err error

	mu    sync.Mutex
	calls map[string]int
}

// NewIndexer returns an indexer knowing imac.bit
func NewIndexer() *Indexer {
	info := das.AccountInfo{
		Account:            ImacAccount,
		AccountIdHex:       ImacAccountId,
		NextAccountIdHex:   "0x5728088435fb8788472a9ca601fbc0b9cbea8be4",
		CreateAtUnix:       1626955200,
		ExpiredAtUnix:      1753185600,
		Status:             1,
		DasLockArgHex:      "0x051d643fac9a463c9d544506006a6348c234da485f051d643fac9a463c9d544506006a6348c234da485f",
		OwnerAlgorithmId:   5,
		OwnerKey:           ImacEthOwner,
		ManagerAlgorithmId: 5,
		ManagerKey:         ImacEthOwner,
	}
	return &Indexer{
		Accounts: map[string]das.AccountInfo{
			ImacAccount:   info,
			ImacAccountId: info,
		},
		Records: map[string][]das.AccountRecord{
			ImacAccount: {
				{Key: "address.eth", Label: "main", Value: ImacEthOwner, Ttl: "300"},
				{Key: "address.eth", Label: "cold", Value: "0x939ae6a4c8dfdbb1f7085189574f0a938013952a", Ttl: "300"},
				{Key: "address.trx", Label: "", Value: ImacTronOwner, Ttl: "300"},
				{Key: "address.btc", Label: "", Value: ImacBtc, Ttl: "300"},
				{Key: "profile.twitter", Label: "", Value: "imac_bit", Ttl: "300"},
				{Key: "profile.email", Label: "", Value: "Imac@Example.com", Ttl: "300"},
				{Key: "custom_key.note", Label: "", Value: "hello", Ttl: "300"},
			},
		},
		Owners: map[string][]das.OwnedAccount{
			string(das.CoinTypeETH) + ":" + ImacEthOwner:                   {{Account: ImacAccount}},
			string(das.CoinTypeTRX) + ":" + strings.ToLower(ImacTronOwner): {{Account: "tron.bit"}},
		},
		Reverse: map[string]string{
			ImacEthOwner: ImacAccount,
		},
	}
}

// Calls returns how many times method was requested
func (idx *Indexer) Calls(method string) int {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.calls[method]
}

type requestParam struct {
	Account   string `json:"account"`
	AccountId string `json:"account_id"`
	Type      string `json:"type"`
	KeyInfo   struct {
		CoinType string `json:"coin_type"`
		ChainId  string `json:"chain_id"`
		Key      string `json:"key"`
	} `json:"key_info"`
}

type envelope struct {
	Errno  int         `json:"errno"`
	Errmsg string      `json:"errmsg"`
	Data   interface{} `json:"data"`
}

// Request implements provider.Provider
func (idx *Indexer) Request(ctx bCtx.Ctx, method string, params ...interface{}) (json.RawMessage, error) {
	idx.mu.Lock()
	if idx.calls == nil {
		idx.calls = map[string]int{}
	}
	idx.calls[method]++
	idx.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if idx.Err != nil {
		return nil, idx.Err
	}

	param := requestParam{}
	if len(params) > 0 {
		b, err := json.Marshal(params[0])
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(b, &param); err != nil {
			return nil, err
		}
	}

	var res envelope
	switch method {
	case "das_serverInfo":
		res.Data = map[string]interface{}{"is_latest_block_number": true}
	case "das_accountInfo":
		key := param.Account
		if key == "" {
			key = param.AccountId
		}
		if info, ok := idx.Accounts[key]; ok {
			res.Data = map[string]interface{}{"account_info": info}
		} else {
			res = notExist()
		}
	case "das_accountRecords":
		if records, ok := idx.Records[param.Account]; ok {
			res.Data = map[string]interface{}{"account": param.Account, "records": records}
		} else {
			res = notExist()
		}
	case "das_accountList":
		key := param.KeyInfo.CoinType + ":" + strings.ToLower(param.KeyInfo.Key)
		res.Data = map[string]interface{}{"account_list": idx.Owners[key]}
	case "das_reverseRecord":
		if account, ok := idx.Reverse[strings.ToLower(param.KeyInfo.Key)]; ok {
			res.Data = map[string]interface{}{"account": account, "account_alias": account}
		} else {
			res = envelope{Errno: 20011, Errmsg: "reverse record not found"}
		}
	default:
		return nil, errors.New("the method " + method + " does not exist/is not available")
	}
	return json.Marshal(res)
}

func notExist() envelope {
	return envelope{Errno: ErrnoAccountNotExist, Errmsg: "account not exist"}
}

// MockProvider is a testify mock of provider.Provider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Request(ctx bCtx.Ctx, method string, params ...interface{}) (json.RawMessage, error) {
	args := m.Called(method, params)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}
