package resolver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/x-xyz/dasgo/domain/das"
	"github.com/x-xyz/dasgo/service/provider"
)

const (
	DefaultAvatarResolver = "https://identicons.did.id/avatar/resolve"
	DefaultIdenticonUrl   = "https://identicons.did.id"
	DefaultTimeout        = 10 * time.Second

	// ServiceName is reported in configuration errors
	ServiceName = "DAS"
)

const (
	MethodAccountInfo    = "das_accountInfo"
	MethodAccountRecords = "das_accountRecords"
	MethodAccountList    = "das_accountList"
	MethodReverseRecord  = "das_reverseRecord"
	MethodServerInfo     = "das_serverInfo"
)

type ClientCfg struct {
	// Provider takes precedence over Url
	Provider provider.Provider
	// Url of the indexer, used to build the default provider
	Url            string
	HttpClient     http.Client
	Timeout        time.Duration
	AvatarResolver string
	IdenticonUrl   string
}

// response is the envelope of every indexer result
type response struct {
	Errno  int             `json:"errno"`
	Errmsg string          `json:"errmsg"`
	Data   json.RawMessage `json:"data"`
}

func (r *response) absent() bool {
	data := bytes.TrimSpace(r.Data)
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

type accountInfoParam struct {
	Account   string `json:"account,omitempty"`
	AccountId string `json:"account_id,omitempty"`
}

type accountInfoData struct {
	AccountInfo *das.AccountInfo `json:"account_info"`
}

type accountParam struct {
	Account string `json:"account"`
}

type accountRecordsData struct {
	Account string              `json:"account"`
	Records []das.AccountRecord `json:"records"`
}

type accountListParam struct {
	Type    string  `json:"type"`
	KeyInfo keyInfo `json:"key_info"`
}

type keyInfo struct {
	CoinType das.CoinType `json:"coin_type"`
	Key      string       `json:"key"`
}

type accountListData struct {
	AccountList []das.OwnedAccount `json:"account_list"`
}

type reverseRecordData struct {
	Account      string `json:"account"`
	AccountAlias string `json:"account_alias"`
}
