package das

// CoinType is the SLIP-44 coin type the indexer uses to index owner keys
type CoinType string

const (
	CoinTypeETH   CoinType = "60"
	CoinTypeTRX   CoinType = "195"
	CoinTypeCKB   CoinType = "309"
	CoinTypeBNB   CoinType = "714"
	CoinTypeMATIC CoinType = "966"
)

// ChainId of EVM chains sharing the ETH coin type
type ChainId string

const (
	ChainIdETH   ChainId = "1"
	ChainIdBSC   ChainId = "56"
	ChainIdMATIC ChainId = "137"
)

// KeyTypeBlockchain is the only key type the indexer accepts for owner keys
const KeyTypeBlockchain = "blockchain"

const (
	// RecordKeyAddressPrefix namespaces chain address records
	RecordKeyAddressPrefix = "address."
	// RecordKeyProfilePrefix namespaces profile records
	RecordKeyProfilePrefix = "profile."
)

// AccountInfo is the identity metadata the indexer holds for an account
type AccountInfo struct {
	Account            string `json:"account"`
	AccountAlias       string `json:"account_alias"`
	AccountIdHex       string `json:"account_id_hex"`
	NextAccountIdHex   string `json:"next_account_id_hex"`
	CreateAtUnix       int64  `json:"create_at_unix"`
	ExpiredAtUnix      int64  `json:"expired_at_unix"`
	Status             int    `json:"status"`
	DasLockArgHex      string `json:"das_lock_arg_hex"`
	OwnerAlgorithmId   int    `json:"owner_algorithm_id"`
	OwnerKey           string `json:"owner_key"`
	ManagerAlgorithmId int    `json:"manager_algorithm_id"`
	ManagerKey         string `json:"manager_key"`
}

// Account is AccountInfo with the derived avatar url
type Account struct {
	AccountInfo
	Avatar string `json:"avatar"`
}

// AccountRecord is a single key/value entry of an account
type AccountRecord struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value string `json:"value"`
	Ttl   string `json:"ttl,omitempty"`
}

// OwnedAccount is an entry of an owner listing
type OwnedAccount struct {
	Account     string `json:"account"`
	DisplayName string `json:"display_name,omitempty"`
}

// KeyInfo identifies a key on a chain
type KeyInfo struct {
	CoinType CoinType `json:"coin_type"`
	ChainId  ChainId  `json:"chain_id,omitempty"`
	Key      string   `json:"key" validate:"required"`
}

// KeyDescriptor addresses a reverse record
type KeyDescriptor struct {
	Type    string  `json:"type" validate:"required"`
	KeyInfo KeyInfo `json:"key_info" validate:"required"`
}

// AccountView aggregates account info with its records. It is built for a
// single call and never cached.
type AccountView struct {
	Account
	Records  []AccountRecord          `json:"records"`
	Profiles []AccountRecord          `json:"profiles"`
	Profile  map[string]AccountRecord `json:"profile"`
	Address  map[string]AccountRecord `json:"address"`
}
