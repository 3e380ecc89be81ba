package das

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"
)

// NetworkNames lists the networks in probing priority
var NetworkNames = []string{NetworkMainnet, NetworkTestnet}

// UrlMap holds the indexer endpoint of every network
var UrlMap = map[string]string{
	NetworkMainnet: "https://indexer-v1.did.id",
	NetworkTestnet: "https://test-indexer-not-use-in-production-env.did.id",
}

// Endpoint is a named indexer url
type Endpoint struct {
	Name string
	Url  string
}

// Endpoints returns the network endpoint set in priority order
func Endpoints() []Endpoint {
	res := make([]Endpoint, 0, len(NetworkNames))
	for _, name := range NetworkNames {
		res = append(res, Endpoint{Name: name, Url: UrlMap[name]})
	}
	return res
}

// NetworkAuto selects the first reachable network at startup
const NetworkAuto = "auto"
