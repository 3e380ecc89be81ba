package das

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolutionErrorIs(t *testing.T) {
	req := require.New(t)

	err := fmt.Errorf("lookup: %w", &ResolutionError{Code: RecordNotFound, Account: "imac.bit", Key: "address.btc"})
	req.True(errors.Is(err, ErrRecordNotFound))
	req.False(errors.Is(err, ErrUnregisteredAccount))

	var resErr *ResolutionError
	req.True(errors.As(err, &resErr))
	req.Equal("imac.bit", resErr.Account)
	req.Equal(`RecordNotFound: imac.bit has no record "address.btc"`, resErr.Error())
}

func TestConfigurationError(t *testing.T) {
	req := require.New(t)

	err := &ConfigurationError{
		Code: UnreachableNetwork,
		Causes: []ProbeFailure{
			{Network: NetworkMainnet, Err: errors.New("timeout")},
			{Network: NetworkTestnet, Err: errors.New("refused")},
		},
	}
	req.True(errors.Is(err, ErrUnreachableNetwork))
	req.False(errors.Is(err, ErrUnspecifiedUrl))
	req.Equal("UnreachableNetwork: no network is reachable (mainnet: timeout; testnet: refused)", err.Error())
}

func TestEndpoints(t *testing.T) {
	req := require.New(t)

	endpoints := Endpoints()
	req.Len(endpoints, 2)
	req.Equal(NetworkMainnet, endpoints[0].Name)
	req.Equal(UrlMap[NetworkMainnet], endpoints[0].Url)
	req.Equal(NetworkTestnet, endpoints[1].Name)
}
