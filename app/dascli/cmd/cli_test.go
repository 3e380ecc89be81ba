package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/domain/das"
	"github.com/x-xyz/dasgo/service/provider/providertest"
	"github.com/x-xyz/dasgo/stores/das/usecase"
)

type openCall struct {
	cfg          usecase.UsecaseCfg
	probeTimeout time.Duration
}

func executeCLI(t *testing.T, args ...string) (string, *openCall, error) {
	t.Helper()

	indexer := providertest.NewIndexer()
	var call *openCall
	open := func(c bCtx.Ctx, cfg *usecase.UsecaseCfg, probeTimeout time.Duration) (das.Usecase, error) {
		call = &openCall{cfg: *cfg, probeTimeout: probeTimeout}
		ucCfg := *cfg
		ucCfg.Provider = indexer
		return usecase.Open(c, &ucCfg, probeTimeout)
	}

	cmd := newRootCmd(open)
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), call, err
}

func TestAccount(t *testing.T) {
	stdout, call, err := executeCLI(t, "account", "imac.bit")
	require.NoError(t, err)
	assert.Equal(t, das.NetworkMainnet, call.cfg.Network)

	view := das.AccountView{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, "imac.bit", view.Account.Account)
	assert.Equal(t, providertest.ImacEthOwner, view.Address["eth"].Value)
}

func TestAccountInfo(t *testing.T) {
	stdout, _, err := executeCLI(t, "account", "imac.bit", "--info")
	require.NoError(t, err)
	assert.Contains(t, stdout, providertest.ImacAccountId)
	assert.NotContains(t, stdout, "\"records\"")
}

func TestAccountUnregistered(t *testing.T) {
	_, _, err := executeCLI(t, "account", "nobody.bit")
	require.ErrorIs(t, err, das.ErrUnregisteredAccount)
}

func TestAccountId(t *testing.T) {
	stdout, _, err := executeCLI(t, "account-id", providertest.ImacAccountId)
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"account\": \"imac.bit\"")
}

func TestRecords(t *testing.T) {
	stdout, _, err := executeCLI(t, "records", "imac.bit", "--key", "address.trx")
	require.NoError(t, err)

	records := []das.AccountRecord{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, providertest.ImacTronOwner, records[0].Value)
}

func TestRecord(t *testing.T) {
	stdout, _, err := executeCLI(t, "record", "imac.bit", "address.ETH")
	require.NoError(t, err)
	assert.Equal(t, providertest.ImacEthOwner+"\n", stdout)

	stdout, _, err = executeCLI(t, "record", "imac.bit", "address.eth", "profile.phone")
	require.NoError(t, err)
	assert.JSONEq(t, `{"address.eth":"`+providertest.ImacEthOwner+`"}`, stdout)

	_, _, err = executeCLI(t, "record", "imac.bit", "eth")
	require.ErrorIs(t, err, das.ErrRecordNotFound)
}

func TestAddrs(t *testing.T) {
	stdout, _, err := executeCLI(t, "addrs", "imac.bit", "btc")
	require.NoError(t, err)
	assert.Contains(t, stdout, providertest.ImacBtc)
}

func TestOwner(t *testing.T) {
	stdout, _, err := executeCLI(t, "owner", providertest.ImacEthOwner)
	require.NoError(t, err)
	assert.Equal(t, "imac.bit\n", stdout)

	stdout, _, err = executeCLI(t, "owner", providertest.ImacTronOwner, "--coin-type", string(das.CoinTypeTRX))
	require.NoError(t, err)
	assert.Equal(t, "tron.bit\n", stdout)
}

func TestReverse(t *testing.T) {
	stdout, _, err := executeCLI(t, "reverse", providertest.ImacEthOwner)
	require.NoError(t, err)
	assert.Equal(t, "imac.bit\n", stdout)
}

func TestStyle(t *testing.T) {
	stdout, call, err := executeCLI(t, "style", "imac#sub.bit")
	require.NoError(t, err)
	assert.Nil(t, call)
	assert.Equal(t, "supported\ttrue\ndotted\tsub.imac.bit\nhashed\timac#sub.bit\n", stdout)
}

func TestPingAuto(t *testing.T) {
	stdout, call, err := executeCLI(t, "ping", "--network", das.NetworkAuto, "--probe-timeout", "2s")
	require.NoError(t, err)
	assert.Equal(t, das.NetworkAuto, call.cfg.Network)
	assert.Equal(t, 2*time.Second, call.probeTimeout)
	assert.Equal(t, das.NetworkMainnet+"\t"+das.UrlMap[das.NetworkMainnet]+"\tok\n", stdout)
}

func TestUnsupportedNetwork(t *testing.T) {
	_, _, err := executeCLI(t, "ping", "--network", "devnet")
	require.ErrorIs(t, err, das.ErrUnsupportedNetwork)
}

func TestConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte("das:\n  network: testnet\n  timeout: 3s\n"), 0o600))

	stdout, call, err := executeCLI(t, "ping", "--config", file)
	require.NoError(t, err)
	assert.Equal(t, das.NetworkTestnet, call.cfg.Network)
	assert.Equal(t, 3*time.Second, call.cfg.Timeout)
	assert.Contains(t, stdout, das.UrlMap[das.NetworkTestnet])

	_, call, err = executeCLI(t, "ping", "--config", file, "--network", das.NetworkMainnet)
	require.NoError(t, err)
	assert.Equal(t, das.NetworkMainnet, call.cfg.Network)
}
