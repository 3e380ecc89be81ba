package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/dasgo/base/ctx"
	"github.com/x-xyz/dasgo/domain/das"
	"github.com/x-xyz/dasgo/service/provider/providertest"
)

func TestOpen(t *testing.T) {
	req := require.New(t)
	c := bCtx.Background()

	indexer := providertest.NewIndexer()
	uc, err := Open(c, &UsecaseCfg{Network: das.NetworkTestnet, Provider: indexer}, 0)
	req.NoError(err)
	req.Equal(das.NetworkTestnet, uc.Network())
	req.Equal(0, indexer.Calls("das_serverInfo"))

	uc, err = Open(c, &UsecaseCfg{Network: das.NetworkAuto, Provider: indexer}, 0)
	req.NoError(err)
	req.Equal(das.NetworkMainnet, uc.Network())
	req.GreaterOrEqual(indexer.Calls("das_serverInfo"), 1)

	uc, err = Open(c, &UsecaseCfg{Network: das.NetworkAuto, Url: "http://localhost:8121", Provider: indexer}, 0)
	req.NoError(err)
	req.Equal(das.NetworkMainnet, uc.Network())
	req.Equal("http://localhost:8121", uc.Url())

	_, err = Open(c, &UsecaseCfg{Network: "devnet", Provider: indexer}, 0)
	req.ErrorIs(err, das.ErrUnsupportedNetwork)
}
