package log

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithFieldDoesNotShareBacking(t *testing.T) {
	req := require.New(t)

	base := Log().WithField("network", "mainnet")
	a := base.WithField("account", "imac.bit")
	b := base.WithField("account", "phone.bit")

	req.Equal([]interface{}{"network", "mainnet"}, base.fields)
	req.Equal([]interface{}{"network", "mainnet", "account", "imac.bit"}, a.fields)
	req.Equal([]interface{}{"network", "mainnet", "account", "phone.bit"}, b.fields)
}

func TestConfigure(t *testing.T) {
	req := require.New(t)

	req.NoError(Configure(Options{Debug: true, Development: true, Service: "dasgo"}))
	Log().WithFields(Fields{"k": "v"}).Debug("configured")
	req.NoError(Configure(Options{}))
}
