package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	req := require.New(t)

	evm := Address("0x1D643FAc9a463c9d544506006a6348c234dA485f")
	req.True(evm.IsHex())
	req.Equal("0x1d643fac9a463c9d544506006a6348c234da485f", evm.ToLowerStr())
	req.True(evm.Equals("0x1d643fac9a463c9d544506006a6348c234da485f"))

	tron := Address("TPhEgBBVpNZZ4vpeEvh2jMo9WejuTbb5a2")
	req.False(tron.IsHex())
	req.False(tron.IsEmpty())
	req.True(Address("").IsEmpty())
}
