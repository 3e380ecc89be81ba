package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Address is an owner key as the indexer stores it
type Address string

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

// IsHex reports whether the address is an EVM hex address
func (a Address) IsHex() bool {
	return common.IsHexAddress(string(a))
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}
