package das

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type accountSuite struct {
	suite.Suite
}

func TestAccountSuite(t *testing.T) {
	suite.Run(t, new(accountSuite))
}

func (s *accountSuite) TestIsSupportedAccount() {
	tests := []struct {
		desc    string
		account string
		want    bool
	}{
		{desc: "main account", account: "imac.bit", want: true},
		{desc: "sub account", account: "a.phone.bit", want: true},
		{desc: "hashed sub account", account: "phone#123.bit", want: true},
		{desc: "no suffix", account: "noext", want: false},
		{desc: "bare suffix", account: ".bit", want: false},
		{desc: "empty segment", account: "a..bit", want: false},
		{desc: "trailing dot", account: "imac.bit.", want: false},
		{desc: "empty", account: "", want: false},
	}
	for _, t := range tests {
		s.Equal(t.want, IsSupportedAccount(t.account), t.desc)
	}
}

func (s *accountSuite) TestToDottedStyle() {
	tests := []struct {
		desc    string
		account string
		want    string
	}{
		{desc: "hashed", account: "phone#123.bit", want: "123.phone.bit"},
		{desc: "already dotted", account: "123.phone.bit", want: "123.phone.bit"},
		{desc: "main account", account: "imac.bit", want: "imac.bit"},
		{desc: "unsupported", account: "not-an-account", want: "not-an-account"},
		{desc: "hash outside first segment", account: "a.b#c.bit", want: "a.b#c.bit"},
	}
	for _, t := range tests {
		s.Equal(t.want, ToDottedStyle(t.account), t.desc)
	}
}

func (s *accountSuite) TestToHashedStyle() {
	tests := []struct {
		desc    string
		account string
		want    string
	}{
		{desc: "dotted", account: "123.phone.bit", want: "phone#123.bit"},
		{desc: "already hashed", account: "phone#123.bit", want: "phone#123.bit"},
		{desc: "main account", account: "imac.bit", want: "imac.bit"},
		{desc: "two sub levels", account: "a.b.phone.bit", want: "a.b.phone.bit"},
		{desc: "unsupported", account: "not-an-account", want: "not-an-account"},
	}
	for _, t := range tests {
		s.Equal(t.want, ToHashedStyle(t.account), t.desc)
	}
}

func (s *accountSuite) TestRoundTrip() {
	for _, hashed := range []string{"phone#123.bit", "imac#x.bit", "a#b.bit"} {
		s.Equal(hashed, ToHashedStyle(ToDottedStyle(hashed)))
	}
	for _, dotted := range []string{"123.phone.bit", "x.imac.bit", "b.a.bit"} {
		s.Equal(dotted, ToDottedStyle(ToHashedStyle(dotted)))
	}
}
