package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/dasgo/base/log"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "account", "imac.bit")
	ts.Equal("imac.bit", ctx.Value("account"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"network": "mainnet",
		"method":  "das_accountInfo",
	})
	ts.Equal("mainnet", ctx.Value("network"))
	ts.Equal("das_accountInfo", ctx.Value("method"))
}

func (ts *testsuite) TestWithLogFields() {
	bg := Background()
	ctx := WithLogFields(bg, log.Fields{"account": "imac.bit"})
	ts.Nil(ctx.Value("account"))
}

func (ts *testsuite) TestFrom() {
	bg := WithValue(Background(), "requestID", "abc")
	ts.Equal("abc", From(bg).Value("requestID"))

	plain := context.WithValue(context.Background(), "k", "v")
	ts.Equal("v", From(plain).Value("k"))
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	defer cancel()
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("context was not canceled")
	}
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	<-ctx.Done()
	ts.Equal(context.DeadlineExceeded, ctx.Err())
}
