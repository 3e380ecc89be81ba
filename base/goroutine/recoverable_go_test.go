package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	p := <-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("probe exploded")
		},
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	assert.Equal(t, []string{
		"before start",
		"run task",
		"after ended",
		"after recovered",
		"probe exploded",
	}, res)
	require.NotNil(t, p)
	assert.Equal(t, "panic: probe exploded", p.Error())
	assert.NotEmpty(t, p.Stack)
}

func TestRecoverableGoNoPanic(t *testing.T) {
	ran := false
	p, ok := <-RecoverableGo(func() {
		ran = true
	})
	assert.True(t, ran)
	assert.False(t, ok)
	assert.Nil(t, p)
}
