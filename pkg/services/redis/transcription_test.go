package redisservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobEscape(t *testing.T) {
	assert.Equal(t, "plain-id", globEscape("plain-id"))
	assert.Equal(t, `m\*1`, globEscape("m*1"))
	assert.Equal(t, `a\?b`, globEscape("a?b"))
	assert.Equal(t, `x\[0\]`, globEscape("x[0]"))
	assert.Equal(t, `c\\d`, globEscape(`c\d`))
}
