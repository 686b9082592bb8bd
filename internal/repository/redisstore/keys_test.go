package redisstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "jobs:session:u1:t1", sessionKey("u1", "t1"))
	assert.Equal(t, "jobs:sessions:u1", userSessionsKey("u1"))
}
