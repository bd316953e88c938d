package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/adam.stanek/growthwalk/pkg/utils"
)

func TestAnonymizeTokenKeepsEdges(t *testing.T) {
	assert.Equal(t, "abcd********wxyz", utils.AnonymizeToken("abcdefghijklwxyz", 4))
}

func TestAnonymizeTokenMasksEverything(t *testing.T) {
	assert.Equal(t, "**********", utils.AnonymizeToken("test123456", 0))
}

func TestAnonymizeTokenShortToken(t *testing.T) {
	assert.Equal(t, "*****", utils.AnonymizeToken("abcde", 4))
	assert.Equal(t, "", utils.AnonymizeToken("", 4))
}
