package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertErrorContains checks that err contains the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), expected)
	}
}

// AssertScore checks that a risk score lies in [0,100].
func AssertScore(t *testing.T, score float64, name string) {
	t.Helper()
	assert.GreaterOrEqual(t, score, 0.0, "%s below range", name)
	assert.LessOrEqual(t, score, 100.0, "%s above range", name)
}
