package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvString(t *testing.T) {
	assert.Equal(t, "fallback", GetEnvString("CLINIBOOK_TEST_STRING", "fallback"))

	t.Setenv("CLINIBOOK_TEST_STRING", "from-env")
	assert.Equal(t, "from-env", GetEnvString("CLINIBOOK_TEST_STRING", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	assert.Equal(t, 8080, GetEnvInt("CLINIBOOK_TEST_INT", 8080))

	t.Setenv("CLINIBOOK_TEST_INT", "9090")
	assert.Equal(t, 9090, GetEnvInt("CLINIBOOK_TEST_INT", 8080))

	t.Setenv("CLINIBOOK_TEST_INT", "not-a-number")
	assert.Equal(t, 8080, GetEnvInt("CLINIBOOK_TEST_INT", 8080))
}

func TestGetEnvBool(t *testing.T) {
	assert.False(t, GetEnvBool("CLINIBOOK_TEST_BOOL", false))

	t.Setenv("CLINIBOOK_TEST_BOOL", "true")
	assert.True(t, GetEnvBool("CLINIBOOK_TEST_BOOL", false))

	t.Setenv("CLINIBOOK_TEST_BOOL", "maybe")
	assert.False(t, GetEnvBool("CLINIBOOK_TEST_BOOL", false))
}
