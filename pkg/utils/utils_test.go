package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	password := "testpassword"
	hashedPassword, err := HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEmpty(t, hashedPassword)
	assert.NotEqual(t, password, hashedPassword)
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hashedPassword, err := HashPassword("testpassword", 99)
	require.NoError(t, err)
	cost, err := bcrypt.Cost([]byte(hashedPassword))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestCheckPasswordHash(t *testing.T) {
	password := "testpassword"
	hashedPassword, _ := HashPassword(password, bcrypt.MinCost)

	assert.True(t, CheckPasswordHash(password, hashedPassword))
	assert.False(t, CheckPasswordHash("wrongpassword", hashedPassword))
	assert.False(t, CheckPasswordHash(password, "not-a-hash"))
}

func TestIsNationalID(t *testing.T) {
	assert.True(t, IsNationalID("11111111111"))
	assert.True(t, IsNationalID("01234567890"))

	assert.False(t, IsNationalID(""))
	assert.False(t, IsNationalID("1111111111"))
	assert.False(t, IsNationalID("111111111111"))
	assert.False(t, IsNationalID("1111111111a"))
	assert.False(t, IsNationalID("123.456.789-01"))
	assert.False(t, IsNationalID("١١١١١١١١١١١"))
}

func TestMaskNationalID(t *testing.T) {
	assert.Equal(t, "123.456.789-01", MaskNationalID("12345678901"))
	assert.Equal(t, "abc", MaskNationalID("abc"))
}
