package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSHA256_Hash(t *testing.T) {
	digest, err := SHA256{}.Hash("pw1")
	require.NoError(t, err)

	assert.Len(t, digest, 64)

	again, _ := SHA256{}.Hash("pw1")
	assert.Equal(t, digest, again, "hash must be deterministic")

	other, _ := SHA256{}.Hash("pw2")
	assert.NotEqual(t, digest, other)
}

func TestSHA256_KnownVector(t *testing.T) {
	digest, err := SHA256{}.Hash("abc")
	require.NoError(t, err)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", digest)
}

func TestSHA256_Verify(t *testing.T) {
	digest, _ := SHA256{}.Hash("secret")

	assert.True(t, SHA256{}.Verify(digest, "secret"))
	assert.True(t, SHA256{}.Verify(strings.ToUpper(digest), "secret"))
	assert.False(t, SHA256{}.Verify(digest, "wrong"))
}

func TestBcrypt_HashAndVerify(t *testing.T) {
	h := Bcrypt{Cost: bcrypt.MinCost}

	digest, err := h.Hash("secret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(digest, "$2"))

	again, _ := h.Hash("secret")
	assert.NotEqual(t, digest, again, "bcrypt hashes are salted")

	assert.True(t, h.Verify(digest, "secret"))
	assert.False(t, h.Verify(digest, "wrong"))
}

func TestBcrypt_VerifiesLegacyDigest(t *testing.T) {
	legacy, _ := SHA256{}.Hash("pw1")
	h := Bcrypt{Cost: bcrypt.MinCost}

	assert.True(t, h.Verify(legacy, "pw1"))
	assert.False(t, h.Verify(legacy, "pw2"))
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    any
		wantErr bool
	}{
		{name: "", want: SHA256{}},
		{name: "sha256", want: SHA256{}},
		{name: "bcrypt", want: Bcrypt{}},
		{name: "SHA256", want: SHA256{}},
		{name: "md5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ByName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, h)
		})
	}
}

func TestByName_DefaultIsHexDigest(t *testing.T) {
	h, err := ByName("")
	require.NoError(t, err)

	first, err := h.Hash("pw1")
	require.NoError(t, err)
	second, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", first)
	assert.Equal(t, first, second, "equal passwords give equal digests")
	assert.True(t, h.Verify(first, "pw1"))
}
