package auth_test

import (
	"encoding/json"
	"testing"

	"github.com/public-awesome/accounts/auth"
	"github.com/public-awesome/accounts/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleJSON = `{"@type":"/cosmos.auth.v1beta1.BaseAccount","account_number":"2932070","address":"terra1eml7g3ll6jkyhtfv2g0gvqnzzpy6kjyd7qr302","pub_key":{"@type":"/cosmos.crypto.secp256k1.PubKey","key":"AurYLJpdpq9l3T48uq7+5TrG7ngFa+mq96SNdDVyaIwC"},"sequence":"6"}`

func TestJSONRoundTrip(t *testing.T) {
	account, err := auth.ParseBaseAccount(exampleJSON)
	require.NoError(t, err)

	assert.Equal(t, "terra1eml7g3ll6jkyhtfv2g0gvqnzzpy6kjyd7qr302", account.Address)
	assert.Equal(t, uint64(2932070), account.AccountNumber)
	assert.Equal(t, uint64(6), account.Sequence)
	require.NotNil(t, account.PubKey)
	assert.Equal(t, "/cosmos.crypto.secp256k1.PubKey", account.PubKey.TypeURL())

	assert.Equal(t, exampleJSON, account.String())
}

func TestStructuralRoundTrip(t *testing.T) {
	pk, err := crypto.PublicKeyFromJSON([]byte(`{"@type":"/cosmos.crypto.secp256k1.PubKey","key":"AurYLJpdpq9l3T48uq7+5TrG7ngFa+mq96SNdDVyaIwC"}`))
	require.NoError(t, err)

	for _, account := range []auth.BaseAccount{
		{Address: "stars1zxcvaqswdedefr", AccountNumber: 0, Sequence: 0},
		{Address: "stars1zxcvaqswdedefr", PubKey: pk, AccountNumber: 42, Sequence: 7},
		{Address: "stars1zxcvaqswdedefr", AccountNumber: 18446744073709551615, Sequence: 18446744073709551615},
	} {
		decoded, err := auth.ParseBaseAccount(account.String())
		require.NoError(t, err)
		assert.Equal(t, account, *decoded)
	}
}

func TestEncodeAlwaysTagged(t *testing.T) {
	account := auth.BaseAccount{Address: "stars1zxcvaqswdedefr"}
	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(account.String()), &wire))
	assert.Equal(t, `"`+auth.TypeURL+`"`, string(wire["@type"]))
}

func TestDecodeForeignTypeTag(t *testing.T) {
	// the tag is accepted unconditionally on decode and only used on encode
	in := `{"@type":"/cosmos.auth.v1beta1.ModuleAccount","account_number":"9","address":"stars1abc","pub_key":null,"sequence":"0"}`
	account, err := auth.ParseBaseAccount(in)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), account.AccountNumber)
	assert.Contains(t, account.String(), auth.TypeURL)
}

func TestPubKeyOptional(t *testing.T) {
	withNull := `{"@type":"/cosmos.auth.v1beta1.BaseAccount","account_number":"1","address":"stars1abc","pub_key":null,"sequence":"0"}`
	account, err := auth.ParseBaseAccount(withNull)
	require.NoError(t, err)
	assert.Nil(t, account.PubKey)
	// nil keys re-encode as explicit null, matching node output
	assert.Equal(t, withNull, account.String())

	withoutField := `{"@type":"/cosmos.auth.v1beta1.BaseAccount","account_number":"1","address":"stars1abc","sequence":"0"}`
	account, err = auth.ParseBaseAccount(withoutField)
	require.NoError(t, err)
	assert.Nil(t, account.PubKey)
}

func TestMissingRequiredFields(t *testing.T) {
	for field, in := range map[string]string{
		"address":        `{"@type":"/cosmos.auth.v1beta1.BaseAccount","account_number":"1","sequence":"0"}`,
		"account_number": `{"@type":"/cosmos.auth.v1beta1.BaseAccount","address":"stars1abc","sequence":"0"}`,
		"sequence":       `{"@type":"/cosmos.auth.v1beta1.BaseAccount","account_number":"1","address":"stars1abc"}`,
	} {
		_, err := auth.ParseBaseAccount(in)
		require.ErrorIs(t, err, auth.ErrInvalidJSON, "missing %s", field)
		assert.Contains(t, err.Error(), field)
	}
}

func TestMalformedNumbers(t *testing.T) {
	for _, number := range []string{"99999999999999999999", "12x", "-1", "+1", ""} {
		in := `{"@type":"/cosmos.auth.v1beta1.BaseAccount","account_number":"` + number + `","address":"stars1abc","sequence":"0"}`
		_, err := auth.ParseBaseAccount(in)
		assert.ErrorIs(t, err, auth.ErrMalformedNumber, "account_number %q", number)
		assert.Contains(t, err.Error(), "account_number")
	}

	in := `{"@type":"/cosmos.auth.v1beta1.BaseAccount","account_number":"1","address":"stars1abc","sequence":"nope"}`
	_, err := auth.ParseBaseAccount(in)
	assert.ErrorIs(t, err, auth.ErrMalformedNumber)
	assert.Contains(t, err.Error(), "sequence")
}

func TestInvalidJSON(t *testing.T) {
	for _, in := range []string{
		"not json",
		`{"@type":`,
		`[]`,
		// account_number as a JSON number is a wrong shape, not a number error
		`{"@type":"/cosmos.auth.v1beta1.BaseAccount","account_number":1,"address":"stars1abc","sequence":"0"}`,
	} {
		_, err := auth.ParseBaseAccount(in)
		assert.ErrorIs(t, err, auth.ErrInvalidJSON, "input %s", in)
	}
}

func TestQueryAccountResponse(t *testing.T) {
	var resp auth.QueryAccountResponse
	require.NoError(t, json.Unmarshal([]byte(`{"account":`+exampleJSON+`}`), &resp))
	require.NotNil(t, resp.Account)
	assert.Equal(t, uint64(2932070), resp.Account.AccountNumber)

	var empty auth.QueryAccountResponse
	require.NoError(t, json.Unmarshal([]byte(`{"account":null}`), &empty))
	assert.Nil(t, empty.Account)
}
