package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/sui-txkit/pkg/types"
)

func TestParseTypeTagPrimitives(t *testing.T) {
	cases := map[string]TypeTagKind{
		"bool":    TypeBool,
		"u8":      TypeU8,
		"u16":     TypeU16,
		"u32":     TypeU32,
		"u64":     TypeU64,
		"u128":    TypeU128,
		"u256":    TypeU256,
		"address": TypeAddress,
		"signer":  TypeSigner,
	}

	for text, kind := range cases {
		tag, err := ParseTypeTag(text)
		require.NoError(t, err, text)
		assert.Equal(t, kind, tag.Kind)
		assert.Nil(t, tag.Vector)
		assert.Nil(t, tag.Struct)
		assert.Equal(t, text, tag.String())
	}
}

func TestParseTypeTagVector(t *testing.T) {
	tag, err := ParseTypeTag("vector<u8>")
	require.NoError(t, err)

	assert.Equal(t, TypeVector, tag.Kind)
	require.NotNil(t, tag.Vector)
	assert.Equal(t, TypeU8, tag.Vector.Kind)
	assert.Equal(t, "vector<u8>", tag.String())
}

func TestParseTypeTagNestedVector(t *testing.T) {
	tag, err := ParseTypeTag("vector<vector<u64>>")
	require.NoError(t, err)

	assert.Equal(t, TypeVector, tag.Kind)
	require.NotNil(t, tag.Vector)
	assert.Equal(t, TypeVector, tag.Vector.Kind)
	require.NotNil(t, tag.Vector.Vector)
	assert.Equal(t, TypeU64, tag.Vector.Vector.Kind)
}

func TestParseTypeTagStruct(t *testing.T) {
	tag, err := ParseTypeTag("0x2::sui::SUI")
	require.NoError(t, err)

	assert.Equal(t, TypeStruct, tag.Kind)
	require.NotNil(t, tag.Struct)
	assert.Equal(t, types.MustParseAddress("0x2"), tag.Struct.Address)
	assert.Equal(t, "sui", tag.Struct.Module)
	assert.Equal(t, "SUI", tag.Struct.Name)
	assert.Empty(t, tag.Struct.TypeParams)
}

func TestParseTypeTagGenericStruct(t *testing.T) {
	tag, err := ParseTypeTag("0x2::coin::Coin<0x2::sui::SUI>")
	require.NoError(t, err)

	require.NotNil(t, tag.Struct)
	assert.Equal(t, "coin", tag.Struct.Module)
	require.Len(t, tag.Struct.TypeParams, 1)

	inner := tag.Struct.TypeParams[0]
	assert.Equal(t, TypeStruct, inner.Kind)
	require.NotNil(t, inner.Struct)
	assert.Equal(t, "SUI", inner.Struct.Name)
}

func TestParseTypeTagMultipleParams(t *testing.T) {
	tag, err := ParseTypeTag("0x2::table::Table<address, vector<u8>>")
	require.NoError(t, err)

	require.NotNil(t, tag.Struct)
	require.Len(t, tag.Struct.TypeParams, 2)
	assert.Equal(t, TypeAddress, tag.Struct.TypeParams[0].Kind)
	assert.Equal(t, TypeVector, tag.Struct.TypeParams[1].Kind)
}

func TestTypeTagStringRoundTrip(t *testing.T) {
	texts := []string{
		"vector<0x2::coin::Coin<0x2::sui::SUI>>",
		"0x2::table::Table<address, vector<u8>>",
	}

	for _, text := range texts {
		tag, err := ParseTypeTag(text)
		require.NoError(t, err, text)

		again, err := ParseTypeTag(tag.String())
		require.NoError(t, err, text)
		assert.Equal(t, tag, again)
	}
}

func TestParseTypeTagRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"vector<u8",
		"0x2::sui",
		"0x2::::SUI",
		"notatype",
		"0x2::table::Table<address, vector<u8>",
	}

	for _, text := range bad {
		_, err := ParseTypeTag(text)
		assert.Error(t, err, "%q should not parse", text)
	}
}
