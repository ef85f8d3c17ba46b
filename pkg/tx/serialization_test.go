package tx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffix-labs/sui-txkit/pkg/bcs"
	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// minimalTransaction is the smallest well-formed TransactionData: no
// inputs, no commands, a single gas payment object.
func minimalTransaction(t *testing.T) *TransactionData {
	t.Helper()
	data, err := NewBuilder().Build(types.MustParseAddress("0x1"), types.GasData{
		Payment: []types.ObjectRef{{
			ObjectID: types.MustParseAddress("0x2"),
			Version:  3,
			Digest:   types.Digest{0xAB},
		}},
		Owner:  types.MustParseAddress("0x1"),
		Price:  1000,
		Budget: 5_000_000,
	})
	require.NoError(t, err)
	return data
}

func TestSerializeMinimalTransaction(t *testing.T) {
	raw, err := Serialize(minimalTransaction(t))
	require.NoError(t, err)

	require.NotEmpty(t, raw)
	assert.Equal(t, byte(0x00), raw[0], "kind tag must be ProgrammableTransaction")

	// Closed-form length:
	//   kind tag (1) + input count (1) + command count (1)
	//   + sender (32)
	//   + payment count (1) + object ref (32 + 8 + 1 + 32)
	//   + owner (32) + price (8) + budget (8)
	//   + expiration tag (1)
	assert.Equal(t, 1+1+1+32+1+73+32+8+8+1, len(raw))

	// Zero counts and no expiration.
	assert.Equal(t, byte(0x00), raw[1])
	assert.Equal(t, byte(0x00), raw[2])
	assert.Equal(t, byte(0x00), raw[len(raw)-1])
}

func TestSerializeIsDeterministic(t *testing.T) {
	data := minimalTransaction(t)

	first, err := Serialize(data)
	require.NoError(t, err)
	second, err := Serialize(data)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second))
}

func TestSerializeCoinTransferWireImage(t *testing.T) {
	recipient := types.MustParseAddress("0x9")

	b := NewBuilder()
	amt := b.AddPureInput(bcs.EncodeU64LE(1_000_000))
	rcpt := b.AddPureInput(recipient[:])
	split := b.SplitCoins(GasCoin{}, []Argument{Input{Index: amt}})
	b.TransferObjects([]Argument{Result{Index: split}}, Input{Index: rcpt})

	data, err := b.Build(types.MustParseAddress("0x1"), types.GasData{
		Payment: []types.ObjectRef{{Version: 1}},
		Owner:   types.MustParseAddress("0x1"),
		Price:   1000,
		Budget:  2_000_000,
	})
	require.NoError(t, err)

	raw, err := Serialize(data)
	require.NoError(t, err)

	// The programmable body is fully determined; check it byte-for-byte.
	want := []byte{
		0x00, // kind: ProgrammableTransaction
		0x02, // 2 inputs
		0x00, 0x08, // input 0: Pure, 8 bytes
		0x40, 0x42, 0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, // 1_000_000 LE
		0x00, 0x20, // input 1: Pure, 32 bytes
	}
	want = append(want, recipient[:]...)
	want = append(want,
		0x02,             // 2 commands
		0x02,             // command 0: SplitCoins
		0x00,             // coin: GasCoin
		0x01,             // 1 amount
		0x01, 0x00, 0x00, // Input(0), index u16 LE
		0x01,             // command 1: TransferObjects
		0x01,             // 1 object
		0x02, 0x00, 0x00, // Result(0), index u16 LE
		0x01, 0x01, 0x00, // recipient: Input(1), index u16 LE
	)

	require.GreaterOrEqual(t, len(raw), len(want))
	assert.Equal(t, want, raw[:len(want)])
}

func TestSerializeObjectInput(t *testing.T) {
	ref := types.ObjectRef{
		ObjectID: types.MustParseAddress("0xcc"),
		Version:  0x0102030405060708,
		Digest:   types.Digest{0xEE, 0xFF},
	}

	b := NewBuilder()
	idx := b.AddObjectInput(ref)
	b.TransferObjects([]Argument{Input{Index: idx}}, GasCoin{})

	data, err := b.Build(types.Address{}, types.GasData{Owner: types.Address{}})
	require.NoError(t, err)

	raw, err := Serialize(data)
	require.NoError(t, err)

	dec := bcs.NewDecoder(raw)
	kind, err := dec.ReadULEB128()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), kind)

	count, err := dec.ReadULEB128()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	tag, err := dec.ReadULEB128()
	require.NoError(t, err)
	assert.Equal(t, uint64(tagCallArgObject), tag)

	id, err := dec.ReadFixedBytes(32)
	require.NoError(t, err)
	assert.Equal(t, ref.ObjectID[:], id)

	version, err := dec.ReadU64LE()
	require.NoError(t, err)
	assert.Equal(t, ref.Version, version)

	digest, err := dec.ReadBytes()
	require.NoError(t, err)
	assert.Equal(t, ref.Digest[:], digest)
}

func TestSerializeMoveCall(t *testing.T) {
	coinType, err := ParseTypeTag("0x2::sui::SUI")
	require.NoError(t, err)

	pkg := types.MustParseAddress("0x2")
	b := NewBuilder()
	coin := b.AddObjectInput(types.ObjectRef{Version: 1})
	b.MoveCall(pkg, "pay", "split", []TypeTag{coinType}, []Argument{Input{Index: coin}})

	data, err := b.Build(types.Address{}, types.GasData{})
	require.NoError(t, err)

	raw, err := Serialize(data)
	require.NoError(t, err)

	// The MoveCall body follows the single object input (74 bytes) after
	// the kind byte, the input count, and the command count prefix.
	body := raw[1+1+74+1:]
	assert.Equal(t, byte(0x00), body[0], "MoveCall tag")
	assert.Equal(t, pkg[:], body[1:33])
	assert.Equal(t, byte(3), body[33], "module name length")
	assert.Equal(t, []byte("pay"), body[34:37])
	assert.Equal(t, byte(5), body[37], "function name length")
	assert.Equal(t, []byte("split"), body[38:43])
	assert.Equal(t, byte(1), body[43], "one type argument")
	assert.Equal(t, byte(TypeStruct), body[44], "struct type tag")
}

func TestSerializeExpirationEpoch(t *testing.T) {
	data := minimalTransaction(t)
	withoutEpoch, err := Serialize(data)
	require.NoError(t, err)

	data.Expiration = ExpireAtEpoch(9)
	withEpoch, err := Serialize(data)
	require.NoError(t, err)

	assert.Equal(t, len(withoutEpoch)+8, len(withEpoch))
	tail := withEpoch[len(withEpoch)-9:]
	assert.Equal(t, byte(tagExpirationEpoch), tail[0])
	assert.Equal(t, []byte{0x09, 0, 0, 0, 0, 0, 0, 0}, tail[1:])
}

func TestSerializeCommandTagTable(t *testing.T) {
	gas := types.GasData{Owner: types.Address{}}

	cases := []struct {
		name string
		cmd  func(b *Builder)
		tag  byte
	}{
		{"MoveCall", func(b *Builder) { b.MoveCall(types.Address{}, "m", "f", nil, nil) }, 0},
		{"TransferObjects", func(b *Builder) { b.TransferObjects([]Argument{GasCoin{}}, GasCoin{}) }, 1},
		{"SplitCoins", func(b *Builder) { b.SplitCoins(GasCoin{}, nil) }, 2},
		{"MergeCoins", func(b *Builder) { b.MergeCoins(GasCoin{}, nil) }, 3},
		{"Publish", func(b *Builder) { b.Publish(nil, nil) }, 4},
		{"MakeMoveVec", func(b *Builder) {
			tag := TypeTag{Kind: TypeU8}
			b.MakeMoveVec(&tag, nil)
		}, 5},
		{"Upgrade", func(b *Builder) { b.Upgrade(nil, nil, types.Address{}, GasCoin{}) }, 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBuilder()
			c.cmd(b)
			data, err := b.Build(types.Address{}, gas)
			require.NoError(t, err)

			raw, err := Serialize(data)
			require.NoError(t, err)

			// kind (1) + input count (1) + command count (1), then the tag.
			assert.Equal(t, c.tag, raw[3])
		})
	}
}

func TestSerializeUnsupportedVersion(t *testing.T) {
	data := minimalTransaction(t)
	data.Version = 99

	_, err := Serialize(data)

	var verErr *UnsupportedVersionError
	require.ErrorAs(t, err, &verErr)
	assert.Equal(t, uint8(99), verErr.Version)
}
