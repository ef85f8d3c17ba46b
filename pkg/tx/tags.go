package tx

import "fmt"

// Wire tags fixed by the protocol. Any deviation breaks interoperability
// with the ledger, so every tag lives here rather than inline at its use
// site, and command tags are additionally keyed by transaction data
// version: the command numbering has shifted between protocol revisions,
// so a future version bump only touches this file.

// TransactionKind variant tags.
const tagKindProgrammable byte = 0

// CallArg variant tags.
const (
	tagCallArgPure   byte = 0
	tagCallArgObject byte = 1
)

// Argument variant tags. Index payloads are u16 little-endian, not
// ULEB128.
const (
	tagArgGasCoin      byte = 0
	tagArgInput        byte = 1
	tagArgResult       byte = 2
	tagArgNestedResult byte = 3
)

// TransactionExpiration variant tags.
const (
	tagExpirationNone  byte = 0
	tagExpirationEpoch byte = 1
)

// commandTagTable maps each command variant to its wire tag for one
// transaction data version.
type commandTagTable struct {
	moveCall        byte
	transferObjects byte
	splitCoins      byte
	mergeCoins      byte
	publish         byte
	makeMoveVec     byte
	upgrade         byte
}

var commandTags = map[uint8]commandTagTable{
	1: {
		moveCall:        0,
		transferObjects: 1,
		splitCoins:      2,
		mergeCoins:      3,
		publish:         4,
		makeMoveVec:     5,
		upgrade:         6,
	},
}

// commandTag resolves the wire tag for cmd under the given table.
func (t commandTagTable) commandTag(cmd Command) (byte, error) {
	switch cmd.(type) {
	case MoveCall:
		return t.moveCall, nil
	case TransferObjects:
		return t.transferObjects, nil
	case SplitCoins:
		return t.splitCoins, nil
	case MergeCoins:
		return t.mergeCoins, nil
	case Publish:
		return t.publish, nil
	case MakeMoveVec:
		return t.makeMoveVec, nil
	case Upgrade:
		return t.upgrade, nil
	default:
		return 0, fmt.Errorf("unknown command type %T", cmd)
	}
}
