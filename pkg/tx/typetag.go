package tx

import (
	"fmt"
	"strings"

	"github.com/suffix-labs/sui-txkit/pkg/types"
)

// TypeTagKind discriminates the TypeTag union. The constant values are the
// wire tags; primitives carry no payload, Vector carries an element tag,
// and Struct carries a StructTag.
type TypeTagKind byte

const (
	TypeBool    TypeTagKind = 0
	TypeU8      TypeTagKind = 1
	TypeU64     TypeTagKind = 2
	TypeU128    TypeTagKind = 3
	TypeAddress TypeTagKind = 4
	TypeSigner  TypeTagKind = 5
	TypeVector  TypeTagKind = 6
	TypeStruct  TypeTagKind = 7
	TypeU16     TypeTagKind = 8
	TypeU32     TypeTagKind = 9
	TypeU256    TypeTagKind = 10
)

// TypeTag is a Move type used as a generic type argument in a MoveCall.
//
// Exactly one of the payload fields is set, matching Kind: Vector for
// TypeVector, Struct for TypeStruct, neither for primitives.
type TypeTag struct {
	Kind   TypeTagKind
	Vector *TypeTag   // element type, Kind == TypeVector
	Struct *StructTag // Kind == TypeStruct
}

// StructTag names a concrete Move struct type, e.g. 0x2::sui::SUI.
type StructTag struct {
	Address    types.Address // Package the defining module lives in
	Module     string
	Name       string
	TypeParams []TypeTag
}

var primitiveTags = map[string]TypeTagKind{
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

var primitiveNames = map[TypeTagKind]string{
	TypeBool:    "bool",
	TypeU8:      "u8",
	TypeU16:     "u16",
	TypeU32:     "u32",
	TypeU64:     "u64",
	TypeU128:    "u128",
	TypeU256:    "u256",
	TypeAddress: "address",
	TypeSigner:  "signer",
}

// ParseTypeTag parses the textual form of a Move type: a primitive name,
// "vector<T>", or "addr::module::Name" with optional "<T, U, ...>" type
// parameters. Nesting is supported, e.g.
// "vector<0x2::coin::Coin<0x2::sui::SUI>>".
func ParseTypeTag(text string) (TypeTag, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return TypeTag{}, fmt.Errorf("empty type tag")
	}

	if kind, ok := primitiveTags[s]; ok {
		return TypeTag{Kind: kind}, nil
	}

	if inner, ok := strings.CutPrefix(s, "vector<"); ok {
		if !strings.HasSuffix(inner, ">") {
			return TypeTag{}, fmt.Errorf("type tag %q: unterminated vector", text)
		}
		elem, err := ParseTypeTag(inner[:len(inner)-1])
		if err != nil {
			return TypeTag{}, err
		}
		return TypeTag{Kind: TypeVector, Vector: &elem}, nil
	}

	st, err := parseStructTag(s)
	if err != nil {
		return TypeTag{}, fmt.Errorf("type tag %q: %w", text, err)
	}
	return TypeTag{Kind: TypeStruct, Struct: st}, nil
}

func parseStructTag(s string) (*StructTag, error) {
	base := s
	var params []TypeTag

	if open := strings.IndexByte(s, '<'); open >= 0 {
		if !strings.HasSuffix(s, ">") {
			return nil, fmt.Errorf("unterminated type parameter list")
		}
		base = s[:open]
		var err error
		params, err = parseTypeParams(s[open+1 : len(s)-1])
		if err != nil {
			return nil, err
		}
	}

	parts := strings.Split(base, "::")
	if len(parts) != 3 {
		return nil, fmt.Errorf("want addr::module::Name, got %q", base)
	}
	addr, err := types.ParseAddress(parts[0])
	if err != nil {
		return nil, err
	}
	if parts[1] == "" || parts[2] == "" {
		return nil, fmt.Errorf("empty module or struct name in %q", base)
	}

	return &StructTag{
		Address:    addr,
		Module:     parts[1],
		Name:       parts[2],
		TypeParams: params,
	}, nil
}

// parseTypeParams splits a comma-separated parameter list at nesting depth
// zero, then parses each element.
func parseTypeParams(s string) ([]TypeTag, error) {
	var params []TypeTag
	depth := 0
	start := 0

	flush := func(end int) error {
		tag, err := ParseTypeTag(s[start:end])
		if err != nil {
			return err
		}
		params = append(params, tag)
		return nil
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				if err := flush(i); err != nil {
					return nil, err
				}
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced angle brackets in %q", s)
	}
	if err := flush(len(s)); err != nil {
		return nil, err
	}
	return params, nil
}

// String renders the canonical textual form, the inverse of ParseTypeTag.
func (t TypeTag) String() string {
	switch t.Kind {
	case TypeVector:
		return "vector<" + t.Vector.String() + ">"
	case TypeStruct:
		return t.Struct.String()
	default:
		if name, ok := primitiveNames[t.Kind]; ok {
			return name
		}
		return fmt.Sprintf("typetag(%d)", t.Kind)
	}
}

func (s *StructTag) String() string {
	out := s.Address.String() + "::" + s.Module + "::" + s.Name
	if len(s.TypeParams) > 0 {
		names := make([]string, len(s.TypeParams))
		for i, p := range s.TypeParams {
			names[i] = p.String()
		}
		out += "<" + strings.Join(names, ", ") + ">"
	}
	return out
}
