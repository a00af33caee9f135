package mir

import (
	"fmt"

	"github.com/gogpu/thunder/ir"
)

// LowerError reports a lowering failure: an atom variant Lower does
// not know how to translate (UnsupportedAtom), or a dependency whose
// Molecule was never produced (MissingMapping).
type LowerError struct {
	Message string
	Atom    ir.Index
}

func (e *LowerError) Error() string {
	return fmt.Sprintf("mir: lower atom %d: %s", e.Atom, e.Message)
}

// Lower walks buf in order and produces a Block whose Body holds one
// Ref per atom other than a List (types, qualifiers, stores and returns
// included; List chains are folded into their users' argument slices),
// in original-index order. Branch atoms
// are not modeled in MIR — it is a
// structural representation for type and construct-level optimization,
// not control flow — and lowering a buffer that still contains one
// aborts with an UnsupportedAtom-class error; run legalization and any
// control-flow-independent passes before lowering.
func Lower(buf *ir.Buffer) (*Block, error) {
	refs := make(map[ir.Index]Ref, len(buf.Atoms))
	body := make([]Ref, 0, len(buf.Atoms))

	resolve := func(idx ir.Index) (Ref, error) {
		if idx == ir.NoIndex {
			return Ref{Index: ir.NoIndex}, nil
		}
		r, ok := refs[idx]
		if !ok {
			return Ref{}, &LowerError{Message: fmt.Sprintf("no Molecule produced yet for referenced atom %d", idx), Atom: idx}
		}
		return r, nil
	}

	seq := func(head ir.Index) ([]Ref, error) {
		var out []Ref
		for head != ir.NoIndex {
			l, ok := buf.Atoms[head].Kind.(ir.List)
			if !ok {
				return nil, &LowerError{Message: "expected a List node in an argument chain", Atom: head}
			}
			item, err := resolve(l.Item)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
			head = l.Next
		}
		return out, nil
	}

	for i, atom := range buf.Atoms {
		idx := ir.Index(i)
		var mol MoleculeKind

		switch k := atom.Kind.(type) {
		case ir.TypeField:
			var fields []Ref
			if k.Down != ir.NoIndex {
				r, err := resolve(k.Down)
				if err != nil {
					return nil, err
				}
				fields = append(fields, r)
				next := k.Next
				for next != ir.NoIndex {
					nr, err := resolve(next)
					if err != nil {
						return nil, err
					}
					fields = append(fields, nr)
					nt, ok := buf.Atoms[next].Kind.(ir.TypeField)
					if !ok {
						break
					}
					next = nt.Next
				}
			}
			mol = Type{Prim: k.Item, Fields: fields}

		case ir.Qualifier:
			r, err := resolve(k.Underlying)
			if err != nil {
				return nil, err
			}
			mol = Type{Prim: ir.KindBAD, Fields: []Ref{r}}

		case ir.Primitive:
			mol = Primitive{Kind: primKindOf(k.Kind), Value: k.Value}

		case ir.Operation:
			a, err := resolve(k.A)
			if err != nil {
				return nil, err
			}
			b, err := resolve(k.B)
			if err != nil {
				return nil, err
			}
			mol = Operation{A: a, B: b, Code: k.Code}

		case ir.Intrinsic:
			args, err := seq(k.Args)
			if err != nil {
				return nil, err
			}
			mol = Intrinsic{ID: k.Name, Args: args}

		case ir.Construct:
			ty, err := resolve(k.Type)
			if err != nil {
				return nil, err
			}
			args, err := seq(k.Args)
			if err != nil {
				return nil, err
			}
			mol = Construct{Type: ty, Args: args, Mode: k.Mode}

		case ir.Store:
			dst, err := resolve(k.Dst)
			if err != nil {
				return nil, err
			}
			src, err := resolve(k.Src)
			if err != nil {
				return nil, err
			}
			mol = Store{Dst: dst, Src: src}

		case ir.Load:
			src, err := resolve(k.Src)
			if err != nil {
				return nil, err
			}
			field := -1
			if k.Idx != ir.NoIndex {
				field = int(k.Idx)
			}
			mol = Field{Src: src, Index: field}

		case ir.Swizzle:
			src, err := resolve(k.Src)
			if err != nil {
				return nil, err
			}
			mol = Field{Src: src, Index: int(k.Code)}

		case ir.Return:
			v, err := resolve(k.Value)
			if err != nil {
				return nil, err
			}
			mol = Return{Value: v}

		case ir.List:
			// List nodes collapse into the Seq a Construct/Intrinsic/Call
			// arg resolves through seq; they never need their own Ref.
			continue

		case ir.Call:
			args, err := seq(k.Args)
			if err != nil {
				return nil, err
			}
			ret, err := resolve(k.Ret)
			if err != nil {
				return nil, err
			}
			mol = Construct{Type: ret, Args: args, Mode: ir.ConstructForward}

		default:
			return nil, &LowerError{Message: fmt.Sprintf("unsupported atom variant %T", atom.Kind), Atom: idx}
		}

		r := Ref{Index: idx, Mol: &Molecule{Kind: mol}}
		refs[idx] = r
		body = append(body, r)
	}

	return &Block{Body: body}, nil
}

func primKindOf(k ir.PrimitiveKind) PrimKind {
	switch k {
	case ir.KindBool:
		return PrimBool
	case ir.KindI32:
		return PrimInt
	case ir.KindU32:
		return PrimUInt
	case ir.KindF32:
		return PrimFloat
	case ir.KindF64:
		return PrimDouble
	default:
		return PrimFloat
	}
}
