package bpu

import (
	"fmt"

	"github.com/bsv-blockchain/go-sdk/script"
)

type TokenKind uint8

const (
	KindOpCode TokenKind = iota
	KindPush
	KindConditional
)

// ScriptToken is one element of a parsed script. Conditionals hold their
// branches as nested token lists; everything else is a single opcode or a
// data push.
type ScriptToken struct {
	Kind TokenKind
	// Op is the opcode for KindOpCode, the pushing opcode for KindPush and
	// the condition opcode (OP_IF, OP_NOTIF, ...) for KindConditional.
	Op      byte
	Data    []byte
	Then    []ScriptToken
	Else    []ScriptToken
	HasElse bool
}

func OpCode(op byte) ScriptToken {
	return ScriptToken{Kind: KindOpCode, Op: op}
}

func Push(data []byte) ScriptToken {
	if data == nil {
		data = []byte{}
	}
	var op byte = script.OpPUSHDATA4
	switch l := len(data); {
	case l == 0:
		// a zero-length direct push would read back as OP_0
		op = script.OpPUSHDATA1
	case l < int(script.OpPUSHDATA1):
		op = byte(l)
	case l <= 0xff:
		op = script.OpPUSHDATA1
	case l <= 0xffff:
		op = script.OpPUSHDATA2
	}
	return ScriptToken{Kind: KindPush, Op: op, Data: data}
}

func If(cond byte, then []ScriptToken) ScriptToken {
	return ScriptToken{Kind: KindConditional, Op: cond, Then: then}
}

func IfElse(cond byte, then []ScriptToken, els []ScriptToken) ScriptToken {
	return ScriptToken{Kind: KindConditional, Op: cond, Then: then, Else: els, HasElse: true}
}

func (t ScriptToken) IsConditional() bool {
	return t.Kind == KindConditional
}

// Equal reports whether two tokens are structurally identical. Push tokens
// compare by data only.
func (t ScriptToken) Equal(o ScriptToken) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindPush:
		return string(t.Data) == string(o.Data)
	case KindConditional:
		if t.Op != o.Op || t.HasElse != o.HasElse || !tokensEqual(t.Then, o.Then) {
			return false
		}
		return tokensEqual(t.Else, o.Else)
	default:
		return t.Op == o.Op
	}
}

func tokensEqual(a, b []ScriptToken) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (t ScriptToken) String() string {
	switch t.Kind {
	case KindPush:
		return fmt.Sprintf("%x", t.Data)
	case KindConditional:
		return fmt.Sprintf("%s{%d/%d}", OpName(t.Op), len(t.Then), len(t.Else))
	default:
		return OpName(t.Op)
	}
}

func isConditionOp(op byte) bool {
	switch op {
	case script.OpIF, script.OpNOTIF, script.OpVERIF, script.OpVERNOTIF:
		return true
	}
	return false
}

// ParseScript decodes a locking or unlocking script into a token tree.
// maxDepth bounds conditional nesting; zero or less means unbounded.
func ParseScript(scr *script.Script, maxDepth int) ([]ScriptToken, error) {
	root := []ScriptToken{}
	if scr == nil {
		return root, nil
	}

	var stack []*ScriptToken
	current := &root
	push := func(tok ScriptToken) {
		*current = append(*current, tok)
	}
	// branch returns the branch of the innermost open conditional that new
	// tokens are appended to.
	branch := func() *[]ScriptToken {
		if len(stack) == 0 {
			return &root
		}
		top := stack[len(stack)-1]
		if top.HasElse {
			return &top.Else
		}
		return &top.Then
	}
	// closeTop pops the innermost conditional and appends it to its parent.
	closeTop := func() {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		current = branch()
		push(*top)
	}

	for pos := 0; pos < len(*scr); {
		chunk, err := scr.ReadOp(&pos)
		if err != nil {
			return nil, &Error{Stage: StageDecode, Err: fmt.Errorf("read op at %d: %w", pos, err)}
		}
		switch {
		case chunk.Op > script.Op0 && chunk.Op <= script.OpPUSHDATA4:
			push(ScriptToken{Kind: KindPush, Op: chunk.Op, Data: append([]byte{}, chunk.Data...)})
		case isConditionOp(chunk.Op):
			if maxDepth > 0 && len(stack) >= maxDepth {
				return nil, &Error{Stage: StageDecode, Err: ErrMaxDepth}
			}
			stack = append(stack, &ScriptToken{Kind: KindConditional, Op: chunk.Op, Then: []ScriptToken{}})
			current = branch()
		case chunk.Op == script.OpELSE && len(stack) > 0 && !stack[len(stack)-1].HasElse:
			top := stack[len(stack)-1]
			top.HasElse = true
			top.Else = []ScriptToken{}
			current = branch()
		case chunk.Op == script.OpENDIF && len(stack) > 0:
			closeTop()
		default:
			push(OpCode(chunk.Op))
		}
	}
	for len(stack) > 0 {
		closeTop()
	}
	return root, nil
}
