package bpu

import "github.com/bsv-blockchain/go-sdk/script"

// Flatten rewrites a token tree into a linear token stream. Each conditional
// becomes its condition opcode, the flattened then-branch, an OP_ELSE and the
// flattened else-branch when present, and a closing OP_ENDIF.
func Flatten(tokens []ScriptToken) []ScriptToken {
	return flattenInto(make([]ScriptToken, 0, len(tokens)), tokens)
}

func flattenInto(out []ScriptToken, tokens []ScriptToken) []ScriptToken {
	for _, tok := range tokens {
		if tok.Kind != KindConditional {
			out = append(out, tok)
			continue
		}
		out = append(out, OpCode(tok.Op))
		out = flattenInto(out, tok.Then)
		if tok.HasElse {
			out = append(out, OpCode(script.OpELSE))
			out = flattenInto(out, tok.Else)
		}
		out = append(out, OpCode(script.OpENDIF))
	}
	return out
}
