package bitcom

import (
	"crypto/sha256"

	"github.com/shruggr/go-bpu/lib"
)

var B_PROTO = "19HxigV4QyBv3tHpQVcUEQyq1pzZVdoAut"

type B = lib.File

// ParseB reads the B protocol fields: content, media type, encoding and
// filename, in that order.
func ParseB(bc *Bitcom) (b *B) {
	b = &lib.File{}
	for i, cell := range bc.Cells {
		if i > 3 {
			break
		}
		var s string
		if cell.S != nil {
			s = *cell.S
		}
		switch i {
		case 0:
			b.Content = cell.Bytes()
		case 1:
			b.Type = s
		case 2:
			b.Encoding = s
		case 3:
			b.Name = s
		}
	}
	hash := sha256.Sum256(b.Content)
	b.Size = uint32(len(b.Content))
	b.Hash = hash[:]
	return
}
