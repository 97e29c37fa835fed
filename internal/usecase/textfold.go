package usecase

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// foldChainPool hands out fresh transformer chains; transform.Chain values
// are stateful and not safe for concurrent use.
var foldChainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,                          // compatibility normalization (ligatures, superscripts)
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// foldText cleans extracted drawing text before pattern scanning: invalid
// UTF-8 bytes are dropped, fullwidth digits and letters become ASCII, and
// zero-width characters vanish. Case and line structure are preserved so
// contexts read the way the drawing does. The multiplication sign stays as
// is; the designation patterns accept it as a separator.
func foldText(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := foldChainPool.Get().(transform.Transformer)
	folded, _, err := transform.String(tr, s)
	tr.Reset()
	foldChainPool.Put(tr)
	if err != nil {
		return s
	}
	return folded
}
