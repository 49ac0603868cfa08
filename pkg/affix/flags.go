package affix

import "strconv"

// Well-known flag names read from an affix grammar.
const (
	FlagEncoding   = "FLAG"
	CompoundMin    = "COMPOUNDMIN"
	KeepCase       = "KEEPCASE"
	NeedAffix      = "NEEDAFFIX"
	OnlyInCompound = "ONLYINCOMPOUND"
	NoSuggest      = "NOSUGGEST"
	Try            = "TRY"
	WordChars      = "WORDCHARS"
)

// FlagTable maps a header name to its raw declared value.
type FlagTable map[string]string

// Has reports whether name was declared.
func (f FlagTable) Has(name string) bool {
	_, ok := f[name]
	return ok
}

// Get returns the raw value for name and whether it was declared.
func (f FlagTable) Get(name string) (string, bool) {
	v, ok := f[name]
	return v, ok
}

// Int parses a numeric flag such as COMPOUNDMIN.
// ok is false when the flag is undeclared or not a number.
func (f FlagTable) Int(name string) (n int, ok bool) {
	v, declared := f[name]
	if !declared {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Clone returns an independent copy, never nil.
func (f FlagTable) Clone() FlagTable {
	out := make(FlagTable, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
