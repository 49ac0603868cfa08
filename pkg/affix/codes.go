package affix

import "strings"

// Values of the FLAG header understood by ParseCodes.
const (
	EncodingLong = "long"
	EncodingNum  = "num"
	EncodingUTF8 = "UTF-8"
)

// ParseCodes splits a raw flag string into its flag codes according to the
// FLAG encoding declared in flags. Order and duplicates are preserved.
func ParseCodes(text string, flags FlagTable) []string {
	if text == "" {
		return nil
	}

	encoding, declared := flags.Get(FlagEncoding)
	if !declared {
		return splitChars(text)
	}

	switch encoding {
	case EncodingLong:
		runes := []rune(text)
		codes := make([]string, 0, (len(runes)+1)/2)
		for i := 0; i < len(runes); i += 2 {
			end := min(i+2, len(runes))
			codes = append(codes, string(runes[i:end]))
		}
		return codes
	case EncodingNum:
		return strings.Split(text, ",")
	case EncodingUTF8:
		return splitChars(text)
	default:
		// unsupported encodings still get a usable answer
		return splitChars(text)
	}
}

func splitChars(text string) []string {
	codes := make([]string, 0, len(text))
	for _, r := range text {
		codes = append(codes, string(r))
	}
	return codes
}
