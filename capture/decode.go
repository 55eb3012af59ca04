package capture

import "encoding/hex"

// Decode converts hexText to raw bytes, two hex digits per byte, left to
// right. It validates independently of Collect rather than trusting it:
// a non-hex character fails with its byte offset, and an odd-length input
// fails outright instead of silently truncating. (Dropping an odd trailing
// *byte* after successful pairing is the converter's tolerated case, not
// the decoder's.)
func Decode(hexText string) ([]byte, error) {
	for i := 0; i < len(hexText); i++ {
		if !isHexDigit(hexText[i]) {
			return nil, newExtractError(StageDecode, ErrInvalidHex,
				"non-hex character %q at offset %d", hexText[i], i)
		}
	}
	if len(hexText)%2 != 0 {
		return nil, newExtractError(StageDecode, ErrInvalidHex,
			"odd hex length %d", len(hexText))
	}

	raw, err := hex.DecodeString(hexText)
	if err != nil {
		return nil, newExtractError(StageDecode, ErrInvalidHex, "%v", err)
	}
	return raw, nil
}
