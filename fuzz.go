//go:build gofuzz
// +build gofuzz

package calamp

func Fuzz(data []byte) int {
	_, _, err := DecodeMessage(data)
	if err != nil {
		return 0
	}
	return 1
}
