package quiz

import "strconv"

// ParseID converts an external id into a storage key. Anything other than a
// positive base-10 integer is rejected.
func ParseID(s string) (uint, bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint(n), true
}

func FormatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
