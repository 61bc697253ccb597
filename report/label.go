package report

// Label returns the spreadsheet-style name of a zero-based index:
// 0 → "A", 25 → "Z", 26 → "AA", 701 → "ZZ", 702 → "AAA".
// Negative indices yield "".
func Label(index int) string {
	if index < 0 {
		return ""
	}
	var buf []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		buf = append(buf, byte('A'+(n-1)%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// Labels returns Label(0..n-1).
func Labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = Label(i)
	}

	return out
}
