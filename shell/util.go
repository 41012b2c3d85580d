package shell

func commonPrefix(a, b string) string {
	n := minInt(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
