package styling

// Partition splits props into the keys named by any of categories and the
// residual. Every key of props lands in exactly one of the two results;
// unknown keys are residual, never dropped. Both results are fresh maps.
func Partition(props Props, categories ...[]string) (matched, residual Props) {
	wanted := make(map[string]struct{})
	for _, category := range categories {
		for _, key := range category {
			wanted[key] = struct{}{}
		}
	}

	matched = make(Props)
	residual = make(Props)
	for key, value := range props {
		if _, ok := wanted[key]; ok {
			matched[key] = value
			continue
		}
		residual[key] = value
	}
	return matched, residual
}
