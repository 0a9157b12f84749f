package event

// Stable/unstable field aliasing: while a protocol extension is still
// experimental its fields appear on the wire under vendor-prefixed names
// (e.g. "org.matrix.msc1767.file"); once stabilised the same logical field
// uses its final name (e.g. "m.file"). Decoding helpers declare a slot per
// wire name and funnel them through the resolvers below, so the precedence
// rule lives in exactly one place: stable wins, then the unstable names in
// declaration order, then absent. Precedence applies to the value as a
// whole; a composite present under both names is never merged per subfield.
//
// Encoding always emits the stable name only.

// resolveAlias picks the canonical value for an aliased field. Resolving an
// already-resolved value is a no-op since the unstable slots are nil then.
func resolveAlias[T any](stable *T, unstable ...*T) *T {
	if stable != nil {
		return stable
	}
	for _, u := range unstable {
		if u != nil {
			return u
		}
	}
	return nil
}

// resolveAliasSlice is resolveAlias for slice-valued fields, where a nil
// slice means the wire key was absent.
func resolveAliasSlice[T any](stable []T, unstable ...[]T) []T {
	if stable != nil {
		return stable
	}
	for _, u := range unstable {
		if u != nil {
			return u
		}
	}
	return nil
}
