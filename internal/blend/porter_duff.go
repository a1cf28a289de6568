package blend

// Porter-Duff implementations (premultiplied alpha, 0-255).
//
// Both functions take a coverage value that scales the source before the
// operator is applied. Coverage 255 is the plain operator, coverage 0
// leaves the destination untouched.

// blendSource replaces the destination with the source inside the covered
// area. Partial coverage interpolates linearly between the two.
// Formula: S*c + D*(1-c)
func blendSource(sr, sg, sb, sa, dr, dg, db, da, cov byte) (byte, byte, byte, byte) {
	if cov == 255 {
		return sr, sg, sb, sa
	}
	inv := 255 - cov
	return addClamp(mulDiv255(sr, cov), mulDiv255(dr, inv)),
		addClamp(mulDiv255(sg, cov), mulDiv255(dg, inv)),
		addClamp(mulDiv255(sb, cov), mulDiv255(db, inv)),
		addClamp(mulDiv255(sa, cov), mulDiv255(da, inv))
}

// blendSourceOver composites the source over the destination.
// Formula: S*c + D*(1-Sa*c)
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da, cov byte) (byte, byte, byte, byte) {
	if cov != 255 {
		sr = mulDiv255(sr, cov)
		sg = mulDiv255(sg, cov)
		sb = mulDiv255(sb, cov)
		sa = mulDiv255(sa, cov)
	}
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}
