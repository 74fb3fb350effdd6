package random

func (r *Random) registerName() {
	r.Register("first", func(...any) any { return pickString(r, firstNames) })
	r.Register("last", func(...any) any { return pickString(r, lastNames) })
	r.Register("name", func(args ...any) any {
		middle, _ := boolArg(args, 0)
		if middle {
			return pickString(r, firstNames) + " " + pickString(r, firstNames) + " " + pickString(r, lastNames)
		}
		return pickString(r, firstNames) + " " + pickString(r, lastNames)
	})
	r.Register("cfirst", func(...any) any { return pickString(r, chineseFamilyNames) })
	r.Register("clast", func(...any) any { return pickString(r, chineseGivenNames) })
	r.Register("cname", func(...any) any {
		return pickString(r, chineseFamilyNames) + pickString(r, chineseGivenNames)
	})
}
