package random

func (r *Random) registerAddress() {
	r.RegisterPool("region", toAny(regions))
	r.Register("province", func(...any) any { return r.province().name })
	r.Register("city", func(args ...any) any {
		p := r.province()
		c := p.cities[r.intN(len(p.cities))]
		if prefix, _ := boolArg(args, 0); prefix {
			return p.name + " " + c.name
		}
		return c.name
	})
	r.Register("county", func(args ...any) any {
		p := r.province()
		c := p.cities[r.intN(len(p.cities))]
		k := c.counties[r.intN(len(c.counties))]
		if prefix, _ := boolArg(args, 0); prefix {
			return p.name + " " + c.name + " " + k.name
		}
		return k.name
	})
	r.Register("zip", func(args ...any) any {
		return r.stringFrom(poolNumber, intArgOr(args, 0, 6))
	})
	r.Register("address", func(...any) any { return r.streetAddress() })
}

func (r *Random) province() province {
	return provinces[r.intN(len(provinces))]
}

// countyCode returns the division code of a random county.
func (r *Random) countyCode() string {
	p := r.province()
	c := p.cities[r.intN(len(p.cities))]
	return c.counties[r.intN(len(c.counties))].code
}
