package random

import (
	"strconv"

	"github.com/getmockd/mockdata/internal/id"
)

// idWeights and idCheck implement the GB 11643 check digit of 18-digit
// resident identity numbers.
var (
	idWeights = []int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}
	idCheck   = "10X98765432"
)

func (r *Random) registerMisc() {
	r.alias(func(...any) any { return r.uuid() }, "guid", "uuid")
	r.Register("id", func(...any) any { return r.residentID() })
	r.Register("shortid", func(...any) any { return r.shortID() })
	r.Register("increment", func(args ...any) any {
		return int(r.counter.Add(int64(intArgOr(args, 0, 1))))
	})
	for _, sides := range []int{4, 6, 8, 12, 20, 100} {
		n := sides
		r.Register("d"+strconv.Itoa(n), func(...any) any { return r.between(1, n) })
	}

	r.RegisterPool("company", toAny(companies))
	r.Register("phone", func(...any) any { return r.phone() })
	r.Register("creditcard", func(...any) any { return r.creditCard() })
	r.Register("iban", func(...any) any { return r.iban() })
	r.RegisterPool("currency", toAny(currencyCodes))
	r.Register("price", func(...any) any { return r.price() })
	r.Register("product", func(...any) any { return r.product() })
	r.Register("job", func(...any) any { return r.job() })
	r.RegisterPool("mimetype", toAny(mimeTypes))
	r.RegisterPool("extension", toAny(fileExtensions))
	r.Register("ssn", func(...any) any { return r.ssn() })
	r.Register("passport", func(...any) any { return r.passport() })
}

// uuid draws from crypto/rand unless the generator is seeded.
func (r *Random) uuid() string {
	if r.rng == nil {
		return id.UUID(nil)
	}
	return id.UUID(r.Reader())
}

// shortID is a 16-character hex id, reproducible when seeded.
func (r *Random) shortID() string {
	if r.rng == nil {
		return id.Short(nil)
	}
	return id.Short(r.Reader())
}

// residentID builds an 18-character identity number: a county code, a
// birth date, a sequence number and a check character.
func (r *Random) residentID() string {
	base := r.countyCode() + FormatDate(r.Date(), "yyyyMMdd") + r.stringFrom(poolNumber, 3)
	sum := 0
	for i, w := range idWeights {
		sum += int(base[i]-'0') * w
	}
	return base + string(idCheck[sum%11])
}
