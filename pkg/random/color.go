package random

import (
	"fmt"
	"strings"
)

func (r *Random) registerColor() {
	r.Register("color", func(args ...any) any {
		if name, ok := textArg(args, 0); ok {
			if hex, known := namedColors[strings.ToLower(name)]; known {
				return hex
			}
		}
		return r.hex()
	})
	r.Register("hex", func(...any) any { return r.hex() })
	r.Register("rgb", func(...any) any {
		return fmt.Sprintf("rgb(%d, %d, %d)", r.intN(256), r.intN(256), r.intN(256))
	})
	r.Register("rgba", func(...any) any {
		return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r.intN(256), r.intN(256), r.intN(256), r.float64())
	})
	r.Register("hsl", func(...any) any {
		return fmt.Sprintf("hsl(%d, %d, %d)", r.intN(360), r.intN(101), r.intN(101))
	})
	r.RegisterPool("colorname", toAny(colorNames))
}

func (r *Random) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", r.intN(256), r.intN(256), r.intN(256))
}
