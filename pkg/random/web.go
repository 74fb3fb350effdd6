package random

import (
	"fmt"
	"strings"
)

func (r *Random) registerWeb() {
	r.Register("url", r.url)
	r.RegisterPool("protocol", toAny(protocols))
	r.Register("domain", func(args ...any) any {
		tld, ok := textArg(args, 0)
		if !ok {
			tld = pickString(r, topLevelDomains)
		}
		return r.word(r.between(3, 10)) + "." + tld
	})
	r.RegisterPool("tld", toAny(topLevelDomains))
	r.Register("email", func(args ...any) any {
		domain, ok := textArg(args, 0)
		if !ok {
			domain = r.word(r.between(3, 10)) + "." + pickString(r, topLevelDomains)
		}
		return r.Character(poolLower) + "." + r.word(r.between(3, 10)) + "@" + domain
	})
	r.Register("ip", func(...any) any {
		return fmt.Sprintf("%d.%d.%d.%d", r.intN(256), r.intN(256), r.intN(256), r.intN(256))
	})
	r.Register("ipv6", func(...any) any { return r.ipv6() })
	r.Register("mac", func(...any) any { return r.mac() })
	r.RegisterPool("useragent", toAny(userAgents))
	r.Register("image", r.image)
}

// url(protocol?, host?)
func (r *Random) url(args ...any) any {
	protocol, ok := textArg(args, 0)
	if !ok {
		protocol = pickString(r, protocols)
	}
	host, ok := textArg(args, 1)
	if !ok {
		host = r.word(r.between(3, 10)) + "." + pickString(r, topLevelDomains)
	}
	return protocol + "://" + host + "/" + r.word(r.between(3, 10))
}

// image(size?, background?, foreground?, format?, text?) returns a
// placeholder image URL.
func (r *Random) image(args ...any) any {
	size, ok := textArg(args, 0)
	if !ok {
		size = pickString(r, adSizes)
	}
	var sb strings.Builder
	sb.WriteString("http://dummyimage.com/")
	sb.WriteString(size)
	if bg, ok := textArg(args, 1); ok {
		sb.WriteString("/" + strings.TrimPrefix(bg, "#"))
	}
	if fg, ok := textArg(args, 2); ok {
		sb.WriteString("/" + strings.TrimPrefix(fg, "#"))
	}
	if format, ok := textArg(args, 3); ok {
		sb.WriteString("." + format)
	}
	if text, ok := textArg(args, 4); ok {
		sb.WriteString("&text=" + text)
	}
	return sb.String()
}
