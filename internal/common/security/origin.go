package security

import "strings"

// OriginAllowList holds the configured set of origins permitted to submit.
type OriginAllowList struct {
	members map[string]struct{}
}

// NewOriginAllowList builds an allow-list; empty entries are ignored.
func NewOriginAllowList(origins []string) *OriginAllowList {
	members := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		members[o] = struct{}{}
	}
	return &OriginAllowList{members: members}
}

// Allowed reports whether the declared origin matches the configured set.
func (l *OriginAllowList) Allowed(origin string) bool {
	if origin == "" {
		return false
	}
	_, ok := l.members[strings.TrimRight(origin, "/")]
	return ok
}
