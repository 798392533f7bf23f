package group

import (
	"context"

	"sticker-gate/domain"
)

// role returns the cached classification for a user, querying the platform
// on miss or forced refresh and writing the answer through with a 120s TTL.
//
// Membership lookups are retried until they succeed: verification cannot
// proceed without a known role. There is no cap and no backoff, so a
// persistent platform outage spins here; only process shutdown breaks the
// loop.
func (e *Engine) role(ctx context.Context, user int64, refresh bool) domain.Role {
	if !refresh {
		if s, ok := e.get(ctx, e.userKey(user, "role")); ok {
			r, known := domain.ParseRole(s)
			if known {
				return r
			}
			e.log.Warn("Invalid persisted role", "user", user, "value", s)
		}
	}
	var member *domain.Member
	for {
		m, err := e.bot.Member(ctx, e.id, user)
		if err == nil {
			member = m
			break
		}
		e.log.Warn("Membership lookup failed, retrying", "user", user, "err", err)
		if ctx.Err() != nil {
			return domain.RoleNone
		}
	}
	r := classify(member)
	e.set(ctx, e.userKey(user, "role"), string(r), roleCacheTTL)
	return r
}

// classify maps a membership record to the closed role enumeration.
// Creators never carry explicit rights flags, which is why the status is
// checked alongside the restrict permission.
func classify(m *domain.Member) domain.Role {
	switch {
	case m == nil, m.Status == domain.MemberLeft, m.Status == domain.MemberKicked:
		return domain.RoleNone
	case m.Status == domain.MemberCreator, m.CanRestrict:
		return domain.RoleAdmin
	default:
		return domain.RoleMember
	}
}
