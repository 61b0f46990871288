// Package identity reconciles the four overlapping id namespaces (player,
// player account, staff, raw platform user) into canonical actor
// descriptors. Every membership and visibility check in the system goes
// through this package instead of re-deriving fallback chains at call sites.
package identity

import "github.com/rosterhub/devstore/internal/model"

// UnknownDisplayName is the fallback name for unresolvable actors
const UnknownDisplayName = "Unknown"

// Resolve maps any id appearing in a "who is this" position to its canonical
// actor. Resolution is ordered, first match wins:
//
//  1. Player id
//  2. PlayerUserAccount id, resolved through to the underlying Player
//  3. Staff id or embedded staff-user id
//  4. Raw platform-user fallback
//
// It is pure and total: it never fails, degrading to a PlatformUser
// placeholder instead. Callers using the result for access control must
// treat PlatformUser as no access.
func Resolve(st *model.State, id string) model.Actor {
	if p := st.FindPlayer(model.PlayerID(id)); p != nil {
		return playerActor(p)
	}

	if acc := st.FindAccount(model.AccountID(id)); acc != nil {
		if p := st.FindPlayer(acc.PlayerID); p != nil {
			return playerActor(p)
		}
		// Account whose player is gone: still a player-space id, so keep the
		// kind but fall back to the account's own details.
		return model.Actor{
			Kind:        model.KindPlayer,
			ID:          string(acc.PlayerID),
			DisplayName: UnknownDisplayName,
			Email:       acc.Email,
			Role:        "player",
		}
	}

	if s := st.FindStaff(model.StaffID(id)); s != nil {
		return staffActor(s)
	}
	if s := st.FindStaffByUserID(id); s != nil {
		return staffActor(s)
	}

	return model.Actor{
		Kind:        model.KindPlatformUser,
		ID:          id,
		DisplayName: UnknownDisplayName,
	}
}

// CanonicalIDs returns every id under which the actor behind the given id
// may be referenced: its own id plus any linked account id. Membership and
// visibility checks must match against all of them.
func CanonicalIDs(st *model.State, id string) []string {
	actor := Resolve(st, id)

	switch actor.Kind {
	case model.KindPlayer:
		ids := []string{actor.ID}
		if acc := st.FindAccountForPlayer(model.PlayerID(actor.ID)); acc != nil {
			ids = append(ids, string(acc.ID))
		}
		return ids
	case model.KindStaff:
		s := st.FindStaff(model.StaffID(actor.ID))
		if s == nil {
			return []string{actor.ID}
		}
		ids := []string{string(s.ID)}
		if s.User.ID != "" && s.User.ID != string(s.ID) {
			ids = append(ids, s.User.ID)
		}
		return ids
	default:
		return []string{actor.ID}
	}
}

// AccountID returns the id the actor's own client recognizes as "mine": the
// PlayerUserAccount id for a player, the embedded user id for staff, the raw
// id otherwise. Notification rows must be addressed to this id.
func AccountID(st *model.State, actor model.Actor) string {
	switch actor.Kind {
	case model.KindPlayer:
		if acc := st.FindAccountForPlayer(model.PlayerID(actor.ID)); acc != nil {
			return string(acc.ID)
		}
		return actor.ID
	case model.KindStaff:
		if s := st.FindStaff(model.StaffID(actor.ID)); s != nil && s.User.ID != "" {
			return s.User.ID
		}
		return actor.ID
	default:
		return actor.ID
	}
}

// Live reports whether the id resolves to an actor whose backing profile
// row still exists. An account whose player is gone keeps resolving as a
// player-space id for attribution, but it is not a live actor: access checks
// and orphan repair treat it the same as an unresolvable id.
func Live(st *model.State, id string) bool {
	actor := Resolve(st, id)
	switch actor.Kind {
	case model.KindPlayer:
		return st.FindPlayer(model.PlayerID(actor.ID)) != nil
	case model.KindStaff:
		return true
	default:
		return false
	}
}

// IDInUse reports whether the id already belongs to any identity space.
// Creation paths use it to reject candidate ids that would collide across
// kinds, which keeps Resolve's ordering unambiguous.
func IDInUse(st *model.State, id string) bool {
	return Resolve(st, id).Kind != model.KindPlatformUser
}

// SameActor reports whether two ids resolve to the same actor, comparing
// every canonical id of each side. This is the normalized membership
// comparison used by chat and visibility checks.
func SameActor(st *model.State, a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	if a == b {
		return true
	}
	idsA := CanonicalIDs(st, a)
	idsB := CanonicalIDs(st, b)
	for _, x := range idsA {
		for _, y := range idsB {
			if x == y {
				return true
			}
		}
	}
	return false
}

func playerActor(p *model.Player) model.Actor {
	return model.Actor{
		Kind:        model.KindPlayer,
		ID:          string(p.ID),
		DisplayName: p.Name,
		Email:       p.Email,
		Role:        "player",
	}
}

func staffActor(s *model.Staff) model.Actor {
	return model.Actor{
		Kind:        model.KindStaff,
		ID:          string(s.ID),
		DisplayName: s.Name,
		Email:       s.Email,
		Role:        s.Role(),
	}
}
