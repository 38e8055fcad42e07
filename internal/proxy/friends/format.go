package friends

import (
	"strings"

	"golang.org/x/text/message"

	"github.com/emberhollow/proxy/api/grpc/friendv1"
)

// ListEntry is one rendered friend-list row.
type ListEntry struct {
	Username string
	Online   bool
}

// Formatter maps operation outcomes to localized chat text. Every outcome
// tag maps to exactly one template; tags the formatter does not know render
// the shared generic-error text.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter rendering with the given printer.
func NewFormatter(printer *message.Printer) *Formatter {
	return &Formatter{printer: printer}
}

// Add renders an add-friend outcome naming the target's canonical username.
func (f *Formatter) Add(result friendv1.AddResult, username string) string {
	switch result {
	case friendv1.AddResultAdded:
		return f.printer.Sprintf("friend.add.added", username)
	case friendv1.AddResultAlreadyFriends:
		return f.printer.Sprintf("friend.add.already_friends", username)
	case friendv1.AddResultRequestSent:
		return f.printer.Sprintf("friend.add.request_sent", username)
	case friendv1.AddResultPrivacyBlocked:
		return f.printer.Sprintf("friend.add.privacy_blocked", username)
	case friendv1.AddResultAlreadyRequested:
		return f.printer.Sprintf("friend.add.already_requested", username)
	default:
		return f.GenericError()
	}
}

// Deny renders a deny-request outcome.
func (f *Formatter) Deny(result friendv1.RequestResult, username string) string {
	switch result {
	case friendv1.RequestResultDenied:
		return f.printer.Sprintf("friend.deny.denied", username)
	case friendv1.RequestResultNoRequest:
		return f.printer.Sprintf("friend.deny.no_request", username)
	default:
		return f.GenericError()
	}
}

// Revoke renders a revoke-request outcome.
func (f *Formatter) Revoke(result friendv1.RequestResult, username string) string {
	switch result {
	case friendv1.RequestResultDenied:
		return f.printer.Sprintf("friend.revoke.revoked", username)
	case friendv1.RequestResultNoRequest:
		return f.printer.Sprintf("friend.revoke.no_request", username)
	default:
		return f.GenericError()
	}
}

// Remove renders a remove-friend outcome.
func (f *Formatter) Remove(result friendv1.RemoveResult, username string) string {
	switch result {
	case friendv1.RemoveResultRemoved:
		return f.printer.Sprintf("friend.remove.removed", username)
	case friendv1.RemoveResultNotFriends:
		return f.printer.Sprintf("friend.remove.not_friends", username)
	default:
		return f.GenericError()
	}
}

// PlayerNotFound renders the not-found message naming the username exactly
// as the issuer typed it; no canonical form exists for an unknown player.
func (f *Formatter) PlayerNotFound(typed string) string {
	return f.printer.Sprintf("friend.add.not_found", typed)
}

// AddFailed renders the add transport-failure message naming the canonical
// username.
func (f *Formatter) AddFailed(username string) string {
	return f.printer.Sprintf("friend.add.call_failed", username)
}

// DenyFailed renders the deny transport-failure message.
func (f *Formatter) DenyFailed(username string) string {
	return f.printer.Sprintf("friend.deny.call_failed", username)
}

// RevokeFailed renders the revoke transport-failure message.
func (f *Formatter) RevokeFailed(username string) string {
	return f.printer.Sprintf("friend.revoke.call_failed", username)
}

// RemoveFailed renders the remove transport-failure message.
func (f *Formatter) RemoveFailed(username string) string {
	return f.printer.Sprintf("friend.remove.call_failed", username)
}

// GenericError renders the shared failure text.
func (f *Formatter) GenericError() string {
	return f.printer.Sprintf("generic.error")
}

// FriendList renders one page of the friend list with presence markers, or
// the empty-list hint when the player has no friends at all.
func (f *Formatter) FriendList(entries []ListEntry, page, pages int) string {
	if pages == 0 {
		return f.printer.Sprintf("friend.list.empty")
	}
	var b strings.Builder
	b.WriteString(f.printer.Sprintf("friend.list.header", page, pages))
	for _, entry := range entries {
		b.WriteString("\n")
		if entry.Online {
			b.WriteString(f.printer.Sprintf("friend.list.entry.online", entry.Username))
		} else {
			b.WriteString(f.printer.Sprintf("friend.list.entry.offline", entry.Username))
		}
	}
	return b.String()
}

// PendingRequests renders one page of pending requests in the given
// direction, or the direction's empty hint.
func (f *Formatter) PendingRequests(direction friendv1.Direction, usernames []string, page, pages int) string {
	if pages == 0 {
		if direction == friendv1.DirectionOutgoing {
			return f.printer.Sprintf("friend.requests.outgoing.empty")
		}
		return f.printer.Sprintf("friend.requests.incoming.empty")
	}
	var b strings.Builder
	if direction == friendv1.DirectionOutgoing {
		b.WriteString(f.printer.Sprintf("friend.requests.outgoing.header", page, pages))
	} else {
		b.WriteString(f.printer.Sprintf("friend.requests.incoming.header", page, pages))
	}
	for _, username := range usernames {
		b.WriteString("\n")
		b.WriteString(username)
	}
	return b.String()
}

// Purged renders the purge summary for the given direction.
func (f *Formatter) Purged(direction friendv1.Direction, count int) string {
	if direction == friendv1.DirectionOutgoing {
		return f.printer.Sprintf("friend.purge.outgoing", count)
	}
	return f.printer.Sprintf("friend.purge.incoming", count)
}

// Help renders the command usage summary.
func (f *Formatter) Help() string {
	return f.printer.Sprintf("friend.help")
}
