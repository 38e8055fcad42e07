package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Add friend
	message.SetString(lang, "friend.add.added", "You are now friends with %s")
	message.SetString(lang, "friend.add.already_friends", "You are already friends with %s")
	message.SetString(lang, "friend.add.request_sent", "Sent a friend request to %s")
	message.SetString(lang, "friend.add.privacy_blocked", "%s's privacy settings don't allow you to add them as a friend.")
	message.SetString(lang, "friend.add.already_requested", "You have already sent a friend request to %s")
	message.SetString(lang, "friend.add.not_found", "Could not find player %s")
	message.SetString(lang, "friend.add.call_failed", "Failed to send a friend request to %s")

	// Deny and revoke pending requests
	message.SetString(lang, "friend.deny.denied", "Removed your friend request from %s")
	message.SetString(lang, "friend.deny.no_request", "You have not received a friend request from %s")
	message.SetString(lang, "friend.deny.call_failed", "Failed to deny the friend request from %s")
	message.SetString(lang, "friend.revoke.revoked", "Revoked your friend request to %s")
	message.SetString(lang, "friend.revoke.no_request", "You have not sent a friend request to %s")
	message.SetString(lang, "friend.revoke.call_failed", "Failed to revoke your friend request to %s")

	// Remove friend
	message.SetString(lang, "friend.remove.removed", "You are no longer friends with %s")
	message.SetString(lang, "friend.remove.not_friends", "You are not friends with %s")
	message.SetString(lang, "friend.remove.call_failed", "Failed to remove %s from your friends")

	// Friend list and pending requests
	message.SetString(lang, "friend.list.header", "------ Friends (page %d of %d) ------")
	message.SetString(lang, "friend.list.empty", "You don't have any friends yet. Add some with /friend add <name>")
	message.SetString(lang, "friend.list.entry.online", "%s - Online")
	message.SetString(lang, "friend.list.entry.offline", "%s - Offline")
	message.SetString(lang, "friend.requests.incoming.header", "------ Incoming requests (page %d of %d) ------")
	message.SetString(lang, "friend.requests.outgoing.header", "------ Outgoing requests (page %d of %d) ------")
	message.SetString(lang, "friend.requests.incoming.empty", "You have no incoming friend requests")
	message.SetString(lang, "friend.requests.outgoing.empty", "You have no outgoing friend requests")
	message.SetString(lang, "friend.purge.incoming", "Purged %d incoming friend requests")
	message.SetString(lang, "friend.purge.outgoing", "Purged %d outgoing friend requests")

	// Command surface
	message.SetString(lang, "friend.help", "------ Friend Help ------\n/friend add <name>\n/friend remove <name>\n/friend deny <name>\n/friend revoke <name>\n/friend list [page]\n/friend requests <incoming/outgoing> [page]\n/friend purge requests <incoming/outgoing>\n-----------------------")

	// Whispers pushed from backend services
	message.SetString(lang, "message.private.received", "[%s] whispers: %s")

	// Shared failure text
	message.SetString(lang, "generic.error", "An error occurred")
}
