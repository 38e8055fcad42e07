package friends

import (
	"strings"
	"testing"

	"github.com/emberhollow/proxy/api/grpc/friendv1"
	"github.com/emberhollow/proxy/internal/proxy/i18n"
)

func newTestFormatter() *Formatter {
	return NewFormatter(i18n.Printer(i18n.Default()))
}

func TestFormatterAdd(t *testing.T) {
	t.Parallel()

	formatter := newTestFormatter()
	tests := []struct {
		name   string
		result friendv1.AddResult
		want   string
	}{
		{"added", friendv1.AddResultAdded, "You are now friends with Steve"},
		{"already friends", friendv1.AddResultAlreadyFriends, "You are already friends with Steve"},
		{"request sent", friendv1.AddResultRequestSent, "Sent a friend request to Steve"},
		{"privacy blocked", friendv1.AddResultPrivacyBlocked, "Steve's privacy settings don't allow you to add them as a friend."},
		{"already requested", friendv1.AddResultAlreadyRequested, "You have already sent a friend request to Steve"},
		{"unknown", friendv1.AddResultUnknown, "An error occurred"},
		{"out of range", friendv1.AddResult(99), "An error occurred"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := formatter.Add(tc.result, "Steve"); got != tc.want {
				t.Errorf("Add(%v) = %q, want %q", tc.result, got, tc.want)
			}
		})
	}
}

func TestFormatterDenyAndRevoke(t *testing.T) {
	t.Parallel()

	formatter := newTestFormatter()
	tests := []struct {
		name   string
		render func(friendv1.RequestResult, string) string
		result friendv1.RequestResult
		want   string
	}{
		{"deny denied", formatter.Deny, friendv1.RequestResultDenied, "Removed your friend request from Alex"},
		{"deny no request", formatter.Deny, friendv1.RequestResultNoRequest, "You have not received a friend request from Alex"},
		{"deny unknown", formatter.Deny, friendv1.RequestResultUnknown, "An error occurred"},
		{"revoke revoked", formatter.Revoke, friendv1.RequestResultDenied, "Revoked your friend request to Alex"},
		{"revoke no request", formatter.Revoke, friendv1.RequestResultNoRequest, "You have not sent a friend request to Alex"},
		{"revoke unknown", formatter.Revoke, friendv1.RequestResultUnknown, "An error occurred"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.render(tc.result, "Alex"); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatterRemove(t *testing.T) {
	t.Parallel()

	formatter := newTestFormatter()
	if got := formatter.Remove(friendv1.RemoveResultRemoved, "Alex"); got != "You are no longer friends with Alex" {
		t.Errorf("removed: %q", got)
	}
	if got := formatter.Remove(friendv1.RemoveResultNotFriends, "Alex"); got != "You are not friends with Alex" {
		t.Errorf("not friends: %q", got)
	}
	if got := formatter.Remove(friendv1.RemoveResultUnknown, "Alex"); got != "An error occurred" {
		t.Errorf("unknown: %q", got)
	}
}

func TestFormatterFailureText(t *testing.T) {
	t.Parallel()

	formatter := newTestFormatter()
	if got := formatter.PlayerNotFound("sTeVe"); got != "Could not find player sTeVe" {
		t.Errorf("not found: %q", got)
	}
	if got := formatter.AddFailed("Steve"); got != "Failed to send a friend request to Steve" {
		t.Errorf("add failed: %q", got)
	}
	if got := formatter.DenyFailed("Steve"); got != "Failed to deny the friend request from Steve" {
		t.Errorf("deny failed: %q", got)
	}
	if got := formatter.RevokeFailed("Steve"); got != "Failed to revoke your friend request to Steve" {
		t.Errorf("revoke failed: %q", got)
	}
	if got := formatter.RemoveFailed("Steve"); got != "Failed to remove Steve from your friends" {
		t.Errorf("remove failed: %q", got)
	}
	if got := formatter.GenericError(); got != "An error occurred" {
		t.Errorf("generic: %q", got)
	}
}

func TestFormatterFriendList(t *testing.T) {
	t.Parallel()

	formatter := newTestFormatter()

	empty := formatter.FriendList(nil, 1, 0)
	if !strings.Contains(empty, "don't have any friends yet") {
		t.Errorf("empty list: %q", empty)
	}

	got := formatter.FriendList([]ListEntry{
		{Username: "Alex", Online: true},
		{Username: "Steve", Online: false},
	}, 2, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), got)
	}
	if lines[0] != "------ Friends (page 2 of 3) ------" {
		t.Errorf("header: %q", lines[0])
	}
	if lines[1] != "Alex - Online" || lines[2] != "Steve - Offline" {
		t.Errorf("rows: %q", lines[1:])
	}
}

func TestFormatterPendingRequests(t *testing.T) {
	t.Parallel()

	formatter := newTestFormatter()

	if got := formatter.PendingRequests(friendv1.DirectionIncoming, nil, 1, 0); got != "You have no incoming friend requests" {
		t.Errorf("incoming empty: %q", got)
	}
	if got := formatter.PendingRequests(friendv1.DirectionOutgoing, nil, 1, 0); got != "You have no outgoing friend requests" {
		t.Errorf("outgoing empty: %q", got)
	}

	got := formatter.PendingRequests(friendv1.DirectionOutgoing, []string{"Alex"}, 1, 1)
	lines := strings.Split(got, "\n")
	if lines[0] != "------ Outgoing requests (page 1 of 1) ------" {
		t.Errorf("header: %q", lines[0])
	}
	if len(lines) != 2 || lines[1] != "Alex" {
		t.Errorf("rows: %q", lines[1:])
	}
}

func TestFormatterPurged(t *testing.T) {
	t.Parallel()

	formatter := newTestFormatter()
	if got := formatter.Purged(friendv1.DirectionIncoming, 3); got != "Purged 3 incoming friend requests" {
		t.Errorf("incoming: %q", got)
	}
	if got := formatter.Purged(friendv1.DirectionOutgoing, 0); got != "Purged 0 outgoing friend requests" {
		t.Errorf("outgoing: %q", got)
	}
}

func TestFormatterHelp(t *testing.T) {
	t.Parallel()

	help := newTestFormatter().Help()
	for _, want := range []string{"/friend add <name>", "/friend list [page]", "/friend purge requests <incoming/outgoing>"} {
		if !strings.Contains(help, want) {
			t.Errorf("help missing %q:\n%s", want, help)
		}
	}
}
