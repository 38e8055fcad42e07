package friends

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/emberhollow/proxy/api/grpc/friendv1"
	"github.com/emberhollow/proxy/internal/proxy/i18n"
)

type commandCall struct {
	name      string
	target    string
	direction friendv1.Direction
	page      int
}

type fakeCommands struct {
	calls []commandCall
}

func (f *fakeCommands) ExecuteAdd(_ uuid.UUID, _, targetName string) {
	f.calls = append(f.calls, commandCall{name: "add", target: targetName})
}

func (f *fakeCommands) ExecuteDeny(_ uuid.UUID, targetName string) {
	f.calls = append(f.calls, commandCall{name: "deny", target: targetName})
}

func (f *fakeCommands) ExecuteRevoke(_ uuid.UUID, targetName string) {
	f.calls = append(f.calls, commandCall{name: "revoke", target: targetName})
}

func (f *fakeCommands) ExecuteRemove(_ uuid.UUID, targetName string) {
	f.calls = append(f.calls, commandCall{name: "remove", target: targetName})
}

func (f *fakeCommands) ExecuteList(_ uuid.UUID, page int) {
	f.calls = append(f.calls, commandCall{name: "list", page: page})
}

func (f *fakeCommands) ExecuteRequests(_ uuid.UUID, direction friendv1.Direction, page int) {
	f.calls = append(f.calls, commandCall{name: "requests", direction: direction, page: page})
}

func (f *fakeCommands) ExecutePurge(_ uuid.UUID, direction friendv1.Direction) {
	f.calls = append(f.calls, commandCall{name: "purge", direction: direction})
}

func TestRouterDispatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []commandCall
	}{
		{"add", []string{"add", "Bob"}, []commandCall{{name: "add", target: "Bob"}}},
		{"add uppercase verb", []string{"ADD", "Bob"}, []commandCall{{name: "add", target: "Bob"}}},
		{"remove", []string{"remove", "Bob"}, []commandCall{{name: "remove", target: "Bob"}}},
		{"deny", []string{"deny", "Bob"}, []commandCall{{name: "deny", target: "Bob"}}},
		{"revoke", []string{"revoke", "Bob"}, []commandCall{{name: "revoke", target: "Bob"}}},
		{"list default page", []string{"list"}, []commandCall{{name: "list", page: 1}}},
		{"list page", []string{"list", "3"}, []commandCall{{name: "list", page: 3}}},
		{"requests incoming", []string{"requests", "incoming"}, []commandCall{{name: "requests", direction: friendv1.DirectionIncoming, page: 1}}},
		{"requests outgoing page", []string{"requests", "outgoing", "2"}, []commandCall{{name: "requests", direction: friendv1.DirectionOutgoing, page: 2}}},
		{"purge incoming", []string{"purge", "requests", "incoming"}, []commandCall{{name: "purge", direction: friendv1.DirectionIncoming}}},
		{"purge outgoing", []string{"purge", "requests", "outgoing"}, []commandCall{{name: "purge", direction: friendv1.DirectionOutgoing}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			commands := &fakeCommands{}
			sent := &sendRecorder{}
			router := NewRouter(commands, NewFormatter(i18n.Printer(i18n.Default())), sent)

			router.Dispatch(uuid.New(), "Alice", tc.args)

			if !reflect.DeepEqual(commands.calls, tc.want) {
				t.Errorf("calls = %+v, want %+v", commands.calls, tc.want)
			}
			if len(sent.texts) != 0 {
				t.Errorf("unexpected local reply: %q", sent.texts)
			}
		})
	}
}

func TestRouterRendersHelpLocally(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"bare command", nil},
		{"unknown verb", []string{"frobnicate"}},
		{"add missing name", []string{"add"}},
		{"add extra args", []string{"add", "Bob", "extra"}},
		{"list bad page", []string{"list", "zero"}},
		{"list negative page", []string{"list", "-1"}},
		{"requests missing direction", []string{"requests"}},
		{"requests bad direction", []string{"requests", "sideways"}},
		{"requests bad page", []string{"requests", "incoming", "x"}},
		{"purge missing direction", []string{"purge", "requests"}},
		{"purge bad direction", []string{"purge", "requests", "sideways"}},
		{"purge wrong noun", []string{"purge", "friends", "incoming"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			commands := &fakeCommands{}
			sent := &sendRecorder{}
			router := NewRouter(commands, NewFormatter(i18n.Printer(i18n.Default())), sent)

			router.Dispatch(uuid.New(), "Alice", tc.args)

			if len(commands.calls) != 0 {
				t.Errorf("chain scheduled on a parse failure: %+v", commands.calls)
			}
			if len(sent.texts) != 1 || !strings.Contains(sent.texts[0], "Friend Help") {
				t.Errorf("expected usage text, got %q", sent.texts)
			}
		})
	}
}
