package friends

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/emberhollow/proxy/api/grpc/friendv1"
)

// Commands is the set of chains a friend command can schedule. Satisfied by
// *Orchestrator.
type Commands interface {
	ExecuteAdd(issuerID uuid.UUID, issuerUsername, targetName string)
	ExecuteDeny(issuerID uuid.UUID, targetName string)
	ExecuteRevoke(issuerID uuid.UUID, targetName string)
	ExecuteRemove(issuerID uuid.UUID, targetName string)
	ExecuteList(issuerID uuid.UUID, page int)
	ExecuteRequests(issuerID uuid.UUID, direction friendv1.Direction, page int)
	ExecutePurge(issuerID uuid.UUID, direction friendv1.Direction)
}

// Router parses friend command arguments and maps each leaf command to one
// orchestrator chain. Parse failures render the usage text locally without
// touching any remote service.
type Router struct {
	commands Commands
	format   *Formatter
	sessions Messenger
}

// NewRouter creates a command router.
func NewRouter(commands Commands, format *Formatter, sessions Messenger) *Router {
	return &Router{commands: commands, format: format, sessions: sessions}
}

// Dispatch routes the tokens following the friend command word, issued by
// the given connected player.
func (r *Router) Dispatch(issuerID uuid.UUID, issuerUsername string, args []string) {
	if len(args) == 0 {
		r.help(issuerID)
		return
	}

	switch strings.ToLower(args[0]) {
	case "add":
		if len(args) != 2 {
			r.help(issuerID)
			return
		}
		r.commands.ExecuteAdd(issuerID, issuerUsername, args[1])
	case "remove":
		if len(args) != 2 {
			r.help(issuerID)
			return
		}
		r.commands.ExecuteRemove(issuerID, args[1])
	case "deny":
		if len(args) != 2 {
			r.help(issuerID)
			return
		}
		r.commands.ExecuteDeny(issuerID, args[1])
	case "revoke":
		if len(args) != 2 {
			r.help(issuerID)
			return
		}
		r.commands.ExecuteRevoke(issuerID, args[1])
	case "list":
		page, ok := parsePage(args[1:])
		if !ok {
			r.help(issuerID)
			return
		}
		r.commands.ExecuteList(issuerID, page)
	case "requests":
		if len(args) < 2 {
			r.help(issuerID)
			return
		}
		direction, ok := parseDirection(args[1])
		if !ok {
			r.help(issuerID)
			return
		}
		page, ok := parsePage(args[2:])
		if !ok {
			r.help(issuerID)
			return
		}
		r.commands.ExecuteRequests(issuerID, direction, page)
	case "purge":
		if len(args) != 3 || strings.ToLower(args[1]) != "requests" {
			r.help(issuerID)
			return
		}
		direction, ok := parseDirection(args[2])
		if !ok {
			r.help(issuerID)
			return
		}
		r.commands.ExecutePurge(issuerID, direction)
	default:
		r.help(issuerID)
	}
}

func (r *Router) help(issuerID uuid.UUID) {
	_ = r.sessions.Send(issuerID, r.format.Help())
}

// parsePage reads an optional trailing 1-based page argument, defaulting to
// page 1.
func parsePage(args []string) (int, bool) {
	switch len(args) {
	case 0:
		return 1, true
	case 1:
		page, err := strconv.Atoi(args[0])
		if err != nil || page < 1 {
			return 0, false
		}
		return page, true
	default:
		return 0, false
	}
}

func parseDirection(arg string) (friendv1.Direction, bool) {
	switch strings.ToLower(arg) {
	case "incoming":
		return friendv1.DirectionIncoming, true
	case "outgoing":
		return friendv1.DirectionOutgoing, true
	default:
		return friendv1.DirectionUnknown, false
	}
}
