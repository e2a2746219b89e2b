package client

import (
	"github.com/JWDT/bug-tracker/models"
	"github.com/JWDT/bug-tracker/response"
)

// Args is the argument bag a mutation was issued with.
type Args map[string]interface{}

// AuthResult is the resolved shape of login and register mutations as
// seen by the cache layer.
type AuthResult struct {
	User   *models.User
	Errors []response.FieldError
}

// Op is a single cache modification produced by a reconciliation rule.
// Overwrite ops install Value directly; the rest invalidate the entry
// and let the client schedule a refetch.
type Op struct {
	Key       Key
	Overwrite bool
	Value     interface{}
}

// Rule maps a resolved mutation to the cache ops that reconcile it.
type Rule func(args Args, result interface{}) []Op

type RuleTable map[string]Rule

// Rules returns the reconciliation table covering every mutation the
// server exposes. Mutations without an entry leave the cache untouched.
func Rules() RuleTable {
	return RuleTable{
		"changeTicketStatus":   invalidateTicket,
		"changeTicketPriority": invalidateTicket,
		"changeTicketType":     invalidateTicket,
		"assignTicket":         invalidateTicket,
		"createComment": func(args Args, _ interface{}) []Op {
			key := KeyFor("findCommentsByTicket", Args{"ticketId": args["ticketId"]})
			return []Op{{Key: key}}
		},
		"login":    overwriteMe,
		"register": overwriteMe,
		"logout": func(Args, interface{}) []Op {
			return []Op{{Key: KeyFor("me", nil), Overwrite: true, Value: nil}}
		},
	}
}

// invalidateTicket targets the findTicket entry keyed by the mutation's
// own ticket id, so unrelated tickets keep their cached reads.
func invalidateTicket(args Args, _ interface{}) []Op {
	key := KeyFor("findTicket", Args{"id": args["ticketId"]})
	return []Op{{Key: key}}
}

// overwriteMe installs the authenticated user on success. A login or
// register that came back with field errors resolved without a session
// change, so the cached identity stands.
func overwriteMe(_ Args, result interface{}) []Op {
	res, ok := result.(AuthResult)
	if !ok || len(res.Errors) > 0 {
		return nil
	}
	return []Op{{Key: KeyFor("me", nil), Overwrite: true, Value: res.User}}
}
