// Package chat orchestrates a single conversational turn: session lookup,
// history mutation, the completion call, directive repair and flow tracking.
package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Joako199002/proyecto-alzarea/pkg/directive"
	"github.com/Joako199002/proyecto-alzarea/pkg/flow"
	"github.com/Joako199002/proyecto-alzarea/pkg/metrics"
	"github.com/Joako199002/proyecto-alzarea/pkg/prompting"
	"github.com/Joako199002/proyecto-alzarea/pkg/session"
)

// ErrEmptyMessage is returned before any session mutation when the user
// message is blank.
var ErrEmptyMessage = errors.New("chat: mensaje is required")

// Completer produces a single textual completion for an ordered message
// history, or fails.
type Completer interface {
	Complete(ctx context.Context, history []session.Message) (string, error)
}

// Advisor runs chat turns. Turns on the same session serialize on the
// session's turn lock; turns on distinct sessions run concurrently, the
// completion call being the only suspension point.
type Advisor struct {
	store     session.Store
	completer Completer
	reg       *metrics.Registry
}

// NewAdvisor constructs an Advisor.
func NewAdvisor(store session.Store, completer Completer, reg *metrics.Registry) *Advisor {
	return &Advisor{store: store, completer: completer, reg: reg}
}

// Respond runs one turn: append the user message, complete, repair the
// image directive, append the assistant reply and update the flow step.
// On completion failure the user turn stays recorded and no assistant turn
// is appended, so a resend naturally continues the conversation.
func (a *Advisor) Respond(ctx context.Context, sessionID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}
	sess := a.lockSession(sessionID)
	defer sess.EndTurn()

	sess.AppendUser(message)
	return a.completeTurn(ctx, sessionID, sess)
}

// RespondToUpload runs the turn triggered by an image upload. The stored
// filename and a fixed placeholder analysis are recorded as user turns;
// real vision analysis is not performed.
func (a *Advisor) RespondToUpload(ctx context.Context, sessionID, storedName string) (string, error) {
	sess := a.lockSession(sessionID)
	defer sess.EndTurn()

	sess.AppendUser("He subido una imagen: " + storedName)
	sess.AppendUser(prompting.UploadAnalysisPlaceholder())
	return a.completeTurn(ctx, sessionID, sess)
}

func (a *Advisor) lockSession(sessionID string) *session.Session {
	if sessionID == "" {
		sessionID = session.DefaultID
	}
	sess := a.store.GetOrCreate(sessionID)
	sess.BeginTurn()
	return sess
}

func (a *Advisor) completeTurn(ctx context.Context, sessionID string, sess *session.Session) (string, error) {
	reply, err := a.completer.Complete(ctx, sess.History())
	if err != nil {
		if a.reg != nil {
			a.reg.Inc(ctx, "chat_turn_failures_total", nil, 1)
		}
		return "", err
	}

	final := a.annotate(ctx, reply)
	sess.AppendAssistant(final)
	if step, ok := flow.Classify(final); ok {
		sess.AdvanceFlow(step)
	}

	log.Ctx(ctx).Debug().
		Str("session_id", sessionID).
		Int("history_len", sess.Len()).
		Int("flow_step", int(sess.FlowStep())).
		Msg("chat turn completed")
	if a.reg != nil {
		a.reg.Inc(ctx, "chat_turns_total", nil, 1)
	}
	return final, nil
}

// annotate guarantees the reply carries an image directive whenever it
// names a catalog design. A reply with a well-formed marker passes through
// untouched; otherwise malformed markers are stripped and a marker is
// synthesized from the designs the text mentions.
func (a *Advisor) annotate(ctx context.Context, reply string) string {
	clean, names := directive.Extract(reply)
	if len(names) > 0 {
		return reply
	}
	repaired := directive.Repair(clean)
	if repaired != clean {
		log.Ctx(ctx).Debug().Msg("image directive added to reply")
		if a.reg != nil {
			a.reg.Inc(ctx, "directives_repaired_total", nil, 1)
		}
	}
	return repaired
}
