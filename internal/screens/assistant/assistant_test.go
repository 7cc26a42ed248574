package assistant

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/eduforge/eduforge/internal/chat"
)

func TestEscResolvesPendingTurn(t *testing.T) {
	session := chat.Open("graphs")
	s := New(nil, session, chat.Topic{CurrentTopic: "graphs"})

	if !session.Begin("what is a dag?") {
		t.Fatal("Begin must accept the send")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc must pop the screen")
	}
	if session.Pending() {
		t.Error("pending turn must be resolved before the pop")
	}
	last := session.Messages()[len(session.Messages())-1]
	if !last.IsError {
		t.Error("lost turn must resolve as an error turn")
	}
	if !session.Begin("retry") {
		t.Error("a later send must be accepted again")
	}
}

func TestStaleReplyIgnored(t *testing.T) {
	session := chat.Open("graphs")
	s := New(nil, session, chat.Topic{CurrentTopic: "graphs"})

	session.Begin("first")
	staleTurn := session.Turn()
	session.Fail()

	session.Begin("second")
	s.Update(replyMsg{SessionID: session.ID(), Turn: staleTurn, Reply: "late answer"})
	if !session.Pending() {
		t.Error("a reply for a resolved turn must not complete the live one")
	}

	s.Update(replyMsg{SessionID: session.ID(), Turn: session.Turn(), Reply: "real answer"})
	if session.Pending() {
		t.Error("matching reply must complete the turn")
	}
	last := session.Messages()[len(session.Messages())-1]
	if last.Content != "real answer" || last.IsError {
		t.Errorf("unexpected final turn: %+v", last)
	}
}

func TestReplyForOtherSessionIgnored(t *testing.T) {
	session := chat.Open("")
	s := New(nil, session, chat.Topic{})
	session.Begin("hello")

	s.Update(replyMsg{SessionID: "someone-else", Turn: session.Turn(), Reply: "hi"})
	if !session.Pending() {
		t.Error("reply for another session must be ignored")
	}
}
