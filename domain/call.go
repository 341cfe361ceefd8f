package domain

import "time"

type CallType string

const (
	CallAudio CallType = "audio"
	CallVideo CallType = "video"
)

// CallStatus is the two-state lifecycle of a live call. Ended calls are not a
// status: they are deleted from the registry and survive only as a summary
// message in the conversation.
type CallStatus string

const (
	CallInitiating CallStatus = "initiating"
	CallActive     CallStatus = "active"
)

// CallSession is the registry-resident record of one in-flight call. It is
// serialized as JSON into the active calls hash; transitions go through
// conditional writes so concurrent answer/end races resolve to one winner.
type CallSession struct {
	ID       string     `json:"id"`
	CallerID string     `json:"callerId"`
	CalleeID string     `json:"calleeId"`
	Type     CallType   `json:"type"`
	Status   CallStatus `json:"status"`
	// StartedAt is set at initiation; a call ended before being answered
	// reports a zero duration from it.
	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`
}

// Peer returns the other party of the call relative to userID, and false when
// userID is not a party at all.
func (c CallSession) Peer(userID string) (string, bool) {
	switch userID {
	case c.CallerID:
		return c.CalleeID, true
	case c.CalleeID:
		return c.CallerID, true
	}
	return "", false
}
