package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"rental_portal/internal/usecase/interfaces"
)

// recordingNotifier keeps every notification and fails the ones whose
// recipient email is in failFor.
type recordingNotifier struct {
	mu      sync.Mutex
	sent    []interfaces.Notification
	failFor map[string]bool
}

func (n *recordingNotifier) Notify(_ context.Context, msg interfaces.Notification) interfaces.NotificationResult {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	if n.failFor[msg.To.Email] {
		return interfaces.NotificationResult{Errors: []string{"email: provider rejected"}}
	}
	return interfaces.NotificationResult{Email: "msg-" + strconv.Itoa(len(n.sent))}
}

func (n *recordingNotifier) SendEmail(_ context.Context, msg interfaces.Notification) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	if n.failFor[msg.To.Email] {
		return "", errors.New("provider rejected")
	}
	return "msg-" + strconv.Itoa(len(n.sent)), nil
}

func (n *recordingNotifier) subjects() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.sent))
	for _, s := range n.sent {
		out = append(out, s.Subject)
	}
	return out
}

// plainHasher hands out predictable passcodes and "hashes" by prefixing.
type plainHasher struct {
	next int
}

func (h *plainHasher) Generate() (string, error) {
	h.next++
	return strconv.Itoa(100000 + h.next), nil
}

func (h *plainHasher) Hash(passcode string) (string, error) {
	return "hashed:" + passcode, nil
}

func (h *plainHasher) Matches(hash, passcode string) bool {
	return hash == "hashed:"+passcode
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
