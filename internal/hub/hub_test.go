package hub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mierzida/FLP-forBBK/internal/session"
)

func TestHubEnsureReturnsSamePointer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, session.Config{})

	reply := make(chan *session.Session, 1)
	h.Inbox() <- EnsureSession{Code: "OVL123", Reply: reply}
	s1 := <-reply
	require.NotNil(t, s1)

	h.Inbox() <- GetSession{Code: "OVL123", Reply: reply}
	s2 := <-reply
	require.Same(t, s1, s2)
}

func TestHubGetUnknownCodeIsNil(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, session.Config{})

	reply := make(chan *session.Session, 1)
	h.Inbox() <- GetSession{Code: "NOPE", Reply: reply}
	require.Nil(t, <-reply)
}

func TestHubRemoveForgetsSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := NewHub(ctx, session.Config{})

	reply := make(chan *session.Session, 1)
	h.Inbox() <- CreateSession{Code: "GONE42", Reply: reply}
	require.NotNil(t, <-reply)

	h.Inbox() <- RemoveSession{Code: "GONE42"}
	h.Inbox() <- GetSession{Code: "GONE42", Reply: reply}
	require.Nil(t, <-reply)
}
