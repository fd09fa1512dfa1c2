package stubapi_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ari/talentbridge/internal/client"
	"github.com/ari/talentbridge/internal/domain"
	"github.com/ari/talentbridge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatMessageAndHistory(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)
	ctx := context.Background()

	reply, err := c.SendChatMessage(ctx, "How should I prepare for an interview?")
	require.NoError(t, err)
	assert.Equal(t, domain.ChatSenderAssistant, reply.Sender)
	assert.NotEmpty(t, reply.Content)

	history, err := c.ChatHistory(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.ChatSenderUser, history[0].Sender)
	assert.Equal(t, "How should I prepare for an interview?", history[0].Content)
	assert.Equal(t, domain.ChatSenderAssistant, history[1].Sender)
}

func TestChatRejectsEmptyMessage(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)

	_, err := c.SendChatMessage(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusBadRequest))
}

func TestChatHistoryIsPerUser(t *testing.T) {
	ts := testutil.NewTestServer(t)
	ctx := context.Background()

	first, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, first)
	_, err := first.SendChatMessage(ctx, "hello")
	require.NoError(t, err)

	second, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, second)

	history, err := second.ChatHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChatSuggestions(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)

	suggestions, err := c.ChatSuggestions(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, suggestions)
}

func TestChatStreamReceivesBothSides(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)
	testutil.NewUserBuilder().BuildAndAuthenticate(t, c)
	ctx := context.Background()

	stream, err := c.OpenChatStream(ctx)
	require.NoError(t, err)
	defer stream.Close()

	// Give the backend a moment to register the socket before pushing.
	time.Sleep(100 * time.Millisecond)

	_, err = c.SendChatMessage(ctx, "Review my resume summary")
	require.NoError(t, err)

	question, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.ChatSenderUser, question.Sender)
	assert.Equal(t, "Review my resume summary", question.Content)

	reply, err := stream.Next()
	require.NoError(t, err)
	assert.Equal(t, domain.ChatSenderAssistant, reply.Sender)
}

func TestChatStreamRequiresToken(t *testing.T) {
	ts := testutil.NewTestServer(t)
	c, _ := ts.NewClient(t)

	_, err := c.OpenChatStream(context.Background())
	require.Error(t, err)
	assert.True(t, client.IsStatus(err, http.StatusUnauthorized))
}
