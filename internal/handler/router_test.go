package handler

import (
	"context"
	"fmt"
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartPrivateSendsMenuAndUpsertsUser(t *testing.T) {
	router, transport, store := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, router.HandleUpdate(ctx, telego.Update{
		Message: ptr(privateMessage(testUserID, "/start")),
	}))

	sent := transport.sentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, testUserID, sent[0].chatID)
	assert.Contains(t, sent[0].text, "Welcome to our Customer Support Bot")
	assert.True(t, sent[0].keyboard)

	assert.Equal(t, int64(1), store.CountUsers())
}

func TestStartInGroupByRole(t *testing.T) {
	t.Run("regular member", func(t *testing.T) {
		router, transport, _ := newTestRouter(t)

		require.NoError(t, router.routeMessage(context.Background(), groupMessage(testUserID, "/start")))

		sent := transport.sentMessages()
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].text, "Follow group rules")
	})

	t.Run("configured admin", func(t *testing.T) {
		router, transport, _ := newTestRouter(t)

		require.NoError(t, router.routeMessage(context.Background(), groupMessage(testAdminID, "/start")))

		sent := transport.sentMessages()
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].text, "Admin Group Commands")
	})

	t.Run("platform group admin", func(t *testing.T) {
		router, transport, _ := newTestRouter(t)
		transport.memberStatus = telego.MemberStatusAdministrator

		require.NoError(t, router.routeMessage(context.Background(), groupMessage(testUserID, "/start")))

		sent := transport.sentMessages()
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].text, "Admin Group Commands")
	})
}

func TestAdminPanelPermissions(t *testing.T) {
	t.Run("non-admin in private", func(t *testing.T) {
		router, transport, _ := newTestRouter(t)

		require.NoError(t, router.routeMessage(context.Background(), privateMessage(testUserID, "/admin")))

		sent := transport.sentMessages()
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].text, "don't have admin permissions")
	})

	t.Run("non-admin in group stays silent", func(t *testing.T) {
		router, transport, _ := newTestRouter(t)

		require.NoError(t, router.routeMessage(context.Background(), groupMessage(testUserID, "/admin")))
		assert.Empty(t, transport.sentMessages())
	})

	t.Run("admin in private gets panel", func(t *testing.T) {
		router, transport, _ := newTestRouter(t)

		require.NoError(t, router.routeMessage(context.Background(), privateMessage(testAdminID, "/admin")))

		sent := transport.sentMessages()
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].text, "Admin Control Panel")
		assert.True(t, sent[0].keyboard)
	})

	t.Run("admin in group needs group-admin role", func(t *testing.T) {
		router, transport, _ := newTestRouter(t)
		transport.memberStatus = telego.MemberStatusMember

		require.NoError(t, router.routeMessage(context.Background(), groupMessage(testAdminID, "/admin")))

		sent := transport.sentMessages()
		require.Len(t, sent, 1)
		assert.Contains(t, sent[0].text, "need to be a group admin")
	})
}

func TestComplaintFlow(t *testing.T) {
	router, transport, store := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, router.routeMessage(ctx, privateMessage(testUserID, "my order is late")))

	stats := store.ComplaintStats()
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Pending)

	sent := transport.sentMessages()
	require.Len(t, sent, 2)

	confirmation := sent[0]
	assert.Equal(t, testUserID, confirmation.chatID)
	assert.Contains(t, confirmation.text, "#1")

	notification := sent[1]
	assert.Equal(t, testAdminID, notification.chatID)
	assert.Contains(t, notification.text, "my order is late")
	assert.Contains(t, notification.text, "someuser")
	assert.Contains(t, notification.text, fmt.Sprintf("(%d)", testUserID))
	assert.Contains(t, notification.text, fmt.Sprintf("/reply %d", testUserID))
}

func TestComplaintMarkupIsEscaped(t *testing.T) {
	router, transport, _ := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, router.routeMessage(ctx, privateMessage(testUserID, "broken *bold* _thing_")))

	sent := transport.sentMessages()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[1].text, `broken \*bold\* \_thing\_`)
}

func TestAdminReply(t *testing.T) {
	t.Run("delivers and confirms", func(t *testing.T) {
		router, transport, _ := newTestRouter(t)

		msg := privateMessage(testAdminID, fmt.Sprintf("/reply %d we are on it", testUserID))
		require.NoError(t, router.routeMessage(context.Background(), msg))

		sent := transport.sentMessages()
		require.Len(t, sent, 2)
		assert.Equal(t, testUserID, sent[0].chatID)
		assert.Contains(t, sent[0].text, "we are on it")
		assert.Contains(t, sent[0].text, "Response from Admin")
		assert.Equal(t, testAdminID, sent[1].chatID)
		assert.Contains(t, sent[1].text, "Reply sent successfully")
	})

	t.Run("too few tokens is silently ignored", func(t *testing.T) {
		router, transport, store := newTestRouter(t)

		msg := privateMessage(testAdminID, fmt.Sprintf("/reply %d", testUserID))
		require.NoError(t, router.routeMessage(context.Background(), msg))

		assert.Empty(t, transport.sentMessages())
		// Not treated as a complaint either.
		assert.Equal(t, int64(0), store.ComplaintStats().Total)
	})

	t.Run("no confirmation when delivery fails", func(t *testing.T) {
		router, transport, _ := newTestRouter(t)
		transport.failSends = true

		msg := privateMessage(testAdminID, fmt.Sprintf("/reply %d hello", testUserID))
		require.NoError(t, router.routeMessage(context.Background(), msg))

		assert.Empty(t, transport.sentMessages())
	})
}

func TestAddResponseSeparatorBoundary(t *testing.T) {
	router, transport, store := newTestRouter(t)
	ctx := context.Background()

	// Spaced separator parses.
	require.NoError(t, router.routeMessage(ctx, privateMessage(testAdminID, "/addresponse foo | bar")))

	responses := store.AutoResponses()
	require.Len(t, responses, 1)
	assert.Equal(t, "foo", responses[0].Trigger)
	assert.Equal(t, "bar", responses[0].Response)

	sent := transport.sentMessages()
	require.Len(t, sent, 1)
	assert.Contains(t, sent[0].text, "Added auto response")

	// Without the spaces the separator is not found as written.
	require.NoError(t, router.routeMessage(ctx, privateMessage(testAdminID, "/addresponse foo|bar")))

	require.Len(t, store.AutoResponses(), 1)
	sent = transport.sentMessages()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[1].text, "❌ Format: /addresponse <trigger> | <response>")
}

func TestPrivateAdminBanCommands(t *testing.T) {
	router, transport, store := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, router.routeMessage(ctx, privateMessage(testAdminID, "/addban SPAM")))
	assert.Equal(t, []string{"spam"}, store.BannedWords())

	require.NoError(t, router.routeMessage(ctx, privateMessage(testAdminID, "/removeban Spam")))
	assert.Empty(t, store.BannedWords())

	sent := transport.sentMessages()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[0].text, "Added")
	assert.Contains(t, sent[1].text, "Removed")
}

func TestUnknownUpdateKindIsDropped(t *testing.T) {
	router, transport, _ := newTestRouter(t)

	require.NoError(t, router.HandleUpdate(context.Background(), telego.Update{UpdateID: 99}))
	assert.Empty(t, transport.sentMessages())
}

func TestMessageOutsideSupportGroupIgnoredForUsers(t *testing.T) {
	router, transport, store := newTestRouter(t)
	store.AddBannedWord("spam")

	msg := groupMessage(testUserID, "spam everywhere")
	msg.Chat.ID = testGroupID - 1 // some other group

	require.NoError(t, router.routeMessage(context.Background(), msg))

	assert.Empty(t, transport.sentMessages())
	assert.Empty(t, transport.deletedMessages())
	assert.Equal(t, 0, store.WarningCount(testUserID))
}

func ptr[T any](v T) *T { return &v }
