package handler

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tg-supportbot/internal/config"
	"tg-supportbot/internal/service"
)

type sentMessage struct {
	chatID   int64
	text     string
	keyboard bool
	replyTo  int
}

type editedMessage struct {
	chatID    int64
	messageID int
	text      string
	keyboard  bool
}

type deletedMessage struct {
	chatID    int64
	messageID int
}

type restriction struct {
	chatID    int64
	userID    int64
	untilDate int64
}

// fakeTransport records every outbound call. Timers fire on background
// goroutines, so access is guarded.
type fakeTransport struct {
	mu sync.Mutex

	sent       []sentMessage
	edited     []editedMessage
	deleted    []deletedMessage
	restricted []restriction
	answered   []string

	memberStatus string
	failSends    bool

	nextMessageID int
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{memberStatus: telego.MemberStatusMember, nextMessageID: 1000}
}

func (f *fakeTransport) SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failSends {
		return nil, errors.New("send failed")
	}

	replyTo := 0
	if params.ReplyParameters != nil {
		replyTo = params.ReplyParameters.MessageID
	}
	f.sent = append(f.sent, sentMessage{
		chatID:   params.ChatID.ID,
		text:     params.Text,
		keyboard: params.ReplyMarkup != nil,
		replyTo:  replyTo,
	})

	f.nextMessageID++
	return &telego.Message{
		MessageID: f.nextMessageID,
		Chat:      telego.Chat{ID: params.ChatID.ID},
	}, nil
}

func (f *fakeTransport) EditMessageText(ctx context.Context, params *telego.EditMessageTextParams) (*telego.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edited = append(f.edited, editedMessage{
		chatID:    params.ChatID.ID,
		messageID: params.MessageID,
		text:      params.Text,
		keyboard:  params.ReplyMarkup != nil,
	})
	return &telego.Message{MessageID: params.MessageID, Chat: telego.Chat{ID: params.ChatID.ID}}, nil
}

func (f *fakeTransport) DeleteMessage(ctx context.Context, params *telego.DeleteMessageParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, deletedMessage{chatID: params.ChatID.ID, messageID: params.MessageID})
	return nil
}

func (f *fakeTransport) RestrictChatMember(ctx context.Context, params *telego.RestrictChatMemberParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restricted = append(f.restricted, restriction{
		chatID:    params.ChatID.ID,
		userID:    params.UserID,
		untilDate: params.UntilDate,
	})
	return nil
}

func (f *fakeTransport) GetChatMember(ctx context.Context, params *telego.GetChatMemberParams) (telego.ChatMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch f.memberStatus {
	case telego.MemberStatusCreator:
		return &telego.ChatMemberOwner{}, nil
	case telego.MemberStatusAdministrator:
		return &telego.ChatMemberAdministrator{}, nil
	default:
		return &telego.ChatMemberMember{}, nil
	}
}

func (f *fakeTransport) AnswerCallbackQuery(ctx context.Context, params *telego.AnswerCallbackQueryParams) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.answered = append(f.answered, params.CallbackQueryID)
	return nil
}

func (f *fakeTransport) sentMessages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}

func (f *fakeTransport) deletedMessages() []deletedMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]deletedMessage(nil), f.deleted...)
}

func (f *fakeTransport) restrictions() []restriction {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]restriction(nil), f.restricted...)
}

const (
	testAdminID = int64(1000)
	testGroupID = int64(-500)
	testUserID  = int64(42)
)

func newTestStore(t *testing.T) *service.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	store, err := service.NewStore(db)
	require.NoError(t, err)
	return store
}

func newTestRouter(t *testing.T) (*Router, *fakeTransport, *service.Store) {
	t.Helper()

	transport := newFakeTransport()
	store := newTestStore(t)

	tracker := NewMessageTracker(transport, store)
	tracker.unit = 10 * time.Millisecond

	cfg := &config.Config{}
	cfg.Bot.AdminID = testAdminID
	cfg.Bot.GroupID = testGroupID

	router := NewRouter(transport, store, tracker, cfg)
	router.noticeDelay = 10 * time.Millisecond
	return router, transport, store
}

func privateMessage(userID int64, text string) telego.Message {
	return telego.Message{
		MessageID: 1,
		Text:      text,
		Chat:      telego.Chat{ID: userID, Type: telego.ChatTypePrivate},
		From:      &telego.User{ID: userID, Username: "someuser", FirstName: "Some"},
	}
}

func groupMessage(userID int64, text string) telego.Message {
	return telego.Message{
		MessageID: 7,
		Text:      text,
		Chat:      telego.Chat{ID: testGroupID, Type: telego.ChatTypeSupergroup},
		From:      &telego.User{ID: userID, Username: "groupuser", FirstName: "Group"},
	}
}

// waitFor polls until the condition holds or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, condition func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	require.True(t, condition())
}
