package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/yigit/alumnibridge/internal/app/models"
	"github.com/yigit/alumnibridge/internal/pkg/sse"
)

func TestNotifyAndListNewestFirst(t *testing.T) {
	service, _ := newTestNotifier()
	ctx := context.Background()

	if err := service.Notify(ctx, 1, "first", models.SeverityInfo); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if err := service.Notify(ctx, 1, "second", models.SeveritySuccess); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if err := service.Notify(ctx, 2, "other user", models.SeverityInfo); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	notifications, err := service.ListFor(ctx, 1)
	if err != nil {
		t.Fatalf("ListFor: %v", err)
	}
	if len(notifications) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notifications))
	}
	if notifications[0].Message != "second" || notifications[1].Message != "first" {
		t.Errorf("order wrong: %q then %q", notifications[0].Message, notifications[1].Message)
	}
	if notifications[0].Read {
		t.Error("new notification should start unread")
	}
}

func TestNotifyNormalizesUnknownSeverity(t *testing.T) {
	service, repo := newTestNotifier()

	if err := service.Notify(context.Background(), 1, "odd", "SHOUTING"); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	notifications := repo.forUser(1)
	if len(notifications) != 1 {
		t.Fatalf("notifications = %d, want 1", len(notifications))
	}
	if notifications[0].Severity != models.SeverityInfo {
		t.Errorf("severity = %s, want INFO", notifications[0].Severity)
	}
}

func TestMarkReadIsIdempotent(t *testing.T) {
	service, repo := newTestNotifier()
	ctx := context.Background()

	if err := service.Notify(ctx, 1, "hello", models.SeverityInfo); err != nil {
		t.Fatalf("Notify: %v", err)
	}
	id := repo.forUser(1)[0].ID

	if err := service.MarkRead(ctx, id); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if err := service.MarkRead(ctx, id); err != nil {
		t.Errorf("second MarkRead err = %v, want nil", err)
	}
	if err := service.MarkRead(ctx, 404); err != nil {
		t.Errorf("unknown id MarkRead err = %v, want nil", err)
	}

	if !repo.forUser(1)[0].Read {
		t.Error("notification not marked read")
	}
}

func TestNotifyPushesToSubscribers(t *testing.T) {
	repo := newMockNotificationRepo()
	broker := sse.NewBroker()
	service := NewNotificationService(repo, broker)

	ch := make(chan sse.Event, 1)
	broker.Register(7, ch)
	defer broker.Unregister(7, ch)

	if err := service.Notify(context.Background(), 7, "live", models.SeverityInfo); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	select {
	case event := <-ch:
		raw, ok := event.Data.(json.RawMessage)
		if !ok {
			t.Fatalf("event data type %T", event.Data)
		}
		var notification models.Notification
		if err := json.Unmarshal(raw, &notification); err != nil {
			t.Fatalf("unmarshal event data: %v", err)
		}
		if notification.Message != "live" {
			t.Errorf("message = %q, want live", notification.Message)
		}
	case <-time.After(time.Second):
		t.Fatal("no SSE event received")
	}
}
