package handler

import (
	"bufio"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"nextfund-ledger/internal/model"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// closeNotifyRecorder lets gin's Stream run against a recorder.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *closeNotifyRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func TestHandler_StreamEvents(t *testing.T) {
	router, deps := newTestRouter(t, defaultAuth())

	ch := make(chan *model.Notification, 1)
	ch <- &model.Notification{
		ID:        "reward:1:7",
		UserID:    1,
		Kind:      model.NotifyRewardCredited,
		Amount:    "6.00",
		CreatedAt: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC),
	}
	close(ch)

	deps.subscriber.On("Subscribe", mock.Anything, int64(1)).Return((<-chan *model.Notification)(ch), nil)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/me/events", nil)
	req.Header.Set("Authorization", bearer(t, 1))
	w := &closeNotifyRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool)}
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
	assert.Contains(t, w.Body.String(), "event:reward_credited")
	assert.Contains(t, w.Body.String(), `"id":"reward:1:7"`)
}

func TestHandler_StreamEvents_SubscribeFails(t *testing.T) {
	router, deps := newTestRouter(t, defaultAuth())

	deps.subscriber.On("Subscribe", mock.Anything, int64(1)).Return(nil, errors.New("redis down"))

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/me/events", nil)
	req.Header.Set("Authorization", bearer(t, 1))
	w := serve(router, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "NOTIFICATIONS_UNAVAILABLE", decodeError(t, w).Code)
}

func TestHandler_StreamEvents_OutlivesWriteTimeout(t *testing.T) {
	router, deps := newTestRouter(t, defaultAuth())

	ch := make(chan *model.Notification, 1)
	deps.subscriber.On("Subscribe", mock.Anything, int64(1)).Return((<-chan *model.Notification)(ch), nil)

	srv := httptest.NewUnstartedServer(router)
	srv.Config.WriteTimeout = 300 * time.Millisecond
	srv.Start()
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/me/events", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", bearer(t, 1))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/event-stream")

	// Published well after the write timeout has passed
	go func() {
		time.Sleep(600 * time.Millisecond)
		ch <- &model.Notification{ID: "pix:qr-1", UserID: 1, Kind: model.NotifyDepositApproved, Amount: "50.00"}
	}()

	scanner := bufio.NewScanner(resp.Body)
	var got bool
	for scanner.Scan() {
		if strings.HasPrefix(scanner.Text(), "event:deposit_approved") {
			got = true
			break
		}
	}
	assert.True(t, got, "notification delivered after write timeout")

	cancel()
}
