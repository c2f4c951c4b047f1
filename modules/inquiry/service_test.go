package inquiry_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/modules/inquiry"
	"github.com/dmitrymomot/formkit/pkg/email"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

func newServer(t *testing.T, opts ...inquiry.Option) http.Handler {
	t.Helper()

	tr := newTranslator(t)
	svc := inquiry.NewService(tr, opts...)

	return i18n.Middleware(i18n.DefaultLangExtractor(tr.SupportedLanguages()...), "ja")(svc.Handle())
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, target string, v any) *http.Request {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestService_Page(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	t.Run("renders the form in the negotiated language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		rec := serve(srv, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "en", rec.Header().Get("Content-Language"))
		assert.Contains(t, rec.Body.String(), "<title>Contact us</title>")
		assert.Contains(t, rec.Body.String(), `id="form-errors"`)
		assert.Contains(t, rec.Body.String(), `name="postCode"`)
	})

	t.Run("binds inputs with kebab-case keys", func(t *testing.T) {
		body := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()

		for _, key := range []string{"name", "post-code", "address", "date-from", "date-to", "mail", "phone", "note"} {
			assert.Contains(t, body, "data-bind:"+key+">", key)
		}
		assert.NotContains(t, body, "data-bind:postCode")
		assert.NotContains(t, body, "data-bind:dateFrom")
		assert.NotContains(t, body, "data-bind:dateTo")
		assert.Contains(t, body, `&#34;postCode&#34;`)
	})

	t.Run("defaults to Japanese", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Contains(t, rec.Body.String(), "お問い合わせ")
	})

	t.Run("shows the sent notice", func(t *testing.T) {
		rec := serve(srv, httptest.NewRequest(http.MethodGet, "/?sent=true&lang=en", nil))
		assert.Contains(t, rec.Body.String(), "Your inquiry has been received.")
	})
}

func TestService_SubmitJSON(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	t.Run("echoes a valid submission", func(t *testing.T) {
		form := validForm()
		form.PostCode = "１００－０００１"
		rec := serve(srv, jsonRequest(t, "/submit", form))

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data inquiry.Form `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "100-0001", body.Data.PostCode)
		assert.Equal(t, "taro@example.com", body.Data.Mail)
	})

	t.Run("rejects an invalid submission with localized details", func(t *testing.T) {
		rec := serve(srv, jsonRequest(t, "/submit", inquiry.Form{Mail: "taro@"}))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body handler.JSONResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"必須項目です."}, body.Error.Details["name"])
		assert.Equal(t, []string{"メールアドレスの形式が正しくありません."}, body.Error.Details["mail"])
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		rec := serve(srv, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"bad_request"`)
	})
}

func TestService_SubmitForm(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	post := func(values url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/submit", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "text/html")
		return serve(srv, req)
	}

	t.Run("redirects after a valid submission", func(t *testing.T) {
		rec := post(url.Values{"name": {"taro"}, "mail": {"taro@example.com"}})

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?sent=true", rec.Header().Get("Location"))
	})

	t.Run("re-renders the page with messages", func(t *testing.T) {
		rec := post(url.Values{"name": {"taro"}, "mail": {"taro@example.com"}, "dateFrom": {"2024-04-01"}})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "<li>[終了日]開始日と終了日は両方入力してください.</li>")
		assert.Contains(t, rec.Body.String(), `value="2024-04-01"`)
	})
}

func TestService_SubmitDataStar(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	dataStar := func(signals map[string]any) *http.Request {
		req := jsonRequest(t, "/submit", signals)
		req.Header.Set("Accept", "text/event-stream")
		req.Header.Set("Datastar-Request", "true")
		return req
	}

	t.Run("redirects after a valid submission", func(t *testing.T) {
		rec := serve(srv, dataStar(map[string]any{"name": "taro", "mail": "taro@example.com", "valid": true}))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		body := rec.Body.String()
		assert.Contains(t, body, `window.location.href = "/?sent=true"`)
		assert.NotContains(t, body, "toast")
	})

	t.Run("patches the message list for invalid input", func(t *testing.T) {
		rec := serve(srv, dataStar(map[string]any{"name": "", "mail": "taro@"}))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "#form-errors")
		assert.Contains(t, body, "<li>[氏名]必須項目です.</li>")
		assert.Contains(t, body, `"valid":false`)
		assert.NotContains(t, body, "toast")
	})
}

func TestService_Validate(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	dataStar := func(signals map[string]any) *http.Request {
		req := jsonRequest(t, "/validate", signals)
		req.Header.Set("Accept", "text/event-stream")
		req.Header.Set("Datastar-Request", "true")
		return req
	}

	t.Run("patches the message list", func(t *testing.T) {
		rec := serve(srv, dataStar(map[string]any{"name": "", "mail": "taro@", "valid": true}))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
		body := rec.Body.String()
		assert.Contains(t, body, "#form-errors")
		assert.Contains(t, body, "<li>[氏名]必須項目です.</li>")
		assert.Contains(t, body, `"valid":false`)
	})

	t.Run("clears the list for valid input", func(t *testing.T) {
		rec := serve(srv, dataStar(map[string]any{"name": "taro", "mail": "taro@example.com"}))

		body := rec.Body.String()
		assert.Contains(t, body, `<ul id="form-errors" class="errors"></ul>`)
		assert.Contains(t, body, `"valid":true`)
	})

	t.Run("requires DataStar", func(t *testing.T) {
		rec := serve(srv, jsonRequest(t, "/validate", map[string]any{"name": "x"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestService_RateLimit(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
	require.NoError(t, err)

	srv := newServer(t, inquiry.WithLimiter(limiter, nil))

	first := serve(srv, jsonRequest(t, "/submit", validForm()))
	assert.Equal(t, http.StatusOK, first.Code)

	second := serve(srv, jsonRequest(t, "/submit", validForm()))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Contains(t, second.Body.String(), `"too_many_requests"`)

	page := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, page.Code)
}

type recordingSender struct {
	sent chan email.SendEmailParams
	err  error
}

func (r *recordingSender) SendEmail(_ context.Context, p email.SendEmailParams) error {
	r.sent <- p
	return r.err
}

func TestService_Notification(t *testing.T) {
	t.Parallel()

	t.Run("mails accepted inquiries to the owner", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{sent: make(chan email.SendEmailParams, 1)}
		srv := newServer(t, inquiry.WithNotifier(sender, "owner@example.com"))

		rec := serve(srv, jsonRequest(t, "/submit", validForm()))
		require.Equal(t, http.StatusOK, rec.Code)

		select {
		case p := <-sender.sent:
			assert.Equal(t, "owner@example.com", p.SendTo)
			assert.Equal(t, "taro@example.com", p.ReplyTo)
			assert.Equal(t, "お問い合わせがありました: 山田 太郎", p.Subject)
			assert.Equal(t, inquiry.NotificationTag, p.Tag)
			assert.Contains(t, p.BodyHTML, "<th>郵便番号</th>")
			assert.Contains(t, p.BodyHTML, "100-0001")
		case <-time.After(time.Second):
			t.Fatal("notification was not sent")
		}
	})

	t.Run("does not mail rejected inquiries", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{sent: make(chan email.SendEmailParams, 1)}
		srv := newServer(t, inquiry.WithNotifier(sender, "owner@example.com"))

		rec := serve(srv, jsonRequest(t, "/submit", inquiry.Form{}))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		select {
		case <-sender.sent:
			t.Fatal("unexpected notification")
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("a failed send does not fail the submission", func(t *testing.T) {
		t.Parallel()

		sender := &recordingSender{sent: make(chan email.SendEmailParams, 1), err: email.ErrFailedToSendEmail}
		srv := newServer(t, inquiry.WithNotifier(sender, "owner@example.com"))

		rec := serve(srv, jsonRequest(t, "/submit", validForm()))
		assert.Equal(t, http.StatusOK, rec.Code)
		<-sender.sent
	})
}

// blockingSender holds every send until its context is done or release is closed.
type blockingSender struct {
	started chan struct{}
	release chan struct{}
	result  chan error
}

func newBlockingSender() *blockingSender {
	return &blockingSender{
		started: make(chan struct{}, 1),
		release: make(chan struct{}),
		result:  make(chan error, 1),
	}
}

func (b *blockingSender) SendEmail(ctx context.Context, _ email.SendEmailParams) error {
	b.started <- struct{}{}
	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-b.release:
	}
	b.result <- err
	return err
}

func TestService_NotificationLifecycle(t *testing.T) {
	t.Parallel()

	t.Run("a hung send is cancelled after the notify timeout", func(t *testing.T) {
		t.Parallel()

		sender := newBlockingSender()
		svc := inquiry.NewService(newTranslator(t),
			inquiry.WithNotifier(sender, "owner@example.com"),
			inquiry.WithNotifyTimeout(20*time.Millisecond),
		)

		rec := serve(svc.Handle(), jsonRequest(t, "/submit", validForm()))
		require.Equal(t, http.StatusOK, rec.Code)

		select {
		case err := <-sender.result:
			assert.ErrorIs(t, err, context.DeadlineExceeded)
		case <-time.After(time.Second):
			t.Fatal("send was not cancelled")
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, svc.Shutdown(ctx))
	})

	t.Run("shutdown waits for sends in flight", func(t *testing.T) {
		t.Parallel()

		sender := newBlockingSender()
		svc := inquiry.NewService(newTranslator(t), inquiry.WithNotifier(sender, "owner@example.com"))

		rec := serve(svc.Handle(), jsonRequest(t, "/submit", validForm()))
		require.Equal(t, http.StatusOK, rec.Code)
		<-sender.started

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, svc.Shutdown(ctx), context.DeadlineExceeded)

		close(sender.release)

		ctx2, cancel2 := context.WithTimeout(context.Background(), time.Second)
		defer cancel2()
		require.NoError(t, svc.Shutdown(ctx2))
		assert.NoError(t, <-sender.result)
	})

	t.Run("shutdown returns at once without a notifier", func(t *testing.T) {
		t.Parallel()

		svc := inquiry.NewService(newTranslator(t))
		assert.NoError(t, svc.Shutdown(context.Background()))
	})
}

func TestDefaultNotification(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Phone = ""
	form.Note = "<b>line one</b>\nline two"

	body, err := email.Render(context.Background(), inquiry.DefaultNotification(inquiry.NotificationParams{
		Lang: "en",
		Text: func(key string) string { return key },
		Form: form,
	}))
	require.NoError(t, err)

	assert.Contains(t, body, "<h1>mail.heading</h1>")
	assert.Contains(t, body, "<tr><th>fields.phone</th><td style=\"white-space:pre-wrap\">-</td></tr>")
	assert.Contains(t, body, "&lt;b&gt;line one&lt;/b&gt;\nline two")
}
