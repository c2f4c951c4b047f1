package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/email"
)

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	t.Run("writes the body and the envelope", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "mail")
		sender := email.NewDevSender(dir)
		require.NoError(t, sender.SendEmail(context.Background(), validParams()))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		var htmlFile, jsonFile string
		for _, e := range entries {
			switch filepath.Ext(e.Name()) {
			case ".html":
				htmlFile = e.Name()
			case ".json":
				jsonFile = e.Name()
			}
		}
		assert.True(t, strings.HasSuffix(htmlFile, "_inquiry.html"))

		body, err := os.ReadFile(filepath.Join(dir, htmlFile))
		require.NoError(t, err)
		assert.Equal(t, "<p>hello</p>", string(body))

		raw, err := os.ReadFile(filepath.Join(dir, jsonFile))
		require.NoError(t, err)
		var meta map[string]string
		require.NoError(t, json.Unmarshal(raw, &meta))
		assert.Equal(t, "owner@example.com", meta["send_to"])
		assert.Equal(t, "customer@example.com", meta["reply_to"])
		assert.Equal(t, "New inquiry", meta["subject"])
	})

	t.Run("names files after the subject without a tag", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := validParams()
		p.Tag = ""
		p.Subject = "Hello World / 2"
		require.NoError(t, email.NewDevSender(dir).SendEmail(context.Background(), p))

		matches, err := filepath.Glob(filepath.Join(dir, "*_hello_world__2.html"))
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("rejects invalid params without writing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "out")
		err := email.NewDevSender(dir).SendEmail(context.Background(), email.SendEmailParams{})
		require.ErrorIs(t, err, email.ErrInvalidParams)
		assert.NoDirExists(t, dir)
	})

	t.Run("stops on a canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := email.NewDevSender(t.TempDir()).SendEmail(ctx, validParams())
		assert.ErrorIs(t, err, email.ErrFailedToSendEmail)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
