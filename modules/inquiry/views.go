package inquiry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/formkit/handler"
)

// ErrorsTarget is the element patched with validation messages.
const ErrorsTarget = "#form-errors"

type PageParams struct {
	Lang     string
	Text     func(key string) string
	Form     Form
	Messages []string
	Sent     bool
}

type ErrorsParams struct {
	Messages []string
}

type NotificationParams struct {
	Lang string
	Text func(key string) string
	Form Form
}

// Views renders the module's pages. Any nil field falls back to the
// built-in markup.
type Views struct {
	Page         func(PageParams) templ.Component
	Errors       func(ErrorsParams) templ.Component
	ErrorPage    func(handler.ErrorPageParams) templ.Component
	ErrorToast   func(handler.ErrorToastParams) templ.Component
	Notification func(NotificationParams) templ.Component
}

func (v Views) withDefaults() Views {
	if v.Page == nil {
		v.Page = DefaultPage
	}
	if v.Errors == nil {
		v.Errors = DefaultErrors
	}
	if v.ErrorPage == nil {
		v.ErrorPage = DefaultErrorPage
	}
	if v.ErrorToast == nil {
		v.ErrorToast = DefaultErrorToast
	}
	if v.Notification == nil {
		v.Notification = DefaultNotification
	}
	return v
}

// field describes one input. bind is the kebab-case data-bind key: HTML
// lowercases attribute names and DataStar camel-cases the key back into the
// signal name.
type field struct {
	name      string
	bind      string
	inputType string
	value     string
}

func (f Form) fields() []field {
	return []field{
		{"name", "name", "text", f.Name},
		{"postCode", "post-code", "text", f.PostCode},
		{"address", "address", "text", f.Address},
		{"dateFrom", "date-from", "text", f.DateFrom},
		{"dateTo", "date-to", "text", f.DateTo},
		{"mail", "mail", "email", f.Mail},
		{"phone", "phone", "tel", f.Phone},
	}
}

func DefaultErrors(p ErrorsParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<ul id="form-errors" class="errors">`)
		for _, msg := range p.Messages {
			fmt.Fprintf(&b, "<li>%s</li>", templ.EscapeString(msg))
		}
		b.WriteString(`</ul>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func DefaultPage(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals, err := json.Marshal(p.Form)
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8">`, templ.EscapeString(p.Lang))
		fmt.Fprintf(&b, `<title>%s</title>`, templ.EscapeString(p.Text("page.title")))
		b.WriteString(`<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"></script>`)
		b.WriteString(`</head><body><div id="toast-container"></div>`)
		fmt.Fprintf(&b, `<h1>%s</h1>`, templ.EscapeString(p.Text("page.title")))
		if p.Sent {
			fmt.Fprintf(&b, `<p class="notice">%s</p>`, templ.EscapeString(p.Text("page.sent")))
		}

		fmt.Fprintf(&b, `<form method="post" action="/submit" data-signals="%s" `, templ.EscapeString(string(signals)))
		b.WriteString(`data-on:input__debounce.500ms="@post('/validate')" data-on:submit__prevent="@post('/submit')">`)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := DefaultErrors(ErrorsParams{Messages: p.Messages}).Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		for _, f := range p.Form.fields() {
			fmt.Fprintf(&b, `<div class="item"><label for="%[1]s">%[2]s</label><input type="%[3]s" id="%[1]s" name="%[1]s" value="%[4]s" data-bind:%[5]s></div>`,
				f.name, templ.EscapeString(p.Text("fields."+f.name)), f.inputType, templ.EscapeString(f.value), f.bind)
		}
		fmt.Fprintf(&b, `<div class="item"><label for="note">%s</label><textarea id="note" name="note" data-bind:note>%s</textarea></div>`,
			templ.EscapeString(p.Text("fields.note")), templ.EscapeString(p.Form.Note))
		fmt.Fprintf(&b, `<p class="hint">%s</p>`, templ.EscapeString(p.Text("page.hint")))
		fmt.Fprintf(&b, `<div class="item"><button type="submit">%s</button><button type="reset">%s</button></div>`,
			templ.EscapeString(p.Text("page.submit")), templ.EscapeString(p.Text("page.reset")))
		b.WriteString(`</form></body></html>`)

		_, err = io.WriteString(w, b.String())
		return err
	})
}

func DefaultErrorPage(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var details string
		if p.Details != "" {
			details = "<pre>" + templ.EscapeString(p.Details) + "</pre>"
		}
		_, err := fmt.Fprintf(w, `<!DOCTYPE html><html><body><h1>%s</h1><p>%s</p>%s<p><small>%s</small></p><a href="/">&larr;</a></body></html>`,
			strconv.Itoa(p.StatusCode), templ.EscapeString(p.Error), details, templ.EscapeString(p.RequestID))
		return err
	})
}

func DefaultErrorToast(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast toast-%s" role="alert">%s</div>`,
			templ.EscapeString(p.Type), templ.EscapeString(p.Message))
		return err
	})
}

// DefaultNotification lists the submitted values as a table, one row per
// field with an empty value shown as a dash.
func DefaultNotification(p NotificationParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, `<!DOCTYPE html><html lang="%s"><body>`, templ.EscapeString(p.Lang))
		fmt.Fprintf(&b, `<h1>%s</h1><table>`, templ.EscapeString(p.Text("mail.heading")))

		rows := append(p.Form.fields(), field{name: "note", value: p.Form.Note})
		for _, f := range rows {
			value := f.value
			if value == "" {
				value = "-"
			}
			fmt.Fprintf(&b, `<tr><th>%s</th><td style="white-space:pre-wrap">%s</td></tr>`,
				templ.EscapeString(p.Text("fields."+f.name)), templ.EscapeString(value))
		}
		b.WriteString(`</table></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}
