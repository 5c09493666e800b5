package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

const styles = `body{font-family:system-ui,sans-serif;max-width:28rem;margin:3rem auto;padding:0 1rem}
label{display:block;margin-top:.75rem}input{width:100%;padding:.4rem;box-sizing:border-box}
input.error{border:2px solid #c0392b;background:#fdecea}#form-error{color:#c0392b;min-height:1.2em}
#password-strength{height:.4rem;margin-top:.3rem;background:#ddd}
#password-strength[data-strength=low]{background:#c0392b;width:33%}
#password-strength[data-strength=mid]{background:#e67e22;width:66%}
#password-strength[data-strength=high]{background:#27ae60;width:100%}`

// layout wraps body in the page shell with the DataStar client loaded.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>%s</title>`+
				`<script type="module" src="%s"></script><style>%s</style></head><body>`,
			templ.EscapeString(title), datastarScript, styles,
		); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

// signals encodes v as the value of a data-signals attribute.
func signals(v any) (string, error) {
	s, err := templ.JSONString(v)
	if err != nil {
		return "", err
	}
	return templ.EscapeString(s), nil
}

// input renders a labelled text input bound to the signal of the same name.
// The error class follows the errorField signal; hasError sets it up front
// for pages rendered without JavaScript.
func input(w io.Writer, id, signal, label, kind, value string, hasError bool) error {
	_, err := fmt.Fprintf(w,
		`<label for="%[1]s">%[3]s</label>`+
			`<input id="%[1]s" name="%[1]s" type="%[4]s" value="%[5]s"%[6]s `+
			`data-bind-%[2]s data-class-error="$errorField == '%[1]s'">`,
		id, signal, templ.EscapeString(label), kind, templ.EscapeString(value), errorClass(hasError),
	)
	return err
}

// FormError is the message slot under a form. DataStar keeps it in sync
// with the errorMessage signal.
func FormError(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p id="form-error" data-text="$errorMessage">%s</p>`, templ.EscapeString(message))
		return err
	})
}
