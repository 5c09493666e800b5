package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/authforms/handler"
)

// loginSignals seeds the DataStar store of the login form.
type loginSignals struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	ErrorField   string `json:"errorField"`
	ErrorMessage string `json:"errorMessage"`
}

type signupSignals struct {
	Firstname       string `json:"firstname"`
	Surname         string `json:"surname"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	ErrorField      string `json:"errorField"`
	ErrorMessage    string `json:"errorMessage"`
}

type LoginPageParams struct {
	Email      string
	Error      string
	ErrorField string
}

func LoginPage(p LoginPageParams) templ.Component {
	return layout("Login", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sig, err := signals(loginSignals{
			Email:        p.Email,
			ErrorField:   p.ErrorField,
			ErrorMessage: p.Error,
		})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<h1>Login</h1><form id="login-form" method="post" action="/login" `+
				`data-signals="%s" data-on-submit="@post('/login')">`,
			sig,
		); err != nil {
			return err
		}
		if err := input(w, "email", "email", "Email", "email", p.Email, p.ErrorField == "email"); err != nil {
			return err
		}
		if err := input(w, "password", "password", "Password", "password", "", p.ErrorField == "password"); err != nil {
			return err
		}
		if err := FormError(p.Error).Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `<button id="login-btn" type="submit">Login</button></form>`+
			`<p>No account? <a href="/signup">Sign up</a></p>`)
		return err
	}))
}

type SignupPageParams struct {
	Firstname  string
	Surname    string
	Email      string
	Strength   string
	Error      string
	ErrorField string
}

func SignupPage(p SignupPageParams) templ.Component {
	return layout("Sign up", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		sig, err := signals(signupSignals{
			Firstname:    p.Firstname,
			Surname:      p.Surname,
			Email:        p.Email,
			ErrorField:   p.ErrorField,
			ErrorMessage: p.Error,
		})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<h1>Sign up</h1><form id="signup-form" method="post" action="/signup" `+
				`data-signals="%s" data-on-submit="@post('/signup')">`,
			sig,
		); err != nil {
			return err
		}
		fields := []struct{ id, signal, label, kind, value string }{
			{"firstname", "firstname", "First name", "text", p.Firstname},
			{"surname", "surname", "Surname", "text", p.Surname},
			{"email", "email", "Email", "email", p.Email},
		}
		for _, f := range fields {
			if err := input(w, f.id, f.signal, f.label, f.kind, f.value, p.ErrorField == f.id); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<label for="password">Password</label>`+
				`<input id="password" name="password" type="password"%s data-bind-password `+
				`data-class-error="$errorField == 'password'" `+
				`data-on-input__debounce.150ms="@get('/signup/strength')">`,
			errorClass(p.ErrorField == "password"),
		); err != nil {
			return err
		}
		if err := StrengthMeter(p.Strength).Render(ctx, w); err != nil {
			return err
		}
		if err := input(w, "confirm-password", "confirmPassword", "Confirm password", "password", "", p.ErrorField == "confirm-password"); err != nil {
			return err
		}
		if err := FormError(p.Error).Render(ctx, w); err != nil {
			return err
		}
		_, err = io.WriteString(w, `<button id="signup-btn" type="submit">Sign up</button></form>`+
			`<p>Have an account? <a href="/login">Login</a></p>`)
		return err
	}))
}

// StrengthMeter is the bar whose data-strength attribute the stylesheet
// colours. An empty label renders the neutral bar.
func StrengthMeter(label string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div id="password-strength" data-strength="%s"></div>`, templ.EscapeString(label))
		return err
	})
}

type HomePageParams struct {
	SignedIn  bool
	Firstname string
	Surname   string
}

func HomePage(p HomePageParams) templ.Component {
	return layout("Home", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if !p.SignedIn {
			_, err := io.WriteString(w, `<h1>Welcome</h1><p><a href="/login">Login</a> or <a href="/signup">sign up</a>.</p>`)
			return err
		}
		_, err := fmt.Fprintf(w,
			`<h1>Hello, %s %s</h1><form method="post" action="/logout"><button type="submit">Logout</button></form>`,
			templ.EscapeString(p.Firstname), templ.EscapeString(p.Surname),
		)
		return err
	}))
}

func ErrorPage(p handler.ErrorPageParams) templ.Component {
	return layout("Error", templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<h1>%d</h1><p>%s</p><p><small>%s</small></p><p><a href="/">Home</a></p>`,
			p.StatusCode, templ.EscapeString(p.Error), templ.EscapeString(p.RequestID))
		return err
	}))
}

func errorClass(on bool) string {
	if on {
		return ` class="error"`
	}
	return ""
}
