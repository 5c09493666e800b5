package logger

import "log/slog"

// Error records err under "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the account id under "user_id". Nil produces an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// RequestID records the request id under "request_id". Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Form records which auth form a record is about ("login", "signup").
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Field records the form field a validation failure refers to.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Outcome records a submission outcome.
func Outcome(o string) slog.Attr {
	return slog.String("outcome", o)
}

func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}
