package web

import (
	"errors"

	"user-form/config"
	"user-form/internal/domain/form"
	"user-form/internal/domain/user"
)

type (
	FieldView struct {
		Name  string
		Label string
		Type  string
		Value string
		Error string
	}
	PageView struct {
		Title        string
		Fields       []FieldView
		Users        user.Users
		EmptyMessage string
		// Notice is a network failure the user should know about.
		Notice  string
		Success string
	}
)

func newPageView(ui config.UI, s form.Snapshot) PageView {
	errs := s.VisibleErrors()

	fields := make([]FieldView, 0, len(user.Fields))
	for _, f := range user.Fields {
		typ := "text"
		if f == user.FieldEmail {
			typ = "email"
		}
		fields = append(fields, FieldView{
			Name:  string(f),
			Label: f.Label(),
			Type:  typ,
			Value: s.Values.Value(f),
			Error: errs[string(f)],
		})
	}

	return PageView{
		Title:        ui.Title,
		Fields:       fields,
		Users:        s.Users,
		EmptyMessage: ui.EmptyMessage,
	}
}

func noticeFor(err error) string {
	if err == nil {
		return ""
	}

	var netErr *user.NetworkError
	if errors.As(err, &netErr) && netErr.Op == user.OpList {
		return "Could not fetch users. The list below may be out of date."
	}
	if errors.As(err, &netErr) && netErr.Op == user.OpCreate {
		return "Could not submit the user. Your input was kept, please try again."
	}

	return "Something went wrong. Please try again."
}
