package commands

import (
	"context"
	"io"
)

// MessageSender delivers a text message to a normalized phone number.
// Implementations return an error marked with errs.ErrSendFailed when the
// message was not accepted.
type MessageSender interface {
	Send(ctx context.Context, to, body string) error
}

// UploadStorage keeps uploaded files and reports the public URL they are served from.
type UploadStorage interface {
	Save(ctx context.Context, filename string, r io.Reader) (url string, err error)
}
