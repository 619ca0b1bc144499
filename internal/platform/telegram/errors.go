package telegram

import (
	"context"
	stderrors "errors"

	"github.com/gotd/td/tgerr"

	"tg-info-backend/internal/common/errors"
)

// RPC error types meaning the peer does not exist or is not visible to us.
var notFoundTypes = []string{
	"USERNAME_NOT_OCCUPIED",
	"USERNAME_INVALID",
	"PEER_ID_INVALID",
	"CHANNEL_INVALID",
	"CHANNEL_PRIVATE",
	"USER_ID_INVALID",
}

func errNotStarted() error {
	return errors.NewRemoteUnavailableError("telegram client is not connected")
}

// mapError converts an MTProto failure into an AppError. Context errors
// pass through unchanged so the caller can classify timeouts.
func mapError(operation, ref string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return err
	}
	if tgerr.Is(err, notFoundTypes...) {
		return errors.NewRemoteNotFoundError(ref, err).WithDetail("operation", operation)
	}
	if d, ok := tgerr.AsFloodWait(err); ok {
		return errors.NewRateLimitError("telegram", d).WithDetail("operation", operation)
	}
	return errors.NewTelegramAPIError(operation, err)
}
