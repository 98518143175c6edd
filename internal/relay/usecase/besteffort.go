package usecase

import (
	"context"
	"fmt"
)

// bestEffort runs a non-critical side call. Its error (or panic) is logged
// and handed to record, and never reaches the caller.
func (uc *implUseCase) bestEffort(ctx context.Context, action string, record func(error), fn func() error) {
	var err error
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			uc.l.Warnf(ctx, "relay usecase: %s failed: %v", action, err)
		}
		if record != nil {
			record(err)
		}
	}()
	err = fn()
}
