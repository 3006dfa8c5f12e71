package domain

import (
	"context"
	"errors"
	"strings"
)

// Error taxonomy for chain-facing operations. Every failure that crosses a
// package boundary is mapped onto one of these sentinels so callers can
// branch on category without string matching.
var (
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrUserRejected        = errors.New("user rejected request")
	ErrQuoteUnavailable    = errors.New("quote unavailable")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrTokenNotFound       = errors.New("token not found")
	ErrTransactionReverted = errors.New("transaction reverted")
	ErrConfirmationTimeout = errors.New("confirmation timeout")
	ErrContextChanged      = errors.New("wallet context changed")
)

// ErrorCode returns the stable machine-readable code for a classified error,
// or "internal" when the error does not map onto the taxonomy.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrProviderUnavailable):
		return "provider_unavailable"
	case errors.Is(err, ErrUserRejected):
		return "user_rejected"
	case errors.Is(err, ErrQuoteUnavailable):
		return "quote_unavailable"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrTokenNotFound):
		return "token_not_found"
	case errors.Is(err, ErrTransactionReverted):
		return "transaction_reverted"
	case errors.Is(err, ErrConfirmationTimeout):
		return "confirmation_timeout"
	case errors.Is(err, ErrContextChanged):
		return "context_changed"
	default:
		return "internal"
	}
}

// Retryable reports whether a failed operation may be retried as-is. A
// changed wallet context requires re-establishing the session first, and a
// revert will keep reverting until contract state changes.
func Retryable(err error) bool {
	switch {
	case errors.Is(err, ErrProviderUnavailable),
		errors.Is(err, ErrQuoteUnavailable),
		errors.Is(err, ErrConfirmationTimeout):
		return true
	default:
		return false
	}
}

// ClassifyRPCError maps a raw node or signer error onto the taxonomy. Errors
// already classified pass through unchanged.
func ClassifyRPCError(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{
		ErrProviderUnavailable, ErrUserRejected, ErrQuoteUnavailable,
		ErrInsufficientBalance, ErrTokenNotFound, ErrTransactionReverted,
		ErrConfirmationTimeout, ErrContextChanged,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrConfirmationTimeout, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "user denied"),
		strings.Contains(msg, "user rejected"),
		strings.Contains(msg, "request rejected"):
		return errors.Join(ErrUserRejected, err)
	case strings.Contains(msg, "insufficient funds"),
		strings.Contains(msg, "insufficient balance"):
		return errors.Join(ErrInsufficientBalance, err)
	case strings.Contains(msg, "execution reverted"),
		strings.Contains(msg, "always failing transaction"):
		return errors.Join(ErrTransactionReverted, err)
	case strings.Contains(msg, "connection refused"),
		strings.Contains(msg, "no such host"),
		strings.Contains(msg, "i/o timeout"),
		strings.Contains(msg, "429"):
		return errors.Join(ErrProviderUnavailable, err)
	default:
		return err
	}
}
