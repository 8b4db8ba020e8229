package middleware

import (
	"context"
	"net/http"

	"copilot_accounts/internal/app/service"
	"copilot_accounts/internal/common"
	"copilot_accounts/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const AccountCtxKey contextKey = "account"

// Authenticator extracts the bearer token, resolves it to an account and
// stores the account in the request context. Whatever went wrong — missing
// header, bad token, unknown subject — the client sees the same 401.
func Authenticator(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := jwtauth.TokenFromHeader(r)
			if token == "" {
				common.RespondWithError(w, http.StatusUnauthorized, common.ErrUnauthorized.Error())
				return
			}

			account, err := authService.ResolveToken(r.Context(), token)
			if err != nil {
				common.RespondWithError(w, common.HTTPStatusFromError(err), common.ErrUnauthorized.Error())
				return
			}

			ctx := context.WithValue(r.Context(), AccountCtxKey, account)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccountFromContext returns the account resolved by Authenticator.
func AccountFromContext(ctx context.Context) (*model.Account, bool) {
	account, ok := ctx.Value(AccountCtxKey).(*model.Account)
	return account, ok
}
