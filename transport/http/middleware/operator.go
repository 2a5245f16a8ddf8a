package middleware

import (
	"context"
	"net/http"
	"strings"

	"grandplaza/shared/constant"
)

const maxOperatorLength = 100

// Operator records the back-office user named in X-Operator on the request context.
// Writes fall back to the system operator when the header is absent.
func (a *appMiddleware) Operator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operator := strings.TrimSpace(r.Header.Get(constant.RequestHeaderOperator))
		if operator == "" {
			next.ServeHTTP(w, r)

			return
		}

		if len(operator) > maxOperatorLength {
			operator = operator[:maxOperatorLength]
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), constant.ContextKeyOperator, operator)))
	})
}
