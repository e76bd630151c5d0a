package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/saulo-duarte/quizgen-lambda/internal/config"
)

// Recoverer turns a panic into a 500 error envelope.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			config.WithContext(r.Context()).
				WithField("panic", rec).
				WithField("stack", string(debug.Stack())).
				Error("Recovered from panic")

			message := "unexpected error"
			switch v := rec.(type) {
			case error:
				message = v.Error()
			case string:
				if v != "" {
					message = v
				}
			case fmt.Stringer:
				message = v.String()
			}
			config.Error(w, http.StatusInternalServerError, message)
		}()

		next.ServeHTTP(w, r)
	})
}
