package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(requestFields(r)).
				WithField("ua", r.Header.Get("User-Agent")).
				Trace(" ====> request")
			next.ServeHTTP(w, r)
		})
	}
}
