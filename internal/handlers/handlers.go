package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

func SendErrorOrLog(
	w http.ResponseWriter,
	logger logrus.FieldLogger,
	status int,
	e error,
) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	payload, err := json.Marshal(map[string]string{
		"error": e.Error(),
	})
	if err == nil {
		_, err = w.Write(payload)
	}
	if err != nil {
		logger.WithError(err).WithField("sent error", e).Error("failed to send error message")
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}
