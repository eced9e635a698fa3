package server

import (
	"crypto/subtle"
	"fmt"
	"log"
	"net/http"
	"regexp"
)

var channelNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// rssHandler serves RSS feed of a telegram channel, GET /rss/{channel}?key=...
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	key, apiKey := r.URL.Query().Get("key"), s.config.GetAPIKey()
	if key == "" || apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
		renderText(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	channel := r.PathValue("channel")
	if !channelNameRe.MatchString(channel) {
		renderText(w, http.StatusBadRequest, "invalid channel name")
		return
	}

	rss, err := s.feeds.Build(r.Context(), channel)
	if err != nil {
		log.Printf("[WARN] failed to build feed for %s: %v", channel, err)
		renderText(w, http.StatusBadRequest, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=UTF-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d, public", int(s.config.GetCacheMaxAge().Seconds())))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
