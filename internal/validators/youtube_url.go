// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var videoIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// Hosts whose watch pages carry the video id in the "v" query parameter.
var queryHosts = map[string]struct{}{
	"youtube.com":        {},
	"www.youtube.com":    {},
	"m.youtube.com":      {},
	"music.youtube.com":  {},
	"gaming.youtube.com": {},
}

// Path prefixes carrying the id as the next segment on youtube.com hosts.
var idPathPrefixes = []string{"embed", "v", "shorts", "live"}

// ExtractVideoID returns the 11 character video id referenced by a YouTube
// URL.
//
// Accepted forms:
//
//	https://www.youtube.com/watch?v=<id>   (also m., music., gaming. hosts)
//	https://www.youtube.com/embed/<id>     (also /v/, /shorts/, /live/)
//	https://youtu.be/<id>
//
// The scheme must be http or https.
func ExtractVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyURL
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrMalformedURL, u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	segments := pathSegments(u.Path)

	var id string
	switch {
	case host == "youtu.be":
		if len(segments) > 0 {
			id = segments[0]
		}
	case isQueryHost(host):
		id = u.Query().Get("v")
		if id == "" && len(segments) > 1 && isIDPathPrefix(segments[0]) {
			id = segments[1]
		}
	default:
		return "", fmt.Errorf("%w: %s", ErrNotYouTubeDomain, host)
	}

	if id == "" {
		return "", ErrNoVideoID
	}

	// ids longer than 11 characters are truncated, mirroring YouTube itself
	if len(id) > 11 {
		id = id[:11]
	}

	if !videoIDPattern.MatchString(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidVideoID, id)
	}

	return id, nil
}

func isQueryHost(host string) bool {
	_, ok := queryHosts[host]
	return ok
}

func isIDPathPrefix(segment string) bool {
	for _, p := range idPathPrefixes {
		if segment == p {
			return true
		}
	}
	return false
}

func pathSegments(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
