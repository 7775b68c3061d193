// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"
	"strings"
)

var (
	nonWordChars = regexp.MustCompile(`[^\w\s]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// fallbackFilename is used when a title contains no usable characters.
const fallbackFilename = "video"

// SanitizeTitle turns a video title into a file name stem: every character
// that is neither an ASCII word character nor whitespace is dropped and
// whitespace runs become a single underscore. Leading and trailing
// whitespace is converted as well, not trimmed.
//
// Example:
//
//	SanitizeTitle("Rick Astley - Never Gonna Give You Up (Official)")
//	// "Rick_Astley_Never_Gonna_Give_You_Up_Official"
func SanitizeTitle(title string) string {
	stem := nonWordChars.ReplaceAllString(title, "")
	return whitespace.ReplaceAllString(stem, "_")
}

// AttachmentFilename builds "<sanitized title>.<ext>". An empty extension
// yields the stem alone.
func AttachmentFilename(title, ext string) string {
	stem := SanitizeTitle(title)
	if stem == "" {
		stem = fallbackFilename
	}
	if ext == "" {
		return stem
	}
	return stem + "." + strings.TrimPrefix(ext, ".")
}
