package shipment

import (
	"regexp"
	"strings"
	"time"
)

// The history log is a single text blob on the shipment holding zero or more
// newline-separated entries, newest first. One entry line reads:
//
//	<RFC 3339 timestamp>: <STATUS_UPPERCASE>[ - <free-text note>]
//
// This grammar is the only bit-exact persisted encoding the workflow core
// owns. Lines that do not match are dropped on decode rather than surfaced as
// errors, so corrupt or foreign-format lines never block rendering of the
// rest. Storing history as structured rows instead of an encoded blob would
// remove the grammar fragility entirely; kept as a blob for parity with the
// data already in the store.
var historyLinePattern = regexp.MustCompile(`^(.+?): ([A-Z_]+)(?:\s*-\s*(.+))?$`)

// HistoryEntry is one decoded record from the history log, representing one
// past status change.
type HistoryEntry struct {
	Timestamp time.Time
	Status    string
	Note      string
}

// EncodeEntry produces one history line for a transition at the given time.
// The note, when non-empty after trimming, is appended with a " - " separator.
// Notes must not contain newlines; that is the caller's responsibility and is
// not validated here.
func EncodeEntry(at time.Time, status Status, note string) string {
	line := at.UTC().Format(time.RFC3339) + ": " + status.HistoryCode()
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		line += " - " + trimmed
	}
	return line
}

// AppendEntry prepends an encoded entry to an existing log, keeping entries
// newest first. The existing log may be empty.
func AppendEntry(existingLog, entry string) string {
	if existingLog == "" {
		return entry
	}
	return entry + "\n" + existingLog
}

// DecodeLog parses a history log back into structured entries, preserving
// line order (newest first). Malformed lines, including lines whose timestamp
// does not parse, are silently skipped.
//
// A note containing " - " followed by text can only be mis-split if it also
// looks like trailing structured text; notes are free text for display only,
// so the ambiguity is acceptable.
func DecodeLog(log string) []HistoryEntry {
	if log == "" {
		return nil
	}

	entries := make([]HistoryEntry, 0)
	for _, line := range strings.Split(log, "\n") {
		match := historyLinePattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		timestamp, err := time.Parse(time.RFC3339, match[1])
		if err != nil {
			continue
		}

		entries = append(entries, HistoryEntry{
			Timestamp: timestamp,
			Status:    match[2],
			Note:      match[3],
		})
	}
	return entries
}
