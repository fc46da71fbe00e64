package repositories

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InspectRow is a human readable view of one badger entry, used by the debug tools.
type InspectRow struct {
	Key       string
	Type      string
	Timestamp string
	EntityID  string
	Namespace string
	Detail    string
}

// InspectRecord decodes any key written by the repositories of this package.
// Unknown keys are shown with their size only.
func InspectRecord(key string, val []byte) InspectRow {
	row := InspectRow{
		Key:       key,
		Type:      "RAW",
		Timestamp: "--:--:--",
		EntityID:  "--------",
		Namespace: "default",
		Detail:    "Size: " + strconv.Itoa(len(val)) + " bytes",
	}

	switch {
	case strings.HasPrefix(key, "msg:"):
		row.Type = "MESSAGE"
		parts := strings.Split(key, ":")
		if len(parts) == 4 {
			if conv, err := base64.RawURLEncoding.DecodeString(parts[1]); err == nil {
				row.Namespace = string(conv)
			}
			if tsNano, err := strconv.ParseInt(parts[2], 10, 64); err == nil {
				row.Timestamp = time.Unix(0, tsNano).UTC().Format("15:04:05")
			}
			row.EntityID = shortID(parts[3])
		}
		if message, err := decodeMessage(val); err == nil {
			row.Detail = message.Content
			if message.Redacted {
				row.Detail = fmt.Sprintf("[redacted, %d chars typed] %s", message.OriginalLength, message.Content)
			}
		}
	case strings.HasPrefix(key, "user:"):
		row.Type = "USER"
		row.Namespace = strings.TrimPrefix(key, "user:")
		if r, err := decodeRecord(val); err == nil {
			row.EntityID = shortID(r.str(userFieldID))
			row.Detail = "roles: " + strings.Join(r.list(userFieldRoles), ",")
			row.Timestamp = time.Unix(int64(r.uint(userFieldCreatedAt)), 0).UTC().Format("15:04:05")
		}
	case strings.HasPrefix(key, blocklistPrefix):
		row.Type = "BLOCKED"
		row.Detail = strings.TrimPrefix(key, blocklistPrefix)
	}
	return row
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
